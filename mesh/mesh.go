// Package mesh holds indexed triangle meshes, the adjacency (incidence)
// queries over them, and vertex normal calculation.
//
// Every derived structure (incidence maps, normal maps) is a snapshot of the
// mesh at the time of the call. Nothing is cached or invalidated, so callers
// that mutate a mesh must rebuild whatever they derived from it.
package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/osuushi/cgkernel/property"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Component is a kind of mesh element.
type Component int

const (
	Vertex Component = iota
	Edge
	Face
)

func (c Component) String() string {
	switch c {
	case Vertex:
		return "vertex"
	case Edge:
		return "edge"
	case Face:
		return "face"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

var (
	ErrIndexCount           = errors.New("index count is not a multiple of 3")
	ErrIndexOutOfRange      = errors.New("vertex index out of range")
	ErrFaceOutOfRange       = errors.New("face index out of range")
	ErrUnsupportedIncidence = errors.New("unsupported incidence map")
)

// Mesh is what the normal calculator needs from a mesh.
type Mesh[I constraints.Integer] interface {
	VertexCount() int
	Vertex(i I) r3.Vector
	Face(i I) [3]I
	MakeIncidenceMap(origin, incident Component) (IncidenceMap[I], error)
}

// TriangleVertexMesh is the GPU style mesh representation: a vertex buffer,
// and an index buffer in which each consecutive triple of indexes is one
// triangle, counterclockwise when seen from the front.
type TriangleVertexMesh[I constraints.Integer] struct {
	vertices []r3.Vector
	indices  []I

	vertexProperties *property.Store
	faceProperties   *property.Store
}

// New checks the index buffer against the vertex buffer and builds a mesh. The
// mesh owns both slices afterwards.
func New[I constraints.Integer](vertices []r3.Vector, indices []I) (*TriangleVertexMesh[I], error) {
	if len(indices)%3 != 0 {
		return nil, errors.Wrapf(ErrIndexCount, "got %d indices", len(indices))
	}
	for pos, idx := range indices {
		if !inRange(idx, len(vertices)) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d at position %d, %d vertices", idx, pos, len(vertices))
		}
	}
	return &TriangleVertexMesh[I]{
		vertices:         vertices,
		indices:          indices,
		vertexProperties: property.NewStore(),
		faceProperties:   property.NewStore(),
	}, nil
}

func (m *TriangleVertexMesh[I]) Vertices() []r3.Vector {
	return m.vertices
}

func (m *TriangleVertexMesh[I]) Indices() []I {
	return m.indices
}

func (m *TriangleVertexMesh[I]) VertexCount() int {
	return len(m.vertices)
}

func (m *TriangleVertexMesh[I]) FaceCount() int {
	return len(m.indices) / 3
}

func (m *TriangleVertexMesh[I]) Vertex(i I) r3.Vector {
	return m.vertices[i]
}

// Face returns the vertex indexes of face i. The caller must ensure
// i < FaceCount(). A bad index is not reported as an error; it panics in the
// slice bounds check. See CheckedFace.
func (m *TriangleVertexMesh[I]) Face(i I) [3]I {
	start := 3 * int(i)
	return [3]I{m.indices[start], m.indices[start+1], m.indices[start+2]}
}

// CheckedFace is Face with a range check.
func (m *TriangleVertexMesh[I]) CheckedFace(i I) ([3]I, error) {
	if !inRange(i, m.FaceCount()) {
		return [3]I{}, errors.Wrapf(ErrFaceOutOfRange, "face %d of %d", i, m.FaceCount())
	}
	return m.Face(i), nil
}

// Reports 0 <= i < n. Compared as uint64 so large unsigned indexes cannot wrap
// negative the way int(i) would.
func inRange[I constraints.Integer](i I, n int) bool {
	return i >= 0 && uint64(i) < uint64(n)
}

// FaceVertices returns the positions of face i's corners, in winding order.
func (m *TriangleVertexMesh[I]) FaceVertices(i I) [3]r3.Vector {
	face := m.Face(i)
	return [3]r3.Vector{m.vertices[face[0]], m.vertices[face[1]], m.vertices[face[2]]}
}

func (m *TriangleVertexMesh[I]) VertexProperties() *property.Store {
	return m.vertexProperties
}

func (m *TriangleVertexMesh[I]) FaceProperties() *property.Store {
	return m.faceProperties
}

// AttachVertexNormals stores normals as the mesh's vertex normal property,
// replacing any previous normals. The map must have one slot per vertex.
func (m *TriangleVertexMesh[I]) AttachVertexNormals(normals *property.Map[r3.Vector]) error {
	if normals.Len() != len(m.vertices) {
		return errors.Errorf("normal map has %d slots, mesh has %d vertices", normals.Len(), len(m.vertices))
	}
	m.vertexProperties.Remove(property.Normal)
	return property.Add(m.vertexProperties, property.Normal, normals)
}

// VertexNormals returns the attached vertex normals.
func (m *TriangleVertexMesh[I]) VertexNormals() (*property.Map[r3.Vector], error) {
	return property.Get[r3.Vector](m.vertexProperties, property.Normal)
}
