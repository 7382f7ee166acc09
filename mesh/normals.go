package mesh

import (
	"sync"

	"github.com/golang/geo/r3"
	"github.com/osuushi/cgkernel/internal"
	"github.com/osuushi/cgkernel/property"
	"github.com/osuushi/cgkernel/vector"
	"golang.org/x/exp/constraints"
)

// FaceNormal computes the unit normal of a polygon given its corners in
// winding order, using Newell's method. Summing over every edge keeps the
// result stable for slightly non-planar or nearly degenerate polygons, and no
// reference plane needs to be chosen.
//
// It reports false for fewer than three corners, or when the sum has zero
// length (collinear corners, or edges that cancel out).
func FaceNormal(corners []r3.Vector) (r3.Vector, bool) {
	if len(corners) < 3 {
		return r3.Vector{}, false
	}
	var sum r3.Vector
	for i, current := range corners {
		next := corners[(i+1)%len(corners)]
		sum.X += (current.Y - next.Y) * (current.Z + next.Z)
		sum.Y += (current.Z - next.Z) * (current.X + next.X)
		sum.Z += (current.X - next.X) * (current.Y + next.Y)
	}
	return vector.Normalize3(sum)
}

type normalOptions struct {
	workers int
}

type NormalOption func(*normalOptions)

// WithWorkers spreads the per-vertex work across n goroutines. Each vertex is
// owned by exactly one worker, which reads the shared mesh and writes only that
// vertex's slot, so no locking is involved. n < 1 means 1.
func WithWorkers(n int) NormalOption {
	return func(o *normalOptions) {
		o.workers = n
	}
}

// The angle a face makes at one of its corners, and that face's normal
type contribution struct {
	angle  float64
	normal r3.Vector
}

// AngleWeightedPseudoVertexNormals computes a normal for every vertex from the
// normals of the faces around it, each weighted by the face's interior angle at
// the vertex. Angle weighting keeps thin sliver triangles from skewing the
// result the way a plain average does.
//
// The result has one slot per vertex. Vertices that no face references are
// left undefined. A degenerate face contributes nothing but its angle, and a
// vertex whose weighted sum cannot be normalized gets the zero vector; neither
// case aborts the pass.
func AngleWeightedPseudoVertexNormals[I constraints.Integer](m Mesh[I], opts ...NormalOption) (*property.Map[r3.Vector], error) {
	options := normalOptions{workers: 1}
	for _, opt := range opts {
		opt(&options)
	}
	if options.workers < 1 {
		options.workers = 1
	}

	incidentFaces, err := m.MakeIncidenceMap(Vertex, Face)
	if err != nil {
		return nil, err
	}

	vertices := make([]I, 0, len(incidentFaces))
	for v := range incidentFaces {
		vertices = append(vertices, v)
	}

	normals := property.NewMap[r3.Vector](m.VertexCount())
	contributions := make([][]contribution, len(vertices))

	// A face that does not contain a vertex it is incident to means the mesh
	// broke its own invariants. That is thrown from deep in the gather step and
	// recovered here, per worker.
	work := func(start, end int) (err error) {
		defer func() {
			if recovered := internal.HandlePanicRecover(recover()); recovered != nil {
				err = recovered
			}
		}()
		// First gather every face's contribution, then reduce.
		for k := start; k < end; k++ {
			contributions[k] = gatherContributions(m, vertices[k], incidentFaces[vertices[k]])
		}
		for k := start; k < end; k++ {
			normals.Set(int(vertices[k]), reduceContributions(contributions[k]))
		}
		return nil
	}

	if options.workers == 1 || len(vertices) < 2 {
		if err := work(0, len(vertices)); err != nil {
			return nil, err
		}
		return normals, nil
	}

	chunk := (len(vertices) + options.workers - 1) / options.workers
	errs := make([]error, options.workers)
	var wg sync.WaitGroup
	for w, start := 0, 0; start < len(vertices); w, start = w+1, start+chunk {
		end := min(start+chunk, len(vertices))
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			errs[w] = work(start, end)
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return normals, nil
}

func gatherContributions[I constraints.Integer](m Mesh[I], v I, faces IndexSet[I]) []contribution {
	result := make([]contribution, 0, len(faces))
	// Sorted so the floating point sum does not depend on map order
	for _, f := range faces.Sorted() {
		face := m.Face(f)
		corner := -1
		for k, idx := range face {
			if idx == v {
				corner = k
				break
			}
		}
		if corner < 0 {
			internal.Fatalf("vertex %d is not a corner of incident face %d", v, f)
		}

		position := m.Vertex(v)
		next := m.Vertex(face[(corner+1)%3])
		prev := m.Vertex(face[(corner+2)%3])

		angle := vector.Angle(prev.Sub(position), next.Sub(position))
		normal, ok := FaceNormal([]r3.Vector{position, next, prev})
		if !ok {
			internal.Logger().Debug("degenerate face", "face", f, "vertex", v)
			normal = r3.Vector{}
		}
		result = append(result, contribution{angle: angle, normal: normal})
	}
	return result
}

func reduceContributions(contributions []contribution) r3.Vector {
	var angleSum float64
	for _, c := range contributions {
		angleSum += c.angle
	}
	if angleSum == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, c := range contributions {
		sum = sum.Add(c.normal.Mul(c.angle / angleSum))
	}
	normal, ok := vector.Normalize3(sum)
	if !ok {
		return r3.Vector{}
	}
	return normal
}

// AngleWeightedPseudoVertexNormals is the package function applied to m.
func (m *TriangleVertexMesh[I]) AngleWeightedPseudoVertexNormals(opts ...NormalOption) (*property.Map[r3.Vector], error) {
	return AngleWeightedPseudoVertexNormals[I](m, opts...)
}
