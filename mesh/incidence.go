package mesh

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type IndexSet[I constraints.Integer] map[I]struct{}

func (s IndexSet[I]) Add(i I) {
	s[i] = struct{}{}
}

func (s IndexSet[I]) Contains(i I) bool {
	_, ok := s[i]
	return ok
}

// Sorted returns the members in ascending order.
func (s IndexSet[I]) Sorted() []I {
	result := make([]I, 0, len(s))
	for i := range s {
		result = append(result, i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a] < result[b] })
	return result
}

// IncidenceMap maps a component index to the indexes of the components
// incident to it. Only components that occur in the mesh have keys.
type IncidenceMap[I constraints.Integer] map[I]IndexSet[I]

func (m IncidenceMap[I]) add(origin, incident I) {
	set, ok := m[origin]
	if !ok {
		set = make(IndexSet[I])
		m[origin] = set
	}
	set.Add(incident)
}

// MakeIncidenceMap builds a fresh map from each origin component to the set of
// incident components.
//
// Supported combinations:
//   - Vertex, Vertex: the vertices sharing a triangle with each vertex.
//   - Vertex, Face: the triangles each vertex is a corner of, by face index.
//
// Anything else fails with ErrUnsupportedIncidence. Vertices that no triangle
// references have no key.
func (m *TriangleVertexMesh[I]) MakeIncidenceMap(origin, incident Component) (IncidenceMap[I], error) {
	if origin != Vertex || (incident != Vertex && incident != Face) {
		return nil, errors.Wrapf(ErrUnsupportedIncidence, "%s to %s", origin, incident)
	}

	result := make(IncidenceMap[I])
	for f := 0; f < m.FaceCount(); f++ {
		a, b, c := m.indices[3*f], m.indices[3*f+1], m.indices[3*f+2]
		if incident == Vertex {
			result.add(a, b)
			result.add(a, c)
			result.add(b, a)
			result.add(b, c)
			result.add(c, a)
			result.add(c, b)
		} else {
			face := I(f)
			result.add(a, face)
			result.add(b, face)
			result.add(c, face)
		}
	}
	return result, nil
}
