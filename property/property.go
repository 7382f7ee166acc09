// Package property stores per-vertex or per-face attributes. The set of
// attribute kinds is closed, and each kind holds exactly one element type, so
// a lookup either yields the right typed collection or a descriptive error.
package property

import (
	"fmt"
	"image/color"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

type Kind int

const (
	Normal Kind = iota
	Color
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Color:
		return "color"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrDuplicateProperty = errors.New("property already present")
	ErrPropertyMissing   = errors.New("property not present")
	ErrPropertyType      = errors.New("property type mismatch")
)

// Map is a dense, index aligned collection of attribute values. A slot that was
// never set is undefined, which is distinct from holding the zero value.
type Map[T any] struct {
	values  []T
	defined []bool
}

// NewMap makes a map with n undefined slots.
func NewMap[T any](n int) *Map[T] {
	return &Map[T]{
		values:  make([]T, n),
		defined: make([]bool, n),
	}
}

func (m *Map[T]) Len() int {
	return len(m.values)
}

// Set defines slot i. Distinct slots may be set from different goroutines.
func (m *Map[T]) Set(i int, value T) {
	m.values[i] = value
	m.defined[i] = true
}

// Push appends a defined slot.
func (m *Map[T]) Push(value T) {
	m.values = append(m.values, value)
	m.defined = append(m.defined, true)
}

// Get returns slot i and whether it is defined. Out of range indexes are
// reported as undefined.
func (m *Map[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(m.values) || !m.defined[i] {
		var zero T
		return zero, false
	}
	return m.values[i], true
}

func (m *Map[T]) Defined(i int) bool {
	_, ok := m.Get(i)
	return ok
}

// DefinedCount is the number of defined slots.
func (m *Map[T]) DefinedCount() int {
	count := 0
	for _, d := range m.defined {
		if d {
			count++
		}
	}
	return count
}

// Store holds at most one Map per Kind.
type Store struct {
	maps map[Kind]any
}

func NewStore() *Store {
	return &Store{maps: make(map[Kind]any)}
}

func (s *Store) Has(kind Kind) bool {
	_, ok := s.maps[kind]
	return ok
}

// Remove drops the map for kind, if any.
func (s *Store) Remove(kind Kind) {
	delete(s.maps, kind)
}

// Add registers m under kind. It fails if kind is already present, or if T is
// not the element type the kind holds.
func Add[T any](s *Store, kind Kind, m *Map[T]) error {
	if err := checkKind[T](kind); err != nil {
		return err
	}
	if s.Has(kind) {
		return errors.Wrapf(ErrDuplicateProperty, "%s", kind)
	}
	s.maps[kind] = m
	return nil
}

// Get fetches the map registered under kind.
func Get[T any](s *Store, kind Kind) (*Map[T], error) {
	if err := checkKind[T](kind); err != nil {
		return nil, err
	}
	raw, ok := s.maps[kind]
	if !ok {
		return nil, errors.Wrapf(ErrPropertyMissing, "%s", kind)
	}
	m, ok := raw.(*Map[T])
	if !ok {
		return nil, errors.Wrapf(ErrPropertyType, "%s holds %T", kind, raw)
	}
	return m, nil
}

func checkKind[T any](kind Kind) error {
	var zero T
	switch kind {
	case Normal:
		if _, ok := any(zero).(r3.Vector); ok {
			return nil
		}
	case Color:
		if _, ok := any(zero).(color.NRGBA); ok {
			return nil
		}
	default:
		return errors.Wrapf(ErrPropertyType, "unknown kind %s", kind)
	}
	return errors.Wrapf(ErrPropertyType, "%s cannot hold %T", kind, zero)
}
