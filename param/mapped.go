package param

import (
	"fmt"
	"math/rand"
)

// Mapped is a view of a parameter through a value transformation. It has the
// same cardinality and order as its source; fn is applied on every pull, so it
// must be pure.
type Mapped[T, U any] struct {
	src Param[T]
	fn  func(T) U
}

// NewMapped builds the view fn(src).
// Returns ErrNilParam for a nil source and ErrNilFunc for a nil fn.
func NewMapped[T, U any](src Param[T], fn func(T) U) (*Mapped[T, U], error) {
	if src == nil {
		return nil, wrapf(MethodNewMapped, ErrNilParam)
	}
	if fn == nil {
		return nil, wrapf(MethodNewMapped, ErrNilFunc)
	}

	return &Mapped[T, U]{src: src, fn: fn}, nil
}

// Iter returns a sequence of fn applied to src's values.
func (m *Mapped[T, U]) Iter() Sequence[U] {
	return &mappedSeq[T, U]{src: m.src.Iter(), fn: m.fn}
}

// Len returns the source cardinality.
func (m *Mapped[T, U]) Len() int { return m.src.Len() }

// Rand maps a random source value.
func (m *Mapped[T, U]) Rand(rng *rand.Rand) U {
	return m.fn(m.src.Rand(rng))
}

// At maps the source's i-th value. The source must implement Indexed.
func (m *Mapped[T, U]) At(i int) (U, error) {
	v, err := indexOf(m.src, i)
	if err != nil {
		var zero U
		return zero, fmt.Errorf("%s: %w", MethodAt, err)
	}

	return m.fn(v), nil
}

type mappedSeq[T, U any] struct {
	src Sequence[T]
	fn  func(T) U
}

func (s *mappedSeq[T, U]) Next() (U, bool) {
	v, ok := s.src.Next()
	if !ok {
		var zero U
		return zero, false
	}

	return s.fn(v), true
}

func (s *mappedSeq[T, U]) Reset() {
	s.src.Reset()
}
