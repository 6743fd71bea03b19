package param

import (
	"fmt"
	"math/rand"
)

// Values is the leaf parameter: a finite ordered list of values.
// It is immutable once built; NewValues copies its input.
type Values[T any] struct {
	items []T
}

// NewValues builds a leaf parameter over items, in the given order.
// An empty list is rejected with ErrEmptyDomain so that composites built on
// top of it never meet a sequence without a first value.
// Complexity: O(n) time and memory (defensive copy).
func NewValues[T any](items ...T) (*Values[T], error) {
	if len(items) == 0 {
		return nil, wrapf(MethodNewValues, ErrEmptyDomain)
	}
	cp := make([]T, len(items))
	copy(cp, items)

	return &Values[T]{items: cp}, nil
}

// MustValues is like NewValues but panics on an empty list.
// Intended for literals in tests and examples.
func MustValues[T any](items ...T) *Values[T] {
	v, err := NewValues(items...)
	if err != nil {
		panic(err)
	}

	return v
}

// Iter returns a sequence over the values in list order.
// Complexity: O(1); the sequence shares the immutable backing slice.
func (v *Values[T]) Iter() Sequence[T] {
	if v == nil {
		return &valuesSeq[T]{}
	}

	return &valuesSeq[T]{items: v.items}
}

// Len returns the number of values. A nil *Values behaves as an empty leaf
// in every method except Rand, so composites reject it with ErrEmptyDomain.
func (v *Values[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.items)
}

// Rand returns a uniformly random value. It needs at least one value and
// panics on a nil *Values, the one method without an empty-leaf answer.
func (v *Values[T]) Rand(rng *rand.Rand) T {
	return v.items[intn(rng, len(v.items))]
}

// At returns the i-th value.
func (v *Values[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, paramErrorf(MethodAt, ErrIndexOutOfRange, "index %d, len %d", i, v.Len())
	}

	return v.items[i], nil
}

// Values returns a copy of the domain.
func (v *Values[T]) Values() []T {
	if v == nil {
		return nil
	}
	cp := make([]T, len(v.items))
	copy(cp, v.items)

	return cp
}

// Clone returns an independent leaf with the same values in the same order.
func (v *Values[T]) Clone() *Values[T] {
	if v == nil {
		return nil
	}

	return &Values[T]{items: v.Values()}
}

// CloneParam implements Cloner.
func (v *Values[T]) CloneParam() Param[T] {
	return v.Clone()
}

// String implements fmt.Stringer.
func (v *Values[T]) String() string {
	if v == nil {
		return "Values[]"
	}

	return fmt.Sprintf("Values%v", v.items)
}

// valuesSeq is the cursor over a leaf's items.
type valuesSeq[T any] struct {
	items []T
	i     int
}

// Next yields items[i] and advances; past the end it keeps returning false.
func (s *valuesSeq[T]) Next() (T, bool) {
	if s.i >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.i]
	s.i++

	return v, true
}

// Reset rewinds the cursor to the first item.
func (s *valuesSeq[T]) Reset() {
	s.i = 0
}
