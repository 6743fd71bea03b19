package param

import (
	"fmt"
	"math/rand"
)

// ProductN is the N-ary composite over components sharing one value type.
// Each output is a fresh []T of length N, component 0 most significant.
// Heterogeneous value types are composed with Product / Product3, or by
// nesting; ProductN covers the "any number of dimensions" case, such as a
// sweep over named dimensions of type any.
type ProductN[T any] struct {
	params []Param[T]
	lens   []int
	len    int
}

// NewProductN composes params in order (first = most significant).
// Returns ErrNoComponents for an empty list, plus the NewProduct errors.
// Complexity: O(N).
func NewProductN[T any](params ...Param[T]) (*ProductN[T], error) {
	if len(params) == 0 {
		return nil, wrapf(MethodNewProductN, ErrNoComponents)
	}
	lens := make([]int, len(params))
	for i, p := range params {
		l, err := validateComponent(MethodNewProductN, i, p == nil, func() int { return p.Len() })
		if err != nil {
			return nil, err
		}
		lens[i] = l
	}
	n, err := mulLen(MethodNewProductN, lens...)
	if err != nil {
		return nil, err
	}
	ps := make([]Param[T], len(params))
	copy(ps, params)

	return &ProductN[T]{params: ps, lens: lens, len: n}, nil
}

// Arity returns the number of components.
func (p *ProductN[T]) Arity() int { return len(p.params) }

// Component returns the i-th component.
func (p *ProductN[T]) Component(i int) Param[T] { return p.params[i] }

// Len returns the product of the component cardinalities.
func (p *ProductN[T]) Len() int { return p.len }

// Rand draws each component independently.
func (p *ProductN[T]) Rand(rng *rand.Rand) []T {
	out := make([]T, len(p.params))
	for i, c := range p.params {
		out[i] = c.Rand(rng)
	}

	return out
}

// Iter returns a sequence positioned on the first tuple.
func (p *ProductN[T]) Iter() Sequence[[]T] {
	s := &productNSeq[T]{slots: make([]*slot[T], len(p.params))}
	digits := make([]digit, len(p.params))
	for i, c := range p.params {
		s.slots[i] = newSlot(c, i)
		digits[i] = s.slots[i]
	}
	s.odo = newOdometer(digits...)

	return s
}

// At returns the k-th tuple, decoding k as a mixed-radix number whose last
// digit has radix Len(component N-1).
func (p *ProductN[T]) At(k int) ([]T, error) {
	if k < 0 || k >= p.len {
		return nil, paramErrorf(MethodAt, ErrIndexOutOfRange, "index %d, len %d", k, p.len)
	}
	out := make([]T, len(p.params))
	for i := len(p.params) - 1; i >= 0; i-- {
		v, err := indexOf(p.params[i], k%p.lens[i])
		if err != nil {
			return nil, fmt.Errorf("%s: component %d: %w", MethodAt, i, err)
		}
		out[i] = v
		k /= p.lens[i]
	}

	return out, nil
}

// Clone returns an independent composite.
func (p *ProductN[T]) Clone() *ProductN[T] {
	ps := make([]Param[T], len(p.params))
	for i, c := range p.params {
		ps[i] = cloneOf(c)
	}
	lens := make([]int, len(p.lens))
	copy(lens, p.lens)

	return &ProductN[T]{params: ps, lens: lens, len: p.len}
}

// CloneParam implements Cloner.
func (p *ProductN[T]) CloneParam() Param[[]T] {
	return p.Clone()
}

type productNSeq[T any] struct {
	odo   odometer
	slots []*slot[T]
}

func (s *productNSeq[T]) Next() ([]T, bool) {
	if s.odo.finished {
		return nil, false
	}
	out := make([]T, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.cur
	}
	s.odo.step()

	return out, true
}

func (s *productNSeq[T]) Reset() {
	s.odo.reset()
}
