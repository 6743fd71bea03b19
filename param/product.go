package param

import (
	"fmt"
	"math/rand"
)

// Product is the pairwise composite: the parameter over A × B.
//
// Enumeration order is lexicographic on (A order, B order): B cycles fully for
// every value of A, like a two-digit odometer whose right digit is B.
// Either component may itself be a composite.
type Product[A, B any] struct {
	a   Param[A]
	b   Param[B]
	len int
}

// NewProduct composes a (more significant) and b (less significant).
// Returns ErrNilParam for a nil component, ErrEmptyDomain for a component with
// Len() < 1, ErrCardinalityOverflow when Len(a)*Len(b) overflows int.
// Complexity: O(1).
func NewProduct[A, B any](a Param[A], b Param[B]) (*Product[A, B], error) {
	la, err := validateComponent(MethodNewProduct, 0, a == nil, func() int { return a.Len() })
	if err != nil {
		return nil, err
	}
	lb, err := validateComponent(MethodNewProduct, 1, b == nil, func() int { return b.Len() })
	if err != nil {
		return nil, err
	}
	n, err := mulLen(MethodNewProduct, la, lb)
	if err != nil {
		return nil, err
	}

	return &Product[A, B]{a: a, b: b, len: n}, nil
}

// First returns the more-significant component.
func (p *Product[A, B]) First() Param[A] { return p.a }

// Second returns the less-significant component.
func (p *Product[A, B]) Second() Param[B] { return p.b }

// Len returns Len(a) * Len(b).
func (p *Product[A, B]) Len() int { return p.len }

// Rand draws each component independently.
func (p *Product[A, B]) Rand(rng *rand.Rand) Pair[A, B] {
	return Pair[A, B]{First: p.a.Rand(rng), Second: p.b.Rand(rng)}
}

// Iter returns a sequence positioned on the first pair.
// Panics with *ContractError if a component yields no first value.
func (p *Product[A, B]) Iter() Sequence[Pair[A, B]] {
	s := &productSeq[A, B]{
		a: newSlot(p.a, 0),
		b: newSlot(p.b, 1),
	}
	s.odo = newOdometer(s.a, s.b)

	return s
}

// At returns the k-th pair of the enumeration: (A[k / Len(b)], B[k % Len(b)]).
// Both components must implement Indexed.
func (p *Product[A, B]) At(k int) (Pair[A, B], error) {
	var out Pair[A, B]
	if k < 0 || k >= p.len {
		return out, paramErrorf(MethodAt, ErrIndexOutOfRange, "index %d, len %d", k, p.len)
	}
	lb := p.b.Len()
	va, err := indexOf(p.a, k/lb)
	if err != nil {
		return out, fmt.Errorf("%s: component 0: %w", MethodAt, err)
	}
	vb, err := indexOf(p.b, k%lb)
	if err != nil {
		return out, fmt.Errorf("%s: component 1: %w", MethodAt, err)
	}
	out.First, out.Second = va, vb

	return out, nil
}

// Clone returns an independent composite, cloning components that support it.
func (p *Product[A, B]) Clone() *Product[A, B] {
	return &Product[A, B]{a: cloneOf(p.a), b: cloneOf(p.b), len: p.len}
}

// CloneParam implements Cloner.
func (p *Product[A, B]) CloneParam() Param[Pair[A, B]] {
	return p.Clone()
}

// productSeq is the live state of one pairwise enumeration.
type productSeq[A, B any] struct {
	odo odometer
	a   *slot[A]
	b   *slot[B]
}

// Next emits the cached pair, then advances b, carrying into a.
func (s *productSeq[A, B]) Next() (Pair[A, B], bool) {
	if s.odo.finished {
		return Pair[A, B]{}, false
	}
	out := Pair[A, B]{First: s.a.cur, Second: s.b.cur}
	s.odo.step()

	return out, true
}

// Reset rewinds both component sequences and re-primes them.
func (s *productSeq[A, B]) Reset() {
	s.odo.reset()
}
