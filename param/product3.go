package param

import (
	"fmt"
	"math/rand"
)

// Product3 is the three-way composite over A × B × C, enumerated with C
// fastest and A slowest. It runs the same odometer as Product; only the
// output tuple differs.
type Product3[A, B, C any] struct {
	a   Param[A]
	b   Param[B]
	c   Param[C]
	len int
}

// NewProduct3 composes a, b and c (most to least significant).
// Errors as NewProduct.
// Complexity: O(1).
func NewProduct3[A, B, C any](a Param[A], b Param[B], c Param[C]) (*Product3[A, B, C], error) {
	la, err := validateComponent(MethodNewProduct3, 0, a == nil, func() int { return a.Len() })
	if err != nil {
		return nil, err
	}
	lb, err := validateComponent(MethodNewProduct3, 1, b == nil, func() int { return b.Len() })
	if err != nil {
		return nil, err
	}
	lc, err := validateComponent(MethodNewProduct3, 2, c == nil, func() int { return c.Len() })
	if err != nil {
		return nil, err
	}
	n, err := mulLen(MethodNewProduct3, la, lb, lc)
	if err != nil {
		return nil, err
	}

	return &Product3[A, B, C]{a: a, b: b, c: c, len: n}, nil
}

// Len returns Len(a) * Len(b) * Len(c).
func (p *Product3[A, B, C]) Len() int { return p.len }

// Rand draws each component independently.
func (p *Product3[A, B, C]) Rand(rng *rand.Rand) Triple[A, B, C] {
	return Triple[A, B, C]{First: p.a.Rand(rng), Second: p.b.Rand(rng), Third: p.c.Rand(rng)}
}

// Iter returns a sequence positioned on the first triple.
func (p *Product3[A, B, C]) Iter() Sequence[Triple[A, B, C]] {
	s := &product3Seq[A, B, C]{
		a: newSlot(p.a, 0),
		b: newSlot(p.b, 1),
		c: newSlot(p.c, 2),
	}
	s.odo = newOdometer(s.a, s.b, s.c)

	return s
}

// At returns the k-th triple of the enumeration.
func (p *Product3[A, B, C]) At(k int) (Triple[A, B, C], error) {
	var out Triple[A, B, C]
	if k < 0 || k >= p.len {
		return out, paramErrorf(MethodAt, ErrIndexOutOfRange, "index %d, len %d", k, p.len)
	}
	lb, lc := p.b.Len(), p.c.Len()
	va, err := indexOf(p.a, k/(lb*lc))
	if err != nil {
		return out, fmt.Errorf("%s: component 0: %w", MethodAt, err)
	}
	vb, err := indexOf(p.b, (k/lc)%lb)
	if err != nil {
		return out, fmt.Errorf("%s: component 1: %w", MethodAt, err)
	}
	vc, err := indexOf(p.c, k%lc)
	if err != nil {
		return out, fmt.Errorf("%s: component 2: %w", MethodAt, err)
	}
	out.First, out.Second, out.Third = va, vb, vc

	return out, nil
}

// Clone returns an independent composite.
func (p *Product3[A, B, C]) Clone() *Product3[A, B, C] {
	return &Product3[A, B, C]{a: cloneOf(p.a), b: cloneOf(p.b), c: cloneOf(p.c), len: p.len}
}

// CloneParam implements Cloner.
func (p *Product3[A, B, C]) CloneParam() Param[Triple[A, B, C]] {
	return p.Clone()
}

type product3Seq[A, B, C any] struct {
	odo odometer
	a   *slot[A]
	b   *slot[B]
	c   *slot[C]
}

func (s *product3Seq[A, B, C]) Next() (Triple[A, B, C], bool) {
	if s.odo.finished {
		return Triple[A, B, C]{}, false
	}
	out := Triple[A, B, C]{First: s.a.cur, Second: s.b.cur, Third: s.c.cur}
	s.odo.step()

	return out, true
}

func (s *product3Seq[A, B, C]) Reset() {
	s.odo.reset()
}
