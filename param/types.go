// Package param defines the capability contracts shared by leaf and composite
// parameters, and the tuple types produced by composites.
package param

import "math/rand"

// Canonical method names used to prefix constructor errors.
const (
	// MethodNewValues is the canonical name for the NewValues constructor.
	MethodNewValues = "NewValues"
	// MethodNewProduct is the canonical name for the NewProduct constructor.
	MethodNewProduct = "NewProduct"
	// MethodNewProduct3 is the canonical name for the NewProduct3 constructor.
	MethodNewProduct3 = "NewProduct3"
	// MethodNewProductN is the canonical name for the NewProductN constructor.
	MethodNewProductN = "NewProductN"
	// MethodNewMapped is the canonical name for the NewMapped constructor.
	MethodNewMapped = "NewMapped"
	// MethodNewSampler is the canonical name for the NewSampler constructor.
	MethodNewSampler = "NewSampler"
	// MethodAt is the canonical name for indexed access.
	MethodAt = "At"
	// MethodDrawN is the canonical name for Sampler.DrawN.
	MethodDrawN = "DrawN"
)

// Sequence is a single-cursor lazy producer that can be rewound.
//
// Next returns the next element and true, or the zero value and false once the
// sequence is exhausted. Pulling past the end is not an error: it keeps
// returning (zero, false) until Reset is called.
//
// Reset returns the sequence to the state it had immediately after creation,
// without reallocating it.
type Sequence[T any] interface {
	Next() (T, bool)
	Reset()
}

// Param is a finite, ordered, restartable domain of values.
//
// Implementations are immutable after construction: Iter never mutates the
// parameter, so any number of sequences may be created from the same Param
// and progressed independently (one goroutine per sequence).
//
// Invariant: Len() equals the number of values yielded by one full exhaustion
// of a fresh Iter().
type Param[T any] interface {
	// Iter returns a fresh sequence positioned before the first value.
	Iter() Sequence[T]
	// Len returns the cardinality of the domain.
	Len() int
	// Rand returns a uniformly random element of the domain. A nil rng
	// draws from the math/rand global source.
	Rand(rng *rand.Rand) T
}

// Indexed is implemented by parameters that support random access in
// enumeration order: At(k) equals the k-th value of a fresh Iter().
type Indexed[T any] interface {
	At(i int) (T, error)
}

// Cloner is implemented by parameters that can produce an independent copy
// with the same domain in the same order.
type Cloner[T any] interface {
	CloneParam() Param[T]
}

// Pair is the value produced by Product: First is the more-significant
// component, Second the less-significant one.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value produced by Product3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// intn draws from rng, or from the global source when rng is nil.
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}

	return rng.Intn(n)
}

// cloneOf returns an independent copy of p when it supports cloning.
// Parameters are immutable, so sharing a non-cloneable one is still safe.
func cloneOf[T any](p Param[T]) Param[T] {
	if c, ok := p.(Cloner[T]); ok {
		return c.CloneParam()
	}

	return p
}

// indexOf performs At on p, or reports ErrNotIndexed.
func indexOf[T any](p Param[T], i int) (T, error) {
	ix, ok := p.(Indexed[T])
	if !ok {
		var zero T
		return zero, ErrNotIndexed
	}

	return ix.At(i)
}
