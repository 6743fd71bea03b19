package param

import "math/rand"

// Sampler draws uniformly random values from a parameter without enumerating
// it. A Sampler owns its RNG and is not safe for concurrent use; give each
// goroutine its own.
type Sampler[T any] struct {
	p   Param[T]
	rng *rand.Rand
}

// NewSampler builds a sampler over p.
// Returns ErrNilParam when p is nil.
func NewSampler[T any](p Param[T], opts ...SamplerOption) (*Sampler[T], error) {
	if p == nil {
		return nil, wrapf(MethodNewSampler, ErrNilParam)
	}
	cfg := newSamplerConfig(opts...)

	return &Sampler[T]{p: p, rng: cfg.rng}, nil
}

// Draw returns one random value. Complexity: O(1) per leaf in the tree.
func (s *Sampler[T]) Draw() T {
	return s.p.Rand(s.rng)
}

// DrawN returns n independent draws (with replacement).
// Returns ErrBadCount when n < 0.
func (s *Sampler[T]) DrawN(n int) ([]T, error) {
	if n < 0 {
		return nil, paramErrorf(MethodDrawN, ErrBadCount, "got %d", n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = s.Draw()
	}

	return out, nil
}
