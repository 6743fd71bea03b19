// SPDX-License-Identifier: MIT
// Package: lvgrid/param
//
// options.go — functional options for Sampler.
//
// Contract:
//   • Options are functional (type SamplerOption func(*samplerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the sampling code itself never panics on caller input.
//   • Determinism is explicit: WithSeed or WithRand. Without either the
//     sampler draws from the math/rand global source.

package param

import "math/rand"

// SamplerOption customizes a Sampler before its first draw.
// Complexity: applying N options costs O(N) time, O(1) space.
type SamplerOption func(*samplerConfig)

// samplerConfig holds the resolved sampler knobs.
type samplerConfig struct {
	// rng for draws; nil means the math/rand global source.
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) SamplerOption {
	if r == nil {
		panic("param: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) SamplerOption {
	return func(c *samplerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newSamplerConfig applies options in order; last wins.
func newSamplerConfig(opts ...SamplerOption) samplerConfig {
	var cfg samplerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
