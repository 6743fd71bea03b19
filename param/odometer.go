// SPDX-License-Identifier: MIT
// Package: lvgrid/param
//
// odometer.go — the carry engine shared by every composite arity.
//
// Model:
//   • A composite sequence is a row of digits, digit 0 most significant.
//   • Each digit owns one live component Sequence plus the value most
//     recently pulled from it (the cache re-emitted by every output until the
//     digit moves).
//   • step() advances the last digit; on exhaustion the digit is rewound,
//     re-primed, and the carry moves one position left. Exhaustion of digit 0
//     finishes the odometer for good.
//
// Contract:
//   • Priming a digit (fresh or rewound) MUST yield a value. Failure means the
//     component lied about its cardinality or its Reset; this panics with a
//     *ContractError instead of producing a truncated or wrapped sequence.
//   • reset() rewinds every digit in place: no component sequence is rebuilt.

package param

// digit is one position of the odometer, independent of its value type.
type digit interface {
	// advance pulls the next value into the cache; false when exhausted.
	advance() bool
	// prime pulls the guaranteed first value into the cache.
	prime(pos int, phase string)
	// rewind resets the component sequence and primes it again.
	rewind(pos int, phase string)
}

// slot binds a component sequence to its cached current value.
type slot[T any] struct {
	seq Sequence[T]
	cur T
}

// newSlot wraps the sequence produced by p.Iter() at position pos.
func newSlot[T any](p Param[T], pos int) *slot[T] {
	seq := p.Iter()
	if seq == nil {
		panic(&ContractError{Position: pos, Phase: PhaseIter})
	}

	return &slot[T]{seq: seq}
}

func (s *slot[T]) advance() bool {
	v, ok := s.seq.Next()
	if !ok {
		return false
	}
	s.cur = v

	return true
}

func (s *slot[T]) prime(pos int, phase string) {
	if !s.advance() {
		panic(&ContractError{Position: pos, Phase: phase})
	}
}

func (s *slot[T]) rewind(pos int, phase string) {
	s.seq.Reset()
	s.prime(pos, phase)
}

// odometer runs carry propagation over its digits.
type odometer struct {
	digits   []digit
	finished bool
}

// newOdometer primes every digit once, leaving the odometer on the first
// combination.
// Complexity: O(N) pulls for N digits.
func newOdometer(digits ...digit) odometer {
	for i, d := range digits {
		d.prime(i, PhaseFirst)
	}

	return odometer{digits: digits}
}

// step moves to the next combination.
// Amortized O(1) pulls per step; worst case O(N) on a full carry.
func (o *odometer) step() {
	for i := len(o.digits) - 1; i >= 0; i-- {
		if o.digits[i].advance() {
			return
		}
		if i == 0 {
			// no carry target left
			o.finished = true
			return
		}
		o.digits[i].rewind(i, PhaseCarry)
	}
}

// reset returns to the first combination and clears the finished flag.
func (o *odometer) reset() {
	for i, d := range o.digits {
		d.rewind(i, PhaseReset)
	}
	o.finished = false
}
