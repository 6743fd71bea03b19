package param_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/param"
	"github.com/stretchr/testify/require"
)

// fakeParam is a hand-rolled Param whose reported length and sequence
// behavior can disagree, to exercise contract-violation paths.
type fakeParam struct {
	n         int   // reported Len
	items     []int // what the sequence actually yields
	noRewind  bool  // Reset does nothing
	nilSeq    bool  // Iter returns nil
	rewindLog *int  // counts Reset calls when non-nil
}

func (f *fakeParam) Iter() param.Sequence[int] {
	if f.nilSeq {
		return nil
	}
	return &fakeSeq{p: f}
}

func (f *fakeParam) Len() int { return f.n }

func (f *fakeParam) Rand(rng *rand.Rand) int {
	if len(f.items) == 0 {
		return 0
	}
	return f.items[rng.Intn(len(f.items))]
}

type fakeSeq struct {
	p *fakeParam
	i int
}

func (s *fakeSeq) Next() (int, bool) {
	if s.i >= len(s.p.items) {
		return 0, false
	}
	v := s.p.items[s.i]
	s.i++
	return v, true
}

func (s *fakeSeq) Reset() {
	if s.p.rewindLog != nil {
		*s.p.rewindLog++
	}
	if !s.p.noRewind {
		s.i = 0
	}
}

// drain pulls from seq until exhaustion.
func drain[T any](seq param.Sequence[T]) []T {
	var out []T
	for {
		v, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// requireContractPanic runs fn and asserts it panics with a *ContractError
// at the given position and phase.
func requireContractPanic(t *testing.T, pos int, phase string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, param.ErrBrokenContract))
		var ce *param.ContractError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, pos, ce.Position)
		require.Equal(t, phase, ce.Phase)
	}()
	fn()
}
