package sweep_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgrid/param"
	"github.com/katalvlaran/lvgrid/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lrBatch returns the 3×2 space used across the sweep tests.
func lrBatch(t *testing.T) *sweep.Space {
	t.Helper()
	s, err := sweep.NewSpace(
		sweep.Dimension{Name: "lr", Values: []any{0.001, 0.01, 0.1}},
		sweep.Dimension{Name: "batch", Values: []any{32, 64}},
	)
	require.NoError(t, err)
	return s
}

func TestNewSpace_Errors(t *testing.T) {
	_, err := sweep.NewSpace()
	assert.ErrorIs(t, err, sweep.ErrNoDimensions)

	_, err = sweep.NewSpace(sweep.Dimension{Values: []any{1}})
	assert.ErrorIs(t, err, sweep.ErrBadDefinition)

	_, err = sweep.NewSpace(
		sweep.Dimension{Name: "a", Values: []any{1}},
		sweep.Dimension{Name: "a", Values: []any{2}},
	)
	assert.ErrorIs(t, err, sweep.ErrDuplicateDimension)

	_, err = sweep.NewSpace(sweep.Dimension{Name: "a"})
	assert.ErrorIs(t, err, param.ErrEmptyDomain)
}

func TestSpace_EnumerationOrder(t *testing.T) {
	s := lrBatch(t)
	require.Equal(t, 6, s.Len())
	assert.Equal(t, 2, s.Dims())
	assert.Equal(t, []string{"lr", "batch"}, s.Names())

	want := [][]any{
		{0.001, 32}, {0.001, 64},
		{0.01, 32}, {0.01, 64},
		{0.1, 32}, {0.1, 64},
	}
	cur := s.Cursor()
	for i, w := range want {
		p, ok := cur.Next()
		require.True(t, ok, "point %d", i)
		assert.Equal(t, i, p.Index())
		assert.Equal(t, w, p.Values())
	}
	_, ok := cur.Next()
	assert.False(t, ok)
	_, ok = cur.Next()
	assert.False(t, ok, "exhausted cursor stays exhausted")

	cur.Reset()
	p, ok := cur.Next()
	require.True(t, ok)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, []any{0.001, 32}, p.Values())
}

func TestSpace_AtMatchesCursor(t *testing.T) {
	s := lrBatch(t)
	cur := s.Cursor()
	for k := 0; k < s.Len(); k++ {
		p, ok := cur.Next()
		require.True(t, ok)
		q, err := s.At(k)
		require.NoError(t, err)
		assert.Equal(t, p.Values(), q.Values())
		assert.Equal(t, p.Coords(), q.Coords())
		assert.Equal(t, k, q.Index())
	}

	_, err := s.At(s.Len())
	assert.ErrorIs(t, err, param.ErrIndexOutOfRange)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, param.ErrIndexOutOfRange)
}

func TestPoint_Accessors(t *testing.T) {
	s := lrBatch(t)
	p, err := s.At(3)
	require.NoError(t, err)

	v, ok := p.Get("lr")
	assert.True(t, ok)
	assert.Equal(t, 0.01, v)
	_, ok = p.Get("momentum")
	assert.False(t, ok)

	assert.Equal(t, map[string]any{"lr": 0.01, "batch": 64}, p.Map())
	assert.Equal(t, []int{1, 1}, p.Coords())
	assert.Equal(t, "lr=0.01 batch=64", p.String())
	assert.Equal(t, 2, p.Len())

	vals := p.Values()
	vals[0] = "mutated"
	assert.Equal(t, 0.01, p.Values()[0], "Values returns a copy")
}

func TestNewSpace_NormalizesNumbers(t *testing.T) {
	s, err := sweep.NewSpace(
		sweep.Dimension{Name: "ints", Values: []any{uint64(1), int64(-2), 3.0}},
		sweep.Dimension{Name: "mixed", Values: []any{uint64(1), 2.5}},
		sweep.Dimension{Name: "opt", Values: []any{"adam", true}},
	)
	require.NoError(t, err)

	assert.Equal(t, []any{1, -2, 3}, s.Dimension(0).Values)
	assert.Equal(t, []any{1.0, 2.5}, s.Dimension(1).Values)
	assert.Equal(t, []any{"adam", true}, s.Dimension(2).Values)
}

func TestNewSpace_LargeIntegers(t *testing.T) {
	// above 2^53: a float64 round trip would yield 9007199254740992
	s, err := sweep.NewSpace(sweep.Dimension{Name: "id", Values: []any{int64(9007199254740993), uint64(1)}})
	require.NoError(t, err)
	p, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, []any{9007199254740993}, p.Values()[:1])
	assert.Equal(t, []any{9007199254740993, 1}, s.Dimension(0).Values)

	_, err = sweep.NewSpace(sweep.Dimension{Name: "id", Values: []any{uint64(math.MaxUint64), uint64(1)}})
	assert.ErrorIs(t, err, sweep.ErrBadDefinition)

	// whole floats beyond the int range keep the dimension in float64
	s, err = sweep.NewSpace(sweep.Dimension{Name: "big", Values: []any{1e20, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, []any{1e20, 2.0}, s.Dimension(0).Values)

	s, err = sweep.NewSpace(sweep.Dimension{Name: "x", Values: []any{math.Inf(1), 1}})
	require.NoError(t, err)
	assert.Equal(t, []any{math.Inf(1), 1.0}, s.Dimension(0).Values)
}

func TestSpace_Sample(t *testing.T) {
	s := lrBatch(t)

	a, err := s.Sample(param.WithSeed(7)).DrawN(50)
	require.NoError(t, err)
	b, err := s.Sample(param.WithSeed(7)).DrawN(50)
	require.NoError(t, err)
	require.Len(t, a, 50)

	for i := range a {
		assert.Equal(t, a[i].Values(), b[i].Values(), "same seed, same draws")

		at, err := s.At(a[i].Index())
		require.NoError(t, err)
		assert.Equal(t, at.Values(), a[i].Values(), "sampled index agrees with At")
	}

	_, err = s.Sample().DrawN(-1)
	assert.ErrorIs(t, err, param.ErrBadCount)
}
