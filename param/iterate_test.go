package param_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvgrid/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll_EarlyBreak leaves the sequence after the last delivered value.
func TestAll_EarlyBreak(t *testing.T) {
	seq := param.MustValues(1, 2, 3, 4).Iter()
	var got []int
	for v := range param.All(seq) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{3, 4}, drain(seq), "All consumes from the current position")
}

// TestEnumerate_Indices pairs values with positions.
func TestEnumerate_Indices(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range param.Enumerate[string](param.MustValues("a", "b", "c")) {
		idx = append(idx, i)
		vals = append(vals, v)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"a", "b"}, vals)
}

// TestMapped_View checks order, length, At, Reset and Rand through a mapping.
func TestMapped_View(t *testing.T) {
	_, err := param.NewMapped[int, string](nil, strconv.Itoa)
	assert.ErrorIs(t, err, param.ErrNilParam)
	_, err = param.NewMapped[int, string](param.MustValues(1), nil)
	assert.ErrorIs(t, err, param.ErrNilFunc)

	m, err := param.NewMapped[int, string](param.MustValues(1, 2, 3), strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	seq := m.Iter()
	assert.Equal(t, []string{"1", "2", "3"}, drain(seq))
	seq.Reset()
	assert.Equal(t, []string{"1", "2", "3"}, drain(seq))

	v, err := m.At(2)
	require.NoError(t, err)
	assert.Equal(t, "3", v)
	assert.Contains(t, []string{"1", "2", "3"}, m.Rand(nil))

	// a mapped leaf composes like any other parameter
	p, err := param.NewProduct(m, param.MustValues(true))
	require.NoError(t, err)
	assert.Equal(t, []param.Pair[string, bool]{{"1", true}, {"2", true}, {"3", true}},
		param.Collect[param.Pair[string, bool]](p))
}
