package sweep_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvgrid/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lrSweepYAML = `
name: lr-sweep
seed: 42
filter: "lr < 0.1 || batch == 64"
dimensions:
  - name: lr
    values: [0.001, 0.01, 0.1]
  - name: batch
    values: [32, 64]
`

const lrSweepHCL = `
name   = "lr-sweep"
seed   = 42
filter = "lr < 0.1 || batch == 64"

dimension "lr" {
  values = [0.001, 0.01, 0.1]
}

dimension "batch" {
  values = [32, 64]
}
`

// assertLRSweep checks a decoded lr-sweep definition end to end.
func assertLRSweep(t *testing.T, def *sweep.Definition) {
	t.Helper()
	assert.Equal(t, "lr-sweep", def.Name)
	require.NotNil(t, def.Seed)
	assert.Equal(t, int64(42), *def.Seed)
	require.Len(t, def.Dimensions, 2)
	assert.Equal(t, "lr", def.Dimensions[0].Name)
	assert.Equal(t, "batch", def.Dimensions[1].Name)

	space, filter, err := def.Build()
	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.Equal(t, 6, space.Len())
	assert.Equal(t, []any{0.001, 0.01, 0.1}, space.Dimension(0).Values)
	assert.Equal(t, []any{32, 64}, space.Dimension(1).Values)

	n, err := space.Count(filter)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestDecodeYAML(t *testing.T) {
	def, err := sweep.DecodeYAML(strings.NewReader(lrSweepYAML))
	require.NoError(t, err)
	assertLRSweep(t, def)
}

func TestDecodeHCL(t *testing.T) {
	def, err := sweep.DecodeHCL([]byte(lrSweepHCL), "lr.hcl")
	require.NoError(t, err)
	assertLRSweep(t, def)
}

func TestDecodeYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"NoDimensions", "name: x\n", sweep.ErrNoDimensions},
		{"UnknownField", "bogus: 1\ndimensions:\n  - name: a\n    values: [1]\n", sweep.ErrBadDefinition},
		{"Unnamed", "dimensions:\n  - values: [1]\n", sweep.ErrBadDefinition},
		{"EmptyValues", "dimensions:\n  - name: a\n    values: []\n", sweep.ErrBadDefinition},
		{"Duplicate", "dimensions:\n  - name: a\n    values: [1]\n  - name: a\n    values: [2]\n", sweep.ErrDuplicateDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sweep.DecodeYAML(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeHCL_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"Syntax", `dimension "a" {`, sweep.ErrBadDefinition},
		{"NoDimensions", `name = "x"`, sweep.ErrNoDimensions},
		{"NotAList", `dimension "a" { values = 3 }`, sweep.ErrBadDefinition},
		{"FractionalSeed", "seed = 1.5\ndimension \"a\" { values = [1] }", sweep.ErrBadDefinition},
		{"Duplicate", "dimension \"a\" { values = [1] }\ndimension \"a\" { values = [2] }", sweep.ErrDuplicateDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sweep.DecodeHCL([]byte(tc.src), "bad.hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeHCL_MixedValues(t *testing.T) {
	src := `dimension "opt" { values = ["sgd", 1, true, 2.5] }`
	def, err := sweep.DecodeHCL([]byte(src), "mixed.hcl")
	require.NoError(t, err)
	assert.Nil(t, def.Seed)
	assert.Equal(t, []any{"sgd", 1, true, 2.5}, def.Dimensions[0].Values)
}

func TestDecodeYAML_IntegerRange(t *testing.T) {
	src := "dimensions:\n  - name: seed\n    values: [9007199254740993, 18446744073709551615]\n"
	def, err := sweep.DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)
	_, _, err = def.Build()
	assert.ErrorIs(t, err, sweep.ErrBadDefinition)

	src = "dimensions:\n  - name: seed\n    values: [9007199254740993, 1]\n"
	def, err = sweep.DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)
	space, _, err := def.Build()
	require.NoError(t, err)
	p, err := space.At(0)
	require.NoError(t, err)
	v, _ := p.Get("seed")
	assert.Equal(t, 9007199254740993, v)
}

func TestDefinition_BuildBadFilter(t *testing.T) {
	def := &sweep.Definition{
		Filter:     "missing > 1",
		Dimensions: []sweep.Dimension{{Name: "a", Values: []any{1, 2}}},
	}
	_, _, err := def.Build()
	assert.ErrorIs(t, err, sweep.ErrFilter)
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	def, err := sweep.DecodeYAML(strings.NewReader(lrSweepYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sweep.EncodeYAML(&buf, def))

	again, err := sweep.DecodeYAML(&buf)
	require.NoError(t, err)
	assertLRSweep(t, again)
}
