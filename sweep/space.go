package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgrid/param"
)

// Dimension is one named axis of a sweep and its candidate values.
type Dimension struct {
	Name   string `yaml:"name" json:"name"`
	Values []any  `yaml:"values" json:"values"`
}

// Space is the Cartesian product of a list of dimensions. It enumerates
// points in odometer order: the last dimension varies fastest.
//
// A Space is immutable after construction and safe for concurrent use; each
// Cursor and Sampler carries its own state.
type Space struct {
	names  []string
	values [][]any
	grid   *param.ProductN[int] // index grid, one leaf of 0..n-1 per dimension
}

// NewSpace validates dims and builds the space.
// Numeric values are normalized per dimension: when every value is a whole
// number that fits in int they become int, otherwise float64.
//
// Errors: ErrNoDimensions, ErrDuplicateDimension, ErrBadDefinition (unnamed
// dimension, integer outside the int range), param.ErrEmptyDomain (dimension
// with no values), param.ErrCardinalityOverflow.
//
// Complexity: O(total values).
func NewSpace(dims ...Dimension) (*Space, error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}
	s := &Space{
		names:  make([]string, len(dims)),
		values: make([][]any, len(dims)),
	}
	seen := make(map[string]struct{}, len(dims))
	leaves := make([]param.Param[int], len(dims))
	for i, d := range dims {
		if d.Name == "" {
			return nil, fmt.Errorf("NewSpace: dimension %d has no name: %w", i, ErrBadDefinition)
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("NewSpace: %q: %w", d.Name, ErrDuplicateDimension)
		}
		seen[d.Name] = struct{}{}

		idx := make([]int, len(d.Values))
		for j := range idx {
			idx[j] = j
		}
		leaf, err := param.NewValues(idx...)
		if err != nil {
			return nil, fmt.Errorf("NewSpace: dimension %q: %w", d.Name, err)
		}
		vals, err := normalize(d.Values)
		if err != nil {
			return nil, fmt.Errorf("NewSpace: dimension %q: %w", d.Name, err)
		}
		s.names[i] = d.Name
		s.values[i] = vals
		leaves[i] = leaf
	}
	grid, err := param.NewProductN(leaves...)
	if err != nil {
		return nil, fmt.Errorf("NewSpace: %w", err)
	}
	s.grid = grid
	return s, nil
}

// Dims returns the number of dimensions.
func (s *Space) Dims() int { return len(s.names) }

// Names returns the dimension names in order.
func (s *Space) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Dimension returns the i-th dimension with its normalized values.
func (s *Space) Dimension(i int) Dimension {
	vals := make([]any, len(s.values[i]))
	copy(vals, s.values[i])
	return Dimension{Name: s.names[i], Values: vals}
}

// Len returns the number of points.
func (s *Space) Len() int { return s.grid.Len() }

// At returns the k-th point in enumeration order.
// Errors: param.ErrIndexOutOfRange.
func (s *Space) At(k int) (Point, error) {
	coords, err := s.grid.At(k)
	if err != nil {
		return Point{}, fmt.Errorf("Space.At: %w", err)
	}
	return s.point(k, coords), nil
}

// Cursor returns a fresh cursor positioned before the first point.
func (s *Space) Cursor() *Cursor {
	return &Cursor{space: s, seq: s.grid.Iter()}
}

// Sample returns a sampler drawing points uniformly at random.
func (s *Space) Sample(opts ...param.SamplerOption) *Sampler {
	smp, err := param.NewSampler[[]int](s.grid, opts...)
	if err != nil {
		// grid is never nil on a constructed Space
		panic(err)
	}
	return &Sampler{space: s, smp: smp}
}

// point assembles a Point from coordinates; k < 0 means "compute it".
func (s *Space) point(k int, coords []int) Point {
	if k < 0 {
		k = s.encode(coords)
	}
	vals := make([]any, len(coords))
	for i, c := range coords {
		vals[i] = s.values[i][c]
	}
	return Point{index: k, coords: coords, names: s.names, values: vals}
}

// encode maps coordinates to their mixed-radix position.
func (s *Space) encode(coords []int) int {
	k := 0
	for i, c := range coords {
		k = k*len(s.values[i]) + c
	}
	return k
}

// Cursor walks a Space point by point. Not safe for concurrent use.
type Cursor struct {
	space *Space
	seq   param.Sequence[[]int]
	next  int
}

// Next returns the next point, or false once the space is exhausted.
func (c *Cursor) Next() (Point, bool) {
	coords, ok := c.seq.Next()
	if !ok {
		return Point{}, false
	}
	p := c.space.point(c.next, coords)
	c.next++
	return p, true
}

// Reset rewinds the cursor to the first point.
func (c *Cursor) Reset() {
	c.seq.Reset()
	c.next = 0
}

// Sampler draws random points from a Space. Not safe for concurrent use.
type Sampler struct {
	space *Space
	smp   *param.Sampler[[]int]
}

// Draw returns one random point.
func (s *Sampler) Draw() Point {
	return s.space.point(-1, s.smp.Draw())
}

// DrawN returns n random points, possibly with repeats.
// Errors: param.ErrBadCount for n < 0.
func (s *Sampler) DrawN(n int) ([]Point, error) {
	raw, err := s.smp.DrawN(n)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(raw))
	for i, c := range raw {
		out[i] = s.space.point(-1, c)
	}
	return out, nil
}

// normalize folds every numeric kind to int or float64, one choice per
// dimension. Non-numeric values pass through unchanged. Integer kinds are
// converted directly, never through float64; an integer outside the int
// range is rejected rather than wrapped.
func normalize(in []any) ([]any, error) {
	integral := true
	for _, v := range in {
		if n, ok := toInt(v); ok {
			if n.overflow {
				return nil, fmt.Errorf("value %v does not fit in int: %w", v, ErrBadDefinition)
			}
			continue
		}
		if f, ok := toFloat(v); ok && !fitsInt(f) {
			integral = false
		}
	}

	out := make([]any, len(in))
	for i, v := range in {
		if n, ok := toInt(v); ok {
			if integral {
				out[i] = n.v
			} else {
				out[i] = float64(n.v)
			}
			continue
		}
		f, ok := toFloat(v)
		switch {
		case !ok:
			out[i] = v
		case integral:
			out[i] = int(f)
		default:
			out[i] = f
		}
	}
	return out, nil
}

// intValue is an integer kind widened to int; overflow marks a value outside
// the int range.
type intValue struct {
	v        int
	overflow bool
}

func toInt(v any) (intValue, bool) {
	switch n := v.(type) {
	case int:
		return intValue{v: n}, true
	case int8:
		return intValue{v: int(n)}, true
	case int16:
		return intValue{v: int(n)}, true
	case int32:
		return intValue{v: int(n)}, true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return intValue{overflow: true}, true
		}
		return intValue{v: int(n)}, true
	case uint8:
		return intValue{v: int(n)}, true
	case uint16:
		return intValue{v: int(n)}, true
	case uint32:
		if uint64(n) > math.MaxInt {
			return intValue{overflow: true}, true
		}
		return intValue{v: int(n)}, true
	case uint:
		if uint64(n) > math.MaxInt {
			return intValue{overflow: true}, true
		}
		return intValue{v: int(n)}, true
	case uint64:
		if n > math.MaxInt {
			return intValue{overflow: true}, true
		}
		return intValue{v: int(n)}, true
	}
	return intValue{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// fitsInt reports whether f is a whole number inside the int range.
// NaN and infinities never fit.
func fitsInt(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt && f < -math.MinInt
}
