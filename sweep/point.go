package sweep

import (
	"fmt"
	"strings"
)

// Point is one combination of a Space: a value per dimension, in dimension
// order, plus its position in enumeration order.
type Point struct {
	index  int
	coords []int
	names  []string // shared with the Space, read-only
	values []any
}

// Index returns the 0-based position of the point in enumeration order.
func (p Point) Index() int { return p.index }

// Len returns the number of dimensions.
func (p Point) Len() int { return len(p.values) }

// Names returns the dimension names in order.
func (p Point) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Values returns the values in dimension order.
func (p Point) Values() []any {
	out := make([]any, len(p.values))
	copy(out, p.values)
	return out
}

// Coords returns, per dimension, the index of the chosen value.
func (p Point) Coords() []int {
	out := make([]int, len(p.coords))
	copy(out, p.coords)
	return out
}

// Get returns the value of the named dimension.
func (p Point) Get(name string) (any, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return nil, false
}

// Map returns the point as name -> value.
func (p Point) Map() map[string]any {
	m := make(map[string]any, len(p.names))
	for i, n := range p.names {
		m[n] = p.values[i]
	}
	return m
}

// String renders "name=value" pairs in dimension order.
func (p Point) String() string {
	var b strings.Builder
	for i, n := range p.names {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", n, p.values[i])
	}
	return b.String()
}
