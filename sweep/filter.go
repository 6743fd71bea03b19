package sweep

import (
	"fmt"
	"iter"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// maxFilterNodes caps the AST size of a filter expression.
const maxFilterNodes = 256

// Filter is a compiled boolean expression over the dimension names of a Space,
// e.g. `lr < 0.1 && batch >= 32`. A Filter is safe for concurrent use.
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles src against the dimensions of s. Each name is typed
// by the first value of its dimension, so unknown names and type mismatches
// against that value fail here rather than during enumeration.
//
// A dimension mixing kinds, such as [1, "auto"], is typed by its first value
// only: `x > 0` compiles, and Match returns ErrFilter on the "auto" point.
// Filter such dimensions with operators valid for every kind they hold.
//
// Errors: ErrFilter.
func CompileFilter(src string, s *Space) (*Filter, error) {
	program, err := expr.Compile(src,
		expr.Env(s.typeEnv()),
		expr.AsBool(),
		expr.MaxNodes(maxFilterNodes),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrFilter, src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.src }

// Match reports whether p satisfies the filter. A nil Filter matches
// everything.
//
// Errors: ErrFilter when evaluation fails.
func (f *Filter) Match(p Point) (bool, error) {
	if f == nil {
		return true, nil
	}
	output, err := expr.Run(f.program, p.Map())
	if err != nil {
		return false, fmt.Errorf("%w: %q at point %d: %v", ErrFilter, f.src, p.Index(), err)
	}
	ok, isBool := output.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q returned %T", ErrFilter, f.src, output)
	}
	return ok, nil
}

// typeEnv maps every dimension name to its first value.
func (s *Space) typeEnv() map[string]interface{} {
	env := make(map[string]interface{}, len(s.names))
	for i, n := range s.names {
		env[n] = s.values[i][0]
	}
	return env
}

// Points yields the points of s in enumeration order that satisfy f
// (all points when f is nil). Iteration stops at the first evaluation
// error, which is yielded with a zero Point.
func (s *Space) Points(f *Filter) iter.Seq2[Point, error] {
	return func(yield func(Point, error) bool) {
		cur := s.Cursor()
		for {
			p, ok := cur.Next()
			if !ok {
				return
			}
			match, err := f.Match(p)
			if err != nil {
				yield(Point{}, err)
				return
			}
			if match && !yield(p, nil) {
				return
			}
		}
	}
}

// Count returns the number of points accepted by f.
// Complexity: O(Len) evaluations; O(1) when f is nil.
func (s *Space) Count(f *Filter) (int, error) {
	if f == nil {
		return s.Len(), nil
	}
	n := 0
	for _, err := range s.Points(f) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}
