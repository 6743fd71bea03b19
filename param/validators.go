package param

import "math"

// validateComponent rejects a nil component and returns its cardinality.
//
// Parameters:
//   - method: canonical constructor name, e.g. MethodNewProduct.
//   - pos:    component position (0 = most significant).
//   - isNil:  whether the component interface is nil.
//   - n:      reported Len() (ignored when isNil).
//
// Complexity: O(1).
func validateComponent(method string, pos int, isNil bool, n func() int) (int, error) {
	if isNil {
		return 0, paramErrorf(method, ErrNilParam, "component %d", pos)
	}
	l := n()
	if l < 1 {
		return 0, paramErrorf(method, ErrEmptyDomain, "component %d has length %d", pos, l)
	}

	return l, nil
}

// mulLen multiplies cardinalities, reporting ErrCardinalityOverflow when the
// product does not fit into an int. All inputs are ≥ 1.
// Complexity: O(len(lens)).
func mulLen(method string, lens ...int) (int, error) {
	total := 1
	for _, n := range lens {
		if total > math.MaxInt/n {
			return 0, wrapf(method, ErrCardinalityOverflow)
		}
		total *= n
	}

	return total, nil
}
