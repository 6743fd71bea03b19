package param

import "iter"

// All adapts a Sequence to a range-over-func iterator. It consumes from the
// sequence's current position; breaking out of the loop leaves the sequence
// positioned after the last value delivered.
//
//	for v := range param.All(p.Iter()) { ... }
func All[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := seq.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Enumerate iterates a fresh sequence of p, pairing each value with its
// 0-based position in enumeration order.
func Enumerate[T any](p Param[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range All(p.Iter()) {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Collect exhausts a fresh sequence of p into a slice of length p.Len().
// Complexity: O(Len(p)) time and memory.
func Collect[T any](p Param[T]) []T {
	out := make([]T, 0, p.Len())
	for v := range All(p.Iter()) {
		out = append(out, v)
	}

	return out
}
