// Package seq produces dense index sequences. Its only real consumer is
// the root package's dispatch-table generation.
package seq

import "golang.org/x/exp/constraints"

// Indexes returns the indexes 0..n-1. n <= 0 yields an empty slice.
func Indexes(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Make returns 0..n-1 as T.
func Make[T constraints.Integer](n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// Of copies an explicit list, so callers can't mutate it out from under
// a table built on it.
func Of[T constraints.Integer](vs ...T) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}
