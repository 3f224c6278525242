package core

import "slices"

// EnsureLen returns buf resliced to length n, allocating only when
// cap(buf) < n. Reused elements keep their previous contents.
func EnsureLen(buf []float64, n int) []float64 {
	n = max(n, 0)

	return slices.Grow(buf[:0], n)[:n]
}

// Zero sets every element of buf to 0.
func Zero(buf []float64) {
	clear(buf)
}
