package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampBlock clamps every element of buf to [min, max] in place.
// NaN elements are mapped to min.
func ClampBlock(buf []float64, min, max float64) {
	if min > max {
		min, max = max, min
	}

	for i, v := range buf {
		switch {
		case math.IsNaN(v) || v < min:
			buf[i] = min
		case v > max:
			buf[i] = max
		}
	}
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// CeilHalf returns ceil(n/2) for non-negative n, the size of one decimated
// axis.
func CeilHalf(n int) int {
	return (n + 1) / 2
}

// Reflect101 maps an out-of-range index into [0, n) by mirroring about the
// edge samples without repeating them (… 2 1 | 0 1 2 … n-2 n-1 | n-2 …).
func Reflect101(i, n int) int {
	if n <= 1 {
		return 0
	}

	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}

		if i >= n {
			i = 2*(n-1) - i
		}
	}

	return i
}
