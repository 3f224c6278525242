package pyramid

import "github.com/cwbudde/algo-evm/dsp/core"

// binomial5 is the separable blur used for decimation.
var binomial5 = [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// binomial5Up compensates for the zeros inserted by upsampling.
var binomial5Up = [5]float64{1.0 / 8, 4.0 / 8, 6.0 / 8, 4.0 / 8, 1.0 / 8}

// decimateRow writes dst[x] = Σ k[i]·src[2x+i-2], len(dst) = ceil(len(src)/2).
func decimateRow(dst, src []float64) {
	n := len(src)
	for x := range dst {
		c := 2 * x

		var acc float64
		for i, k := range binomial5 {
			acc += k * src[core.Reflect101(c+i-2, n)]
		}

		dst[x] = acc
	}
}

// decimateColumns is the vertical counterpart of decimateRow over a
// width-strided buffer of srcRows rows.
func decimateColumns(dst, src []float64, width, srcRows int) {
	dstRows := len(dst) / width
	for y := range dstRows {
		c := 2 * y
		out := dst[y*width : (y+1)*width]
		clear(out)

		for i, k := range binomial5 {
			row := core.Reflect101(c+i-2, srcRows)
			in := src[row*width : (row+1)*width]

			for x, v := range in {
				out[x] += k * v
			}
		}
	}
}

// interpolateRow writes the blurred zero-inserted expansion of src into dst,
// len(dst) = 2*len(src). Odd positions of the virtual expanded signal are
// zero, so only taps landing on even positions contribute.
func interpolateRow(dst, src []float64) {
	n := len(dst)
	for x := range dst {
		var acc float64
		for i, k := range binomial5Up {
			j := core.Reflect101(x+i-2, n)
			if j&1 == 0 {
				acc += k * src[j>>1]
			}
		}

		dst[x] = acc
	}
}

// interpolateColumns is the vertical counterpart of interpolateRow.
func interpolateColumns(dst, src []float64, width int) {
	dstRows := len(dst) / width
	for y := range dstRows {
		out := dst[y*width : (y+1)*width]
		clear(out)

		for i, k := range binomial5Up {
			j := core.Reflect101(y+i-2, dstRows)
			if j&1 != 0 {
				continue
			}

			row := j >> 1
			in := src[row*width : (row+1)*width]

			for x, v := range in {
				out[x] += k * v
			}
		}
	}
}
