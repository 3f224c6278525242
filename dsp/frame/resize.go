package frame

import "math"

// Resize resamples f to width×height with bilinear interpolation.
//
// Sample centres are aligned (half-pixel convention) and coordinates outside
// the source are clamped to the border. Resizing to the current size returns
// a copy.
func Resize(f Frame, width, height int) Frame {
	if f.Width == width && f.Height == height {
		return f.Clone()
	}

	out := New(width, height)
	if f.Empty() || out.Empty() {
		return out
	}

	xs := make([]axisTap, width)
	fillTaps(xs, f.Width)

	ys := make([]axisTap, height)
	fillTaps(ys, f.Height)

	for y, ty := range ys {
		r0 := f.Row(ty.i0)
		r1 := f.Row(ty.i1)
		dst := out.Row(y)

		for x, tx := range xs {
			top := r0[tx.i0] + tx.frac*(r0[tx.i1]-r0[tx.i0])
			bottom := r1[tx.i0] + tx.frac*(r1[tx.i1]-r1[tx.i0])
			dst[x] = top + ty.frac*(bottom-top)
		}
	}

	return out
}

type axisTap struct {
	i0, i1 int
	frac   float64
}

func fillTaps(taps []axisTap, srcLen int) {
	scale := float64(srcLen) / float64(len(taps))
	last := srcLen - 1

	for i := range taps {
		pos := (float64(i)+0.5)*scale - 0.5
		if pos < 0 {
			pos = 0
		}

		i0 := int(math.Floor(pos))
		if i0 >= last {
			taps[i] = axisTap{i0: last, i1: last}
			continue
		}

		taps[i] = axisTap{i0: i0, i1: i0 + 1, frac: pos - float64(i0)}
	}
}
