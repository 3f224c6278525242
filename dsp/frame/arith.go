package frame

import (
	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Scale returns a new frame with every sample of f multiplied by s.
func Scale(f Frame, s float64) Frame {
	out := New(f.Width, f.Height)
	vecmath.ScaleBlock(out.Pix, f.Pix, s)

	return out
}

// ScaleInPlace multiplies every sample of f by s.
func (f Frame) ScaleInPlace(s float64) {
	vecmath.ScaleBlockInPlace(f.Pix, s)
}

// AddInPlace adds g to f sample by sample.
func (f Frame) AddInPlace(g Frame) {
	mustMatch(f, g)
	vecmath.AddBlockInPlace(f.Pix, g.Pix)
}

// AddScaled returns base + s*delta.
func AddScaled(base, delta Frame, s float64) Frame {
	mustMatch(base, delta)

	out := New(base.Width, base.Height)
	vecmath.ScaleBlock(out.Pix, delta.Pix, s)
	vecmath.AddBlockInPlace(out.Pix, base.Pix)

	return out
}

// ClampInPlace limits every sample of f to [lo, hi].
func (f Frame) ClampInPlace(lo, hi float64) {
	core.ClampBlock(f.Pix, lo, hi)
}

// MaxAbs returns the largest absolute sample value of f.
func (f Frame) MaxAbs() float64 {
	if len(f.Pix) == 0 {
		return 0
	}

	return vecmath.MaxAbs(f.Pix)
}

// Mean returns the arithmetic mean of all samples, or 0 for an empty frame.
func (f Frame) Mean() float64 {
	if len(f.Pix) == 0 {
		return 0
	}

	return vecmath.Sum(f.Pix) / float64(len(f.Pix))
}
