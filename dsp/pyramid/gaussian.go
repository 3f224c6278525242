package pyramid

import (
	"fmt"

	"github.com/cwbudde/algo-evm/dsp/buffer"
	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-evm/dsp/frame"
)

// Pyramid is an ordered sequence of levels, index 0 coarsest.
type Pyramid []frame.Frame

// Levels returns the number of levels.
func (p Pyramid) Levels() int {
	return len(p)
}

// Finest returns the full-resolution level.
func (p Pyramid) Finest() frame.Frame {
	return p[len(p)-1]
}

// Clone returns a deep copy of p.
func (p Pyramid) Clone() Pyramid {
	out := make(Pyramid, len(p))
	for i := range p {
		out[i] = p[i].Clone()
	}

	return out
}

// Validate checks that p is non-empty and every level is a well-formed frame.
func (p Pyramid) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPyramid
	}

	for i, lvl := range p {
		if !lvl.Valid() {
			return fmt.Errorf("%w: level %d is %v with %d samples", frame.ErrInvalidSize, i, lvl, len(lvl.Pix))
		}
	}

	return nil
}

// Build decomposes f into a Gaussian pyramid with the given number of levels.
//
// The finest level is a bit-identical copy of f; each coarser level is [Down]
// applied to its finer neighbour.
func Build(f frame.Frame, levels int) (Pyramid, error) {
	if levels < 1 {
		return nil, core.NewConfigurationError("levels", float64(levels), "must be >= 1")
	}

	if !f.Valid() {
		return nil, fmt.Errorf("pyramid: %w: %v with %d samples", frame.ErrInvalidSize, f, len(f.Pix))
	}

	p := make(Pyramid, levels)
	p[levels-1] = f.Clone()

	for i := levels - 2; i >= 0; i-- {
		p[i] = Down(p[i+1])
	}

	return p, nil
}

// Down blurs f with the binomial kernel and decimates by two in each axis.
// The result is ceil(w/2)×ceil(h/2).
func Down(f frame.Frame) frame.Frame {
	w2 := core.CeilHalf(f.Width)
	h2 := core.CeilHalf(f.Height)
	out := frame.New(w2, h2)

	buf := buffer.Get(w2 * f.Height)
	defer buffer.Put(buf)

	tmp := buf.Data()

	for y := range f.Height {
		decimateRow(tmp[y*w2:(y+1)*w2], f.Row(y))
	}

	decimateColumns(out.Pix, tmp, w2, f.Height)

	return out
}
