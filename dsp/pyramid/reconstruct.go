package pyramid

import (
	"errors"

	"github.com/cwbudde/algo-evm/dsp/buffer"
	"github.com/cwbudde/algo-evm/dsp/frame"
)

// ErrEmptyPyramid is returned when an operation needs at least one level.
var ErrEmptyPyramid = errors.New("pyramid: no levels")

// Up doubles each dimension of f by zero insertion followed by the
// complementary binomial blur. Constant frames stay constant.
func Up(f frame.Frame) frame.Frame {
	w2 := 2 * f.Width
	out := frame.New(w2, 2*f.Height)

	buf := buffer.Get(w2 * f.Height)
	defer buffer.Put(buf)

	tmp := buf.Data()

	for y := range f.Height {
		interpolateRow(tmp[y*w2:(y+1)*w2], f.Row(y))
	}

	interpolateColumns(out.Pix, tmp, w2)

	return out
}

// Collapse re-expands p to full resolution.
//
// Starting from the coarsest level, the accumulator is upsampled, resampled
// bilinearly to the next level's exact size, and the level is added. The sum
// is divided by the number of levels.
func Collapse(p Pyramid) (frame.Frame, error) {
	if err := p.Validate(); err != nil {
		return frame.Frame{}, err
	}

	accum := p[0].Clone()
	for _, lvl := range p[1:] {
		up := Up(accum)
		if !up.SameSize(lvl) {
			up = frame.Resize(up, lvl.Width, lvl.Height)
		}

		up.AddInPlace(lvl)
		accum = up
	}

	accum.ScaleInPlace(1 / float64(len(p)))

	return accum, nil
}
