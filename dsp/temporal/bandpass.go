package temporal

import (
	"fmt"

	"github.com/cwbudde/algo-evm/dsp/filter/iir"
	"github.com/cwbudde/algo-evm/dsp/frame"
	"github.com/cwbudde/algo-evm/dsp/pyramid"
)

type phase uint8

const (
	unseeded phase = iota
	seeded
)

// section holds the first-order taps of one lowpass, pre-divided by A[0].
type section struct {
	b0, b1, a1 float64
}

func newSection(name string, c iir.Coefficients) (section, error) {
	if err := c.Validate(); err != nil {
		return section{}, fmt.Errorf("temporal: %s cutoff: %w", name, err)
	}

	if c.Order() != 1 {
		return section{}, fmt.Errorf("temporal: %s cutoff: %w: order %d, want 1",
			name, iir.ErrInvalidCoefficients, c.Order())
	}

	inv := 1 / c.A[0]

	return section{b0: c.B[0] * inv, b1: c.B[1] * inv, a1: c.A[1] * inv}, nil
}

// State is the persistent per-level memory of a [Bandpass]. Each slice has
// one frame per pyramid level.
type State struct {
	LowLP     []frame.Frame
	HighLP    []frame.Frame
	PrevInput []frame.Frame
}

// Bandpass is the stateful difference-of-lowpass filter for one channel.
type Bandpass struct {
	low, high section
	phase     phase
	state     State
}

// New returns an unseeded Bandpass from the lowpass designs for the low and
// high cutoffs. Both must be first order with a nonzero A[0].
func New(low, high iir.Coefficients) (*Bandpass, error) {
	lo, err := newSection("low", low)
	if err != nil {
		return nil, err
	}

	hi, err := newSection("high", high)
	if err != nil {
		return nil, err
	}

	return &Bandpass{low: lo, high: hi}, nil
}

// Seeded reports whether the filter holds state from a previous Apply.
func (f *Bandpass) Seeded() bool {
	return f.phase == seeded
}

// State returns the filter memory, or nil slices while unseeded. The frames
// alias the filter's buffers and must not be modified.
func (f *Bandpass) State() State {
	if f.phase != seeded {
		return State{}
	}

	return f.state
}

// Reset discards the filter memory; the next Apply re-seeds it. Buffers are
// kept for reuse when the next pyramid has the same shape.
func (f *Bandpass) Reset() {
	f.phase = unseeded
}

// Apply filters one pyramid and returns the band-passed pyramid.
//
// On the first call after construction or Reset the state is seeded from p
// and the result is all zeros. Afterwards p must have the same level count
// and level sizes as the seeding pyramid; otherwise a
// [*DimensionMismatchError] is returned and the state is left untouched.
func (f *Bandpass) Apply(p pyramid.Pyramid) (pyramid.Pyramid, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("temporal: %w", err)
	}

	if f.phase == unseeded {
		f.seed(p)

		out := make(pyramid.Pyramid, len(p))
		for i := range p {
			out[i] = frame.New(p[i].Width, p[i].Height)
		}

		return out, nil
	}

	if err := f.checkShape(p); err != nil {
		return nil, err
	}

	out := make(pyramid.Pyramid, len(p))
	for i := range p {
		out[i] = frame.New(p[i].Width, p[i].Height)
		f.step(out[i].Pix, p[i].Pix, i)
	}

	return out, nil
}

func (f *Bandpass) step(dst, x []float64, level int) {
	hi, lo := f.high, f.low
	highLP := f.state.HighLP[level].Pix
	lowLP := f.state.LowLP[level].Pix
	prev := f.state.PrevInput[level].Pix

	for i, v := range x {
		p := prev[i]
		h := -hi.a1*highLP[i] + hi.b0*v + hi.b1*p
		l := -lo.a1*lowLP[i] + lo.b0*v + lo.b1*p

		highLP[i] = h
		lowLP[i] = l
		prev[i] = v
		dst[i] = h - l
	}
}

func (f *Bandpass) seed(p pyramid.Pyramid) {
	if !f.shapeMatches(p) {
		f.state = State{
			LowLP:     make([]frame.Frame, len(p)),
			HighLP:    make([]frame.Frame, len(p)),
			PrevInput: make([]frame.Frame, len(p)),
		}

		for i := range p {
			f.state.LowLP[i] = frame.New(p[i].Width, p[i].Height)
			f.state.HighLP[i] = frame.New(p[i].Width, p[i].Height)
			f.state.PrevInput[i] = frame.New(p[i].Width, p[i].Height)
		}
	}

	for i := range p {
		f.state.LowLP[i].CopyFrom(p[i])
		f.state.HighLP[i].CopyFrom(p[i])
		f.state.PrevInput[i].CopyFrom(p[i])
	}

	f.phase = seeded
}

func (f *Bandpass) shapeMatches(p pyramid.Pyramid) bool {
	return f.checkShape(p) == nil
}

func (f *Bandpass) checkShape(p pyramid.Pyramid) error {
	want := f.state.PrevInput
	if len(p) != len(want) {
		return &DimensionMismatchError{Level: -1, GotLevels: len(p), WantLevels: len(want)}
	}

	for i := range p {
		if !p[i].SameSize(want[i]) {
			return &DimensionMismatchError{
				Level:      i,
				GotWidth:   p[i].Width,
				GotHeight:  p[i].Height,
				WantWidth:  want[i].Width,
				WantHeight: want[i].Height,
				GotLevels:  len(p),
				WantLevels: len(want),
			}
		}
	}

	return nil
}
