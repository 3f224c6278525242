package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a frame's dimensions do not describe its
// pixel buffer.
var ErrInvalidSize = errors.New("frame: invalid size")

// Frame is a 2-D array of real-valued samples.
type Frame struct {
	Width  int
	Height int
	Pix    []float64
}

// New returns a zeroed frame of the given size.
func New(width, height int) Frame {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}

	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// FromSlice wraps pix as a width×height frame without copying.
func FromSlice(width, height int, pix []float64) (Frame, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return Frame{}, fmt.Errorf("%w: %dx%d with %d samples", ErrInvalidSize, width, height, len(pix))
	}

	return Frame{Width: width, Height: height, Pix: pix}, nil
}

// Constant returns a width×height frame filled with value.
func Constant(width, height int, value float64) Frame {
	f := New(width, height)
	for i := range f.Pix {
		f.Pix[i] = value
	}

	return f
}

// Empty reports whether f holds no samples.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0
}

// Valid reports whether the dimensions match the pixel buffer.
func (f Frame) Valid() bool {
	return !f.Empty() && len(f.Pix) == f.Width*f.Height
}

// At returns the sample at column x, row y.
func (f Frame) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Set stores v at column x, row y.
func (f Frame) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

// Row returns the samples of row y. The slice aliases f.Pix.
func (f Frame) Row(y int) []float64 {
	off := y * f.Width
	return f.Pix[off : off+f.Width : off+f.Width]
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := Frame{Width: f.Width, Height: f.Height, Pix: make([]float64, len(f.Pix))}
	copy(out.Pix, f.Pix)

	return out
}

// CopyFrom overwrites f with src. Both frames must have the same size.
func (f Frame) CopyFrom(src Frame) {
	mustMatch(f, src)
	copy(f.Pix, src.Pix)
}

// SameSize reports whether f and g have identical dimensions.
func (f Frame) SameSize(g Frame) bool {
	return f.Width == g.Width && f.Height == g.Height
}

// Equal reports whether f and g have identical dimensions and bit-identical
// samples.
func (f Frame) Equal(g Frame) bool {
	if !f.SameSize(g) || len(f.Pix) != len(g.Pix) {
		return false
	}

	for i, v := range f.Pix {
		if v != g.Pix[i] {
			return false
		}
	}

	return true
}

// String describes the frame size.
func (f Frame) String() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

func mustMatch(a, b Frame) {
	if !a.SameSize(b) || len(a.Pix) != len(b.Pix) {
		panic(fmt.Sprintf("frame: size mismatch %v vs %v", a, b))
	}
}
