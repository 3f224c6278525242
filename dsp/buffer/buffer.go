package buffer

import "github.com/cwbudde/algo-evm/dsp/core"

// Buffer wraps a reusable float64 slice.
type Buffer struct {
	data []float64
}

// New returns a zero-filled Buffer of length n.
func New(n int) *Buffer {
	if n < 0 {
		n = 0
	}

	return &Buffer{data: make([]float64, n)}
}

// Data returns the underlying slice.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Len returns the current length.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing array.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Reset sets the length to n, reusing the backing array when it is large
// enough. Existing contents are not cleared.
func (b *Buffer) Reset(n int) {
	b.data = core.EnsureLen(b.data, n)
}

// Zero sets every element to 0.
func (b *Buffer) Zero() {
	core.Zero(b.data)
}
