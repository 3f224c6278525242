package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-evm/dsp/frame"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// NoiseFrame returns a width×height frame of uniform noise in [lo, hi) with a
// fixed seed for reproducibility.
func NoiseFrame(seed int64, width, height int, lo, hi float64) frame.Frame {
	f := frame.New(width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range f.Pix {
		f.Pix[i] = lo + rng.Float64()*(hi-lo)
	}
	return f
}

// RampFrame returns a frame whose sample at (x, y) is x + width*y.
func RampFrame(width, height int) frame.Frame {
	f := frame.New(width, height)
	for i := range f.Pix {
		f.Pix[i] = float64(i)
	}
	return f
}

// SinusoidFrame returns a constant frame at sample n of a sinusoid
// offset + amplitude*sin(2π·freqHz·n/sampleRate).
func SinusoidFrame(width, height, n int, offset, amplitude, freqHz, sampleRate float64) frame.Frame {
	v := offset + amplitude*math.Sin(2*math.Pi*freqHz*float64(n)/sampleRate)
	return frame.Constant(width, height, v)
}
