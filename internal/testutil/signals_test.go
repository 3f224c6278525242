package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 30, 1.0, 30)
	if len(s) != 30 {
		t.Fatalf("len = %d, want 30", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestNoiseFrameReproducible(t *testing.T) {
	a := NoiseFrame(7, 8, 8, 0, 255)
	b := NoiseFrame(7, 8, 8, 0, 255)
	if !a.Equal(b) {
		t.Fatal("NoiseFrame is not deterministic")
	}
	for i, v := range a.Pix {
		if v < 0 || v >= 255 {
			t.Fatalf("Pix[%d] = %v out of range", i, v)
		}
	}
}

func TestRampFrame(t *testing.T) {
	f := RampFrame(4, 3)
	if f.At(3, 2) != 11 {
		t.Fatalf("At(3,2) = %v, want 11", f.At(3, 2))
	}
}

func TestSinusoidFrame(t *testing.T) {
	f := SinusoidFrame(2, 2, 15, 100, 10, 1, 60)
	if math.Abs(f.At(1, 1)-110) > 1e-12 {
		t.Fatalf("At(1,1) = %v, want 110", f.At(1, 1))
	}
}
