// Package testutil holds assertion helpers and deterministic test inputs
// shared by the package tests of this module.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-evm/dsp/frame"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFrameNearlyEqual fails t if the frames differ in size or any sample
// pair differs by more than eps.
func RequireFrameNearlyEqual(t *testing.T, got, want frame.Frame, eps float64) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size mismatch: got %v, want %v", got, want)
	}
	for i := range got.Pix {
		if diff := math.Abs(got.Pix[i] - want.Pix[i]); diff > eps {
			t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)",
				i%got.Width, i/got.Width, got.Pix[i], want.Pix[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, f frame.Frame) {
	t.Helper()
	for i, v := range f.Pix {
		if !core.IsFinite(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute sample difference between two
// frames of equal size, or +Inf when the sizes differ.
func MaxAbsDiff(a, b frame.Frame) float64 {
	if !a.SameSize(b) || len(a.Pix) != len(b.Pix) {
		return math.Inf(1)
	}
	maxDiff := 0.0
	for i := range a.Pix {
		maxDiff = math.Max(maxDiff, math.Abs(a.Pix[i]-b.Pix[i]))
	}
	return maxDiff
}
