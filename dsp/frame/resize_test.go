package frame

import (
	"math"
	"testing"
)

func TestResizeSameSizeCopies(t *testing.T) {
	f := Constant(5, 4, 3)
	r := Resize(f, 5, 4)

	if !r.Equal(f) {
		t.Fatal("same-size resize changed samples")
	}

	r.Set(0, 0, 0)
	if f.At(0, 0) != 3 {
		t.Fatal("same-size resize aliased the source")
	}
}

func TestResizePreservesConstant(t *testing.T) {
	f := Constant(7, 5, 42)

	for _, size := range [][2]int{{6, 4}, {8, 6}, {14, 10}, {1, 1}} {
		r := Resize(f, size[0], size[1])
		if r.Width != size[0] || r.Height != size[1] {
			t.Fatalf("size = %v, want %v", r, size)
		}

		for i, v := range r.Pix {
			if math.Abs(v-42) > 1e-12 {
				t.Fatalf("%v: Pix[%d] = %v, want 42", size, i, v)
			}
		}
	}
}

func TestResizeInterpolatesRamp(t *testing.T) {
	// A horizontal ramp sampled at pixel centres stays linear in the
	// interior after upscaling by two.
	f := New(4, 1)
	for x := range 4 {
		f.Set(x, 0, float64(x))
	}

	r := Resize(f, 8, 1)
	want := []float64{0, 0.25, 0.75, 1.25, 1.75, 2.25, 2.75, 3}

	for i := range want {
		if math.Abs(r.Pix[i]-want[i]) > 1e-12 {
			t.Fatalf("Pix[%d] = %v, want %v", i, r.Pix[i], want[i])
		}
	}
}

func TestResizeDropsTrailingSample(t *testing.T) {
	f := Constant(6, 6, 1)
	r := Resize(f, 5, 5)

	if r.Width != 5 || r.Height != 5 || len(r.Pix) != 25 {
		t.Fatalf("size = %v, want 5x5", r)
	}
}
