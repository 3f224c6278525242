package temporal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-evm/dsp/filter/design"
	"github.com/cwbudde/algo-evm/dsp/filter/iir"
	"github.com/cwbudde/algo-evm/dsp/frame"
	"github.com/cwbudde/algo-evm/dsp/pyramid"
	"github.com/cwbudde/algo-evm/internal/testutil"
)

const testFPS = 30.0

func newTestFilter(t *testing.T, low, high float64) *Bandpass {
	t.Helper()

	lo, hi, err := design.BandEdges(1, low, high, testFPS)
	if err != nil {
		t.Fatal(err)
	}

	f, err := New(lo, hi)
	if err != nil {
		t.Fatal(err)
	}

	return f
}

func build(t *testing.T, f frame.Frame, levels int) pyramid.Pyramid {
	t.Helper()

	p, err := pyramid.Build(f, levels)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func maxAbs(p pyramid.Pyramid) float64 {
	m := 0.0
	for _, lvl := range p {
		m = math.Max(m, lvl.MaxAbs())
	}

	return m
}

func TestNew_RejectsInvalidCoefficients(t *testing.T) {
	good := iir.Coefficients{B: []float64{0.1, 0.1}, A: []float64{1, -0.8}}

	tests := []struct {
		name      string
		low, high iir.Coefficients
	}{
		{name: "second order", low: iir.Coefficients{B: []float64{1, 2, 1}, A: []float64{1, 0, 0}}, high: good},
		{name: "zero divisor", low: good, high: iir.Coefficients{B: []float64{1, 1}, A: []float64{0, 1}}},
		{name: "empty", low: iir.Coefficients{}, high: good},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.low, tt.high); !errors.Is(err, iir.ErrInvalidCoefficients) {
				t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
			}
		})
	}
}

func TestApply_SeedingYieldsZero(t *testing.T) {
	f := newTestFilter(t, 0.83, 1.0)

	if f.Seeded() {
		t.Fatal("new filter reports seeded")
	}

	if s := f.State(); s.LowLP != nil {
		t.Fatal("unseeded filter exposes state")
	}

	out, err := f.Apply(build(t, testutil.NoiseFrame(1, 32, 24, 0, 255), 4))
	if err != nil {
		t.Fatal(err)
	}

	if got := maxAbs(out); got != 0 {
		t.Fatalf("first output max |x| = %v, want exactly 0", got)
	}

	if !f.Seeded() || len(f.State().HighLP) != 4 {
		t.Fatal("state not seeded with one entry per level")
	}

	// Feed different content, then reset: the next output is zero again.
	if _, err := f.Apply(build(t, testutil.NoiseFrame(2, 32, 24, 0, 255), 4)); err != nil {
		t.Fatal(err)
	}

	f.Reset()

	out, err = f.Apply(build(t, testutil.NoiseFrame(3, 32, 24, 0, 255), 4))
	if err != nil {
		t.Fatal(err)
	}

	if got := maxAbs(out); got != 0 {
		t.Fatalf("output after Reset max |x| = %v, want exactly 0", got)
	}
}

func TestApply_MatchesRecurrence(t *testing.T) {
	lo := iir.Coefficients{B: []float64{0.05, 0.05}, A: []float64{1, -0.9}}
	hi := iir.Coefficients{B: []float64{0.3, 0.3}, A: []float64{2, -0.8}}

	f, err := New(lo, hi)
	if err != nil {
		t.Fatal(err)
	}

	inputs := []float64{10, 12, 7, 30, 30, -4}
	lowLP, highLP, prev := inputs[0], inputs[0], inputs[0]

	for n, x := range inputs {
		out, err := f.Apply(pyramid.Pyramid{frame.Constant(1, 1, x)})
		if err != nil {
			t.Fatal(err)
		}

		want := 0.0
		if n > 0 {
			highLP = (-hi.A[1]*highLP + hi.B[0]*x + hi.B[1]*prev) / hi.A[0]
			lowLP = (-lo.A[1]*lowLP + lo.B[0]*x + lo.B[1]*prev) / lo.A[0]
			prev = x
			want = highLP - lowLP
		}

		if got := out[0].At(0, 0); math.Abs(got-want) > 1e-12 {
			t.Fatalf("step %d: got %v, want %v", n, got, want)
		}
	}
}

func TestApply_RejectsDC(t *testing.T) {
	f := newTestFilter(t, 0.83, 1.0)

	if _, err := f.Apply(build(t, frame.Constant(16, 16, 0), 3)); err != nil {
		t.Fatal(err)
	}

	step := build(t, frame.Constant(16, 16, 100), 3)

	var out pyramid.Pyramid
	for range 400 {
		var err error
		if out, err = f.Apply(step); err != nil {
			t.Fatal(err)
		}
	}

	if got := maxAbs(out); got > 1e-6 {
		t.Fatalf("constant input residual %v, want < 1e-6", got)
	}
}

func TestApply_PassbandExceedsStopband(t *testing.T) {
	amplitude := func(freqHz float64) float64 {
		f := newTestFilter(t, 0.5, 3)
		peak := 0.0

		for n := range 600 {
			in := testutil.SinusoidFrame(4, 4, n, 128, 10, freqHz, testFPS)

			out, err := f.Apply(pyramid.Pyramid{in})
			if err != nil {
				t.Fatal(err)
			}

			if n >= 450 {
				peak = math.Max(peak, out[0].MaxAbs())
			}
		}

		return peak
	}

	in := amplitude(1.2)
	out := amplitude(12)

	if in <= 5*out {
		t.Fatalf("passband peak %v not well above stopband peak %v", in, out)
	}
}

func TestApply_DimensionMismatch(t *testing.T) {
	f := newTestFilter(t, 0.83, 1.0)
	seed := build(t, testutil.NoiseFrame(1, 8, 8, 0, 255), 2)

	if _, err := f.Apply(seed); err != nil {
		t.Fatal(err)
	}

	before := f.State().PrevInput[1].Clone()

	_, err := f.Apply(build(t, testutil.NoiseFrame(2, 8, 8, 0, 255), 3))

	var dimErr *DimensionMismatchError
	if !errors.As(err, &dimErr) || dimErr.Level != -1 || dimErr.GotLevels != 3 {
		t.Fatalf("level-count err = %v", err)
	}

	_, err = f.Apply(build(t, testutil.NoiseFrame(3, 10, 8, 0, 255), 2))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}

	if !errors.As(err, &dimErr) || dimErr.Level != 0 {
		t.Fatalf("size err = %v, want level 0", err)
	}

	if !f.State().PrevInput[1].Equal(before) {
		t.Fatal("rejected pyramid modified the filter state")
	}

	// Reset allows re-seeding at the new resolution.
	f.Reset()

	if _, err := f.Apply(build(t, testutil.NoiseFrame(4, 10, 8, 0, 255), 2)); err != nil {
		t.Fatalf("apply after Reset: %v", err)
	}
}

func TestApply_RejectsEmptyPyramid(t *testing.T) {
	f := newTestFilter(t, 0.83, 1.0)

	if _, err := f.Apply(nil); !errors.Is(err, pyramid.ErrEmptyPyramid) {
		t.Fatalf("err = %v, want ErrEmptyPyramid", err)
	}

	if f.Seeded() {
		t.Fatal("empty pyramid seeded the filter")
	}
}

func TestApply_DoesNotAliasInput(t *testing.T) {
	f := newTestFilter(t, 0.83, 1.0)
	p := build(t, frame.Constant(4, 4, 50), 1)

	if _, err := f.Apply(p); err != nil {
		t.Fatal(err)
	}

	p[0].Set(0, 0, 0)

	if f.State().PrevInput[0].At(0, 0) != 50 {
		t.Fatal("seeded state aliases the input pyramid")
	}
}
