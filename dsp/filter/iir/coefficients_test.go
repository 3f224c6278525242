package iir

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Coefficients
		wantErr bool
	}{
		{name: "first order", c: Coefficients{B: []float64{0.5, 0.5}, A: []float64{1, 0}}},
		{name: "unnormalized", c: Coefficients{B: []float64{1, 1}, A: []float64{2, -0.5}}},
		{name: "empty", c: Coefficients{}, wantErr: true},
		{name: "length mismatch", c: Coefficients{B: []float64{1}, A: []float64{1, 0}}, wantErr: true},
		{name: "zero divisor", c: Coefficients{B: []float64{1, 1}, A: []float64{0, 1}}, wantErr: true},
		{name: "nan tap", c: Coefficients{B: []float64{math.NaN(), 1}, A: []float64{1, 0}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrInvalidCoefficients) {
				t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
			}
		})
	}
}

func TestResponseOnePoleAverager(t *testing.T) {
	// y[n] = 0.5*x[n] + 0.5*x[n-1]: unity at DC, null at Nyquist.
	c := Coefficients{B: []float64{0.5, 0.5}, A: []float64{1, 0}}

	if got := c.Magnitude(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("|H(0)| = %v, want 1", got)
	}

	if got := c.Magnitude(0.5); got > 1e-12 {
		t.Fatalf("|H(0.5)| = %v, want 0", got)
	}

	if got := c.Magnitude(0.25); math.Abs(got-math.Sqrt2/2) > 1e-12 {
		t.Fatalf("|H(0.25)| = %v, want %v", got, math.Sqrt2/2)
	}
}

func TestResponseHonoursDivisor(t *testing.T) {
	a := Coefficients{B: []float64{0.2, 0.2}, A: []float64{1, -0.6}}
	b := Coefficients{B: []float64{0.4, 0.4}, A: []float64{2, -1.2}}

	for _, f := range []float64{0, 0.05, 0.2, 0.45} {
		if math.Abs(a.Magnitude(f)-b.Magnitude(f)) > 1e-12 {
			t.Fatalf("f=%v: scaled coefficients differ: %v vs %v", f, a.Magnitude(f), b.Magnitude(f))
		}
	}

	if math.Abs(b.DCGain()-1) > 1e-12 {
		t.Fatalf("DCGain = %v, want 1", b.DCGain())
	}
}

func TestPolesAndStability(t *testing.T) {
	stable := Coefficients{B: []float64{1, 0, 0}, A: []float64{1, -1.2, 0.5}}
	if !stable.Stable() {
		t.Fatal("expected stable filter")
	}

	poles, err := stable.Poles()
	if err != nil {
		t.Fatal(err)
	}

	if len(poles) != 2 {
		t.Fatalf("len(poles) = %d, want 2", len(poles))
	}

	unstable := Coefficients{B: []float64{1, 0}, A: []float64{1, -1.5}}
	if unstable.Stable() {
		t.Fatal("pole at 1.5 reported stable")
	}

	fir := Coefficients{B: []float64{1}, A: []float64{1}}
	if !fir.Stable() {
		t.Fatal("order-0 filter reported unstable")
	}
}
