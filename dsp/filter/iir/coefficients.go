package iir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-evm/internal/polyroot"
)

// ErrInvalidCoefficients is returned by [Coefficients.Validate].
var ErrInvalidCoefficients = errors.New("iir: invalid coefficients")

// Coefficients holds a transfer function in z^-1 ascending order.
type Coefficients struct {
	B []float64 // feedforward (numerator)
	A []float64 // feedback (denominator), A[0] is the normalization divisor
}

// Order returns the filter order, len(A)-1.
func (c Coefficients) Order() int {
	return len(c.A) - 1
}

// Validate checks that both vectors have order+1 finite taps and that A[0]
// is nonzero.
func (c Coefficients) Validate() error {
	if len(c.A) < 1 || len(c.B) != len(c.A) {
		return fmt.Errorf("%w: len(B)=%d len(A)=%d", ErrInvalidCoefficients, len(c.B), len(c.A))
	}

	if c.A[0] == 0 {
		return fmt.Errorf("%w: A[0] is zero", ErrInvalidCoefficients)
	}

	for i := range c.A {
		if math.IsNaN(c.A[i]) || math.IsInf(c.A[i], 0) || math.IsNaN(c.B[i]) || math.IsInf(c.B[i], 0) {
			return fmt.Errorf("%w: non-finite tap at index %d", ErrInvalidCoefficients, i)
		}
	}

	return nil
}

// Response computes the complex frequency response H(e^jw) at the
// normalized frequency f in cycles per sample (0.5 is Nyquist).
func (c Coefficients) Response(f float64) complex128 {
	zInv := cmplx.Exp(complex(0, -2*math.Pi*f))

	return evalAscending(c.B, zInv) / evalAscending(c.A, zInv)
}

// Magnitude returns |H| at the normalized frequency f.
func (c Coefficients) Magnitude(f float64) float64 {
	return cmplx.Abs(c.Response(f))
}

// MagnitudeDB returns 20*log10|H| at the normalized frequency f.
func (c Coefficients) MagnitudeDB(f float64) float64 {
	return 20 * math.Log10(c.Magnitude(f))
}

// DCGain returns sum(B)/sum(A).
func (c Coefficients) DCGain() float64 {
	var b, a float64
	for i := range c.B {
		b += c.B[i]
	}

	for i := range c.A {
		a += c.A[i]
	}

	return b / a
}

// Poles returns the roots of the denominator in the z-plane.
func (c Coefficients) Poles() ([]complex128, error) {
	if c.Order() < 1 {
		return nil, nil
	}

	return polyroot.Roots(c.A)
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	poles, err := c.Poles()
	if err != nil {
		return false
	}

	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}

	return true
}

// evalAscending evaluates sum(coeff[k] * zInv^k).
func evalAscending(coeff []float64, zInv complex128) complex128 {
	var v complex128
	for k := len(coeff) - 1; k >= 0; k-- {
		v = v*zInv + complex(coeff[k], 0)
	}

	return v
}
