// Package polyroot provides polynomial expansion and root-finding utilities
// shared by the IIR design and analysis packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ErrComplexCoefficients is returned by [Real] when the expanded polynomial
// has imaginary parts beyond tolerance, i.e. the roots were not closed under
// conjugation.
var ErrComplexCoefficients = errors.New("polyroot: coefficients are not real")

// Expand returns the monic polynomial whose roots are roots, in descending
// power order: z^n + c[1]*z^(n-1) + ... + c[n]. An empty root set yields [1].
func Expand(roots []complex128) []complex128 {
	coeff := make([]complex128, 1, len(roots)+1)
	coeff[0] = 1

	for _, r := range roots {
		coeff = append(coeff, 0)
		for i := len(coeff) - 1; i > 0; i-- {
			coeff[i] -= r * coeff[i-1]
		}
	}

	return coeff
}

// Real drops the imaginary parts of coeff after checking that each is within
// tol of zero, relative to the largest coefficient magnitude.
func Real(coeff []complex128, tol float64) ([]float64, error) {
	scale := 1.0
	for _, c := range coeff {
		scale = math.Max(scale, cmplx.Abs(c))
	}

	out := make([]float64, len(coeff))
	for i, c := range coeff {
		if math.Abs(imag(c)) > tol*scale {
			return nil, ErrComplexCoefficients
		}

		out[i] = real(c)
	}

	return out, nil
}

// Roots finds all roots of a real polynomial given in descending power order.
func Roots(coeff []float64) ([]complex128, error) {
	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	return DurandKerner(c)
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	if n == 1 {
		return []complex128{-norm[1]}, nil
	}

	radius := 1.0
	for _, c := range norm[1:] {
		radius = math.Max(radius, cmplx.Abs(c))
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)
			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den
			roots[i] -= delta
			maxDelta = math.Max(maxDelta, cmplx.Abs(delta))
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(PolyEval(norm, r)) >= 1e-6 {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
