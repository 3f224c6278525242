package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-evm/dsp/filter/iir"
	"github.com/cwbudde/algo-evm/internal/polyroot"
)

// bilinearRate is the sampling rate of the normalized frequency axis the
// bilinear transform is evaluated on (Nyquist = 1).
const bilinearRate = 2.0

// imagTol bounds the imaginary residue tolerated when expanding conjugate
// pole sets into real polynomials.
const imagTol = 1e-9

// LowPass designs a Butterworth lowpass of the given order.
//
// cutoff must lie in (0, 0.5). A[0] of the result is exactly 1.
func LowPass(order int, cutoff float64) (iir.Coefficients, error) {
	if order < 1 {
		return iir.Coefficients{}, core.NewConfigurationError("order", float64(order), "must be >= 1")
	}

	if !(cutoff > 0 && cutoff < 0.5) {
		return iir.Coefficients{}, core.NewConfigurationError("cutoff", cutoff, "must be in (0, 0.5)")
	}

	poles := butterworthPoles(order)

	warped := prewarp(cutoff)
	for i := range poles {
		poles[i] *= complex(warped, 0)
	}
	gain := math.Pow(warped, float64(order))

	zeros, poles, gain := bilinearZPK(poles, gain)

	b, err := polyroot.Real(polyroot.Expand(zeros), imagTol)
	if err != nil {
		return iir.Coefficients{}, err
	}

	a, err := polyroot.Real(polyroot.Expand(poles), imagTol)
	if err != nil {
		return iir.Coefficients{}, err
	}

	for i := range b {
		b[i] *= gain
	}

	return iir.Coefficients{B: b, A: a}, nil
}

// BandEdges designs the two lowpass sets whose difference forms a band-pass
// between low and high (Hz) at sampleRate (Hz).
func BandEdges(order int, low, high, sampleRate float64) (lo, hi iir.Coefficients, err error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return lo, hi, core.NewConfigurationError("sampleRate", sampleRate, "must be > 0")
	}

	if !(high > low) {
		return lo, hi, core.NewConfigurationError("high", high, "must exceed the low cutoff")
	}

	if lo, err = LowPass(order, low/sampleRate); err != nil {
		return lo, hi, err
	}

	hi, err = LowPass(order, high/sampleRate)

	return lo, hi, err
}

// butterworthPoles returns the left-half-plane poles of the normalized
// analog Butterworth prototype, -exp(iπm/2N) for m = -N+1, -N+3, ..., N-1.
func butterworthPoles(order int) []complex128 {
	poles := make([]complex128, order)
	for k := range poles {
		m := float64(2*k - order + 1)
		poles[k] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	return poles
}

func prewarp(cutoff float64) float64 {
	return 2 * bilinearRate * math.Tan(math.Pi*cutoff/bilinearRate)
}

// bilinearZPK maps an all-pole analog lowpass to the z-plane. Every analog
// zero at infinity lands at z = -1.
func bilinearZPK(poles []complex128, gain float64) ([]complex128, []complex128, float64) {
	const fs2 = 2 * bilinearRate

	zd := make([]complex128, len(poles))
	pd := make([]complex128, len(poles))
	den := complex(1, 0)

	for i, p := range poles {
		pd[i] = (fs2 + p) / (fs2 - p)
		zd[i] = -1
		den *= fs2 - p
	}

	return zd, pd, gain * real(1/den)
}
