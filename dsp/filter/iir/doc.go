// Package iir describes direct-form IIR filters by their transfer-function
// coefficients.
//
// A [Coefficients] value holds the feedforward taps B and the feedback taps A
// of
//
//	A[0]*y[n] + A[1]*y[n-1] + ... = B[0]*x[n] + B[1]*x[n-1] + ...
//
// Unlike dsp/filter/biquad, A[0] is stored and is not assumed to be 1, so
// runtimes must divide by it. Coefficient design lives in dsp/filter/design.
package iir
