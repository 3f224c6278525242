// Package design provides digital IIR filter coefficient designers.
//
// [LowPass] designs a Butterworth lowpass of any order from the analog
// prototype: the prototype poles are scaled to the pre-warped cutoff, mapped
// through the bilinear transform together with N zeros at z = -1, and the
// resulting zero/pole/gain set is expanded into [iir.Coefficients].
//
// The normalized cutoff follows SciPy's butter convention: the value is
// taken as a fraction of the Nyquist rate, so LowPass(1, 1/30) yields
// B ≈ [0.0498 0.0498], A ≈ [1 -0.9004].
package design
