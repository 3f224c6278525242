// Package temporal implements the streaming band-pass filter applied to
// successive pyramids of one channel.
//
// The band-pass is the difference of two first-order IIR lowpass
// recurrences with cutoffs low < high, evaluated independently at every
// pyramid level and pixel:
//
//	highLP = (-hi.A[1]*highLP + hi.B[0]*x + hi.B[1]*prev) / hi.A[0]
//	lowLP  = (-lo.A[1]*lowLP  + lo.B[0]*x + lo.B[1]*prev) / lo.A[0]
//	prev   = x
//	out    = highLP - lowLP
//
// Both recurrences share the single-frame delay line prev. The filter starts
// unseeded; the first [Bandpass.Apply] (or the first after [Bandpass.Reset])
// seeds every accumulator with the input itself, which places the recurrence
// at steady state and yields an all-zero output for that frame.
//
// A Bandpass is not safe for concurrent use and frames must be applied in
// capture order.
package temporal
