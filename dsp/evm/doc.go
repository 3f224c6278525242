// Package evm implements Eulerian Video Magnification for single-channel
// frame streams.
//
// A [Magnifier] processes one channel frame by frame:
//
//  1. widen the 8-bit frame to float samples,
//  2. build a Gaussian pyramid (dsp/pyramid),
//  3. band-pass every level in time (dsp/temporal),
//  4. amplify the band-passed pyramid by Alpha,
//  5. collapse it to a full-resolution delta,
//  6. add Attenuation·delta onto the widened frame,
//  7. clamp to [0, 255] and narrow back to 8 bits.
//
// Only step 3 keeps state across frames, so frames of one channel must be
// processed in capture order and a Magnifier must not be shared between
// goroutines. Independent channels (for example the planes of a colour
// frame) use one Magnifier each; [Channels] runs them concurrently.
package evm
