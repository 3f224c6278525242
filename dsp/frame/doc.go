// Package frame provides the floating-point single-channel image used by the
// pyramid and temporal filter packages.
//
// A [Frame] stores samples row-major in Pix with no padding between rows.
// Input and output frames are bounded to [0, 255] by the callers that widen
// from and narrow to [*image.Gray]; intermediate frames are unbounded.
//
// Arithmetic helpers run on the vectorised kernels of algo-vecmath and panic
// when operand sizes differ, the same contract those kernels carry.
package frame
