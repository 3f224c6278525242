// Package buffer provides pooled float64 scratch memory for frame-scoped
// temporaries such as the intermediate pass of a separable image filter.
//
// Scratch contents are unspecified on Get; callers that need zeros use
// GetZeroed or overwrite every element.
package buffer
