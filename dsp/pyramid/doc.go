// Package pyramid builds Gaussian image pyramids, scales them, and collapses
// them back to a single full-resolution frame.
//
// A [Pyramid] is ordered coarsest first: index 0 is decimated by
// 2^(levels-1), the last index is the full-resolution source.
//
// Both resampling steps use the 5-tap binomial approximation of a Gaussian,
// [1 4 6 4 1]/16, applied separably with reflect-101 border handling:
//
//   - [Down] blurs and keeps every other sample, ceil(n/2) per axis.
//   - [Up] inserts zeros between samples and blurs with the kernel scaled
//     by two per axis, doubling each dimension.
//
// [Collapse] re-expands every level to full resolution and returns the
// arithmetic mean of the re-expanded levels rather than a Laplacian sum.
package pyramid
