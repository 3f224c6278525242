// Package window provides tapering windows for spectral analysis of short
// sample traces.
package window
