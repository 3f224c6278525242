package pulse

import "image"

const (
	defaultWindowSeconds = 10
	defaultMinHz         = 0.7
	defaultMaxHz         = 4.0
	minFFTSize           = 256
)

// Config holds the estimator parameters.
type Config struct {
	SampleRate float64
	// Window is the number of frames kept; 0 selects ten seconds.
	Window int
	// MinSamples is the number of frames required before Estimate succeeds;
	// 0 selects half the window, at least 4.
	MinSamples int
	MinHz      float64
	MaxHz      float64
	// Region restricts the per-frame mean to a rectangle; the zero rectangle
	// selects the whole frame.
	Region image.Rectangle
}

// Option mutates a Config.
type Option func(*Config)

// WithWindow sets the number of frames kept in the sliding window.
func WithWindow(frames int) Option {
	return func(cfg *Config) {
		if frames > 0 {
			cfg.Window = frames
		}
	}
}

// WithMinSamples sets the number of frames required for an estimate.
func WithMinSamples(frames int) Option {
	return func(cfg *Config) {
		if frames > 0 {
			cfg.MinSamples = frames
		}
	}
}

// WithBand sets the search band in Hz.
func WithBand(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		cfg.MinHz = minHz
		cfg.MaxHz = maxHz
	}
}

// WithRegion restricts the frame mean to r.
func WithRegion(r image.Rectangle) Option {
	return func(cfg *Config) {
		cfg.Region = r
	}
}
