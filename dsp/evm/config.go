package evm

import (
	"github.com/cwbudde/algo-evm/dsp/core"
)

// Config holds the magnification parameters. It is immutable once a
// Magnifier has been built from it.
type Config struct {
	// Alpha is the amplification applied to the band-passed pyramid.
	Alpha float64 `yaml:"alpha"`
	// LowCutoff and HighCutoff bound the temporal pass band in Hz.
	LowCutoff  float64 `yaml:"low_cutoff"`
	HighCutoff float64 `yaml:"high_cutoff"`
	// Levels is the pyramid depth; 1 filters the full-resolution frame only.
	Levels int `yaml:"levels"`
	// SampleRate is the frame rate in frames per second.
	SampleRate float64 `yaml:"sample_rate"`
	// Attenuation scales the collapsed delta before it is added back.
	Attenuation float64 `yaml:"attenuation"`
}

// filterOrder is the order of both temporal lowpass designs.
const filterOrder = 1

// DefaultConfig returns parameters suited to revealing a resting pulse
// (50–60 bpm) in 30 fps footage.
func DefaultConfig() Config {
	return Config{
		Alpha:       50,
		LowCutoff:   50.0 / 60,
		HighCutoff:  60.0 / 60,
		Levels:      4,
		SampleRate:  30,
		Attenuation: 1,
	}
}

// Validate checks every parameter and returns the first violation as a
// [*core.ConfigurationError].
func (c Config) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"alpha", c.Alpha},
		{"low_cutoff", c.LowCutoff},
		{"high_cutoff", c.HighCutoff},
		{"sample_rate", c.SampleRate},
		{"attenuation", c.Attenuation},
	} {
		if err := core.RequireFinite(p.name, p.value); err != nil {
			return err
		}
	}

	switch {
	case c.Alpha <= 0:
		return core.NewConfigurationError("alpha", c.Alpha, "must be > 0")
	case c.SampleRate <= 0:
		return core.NewConfigurationError("sample_rate", c.SampleRate, "must be > 0")
	case c.LowCutoff <= 0:
		return core.NewConfigurationError("low_cutoff", c.LowCutoff, "must be > 0")
	case c.HighCutoff <= c.LowCutoff:
		return core.NewConfigurationError("high_cutoff", c.HighCutoff, "must exceed low_cutoff")
	case c.HighCutoff >= c.SampleRate/2:
		return core.NewConfigurationError("high_cutoff", c.HighCutoff, "must be below the Nyquist rate")
	case c.Levels < 1:
		return core.NewConfigurationError("levels", float64(c.Levels), "must be >= 1")
	}

	return nil
}
