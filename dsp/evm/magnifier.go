package evm

import (
	"fmt"
	"image"

	"github.com/cwbudde/algo-evm/dsp/filter/design"
	"github.com/cwbudde/algo-evm/dsp/frame"
	"github.com/cwbudde/algo-evm/dsp/pyramid"
	"github.com/cwbudde/algo-evm/dsp/temporal"
)

// Magnifier is the per-channel magnification pipeline. It owns one temporal
// band-pass filter and is not safe for concurrent use.
type Magnifier struct {
	cfg    Config
	filter *temporal.Bandpass
}

// New builds a Magnifier from the default config adjusted by opts.
func New(opts ...Option) (*Magnifier, error) {
	return NewFromConfig(ApplyOptions(opts...))
}

// NewFromConfig builds a Magnifier from cfg.
func NewFromConfig(cfg Config) (*Magnifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("evm: %w", err)
	}

	lo, hi, err := design.BandEdges(filterOrder, cfg.LowCutoff, cfg.HighCutoff, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("evm: %w", err)
	}

	filter, err := temporal.New(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("evm: %w", err)
	}

	return &Magnifier{cfg: cfg, filter: filter}, nil
}

// Config returns the parameters the Magnifier was built with.
func (m *Magnifier) Config() Config {
	return m.cfg
}

// Reset clears the temporal filter state. Call it when the stream is
// interrupted or its resolution changes.
func (m *Magnifier) Reset() {
	m.filter.Reset()
}

// ProcessFrame magnifies one 8-bit frame and returns a new frame of the same
// size.
func (m *Magnifier) ProcessFrame(src *image.Gray) (*image.Gray, error) {
	out, err := m.ProcessFloat(frame.FromGray(src))
	if err != nil {
		return nil, err
	}

	return out.ToGray(), nil
}

// ProcessFloat runs the pipeline on an already widened frame with samples
// in [0, 255] and returns the clamped, un-narrowed result.
func (m *Magnifier) ProcessFloat(f frame.Frame) (frame.Frame, error) {
	p, err := pyramid.Build(f, m.cfg.Levels)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("evm: %w", err)
	}

	bandpassed, err := m.filter.Apply(p)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("evm: %w", err)
	}

	amplified, err := pyramid.Amplify(bandpassed, m.cfg.Alpha)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("evm: %w", err)
	}

	delta, err := pyramid.Collapse(amplified)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("evm: %w", err)
	}

	out := frame.AddScaled(f, delta, m.cfg.Attenuation)
	out.ClampInPlace(0, frame.MaxGray)

	return out, nil
}
