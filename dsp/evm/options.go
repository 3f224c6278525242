package evm

// Option mutates a Config.
type Option func(*Config)

// WithAlpha sets the amplification factor.
func WithAlpha(alpha float64) Option {
	return func(cfg *Config) {
		cfg.Alpha = alpha
	}
}

// WithCutoffs sets the temporal pass band in Hz.
func WithCutoffs(low, high float64) Option {
	return func(cfg *Config) {
		cfg.LowCutoff = low
		cfg.HighCutoff = high
	}
}

// WithLevels sets the pyramid depth.
func WithLevels(levels int) Option {
	return func(cfg *Config) {
		cfg.Levels = levels
	}
}

// WithSampleRate sets the frame rate in frames per second.
func WithSampleRate(fps float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = fps
	}
}

// WithAttenuation sets the factor applied to the collapsed delta.
func WithAttenuation(attenuation float64) Option {
	return func(cfg *Config) {
		cfg.Attenuation = attenuation
	}
}

// ApplyOptions applies zero or more options to the default config. Values
// are not validated here; invalid settings surface from [New].
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
