package pulse

import (
	"errors"
	"image"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-evm/dsp/frame"
	"github.com/cwbudde/algo-evm/dsp/window"
)

var (
	// ErrInsufficientSamples is returned when fewer than MinSamples frames
	// have been pushed since construction or the last Reset.
	ErrInsufficientSamples = errors.New("pulse: not enough samples")
	// ErrFlatSignal is returned when the buffered trace has no variation.
	ErrFlatSignal = errors.New("pulse: signal has no variation")
	// ErrBandTooNarrow is returned when no FFT bin falls inside the search
	// band at the current resolution.
	ErrBandTooNarrow = errors.New("pulse: search band narrower than one frequency bin")
)

// Result holds one rate estimate.
type Result struct {
	FrequencyHz float64
	BPM         float64
	// PeakMagnitude is the spectral magnitude at the peak bin.
	PeakMagnitude float64
	// Prominence is the peak's share of the total power in the search band,
	// in (0, 1].
	Prominence float64
	Samples    int
}

// Estimator tracks a sliding window of frame means.
type Estimator struct {
	cfg   Config
	ring  []float64
	head  int
	count int

	plan     *algofft.Plan[complex128]
	planSize int
	win      []float64
}

// NewEstimator returns an Estimator for frames arriving at sampleRate fps.
func NewEstimator(sampleRate float64, opts ...Option) (*Estimator, error) {
	cfg := Config{SampleRate: sampleRate, MinHz: defaultMinHz, MaxHz: defaultMaxHz}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, core.NewConfigurationError("sampleRate", sampleRate, "must be > 0")
	}

	if cfg.Window == 0 {
		cfg.Window = int(math.Ceil(defaultWindowSeconds * sampleRate))
	}

	if cfg.MinSamples == 0 {
		cfg.MinSamples = min(cfg.Window, max(4, cfg.Window/2))
	}

	switch {
	case cfg.Window < 4:
		return nil, core.NewConfigurationError("window", float64(cfg.Window), "must be >= 4")
	case cfg.MinSamples < 4 || cfg.MinSamples > cfg.Window:
		return nil, core.NewConfigurationError("minSamples", float64(cfg.MinSamples), "must be in [4, window]")
	case !(cfg.MinHz >= 0):
		return nil, core.NewConfigurationError("minHz", cfg.MinHz, "must be >= 0")
	case !(cfg.MaxHz > cfg.MinHz) || cfg.MaxHz > sampleRate/2:
		return nil, core.NewConfigurationError("maxHz", cfg.MaxHz, "must exceed minHz and not exceed Nyquist")
	}

	return &Estimator{cfg: cfg, ring: make([]float64, cfg.Window)}, nil
}

// Config returns the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Len returns the number of buffered samples.
func (e *Estimator) Len() int {
	return e.count
}

// Reset discards all buffered samples.
func (e *Estimator) Reset() {
	e.head = 0
	e.count = 0
}

// Push appends the mean intensity of f inside the configured region.
func (e *Estimator) Push(f frame.Frame) {
	e.PushValue(regionMean(f, e.cfg.Region))
}

// PushValue appends one sample of the trace.
func (e *Estimator) PushValue(v float64) {
	e.ring[e.head] = v
	e.head = (e.head + 1) % len(e.ring)

	if e.count < len(e.ring) {
		e.count++
	}
}

// Samples returns the buffered trace in arrival order.
func (e *Estimator) Samples() []float64 {
	out := make([]float64, e.count)
	start := (e.head - e.count + len(e.ring)) % len(e.ring)

	for i := range out {
		out[i] = e.ring[(start+i)%len(e.ring)]
	}

	return out
}

// Estimate returns the dominant frequency of the buffered trace within the
// search band.
func (e *Estimator) Estimate() (Result, error) {
	if e.count < e.cfg.MinSamples {
		return Result{}, ErrInsufficientSamples
	}

	samples := e.Samples()

	mean, std := stat.MeanStdDev(samples, nil)
	if std == 0 || math.IsNaN(std) {
		return Result{}, ErrFlatSignal
	}

	for i := range samples {
		samples[i] -= mean
	}

	win, err := e.hannWindow(len(samples))
	if err != nil {
		return Result{}, err
	}

	if err := window.ApplyInPlace(samples, win); err != nil {
		return Result{}, err
	}

	size := nextPow2(max(len(samples), minFFTSize))
	if err := e.ensurePlan(size); err != nil {
		return Result{}, err
	}

	in := make([]complex128, size)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	spec := make([]complex128, size)
	if err := e.plan.Forward(spec, in); err != nil {
		return Result{}, err
	}

	binHz := e.cfg.SampleRate / float64(size)
	lo := max(1, int(math.Ceil(e.cfg.MinHz/binHz)))
	hi := min(size/2, int(math.Floor(e.cfg.MaxHz/binHz)))

	if hi < lo {
		return Result{}, ErrBandTooNarrow
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	bandPower := vecmath.Sum(power[lo : hi+1])
	if bandPower == 0 {
		return Result{}, ErrFlatSignal
	}

	peak := lo
	for k := lo + 1; k <= hi; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	freq := (float64(peak) + parabolicOffset(mag, peak)) * binHz

	return Result{
		FrequencyHz:   freq,
		BPM:           freq * 60,
		PeakMagnitude: mag[peak],
		Prominence:    power[peak] / bandPower,
		Samples:       len(samples),
	}, nil
}

func (e *Estimator) ensurePlan(size int) error {
	if e.plan != nil && e.planSize == size {
		return nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return err
	}

	e.plan = plan
	e.planSize = size

	return nil
}

// parabolicOffset refines the peak position from its two neighbours; the
// result is in [-0.5, 0.5].
func parabolicOffset(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return 0
	}

	a, b, c := mag[k-1], mag[k], mag[k+1]

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(a-c)/den, -0.5, 0.5)
}

// hannWindow returns Hann coefficients for n samples, cached across calls.
func (e *Estimator) hannWindow(n int) ([]float64, error) {
	if len(e.win) == n {
		return e.win, nil
	}

	w, err := window.Hann(n)
	if err != nil {
		return nil, err
	}

	e.win = w

	return w, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func regionMean(f frame.Frame, r image.Rectangle) float64 {
	if r.Empty() {
		return f.Mean()
	}

	r = r.Intersect(image.Rect(0, 0, f.Width, f.Height))
	if r.Empty() {
		return 0
	}

	var sum float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sum += vecmath.Sum(f.Row(y)[r.Min.X:r.Max.X])
	}

	return sum / float64(r.Dx()*r.Dy())
}
