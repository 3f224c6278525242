package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-evm/dsp/evm"
	"github.com/cwbudde/algo-evm/dsp/frame"
	"github.com/cwbudde/algo-evm/measure/pulse"
)

var errNoFrames = errors.New("no input frames")

// greenPlane carries most of the blood volume signal in RGB footage.
const greenPlane = 1

// summary describes a completed run.
type summary struct {
	Frames int
	Pulse  *pulse.Result
}

// run magnifies every frame of inv.input and writes numbered PNG frames to
// inv.output.
func run(ctx context.Context, inv invocation, logger *slog.Logger) (summary, error) {
	paths, err := listFrames(inv.input)
	if err != nil {
		return summary{}, err
	}

	if len(paths) == 0 {
		return summary{}, fmt.Errorf("%s: %w", inv.input, errNoFrames)
	}

	if err := os.MkdirAll(inv.output, 0o755); err != nil {
		return summary{}, err
	}

	ch, err := evm.NewChannelsFromConfig(3, inv.cfg.EVM)
	if err != nil {
		return summary{}, err
	}

	est := newEstimator(inv.cfg.EVM.SampleRate, len(paths), logger)

	logger.Info("Starting magnification",
		"frames", len(paths),
		"alpha", inv.cfg.EVM.Alpha,
		"low_hz", inv.cfg.EVM.LowCutoff,
		"high_hz", inv.cfg.EVM.HighCutoff,
		"levels", inv.cfg.EVM.Levels,
		"fps", inv.cfg.EVM.SampleRate)

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inv.cfg.Writers)

	processed, loopErr := processFrames(gctx, g, ch, est, paths, inv, logger)

	if err := g.Wait(); err != nil {
		return summary{Frames: processed}, err
	}

	if loopErr != nil {
		return summary{Frames: processed}, loopErr
	}

	if err := ctx.Err(); err != nil {
		return summary{Frames: processed}, err
	}

	sum := summary{Frames: processed}

	logger.Info("Magnification complete",
		"frames", processed,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if est != nil {
		res, err := est.Estimate()
		if err != nil {
			logger.Warn("Pulse estimate unavailable", "error", err)
		} else {
			sum.Pulse = &res
			logger.Info("Pulse estimate",
				"hz", fmt.Sprintf("%.3f", res.FrequencyHz),
				"bpm", fmt.Sprintf("%.1f", res.BPM),
				"prominence", fmt.Sprintf("%.2f", res.Prominence))
		}
	}

	return sum, nil
}

func processFrames(ctx context.Context, g *errgroup.Group, ch *evm.Channels, est *pulse.Estimator,
	paths []string, inv invocation, logger *slog.Logger,
) (int, error) {
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return i, nil
		}

		img, err := decodeFrame(path)
		if err != nil {
			return i, err
		}

		planes := splitRGB(toRGBA(img, inv.cfg.Scale))

		out, err := ch.Process(ctx, planes)
		if err != nil {
			return i, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		if est != nil {
			est.Push(frame.FromGray(out[greenPlane]))
		}

		merged, err := mergeRGB(out)
		if err != nil {
			return i, err
		}

		dst := filepath.Join(inv.output, fmt.Sprintf("%06d.png", i))
		g.Go(func() error {
			return writePNG(dst, merged)
		})

		logger.Debug("Frame processed", "index", i, "source", filepath.Base(path))
	}

	return len(paths), nil
}

// newEstimator sizes a pulse estimator to the whole sequence. It returns nil
// when the frame rate cannot resolve the search band.
func newEstimator(fps float64, frames int, logger *slog.Logger) *pulse.Estimator {
	maxHz := min(4.0, fps/2)

	est, err := pulse.NewEstimator(fps,
		pulse.WithWindow(max(frames, 8)),
		pulse.WithBand(0.7, maxHz))
	if err != nil {
		logger.Debug("Pulse estimation disabled", "error", err)
		return nil
	}

	return est
}
