package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// errVersion is returned by parseArgs when --version was requested.
var errVersion = errors.New("version requested")

type invocation struct {
	cfg    Config
	input  string
	output string
}

// parseArgs resolves the configuration in three layers: defaults, then the
// --config file, then flags the user set explicitly.
func parseArgs(args []string, stderr io.Writer) (invocation, error) {
	def := DefaultConfig()

	fs := pflag.NewFlagSet("evmmag", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: evmmag [flags] <input-dir> <output-dir>\n\n")
		fmt.Fprintf(stderr, "Magnifies subtle temporal colour changes in an image sequence.\n\n")
		fs.PrintDefaults()
	}

	var (
		configFile  = fs.StringP("config", "c", "", "YAML configuration file")
		alpha       = fs.Float64P("alpha", "a", def.EVM.Alpha, "amplification factor")
		low         = fs.Float64P("low", "l", def.EVM.LowCutoff, "low cutoff frequency in Hz")
		high        = fs.Float64P("high", "H", def.EVM.HighCutoff, "high cutoff frequency in Hz")
		levels      = fs.IntP("levels", "n", def.EVM.Levels, "pyramid levels")
		fps         = fs.Float64P("fps", "f", def.EVM.SampleRate, "frame rate of the sequence")
		attenuation = fs.Float64("attenuation", def.EVM.Attenuation, "scale of the magnified signal added back to the frame")
		scale       = fs.Float64P("scale", "s", def.Scale, "resize factor applied before magnification")
		writers     = fs.Int("writers", def.Writers, "concurrent PNG encoders")
		logLevel    = fs.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
		version     = fs.BoolP("version", "v", false, "print version and exit")
	)

	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}

	if *version {
		return invocation{}, errVersion
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return invocation{}, fmt.Errorf("expected 2 arguments, got %d", fs.NArg())
	}

	cfg := def
	if *configFile != "" {
		var err error
		if cfg, err = LoadConfig(*configFile, def); err != nil {
			return invocation{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "alpha":
			cfg.EVM.Alpha = *alpha
		case "low":
			cfg.EVM.LowCutoff = *low
		case "high":
			cfg.EVM.HighCutoff = *high
		case "levels":
			cfg.EVM.Levels = *levels
		case "fps":
			cfg.EVM.SampleRate = *fps
		case "attenuation":
			cfg.EVM.Attenuation = *attenuation
		case "scale":
			cfg.Scale = *scale
		case "writers":
			cfg.Writers = *writers
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return invocation{}, err
	}

	return invocation{cfg: cfg, input: fs.Arg(0), output: fs.Arg(1)}, nil
}
