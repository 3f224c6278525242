// Command evmmag applies Eulerian video magnification to an image sequence.
//
// Usage:
//
//	evmmag [flags] <input-dir> <output-dir>
//
// Frames are read from input-dir in lexical order (png, jpeg, tiff, bmp and
// webp), magnified per colour channel and written to output-dir as numbered
// PNG files. A pulse estimate derived from the magnified green channel is
// logged at the end.
//
// Examples:
//
//	evmmag frames/ out/
//	evmmag --alpha 100 --low 0.8 --high 1.2 --fps 30 frames/ out/
//	evmmag --config face.yaml --scale 0.5 frames/ out/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

const version = "v0.1.0"

func main() {
	inv, err := parseArgs(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, errVersion):
		fmt.Printf("evmmag %s\n", version)
		os.Exit(0)
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "evmmag: %v\n", err)
		os.Exit(2)
	}

	level, _ := inv.cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("cmd", "evmmag")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx, inv, logger); err != nil {
		logger.Error("Magnification failed", "error", err)
		stop()
		os.Exit(1)
	}
}
