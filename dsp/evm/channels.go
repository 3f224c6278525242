package evm

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// Channels runs one independent Magnifier per plane of a multi-channel
// stream. The magnifiers share no state, so planes of the same frame are
// processed concurrently.
type Channels struct {
	mags []*Magnifier
}

// NewChannels builds n magnifiers with identical configuration.
func NewChannels(n int, opts ...Option) (*Channels, error) {
	return NewChannelsFromConfig(n, ApplyOptions(opts...))
}

// NewChannelsFromConfig builds n magnifiers sharing cfg.
func NewChannelsFromConfig(n int, cfg Config) (*Channels, error) {
	if n < 1 {
		return nil, fmt.Errorf("evm: channel count %d must be >= 1", n)
	}

	mags := make([]*Magnifier, n)
	for i := range mags {
		m, err := NewFromConfig(cfg)
		if err != nil {
			return nil, err
		}

		mags[i] = m
	}

	return &Channels{mags: mags}, nil
}

// Len returns the number of channels.
func (c *Channels) Len() int {
	return len(c.mags)
}

// Channel returns the magnifier of channel i.
func (c *Channels) Channel(i int) *Magnifier {
	return c.mags[i]
}

// Reset clears the temporal state of every channel.
func (c *Channels) Reset() {
	for _, m := range c.mags {
		m.Reset()
	}
}

// Process magnifies one plane per channel and returns the results in the
// same order. It must not be called concurrently with itself. When ctx is
// cancelled before a channel starts, that channel is skipped and its filter
// state does not advance.
func (c *Channels) Process(ctx context.Context, planes []*image.Gray) ([]*image.Gray, error) {
	if len(planes) != len(c.mags) {
		return nil, fmt.Errorf("evm: got %d planes for %d channels", len(planes), len(c.mags))
	}

	out := make([]*image.Gray, len(planes))

	g, ctx := errgroup.WithContext(ctx)
	for i, plane := range planes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := c.mags[i].ProcessFrame(plane)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i, err)
			}

			out[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
