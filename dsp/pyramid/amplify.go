package pyramid

import (
	"github.com/cwbudde/algo-evm/dsp/core"
	"github.com/cwbudde/algo-evm/dsp/frame"
)

// Amplify returns a new pyramid with every sample of every level multiplied
// by alpha. p is not modified.
func Amplify(p Pyramid, alpha float64) (Pyramid, error) {
	if err := core.RequireFinite("alpha", alpha); err != nil {
		return nil, err
	}

	out := make(Pyramid, len(p))
	for i := range p {
		out[i] = frame.Scale(p[i], alpha)
	}

	return out, nil
}
