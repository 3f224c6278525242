// Package pulse estimates the dominant periodic rate of a magnified video
// stream, such as a heart rate revealed by colour amplification.
//
// An [Estimator] keeps a sliding window of per-frame mean intensities over a
// region of interest. [Estimator.Estimate] removes the mean, applies a Hann
// window, zero-pads to a power of two and picks the strongest spectral peak
// inside the search band, refined by parabolic interpolation.
//
// # Usage
//
//	est, err := pulse.NewEstimator(30, pulse.WithWindow(300))
//	for each frame {
//	    est.Push(f)
//	}
//	res, err := est.Estimate()
//	fmt.Printf("%.0f bpm\n", res.BPM)
package pulse
