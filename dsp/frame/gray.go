package frame

import (
	"image"
	"math"
)

// MaxGray is the upper bound of the 8-bit representable range.
const MaxGray = 255.0

// FromGray widens img to a float frame without rescaling.
func FromGray(img *image.Gray) Frame {
	b := img.Bounds()
	out := New(b.Dx(), b.Dy())

	for y := 0; y < out.Height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := out.Row(y)

		for x := range dst {
			dst[x] = float64(src[x])
		}
	}

	return out
}

// ToGray narrows f to an 8-bit image, rounding to nearest and clamping to
// [0, 255].
func (f Frame) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))

	for y := 0; y < f.Height; y++ {
		src := f.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width]

		for x, v := range src {
			switch {
			case math.IsNaN(v) || v <= 0:
				dst[x] = 0
			case v >= MaxGray:
				dst[x] = MaxGray
			default:
				dst[x] = uint8(v + 0.5)
			}
		}
	}

	return img
}
