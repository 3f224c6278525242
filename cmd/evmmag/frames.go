package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var inputExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

// listFrames returns the image files of dir in lexical order.
func listFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, e := range entries {
		if e.IsDir() || !inputExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}

		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return img, nil
}

// toRGBA converts img to an RGBA image with origin (0, 0), resized by scale.
func toRGBA(img image.Image, scale float64) *image.RGBA {
	b := img.Bounds()

	if scale == 1 {
		if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
			return rgba
		}

		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)

		return dst
	}

	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	return dst
}

// splitRGB separates the colour channels of img into three planes.
func splitRGB(img *image.RGBA) []*image.Gray {
	b := img.Bounds()
	planes := []*image.Gray{image.NewGray(b), image.NewGray(b), image.NewGray(b)}

	for y := range b.Dy() {
		src := img.Pix[y*img.Stride : y*img.Stride+4*b.Dx()]
		for x := range b.Dx() {
			for c, p := range planes {
				p.Pix[y*p.Stride+x] = src[4*x+c]
			}
		}
	}

	return planes
}

var errPlaneCount = errors.New("expected 3 planes")

// mergeRGB is the inverse of splitRGB with an opaque alpha channel.
func mergeRGB(planes []*image.Gray) (*image.RGBA, error) {
	if len(planes) != 3 {
		return nil, errPlaneCount
	}

	b := planes[0].Bounds()
	dst := image.NewRGBA(b)

	for y := range b.Dy() {
		for x := range b.Dx() {
			i := planes[0].PixOffset(x+b.Min.X, y+b.Min.Y)
			dst.SetRGBA(x+b.Min.X, y+b.Min.Y, color.RGBA{
				R: planes[0].Pix[i],
				G: planes[1].Pix[i],
				B: planes[2].Pix[i],
				A: 0xff,
			})
		}
	}

	return dst, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
