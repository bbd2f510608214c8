package whitebg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

const (
	previewMaxSide = 512
	previewCell    = 8
)

// Preview composites img over a gray/white checkerboard so transparent
// regions are visible in viewers without their own transparency grid. The
// result is downscaled to at most previewMaxSide on the long side.
func Preview(img image.Image) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if longest > previewMaxSide {
		scale := float64(previewMaxSide) / float64(longest)
		img = resize.Resize(uint(float64(w)*scale), uint(float64(h)*scale), img, resize.Lanczos3)
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	light := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dark := color.NRGBA{R: 204, G: 204, B: 204, A: 255}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if (x/previewCell+y/previewCell)%2 == 0 {
				out.SetNRGBA(x, y, light)
			} else {
				out.SetNRGBA(x, y, dark)
			}
		}
	}

	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}
