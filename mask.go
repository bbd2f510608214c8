package whitebg

import (
	"fmt"
	"image"
)

// Info reports what Inspect found for a given image and threshold.
type Info struct {
	// Bounds is the image rectangle the counts refer to.
	Bounds image.Rectangle
	// Background is the number of pixels classified as background.
	Background int
	// Foreground is the bounding box of the non-background pixels, in image
	// coordinates. It is the zero rectangle when every pixel is background.
	Foreground image.Rectangle
}

// BackgroundMask classifies every pixel of img against threshold and returns
// the result as a flat row-major grid, true where the pixel is background.
// The stride is Bounds().Dx().
func BackgroundMask(img image.Image, threshold int) ([]bool, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image provided", ErrDecode)
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}

	src := cloneToNRGBA(img)
	mask := make([]bool, src.Bounds().Dx()*src.Bounds().Dy())

	idx := 0
	for i := 0; i < len(src.Pix); i += 4 {
		mask[idx] = int(src.Pix[i]) > threshold && int(src.Pix[i+1]) > threshold && int(src.Pix[i+2]) > threshold
		idx++
	}
	return mask, nil
}

// Inspect counts the background pixels of img under threshold and locates
// the bounding box of whatever remains opaque after removal.
func Inspect(img image.Image, threshold int) (Info, error) {
	mask, err := BackgroundMask(img, threshold)
	if err != nil {
		return Info{}, err
	}

	bounds := img.Bounds()
	w := bounds.Dx()

	count := 0
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for i, bg := range mask {
		if bg {
			count++
			continue
		}
		x := bounds.Min.X + i%w
		y := bounds.Min.Y + i/w
		found = true
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	info := Info{Bounds: bounds, Background: count}
	if found {
		info.Foreground = image.Rect(minX, minY, maxX+1, maxY+1)
	}
	return info, nil
}
