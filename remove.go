package whitebg

import (
	"fmt"
	"image"
	"image/draw"
)

// DefaultThreshold is the channel cutoff used when the caller does not pick
// one. 240 catches scanner-white and export-white while leaving anti-aliased
// edges alone.
const DefaultThreshold = 240

// Remove returns a copy of img in which every background pixel has its alpha
// channel set to 0. A pixel is background iff red, green and blue each
// strictly exceed threshold; the channels are compared independently and the
// source alpha plays no part in the classification. All other bytes,
// including the RGB values of background pixels, are preserved.
//
// Sources without an alpha channel are treated as fully opaque. The result
// is always a fresh *image.NRGBA; img is never mutated.
func Remove(img image.Image, threshold int) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image provided", ErrDecode)
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}

	out := cloneToNRGBA(img)
	for i := 0; i < len(out.Pix); i += 4 {
		if int(out.Pix[i]) > threshold && int(out.Pix[i+1]) > threshold && int(out.Pix[i+2]) > threshold {
			out.Pix[i+3] = 0
		}
	}
	return out, nil
}

func checkThreshold(threshold int) error {
	if threshold < 0 || threshold > 255 {
		return fmt.Errorf("%w: %d not in [0, 255]", ErrThreshold, threshold)
	}
	return nil
}

// cloneToNRGBA copies the image into a mutable non-premultiplied buffer.
// NRGBA matters: a premultiplied RGBA would zero the color bytes along with
// the alpha and the original RGB values would be lost.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
