package whitebg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register common decoders, including WebP via x/image/webp.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}

// DecodeImageBytes decodes raw image bytes using whatever codec matches the
// magic bytes.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image data", ErrDecode)
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Encode writes img to w in the format implied by the file extension ext
// (".png", ".webp", ".tif", ".tiff", ".bmp"; case-insensitive). Unknown
// extensions fall back to PNG. JPEG is refused with ErrEncode because it
// cannot carry the alpha channel the transform produces.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return fmt.Errorf("%w: jpeg cannot store an alpha channel", ErrEncode)
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return png.Encode(w, img)
	}
}
