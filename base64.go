package whitebg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL)
// into an image.Image. It returns the decoded image and the detected format
// string ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode base64: %v", ErrDecode, err)
	}

	return Decode(bytes.NewReader(data))
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RemoveWhiteBackgroundBase64 removes the near-white background from a
// base64-encoded image and returns the cleaned image as base64 PNG, whether
// any pixel changed, and the inspection info.
func RemoveWhiteBackgroundBase64(input string, threshold int) (output string, changed bool, info Info, err error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", false, Info{}, err
	}

	info, err = Inspect(img, threshold)
	if err != nil {
		return "", false, Info{}, err
	}

	cleaned, err := Remove(img, threshold)
	if err != nil {
		return "", false, Info{}, err
	}

	output, err = EncodePNGToBase64(cleaned)
	if err != nil {
		return "", false, Info{}, err
	}

	return output, info.Background > 0, info, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
