package whitebg

import (
	"bytes"
	"fmt"
	"image/png"
)

// RemoveWhiteBackgroundBytes decodes raw image bytes, makes every near-white
// pixel transparent and returns the result as PNG bytes. changed reports
// whether any pixel was classified as background; info carries the counts
// and the foreground bounding box.
func RemoveWhiteBackgroundBytes(data []byte, threshold int) (out []byte, changed bool, info Info, err error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, false, Info{}, err
	}

	info, err = Inspect(img, threshold)
	if err != nil {
		return nil, false, Info{}, err
	}

	cleaned, err := Remove(img, threshold)
	if err != nil {
		return nil, false, Info{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cleaned); err != nil {
		return nil, false, Info{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return buf.Bytes(), info.Background > 0, info, nil
}
