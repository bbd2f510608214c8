package whitebg

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
)

// RemoveWhiteBackgroundFile reads the image at inputPath, makes every
// near-white pixel transparent and writes the result to outputPath. The
// output codec is chosen from the extension of outputPath (PNG when in
// doubt). The write is atomic: outputPath either appears fully encoded or
// not at all.
func RemoveWhiteBackgroundFile(inputPath, outputPath string, threshold int) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return err
	}

	cleaned, err := Remove(img, threshold)
	if err != nil {
		return err
	}

	return SaveImage(outputPath, cleaned)
}

// SaveImage encodes img to path, picking the codec from the extension. The
// encode goes to a uniquely named temp file in the destination directory
// which is renamed into place, so a failure never leaves a partial file at
// path.
func SaveImage(path string, img image.Image) error {
	tmp := path + "." + ksuid.New().String() + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := Encode(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		os.Remove(tmp)
		if errors.Is(err, ErrEncode) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
