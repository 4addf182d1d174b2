package imaging

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ExportName returns the file name for the 1-based output index:
// output_NNNNN.png, zero-padded to five digits.
func ExportName(index int) string {
	return fmt.Sprintf("output_%05d.png", index)
}

// MirrorIndex returns the 1-based output index of the bounce-back duplicate
// of frame i (0-based) in a sequence of count frames: 2*count - (i+1).
func MirrorIndex(count, i int) int {
	return 2*count - (i + 1)
}

// SaveFrame encodes img as PNG under dir using the sequential naming scheme
// and returns the written path.
func SaveFrame(dir string, index int, img image.Image) (string, error) {
	path := filepath.Join(dir, ExportName(index))
	if err := SaveImage(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// SaveImage encodes img at path; the format follows the file extension.
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
