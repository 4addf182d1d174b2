package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// LoadFrame decodes the image at path and validates it against the batch
// metadata: dimensions must equal wantWidth x wantHeight and the pixel format
// must classify as want. The decoded pixels are returned as NRGBA regardless
// of source format.
//
// Any decode failure or metadata mismatch is an error; the caller aborts the
// whole batch on the first one.
func LoadFrame(path string, wantWidth, wantHeight int, want Format) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != wantWidth || bounds.Dy() != wantHeight {
		return nil, fmt.Errorf("unexpected image dimensions (expected %dx%d, found %dx%d)",
			wantWidth, wantHeight, bounds.Dx(), bounds.Dy())
	}

	if got := FormatOf(img); got != want {
		return nil, fmt.Errorf("unexpected pixel format (expected %s, found %s)", want, got)
	}

	return imaging.Clone(img), nil
}

// ProbeFrame decodes the image at path and reports its dimensions and pixel
// format. Used to establish the batch metadata from the first file of a
// sequence.
func ProbeFrame(path string) (width, height int, format Format, err error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), FormatOf(img), nil
}
