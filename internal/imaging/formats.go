package imaging

import "image"

// Format identifies the pixel format of a decoded source frame. Every frame
// in a batch must share one format.
type Format int

const (
	// FormatMono8 is single-channel 8-bit grayscale.
	FormatMono8 Format = iota + 1

	// FormatRGB8 is three-channel 8-bit color.
	FormatRGB8
)

// String returns the format name used in error messages.
func (f Format) String() string {
	switch f {
	case FormatMono8:
		return "Mono8"
	case FormatRGB8:
		return "RGB8"
	default:
		return "unknown"
	}
}

// FormatOf classifies a decoded image. Grayscale images map to FormatMono8;
// everything else is treated as FormatRGB8.
func FormatOf(img image.Image) Format {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return FormatMono8
	default:
		return FormatRGB8
	}
}
