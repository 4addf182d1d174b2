package projection

import (
	"fmt"
	"math"
	"time"
)

const halfPi = math.Pi / 2

// Type selects the map projection generated from the source disk.
type Type int

const (
	// Equirectangular maps longitude and latitude linearly to x and y.
	Equirectangular Type = iota

	// LambertCylindricalEqualArea maps latitude through its sine, preserving
	// area at the cost of polar stretching.
	LambertCylindricalEqualArea
)

// String returns the projection name as used on the command line.
func (t Type) String() string {
	switch t {
	case LambertCylindricalEqualArea:
		return "lambert"
	default:
		return "equirectangular"
	}
}

// ParseType converts a command-line projection name to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "equirectangular":
		return Equirectangular, nil
	case "lambert":
		return LambertCylindricalEqualArea, nil
	default:
		return 0, fmt.Errorf("unknown projection type %q", s)
	}
}

// SourceParameters is the full description of a loaded image sequence as it
// pertains to projection. It is a value type broadcast wholesale on every
// change; there are no partial updates.
type SourceParameters struct {
	// NumImages is the number of frames in the sequence.
	NumImages int

	// Inclination is the tilt of the planet's axis toward the viewer, in
	// degrees.
	Inclination float64

	// Roll is the rotation of the planet's axis within the image plane, in
	// degrees.
	Roll float64

	// FrameInterval is the capture interval between successive frames.
	FrameInterval time.Duration

	// DiskCenterX, DiskCenterY locate the disk center in source image pixels.
	DiskCenterX float64
	DiskCenterY float64

	// DiskDiameter is the disk diameter in source image pixels.
	DiskDiameter float64

	// Flattening is 1 - polarRadius/equatorialRadius.
	Flattening float64

	// SiderealRotationPeriod is the planet's rotation period.
	SiderealRotationPeriod time.Duration
}

// AutoRotationComp derives the per-frame horizontal compensation, in pixels,
// for the planet's rotation between captures: the fraction of a half rotation
// elapsing per frame interval, applied to the disk's half circumference.
func AutoRotationComp(p SourceParameters) float64 {
	return halfPi * p.DiskDiameter /
		(0.5 * p.SiderealRotationPeriod.Seconds() / p.FrameInterval.Seconds())
}

// OutputSize returns the pixel dimensions of the projection output buffer:
// the disk's half circumference plus room for the accumulated rotation
// compensation across the sequence, by a height determined by the projection
// type.
func OutputSize(p SourceParameters, rotationComp float64, kind Type) (width, height int) {
	width = int(math.Ceil(halfPi*p.DiskDiameter + float64(p.NumImages-1)*rotationComp))
	switch kind {
	case LambertCylindricalEqualArea:
		height = int(p.DiskDiameter)
	default:
		height = int(math.Ceil(halfPi * p.DiskDiameter))
	}
	return width, height
}

// FrameOffset returns the horizontal pixel offset of frame idx within the
// output buffer. Earlier frames sit further right: the planet's rotation
// carries surface features leftward across successive captures.
func FrameOffset(count, idx int, rotationComp float64) float64 {
	return float64(count-1-idx) * rotationComp
}
