package detection

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// ErrDiskNotFound is returned when no disk satisfying the size constraints is
// present in the image.
var ErrDiskNotFound = errors.New("could not find planetary disk")

// DiskInfo describes a detected planetary disk. Coordinates are 0-based image
// pixels; the center is sub-pixel accurate. Diameter is always >= 4 and the
// disk is fully contained within the image bounds.
type DiskInfo struct {
	CenterX  float64
	CenterY  float64
	Diameter float64
}

// DetectDisk locates the circular silhouette of a planet in a raster image
// without user input.
//
// # Algorithm
//
//  1. Convert the image to single-channel intensity and find the maximum
//     sample value M.
//  2. Zero every pixel at or below 2% of M. This removes faint background
//     glow that would otherwise pull the centroid off the disk.
//  3. The intensity centroid of the thresholded image is the center estimate.
//  4. Binary-search the radius between 2 and the centroid's minimum distance
//     to any image edge. A candidate radius is "outside the disk" when every
//     point of its rasterized circle (see CirclePoints) lies on background.
//     The search converges on the largest radius still touching the disk.
//
// Fails with ErrDiskNotFound when the circle of radius 2 is already fully
// outside (disk smaller than 2 px in radius) or the circle at the upper bound
// is not (disk extends past the image edge).
func DetectDisk(img image.Image) (DiskInfo, error) {
	gray := imaging.Grayscale(img)
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()
	if width == 0 || height == 0 {
		return DiskInfo{}, ErrDiskNotFound
	}

	var maxValue uint8
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+4*width]
		for x := 0; x < width; x++ {
			if v := row[4*x]; v > maxValue {
				maxValue = v
			}
		}
	}

	// cut the lower 2% of signal to keep a bright background from skewing
	// the centroid; Threshold whitens values >= level, so the level sits one
	// step above the cut
	cut := uint8(2 * int(maxValue) / 100)
	mask := segment.Threshold(gray, cut+1)

	var sum, sumX, sumY float64
	for y := 0; y < height; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		for x := 0; x < width; x++ {
			v := float64(row[x])
			sum += v
			sumX += v * float64(x)
			sumY += v * float64(y)
		}
	}
	if sum == 0 {
		return DiskInfo{}, ErrDiskNotFound
	}
	centerX := sumX / sum
	centerY := sumY / sum

	cx, cy := int(centerX), int(centerY)

	outsideDisk := func(radius int) bool {
		for _, pt := range CirclePoints(cx, cy, radius) {
			if mask.Pix[pt.Y*mask.Stride+pt.X] != 0 {
				return false
			}
		}
		return true
	}

	lower := 2
	upper := min4(cx, cy, width-1-cx, height-1-cy)

	if upper < lower {
		return DiskInfo{}, ErrDiskNotFound
	}
	if outsideDisk(lower) {
		// disk is less than 2 pixels in radius
		return DiskInfo{}, ErrDiskNotFound
	}
	if !outsideDisk(upper) {
		// disk extends outside the image
		return DiskInfo{}, ErrDiskNotFound
	}

	var radius int
	for {
		delta := (upper - lower) / 2
		if delta == 0 {
			radius = lower
			break
		}
		mid := lower + delta
		if !outsideDisk(mid) {
			lower = mid
		} else {
			upper = mid
		}
	}

	return DiskInfo{CenterX: centerX, CenterY: centerY, Diameter: float64(2 * radius)}, nil
}

func min4(a, b, c, d int) int {
	m := a
	for _, v := range []int{b, c, d} {
		if v < m {
			m = v
		}
	}
	return m
}
