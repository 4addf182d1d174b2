package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/planet-projector/internal/detection"
)

// DiskOverlay returns a copy of img with the detected disk boundary drawn on
// top, for detection preview exports.
//
// The marker color is chosen for contrast: the mean color inside the disk is
// sampled, its hue rotated by 180 degrees, and saturation and value pushed to
// full so the outline stays visible on both bright disks and dark limbs.
func DiskOverlay(img image.Image, disk detection.DiskInfo) *image.NRGBA {
	out := imaging.Clone(img)
	bounds := out.Bounds()

	cx := int(disk.CenterX)
	cy := int(disk.CenterY)
	radius := int(disk.Diameter / 2)

	marker := contrastColor(meanDiskColor(out, cx, cy, radius))

	for _, pt := range detection.CirclePoints(cx, cy, radius) {
		if pt.In(bounds) {
			out.SetNRGBA(pt.X, pt.Y, marker)
		}
	}
	return out
}

// meanDiskColor averages the pixels inside the disk. The average runs over a
// coarse sampling grid; exactness does not matter for picking a contrast hue.
func meanDiskColor(img *image.NRGBA, cx, cy, radius int) colorful.Color {
	step := radius / 8
	if step < 1 {
		step = 1
	}

	var r, g, b float64
	var n int
	for dy := -radius; dy <= radius; dy += step {
		for dx := -radius; dx <= radius; dx += step {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if !(image.Pt(x, y).In(img.Bounds())) {
				continue
			}
			c := img.NRGBAAt(x, y)
			r += float64(c.R)
			g += float64(c.G)
			b += float64(c.B)
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.Color{
		R: r / float64(n) / 255.0,
		G: g / float64(n) / 255.0,
		B: b / float64(n) / 255.0,
	}
}

func contrastColor(c colorful.Color) color.NRGBA {
	h, _, _ := c.Hsv()
	m := colorful.Hsv(math.Mod(h+180, 360), 1, 1)
	r, g, b := m.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
