package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/projection"
)

// CPU renders map projections of a planetary disk by inverse mapping: every
// output pixel is converted to a longitude/latitude on the visible
// hemisphere, carried through the globe orientation transform, projected
// back onto the source disk and sampled bilinearly.
//
// A CPU renderer reads source frames from a Store by handle, so it can run
// on the worker thread without sharing pixel pointers with the interactive
// thread.
type CPU struct {
	store *imaging.Store
}

// NewCPU creates a renderer reading source frames from store.
func NewCPU(store *imaging.Store) *CPU {
	return &CPU{store: store}
}

// RenderFrame draws the projection of one source frame into dst at the
// frame's rotation-compensation offset. Pixels outside the frame's mapped
// strip, or mapping to points off the source image, are left black.
//
// The visible hemisphere spans longitude and latitude [-90°, 90°]. The
// globe orientation is roll ∘ inclination, with polar flattening applied as
// a vertical scale on the projected disk, matching how the source images
// show the planet.
func (r *CPU) RenderFrame(dst *image.NRGBA, src imaging.TextureID, frameIdx, frameCount int, p projection.SourceParameters, rotationComp float64, kind projection.Type) error {
	srcImg, ok := r.store.Get(src)
	if !ok {
		return fmt.Errorf("unknown texture handle %d", src)
	}

	globe := globeTransform(p.Inclination, p.Roll)

	width := dst.Bounds().Dx()
	height := dst.Bounds().Dy()
	stripWidth := math.Pi / 2 * p.DiskDiameter
	offset := projection.FrameOffset(frameCount, frameIdx, rotationComp)
	radius := p.DiskDiameter / 2
	black := color.NRGBA{A: 255}

	v := mat.NewVecDense(3, nil)
	u := mat.NewVecDense(3, nil)

	for y := 0; y < height; y++ {
		lat := latitudeAt(y, height, kind)
		sinLat, cosLat := math.Sincos(lat)

		for x := 0; x < width; x++ {
			fx := float64(x) + 0.5 - offset
			if fx < 0 || fx >= stripWidth {
				dst.SetNRGBA(x, y, black)
				continue
			}
			lon := (fx/stripWidth - 0.5) * math.Pi

			v.SetVec(0, math.Sin(lon)*cosLat)
			v.SetVec(1, sinLat)
			v.SetVec(2, math.Cos(lon)*cosLat)
			u.MulVec(globe, v)

			if u.AtVec(2) < 0 {
				// rotated behind the visible hemisphere
				dst.SetNRGBA(x, y, black)
				continue
			}

			sx := p.DiskCenterX + u.AtVec(0)*radius
			sy := p.DiskCenterY - u.AtVec(1)*radius*(1-p.Flattening)
			dst.SetNRGBA(x, y, sampleBilinear(srcImg, sx, sy))
		}
	}
	return nil
}

// latitudeAt maps an output row to its latitude in radians.
func latitudeAt(y, height int, kind projection.Type) float64 {
	t := (float64(y) + 0.5) / float64(height)
	switch kind {
	case projection.LambertCylindricalEqualArea:
		return math.Asin(1 - 2*t)
	default:
		return (0.5 - t) * math.Pi
	}
}

// globeTransform composes the orientation applied to hemisphere points
// before projecting them onto the disk: inclination tilts around the x axis,
// roll turns around the viewing axis.
func globeTransform(inclinationDeg, rollDeg float64) *mat.Dense {
	sinI, cosI := math.Sincos(inclinationDeg * math.Pi / 180)
	sinR, cosR := math.Sincos(rollDeg * math.Pi / 180)

	inclination := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cosI, -sinI,
		0, sinI, cosI,
	})
	roll := mat.NewDense(3, 3, []float64{
		cosR, -sinR, 0,
		sinR, cosR, 0,
		0, 0, 1,
	})

	var m mat.Dense
	m.Mul(roll, inclination)
	return &m
}

// sampleBilinear samples img at a sub-pixel position. Samples beyond the
// image edge read as black.
func sampleBilinear(img *image.NRGBA, x, y float64) color.NRGBA {
	x -= 0.5
	y -= 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	var r, g, b float64
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			w := weight(tx, dx) * weight(ty, dy)
			if w == 0 {
				continue
			}
			c := pixelAt(img, x0+dx, y0+dy)
			r += w * float64(c.R)
			g += w * float64(c.G)
			b += w * float64(c.B)
		}
	}
	return color.NRGBA{
		R: uint8(math.Round(r)),
		G: uint8(math.Round(g)),
		B: uint8(math.Round(b)),
		A: 255,
	}
}

func weight(t float64, step int) float64 {
	if step == 0 {
		return 1 - t
	}
	return t
}

func pixelAt(img *image.NRGBA, x, y int) color.NRGBA {
	if !(image.Pt(x, y).In(img.Bounds())) {
		return color.NRGBA{A: 255}
	}
	return img.NRGBAAt(x, y)
}
