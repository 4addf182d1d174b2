package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func grayFrame(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func colorFrame(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path, grayFrame(40, 30, 128))

	img, err := LoadFrame(path, 40, 30, FormatMono8)
	if err != nil {
		t.Fatalf("LoadFrame failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", img.Bounds())
	}
	if got := img.NRGBAAt(10, 10); got.R != 128 {
		t.Errorf("pixel value = %v, want 128 gray", got)
	}
}

func TestLoadFrameDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path, grayFrame(40, 30, 128))

	_, err := LoadFrame(path, 64, 64, FormatMono8)
	if err == nil || !strings.Contains(err.Error(), "unexpected image dimensions") {
		t.Errorf("LoadFrame error = %v, want dimension mismatch", err)
	}
}

func TestLoadFrameFormatMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path, colorFrame(40, 30, color.NRGBA{R: 200, G: 10, B: 10, A: 255}))

	_, err := LoadFrame(path, 40, 30, FormatMono8)
	if err == nil || !strings.Contains(err.Error(), "unexpected pixel format") {
		t.Errorf("LoadFrame error = %v, want format mismatch", err)
	}
}

func TestLoadFrameDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrame(path, 40, 30, FormatMono8)
	if err == nil {
		t.Error("LoadFrame succeeded on corrupt file")
	}
}

func TestProbeFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path, grayFrame(17, 23, 99))

	w, h, format, err := ProbeFrame(path)
	if err != nil {
		t.Fatalf("ProbeFrame failed: %v", err)
	}
	if w != 17 || h != 23 || format != FormatMono8 {
		t.Errorf("ProbeFrame = %dx%d %v, want 17x23 Mono8", w, h, format)
	}
}

func TestFormatOf(t *testing.T) {
	if got := FormatOf(image.NewGray(image.Rect(0, 0, 1, 1))); got != FormatMono8 {
		t.Errorf("FormatOf(Gray) = %v, want Mono8", got)
	}
	if got := FormatOf(image.NewNRGBA(image.Rect(0, 0, 1, 1))); got != FormatRGB8 {
		t.Errorf("FormatOf(NRGBA) = %v, want RGB8", got)
	}
}
