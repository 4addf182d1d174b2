package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()

	id := store.Create(16, 8)
	buf, ok := store.Get(id)
	if !ok {
		t.Fatal("Get failed for freshly created handle")
	}
	if buf.Bounds().Dx() != 16 || buf.Bounds().Dy() != 8 {
		t.Errorf("buffer bounds = %v, want 16x8", buf.Bounds())
	}
}

func TestStoreDistinctHandles(t *testing.T) {
	store := NewStore()

	a := store.Create(4, 4)
	b := store.Create(4, 4)
	if a == b {
		t.Errorf("Create returned duplicate handle %d", a)
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	id := store.Create(2, 2)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	store.Update(id, img)

	buf, ok := store.Get(id)
	if !ok {
		t.Fatal("Get failed after Update")
	}
	if got := buf.NRGBAAt(1, 1); got.R != 9 || got.G != 8 || got.B != 7 {
		t.Errorf("pixel = %v, want {9 8 7 255}", got)
	}
}

func TestStoreGetUnknownHandle(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get(42); ok {
		t.Error("Get succeeded for unknown handle")
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	id := store.Create(4, 4)
	store.Clear()

	if store.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", store.Len())
	}
	if _, ok := store.Get(id); ok {
		t.Error("handle still valid after Clear")
	}
}
