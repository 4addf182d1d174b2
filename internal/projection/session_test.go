package projection

import (
	"testing"
	"time"

	"github.com/ironsheep/planet-projector/internal/detection"
	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/notify"
)

func testSession(t *testing.T, frames int) *Session {
	t.Helper()
	store := imaging.NewStore()
	textures := make([]imaging.TextureID, frames)
	for i := range textures {
		textures[i] = store.Create(64, 48)
	}
	disk := detection.DiskInfo{CenterX: 32, CenterY: 24, Diameter: 20}
	return NewSession(store, textures, 64, 48, disk)
}

func TestNewSessionDefaults(t *testing.T) {
	s := testSession(t, 5)

	p := s.Params()
	if p.NumImages != 5 {
		t.Errorf("NumImages = %d, want 5", p.NumImages)
	}
	if p.DiskDiameter != 20 {
		t.Errorf("DiskDiameter = %f, want 20", p.DiskDiameter)
	}
	if p.Flattening != 0.06487 {
		t.Errorf("default flattening = %f, want Jupiter preset", p.Flattening)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex())
	}
	if s.Playing() {
		t.Error("new session already playing")
	}
}

func TestSessionParamChangeBroadcastsSnapshot(t *testing.T) {
	s := testSession(t, 3)

	var got []SourceParameters
	s.SubscribeParams(notify.Func[SourceParameters](func(p SourceParameters) {
		got = append(got, p)
	}))

	s.SetInclination(12.5)
	s.SetRoll(-3)

	if len(got) != 2 {
		t.Fatalf("received %d snapshots, want 2", len(got))
	}
	if got[0].Inclination != 12.5 || got[0].Roll != 0 {
		t.Errorf("first snapshot = %+v", got[0])
	}
	if got[1].Inclination != 12.5 || got[1].Roll != -3 {
		t.Errorf("second snapshot = %+v", got[1])
	}
}

func TestSessionSetPlanet(t *testing.T) {
	s := testSession(t, 3)
	mars, _ := PlanetByName(Planets(), "Mars")

	s.SetPlanet(mars)

	p := s.Params()
	if p.Flattening != mars.Flattening || p.SiderealRotationPeriod != mars.SiderealRotation {
		t.Errorf("params after SetPlanet = %+v", p)
	}
}

func TestSessionCurrentImageNotification(t *testing.T) {
	s := testSession(t, 4)

	var got []CurrentImage
	s.SubscribeCurrentImage(notify.Func[CurrentImage](func(ci CurrentImage) {
		got = append(got, ci)
	}))

	s.SetCurrentIndex(2)
	s.SetCurrentIndex(2) // no change, no notification

	if len(got) != 1 {
		t.Fatalf("received %d notifications, want 1", len(got))
	}
	if got[0].Index != 2 || got[0].Texture != s.Textures()[2] {
		t.Errorf("notification = %+v", got[0])
	}
}

func TestSessionSubscriberLifetime(t *testing.T) {
	s := testSession(t, 4)

	var live, dying int
	s.SubscribeCurrentImage(notify.Func[CurrentImage](func(CurrentImage) { live++ }))
	h := s.SubscribeCurrentImage(notify.Func[CurrentImage](func(CurrentImage) { dying++ }))

	s.SetCurrentIndex(1)
	h.Close()
	s.SetCurrentIndex(2)

	if live != 2 {
		t.Errorf("live subscriber notified %d times, want 2", live)
	}
	if dying != 1 {
		t.Errorf("closed subscriber notified %d times, want 1", dying)
	}
}

func TestSessionPlaybackTick(t *testing.T) {
	s := testSession(t, 5)
	start := time.Now()

	s.Play(start)
	if !s.Playing() {
		t.Fatal("Play did not enable playback")
	}

	// default 25 fps: 3 whole frames after 130 ms
	s.Tick(start.Add(130 * time.Millisecond))
	if s.CurrentIndex() != 3 {
		t.Errorf("frame after 130ms = %d, want 3", s.CurrentIndex())
	}

	// bounce-back: 6 frames in, a 5-frame sequence is on its way down
	s.Tick(start.Add(250 * time.Millisecond))
	if s.CurrentIndex() != 2 {
		t.Errorf("frame after 250ms = %d, want 2", s.CurrentIndex())
	}

	s.Stop()
	idx := s.CurrentIndex()
	s.Tick(start.Add(500 * time.Millisecond))
	if s.CurrentIndex() != idx {
		t.Error("Tick advanced while stopped")
	}
}

func TestSessionCyclicPlayback(t *testing.T) {
	s := testSession(t, 4)
	start := time.Now()

	s.ToggleBounceBack(start) // default is bounce-back; switch to cyclic
	if s.BounceBack() {
		t.Fatal("still in bounce-back mode")
	}

	s.Play(start)
	s.Tick(start.Add(210 * time.Millisecond)) // 5 whole frames at 25 fps
	if s.CurrentIndex() != 1 {
		t.Errorf("frame = %d, want 1 (wrapped)", s.CurrentIndex())
	}
}

func TestSessionSetImagesReplacesWholesale(t *testing.T) {
	s := testSession(t, 3)

	var params int
	var images int
	s.SubscribeParams(notify.Func[SourceParameters](func(SourceParameters) { params++ }))
	s.SubscribeCurrentImage(notify.Func[CurrentImage](func(CurrentImage) { images++ }))

	store := s.Store()
	newTextures := []imaging.TextureID{store.Create(32, 32), store.Create(32, 32)}
	s.SetImages(newTextures, 32, 32, detection.DiskInfo{CenterX: 16, CenterY: 16, Diameter: 10})

	if s.NumImages() != 2 {
		t.Errorf("NumImages = %d, want 2", s.NumImages())
	}
	if s.Params().DiskDiameter != 10 {
		t.Errorf("DiskDiameter = %f, want 10", s.Params().DiskDiameter)
	}
	if params != 1 || images != 1 {
		t.Errorf("notifications: params=%d images=%d, want 1 and 1", params, images)
	}
	if w, h := s.ImageSize(); w != 32 || h != 32 {
		t.Errorf("ImageSize = %dx%d, want 32x32", w, h)
	}
}
