package projection

import (
	"time"

	"github.com/ironsheep/planet-projector/internal/detection"
	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/notify"
	"github.com/ironsheep/planet-projector/internal/playback"
)

// CurrentImage is the payload broadcast when the session's current frame
// changes.
type CurrentImage struct {
	Index   int
	Texture imaging.TextureID
}

// Session is the interactive-thread owner of a loaded image sequence: the
// texture handles, the source parameters, the current frame and its playback
// state. Dependent views subscribe to current-image and parameter changes;
// the session never calls back into views except through those registries.
//
// Session is confined to the interactive thread. The background worker only
// ever sees texture handles taken from it.
type Session struct {
	store    *imaging.Store
	textures []imaging.TextureID

	imageWidth  int
	imageHeight int

	current  int
	fps      int
	playback playback.State
	params   SourceParameters

	currentSubs notify.Registry[CurrentImage]
	paramSubs   notify.Registry[SourceParameters]
}

const defaultFPS = 25

// NewSession creates a session for a freshly loaded batch. The disk info
// comes from detection on the first frame; physical parameters default to
// the Jupiter preset until the user picks another.
func NewSession(store *imaging.Store, textures []imaging.TextureID, width, height int, disk detection.DiskInfo) *Session {
	s := &Session{
		store:       store,
		imageWidth:  width,
		imageHeight: height,
		fps:         defaultFPS,
		playback:    playback.State{Initial: playback.Forward},
	}
	s.setImageSet(textures, disk)
	return s
}

func (s *Session) setImageSet(textures []imaging.TextureID, disk detection.DiskInfo) {
	jupiter := Planets()[0]
	s.textures = textures
	s.current = 0
	s.playback.Enabled = false
	s.params = SourceParameters{
		NumImages:              len(textures),
		FrameInterval:          time.Minute,
		DiskCenterX:            disk.CenterX,
		DiskCenterY:            disk.CenterY,
		DiskDiameter:           disk.Diameter,
		Flattening:             jupiter.Flattening,
		SiderealRotationPeriod: jupiter.SiderealRotation,
	}
}

// SetImages replaces the whole image set after a new batch is loaded.
// Parameters are rebuilt from scratch and both registries are notified.
func (s *Session) SetImages(textures []imaging.TextureID, width, height int, disk detection.DiskInfo) {
	s.imageWidth = width
	s.imageHeight = height
	s.setImageSet(textures, disk)
	s.paramSubs.NotifyAll(s.params)
	s.notifyCurrentImage()
}

// Store returns the buffer store backing the session's texture handles.
func (s *Session) Store() *imaging.Store { return s.store }

// Textures returns the handles of all frames, in sequence order.
func (s *Session) Textures() []imaging.TextureID { return s.textures }

// NumImages returns the sequence length.
func (s *Session) NumImages() int { return len(s.textures) }

// ImageSize returns the common frame dimensions.
func (s *Session) ImageSize() (width, height int) { return s.imageWidth, s.imageHeight }

// Params returns the current parameter snapshot.
func (s *Session) Params() SourceParameters { return s.params }

// CurrentIndex returns the current frame index.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentTexture returns the handle of the current frame.
func (s *Session) CurrentTexture() imaging.TextureID { return s.textures[s.current] }

// SetCurrentIndex jumps to the given frame and notifies subscribers if it
// changed.
func (s *Session) SetCurrentIndex(idx int) {
	if idx == s.current {
		return
	}
	s.current = idx
	s.notifyCurrentImage()
}

func (s *Session) notifyCurrentImage() {
	if len(s.textures) == 0 {
		return
	}
	s.currentSubs.NotifyAll(CurrentImage{Index: s.current, Texture: s.textures[s.current]})
}

// SubscribeCurrentImage registers for current-frame changes. The caller owns
// the handle and closes it when the view goes away.
func (s *Session) SubscribeCurrentImage(sub notify.Subscriber[CurrentImage]) *notify.Handle {
	return s.currentSubs.Add(sub)
}

// SubscribeParams registers for parameter snapshots.
func (s *Session) SubscribeParams(sub notify.Subscriber[SourceParameters]) *notify.Handle {
	return s.paramSubs.Add(sub)
}

func (s *Session) paramsChanged() {
	s.paramSubs.NotifyAll(s.params)
}

// SetInclination updates the axis tilt, in degrees.
func (s *Session) SetInclination(deg float64) {
	s.params.Inclination = deg
	s.paramsChanged()
}

// SetRoll updates the axis roll, in degrees.
func (s *Session) SetRoll(deg float64) {
	s.params.Roll = deg
	s.paramsChanged()
}

// SetFlattening updates the polar flattening.
func (s *Session) SetFlattening(f float64) {
	s.params.Flattening = f
	s.paramsChanged()
}

// SetDiskCenter overrides the detected disk center.
func (s *Session) SetDiskCenter(x, y float64) {
	s.params.DiskCenterX = x
	s.params.DiskCenterY = y
	s.paramsChanged()
}

// SetDiskDiameter overrides the detected disk diameter.
func (s *Session) SetDiskDiameter(d float64) {
	s.params.DiskDiameter = d
	s.paramsChanged()
}

// SetFrameInterval sets the capture interval between frames.
func (s *Session) SetFrameInterval(interval time.Duration) {
	s.params.FrameInterval = interval
	s.paramsChanged()
}

// SetSiderealRotationPeriod sets the planet's rotation period.
func (s *Session) SetSiderealRotationPeriod(period time.Duration) {
	s.params.SiderealRotationPeriod = period
	s.paramsChanged()
}

// SetPlanet applies a preset's physical parameters.
func (s *Session) SetPlanet(p Planet) {
	s.params.Flattening = p.Flattening
	s.params.SiderealRotationPeriod = p.SiderealRotation
	s.paramsChanged()
}

// FPS returns the playback rate in frames per second.
func (s *Session) FPS() int { return s.fps }

// SetFPS changes the playback rate. Restarting the frame clock keeps the
// current frame continuous across the rate change.
func (s *Session) SetFPS(fps int, now time.Time) {
	s.fps = fps
	if s.playback.Enabled {
		s.playback.StartTime = now
		s.playback.StartFrame = s.current
	}
}

// Playing reports whether playback is running.
func (s *Session) Playing() bool { return s.playback.Enabled }

// BounceBack reports whether bounce-back mode is selected.
func (s *Session) BounceBack() bool { return s.playback.Initial != playback.None }

// Play starts playback from the current frame.
func (s *Session) Play(now time.Time) {
	s.playback.Enabled = true
	s.playback.StartTime = now
	s.playback.StartFrame = s.current
	s.playback.Current = s.playback.Initial
}

// Stop halts playback; the current frame stays where it is.
func (s *Session) Stop() {
	s.playback.Enabled = false
}

// ToggleBounceBack switches between cyclic and bounce-back playback,
// restarting the frame clock so the switch happens from the current frame.
func (s *Session) ToggleBounceBack(now time.Time) {
	if s.playback.Initial == playback.None {
		s.playback.Initial = playback.Forward
		if s.playback.Current != playback.None {
			s.playback.Initial = s.playback.Current
		}
	} else {
		s.playback.Initial = playback.None
	}
	if s.playback.Enabled {
		s.playback.StartTime = now
		s.playback.StartFrame = s.current
	}
}

// Tick advances playback to the frame due at now and notifies current-image
// subscribers when the frame changed. Called once per redraw while playback
// is enabled; does nothing otherwise.
func (s *Session) Tick(now time.Time) {
	if !s.playback.Enabled || len(s.textures) == 0 {
		return
	}
	elapsed := playback.ElapsedFrames(now.Sub(s.playback.StartTime), s.fps)
	frame, dir := playback.Advance(s.playback.StartFrame, elapsed, len(s.textures), s.playback.Initial)
	s.playback.Current = dir
	if frame != s.current {
		s.current = frame
		s.notifyCurrentImage()
	}
}
