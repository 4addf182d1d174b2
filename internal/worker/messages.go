package worker

import (
	"image"

	"github.com/ironsheep/planet-projector/internal/detection"
	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/projection"
)

// Command is a message from the interactive thread to the worker. Exactly
// one job (LoadImages or Projection) runs at a time; Cancel is only valid
// while a job is running.
type Command interface {
	isCommand()
}

// Cancel asks the worker to abandon the running job at its next per-item
// checkpoint. Sending Cancel while the worker is idle is a caller defect and
// panics the worker.
type Cancel struct{}

func (Cancel) isCommand() {}

// LoadItem pairs a destination buffer handle with the source file to decode
// into it.
type LoadItem struct {
	Texture imaging.TextureID
	Path    string
}

// LoadImages loads a batch of frames into externally-owned buffers and runs
// disk detection on the first one. Every frame must match the declared
// dimensions and pixel format; the first mismatch or decode failure aborts
// the whole batch.
type LoadImages struct {
	Width  int
	Height int
	Format imaging.Format
	Items  []LoadItem

	// Progress must have capacity 1; messages are dropped rather than
	// blocking the worker when the consumer lags.
	Progress chan<- Progress

	// Result receives exactly one terminal message per job.
	Result chan<- Result
}

func (LoadImages) isCommand() {}

// Projection renders every source frame's map projection and encodes the
// results to sequentially numbered files in OutputDir. With BounceBack set,
// each frame except the last is additionally written under its mirrored
// output index.
type Projection struct {
	OutputDir    string
	Sources      []imaging.TextureID
	ImageWidth   int
	ImageHeight  int
	Params       projection.SourceParameters
	RotationComp float64
	Kind         projection.Type
	BounceBack   bool

	Progress chan<- Progress
	Result   chan<- Result
}

func (Projection) isCommand() {}

// Progress is a best-effort, last-update-wins status message.
type Progress struct {
	Description string
	Fraction    float64
}

// Status is the terminal state of a job.
type Status int

const (
	// Succeeded means the job ran to completion.
	Succeeded Status = iota

	// Failed means the job was aborted on an error; no partial success is
	// reported.
	Failed

	// Cancelled means a Cancel command was observed at a checkpoint.
	Cancelled
)

// Result is the single terminal message of a job. Disk is set only for a
// successful LoadImages job; Err only for a failed one.
type Result struct {
	Status Status
	Disk   *detection.DiskInfo
	Err    string
}

// Renderer is the collaborator that draws one source frame's projection into
// the accumulation buffer. The worker does not know how drawing happens;
// render.CPU is the in-process implementation.
type Renderer interface {
	RenderFrame(dst *image.NRGBA, src imaging.TextureID, frameIdx, frameCount int,
		p projection.SourceParameters, rotationComp float64, kind projection.Type) error
}

// TextureStore is the collaborator owning the pixel buffers behind texture
// handles. The worker writes decoded frames through it and never holds onto
// the buffers.
type TextureStore interface {
	Update(id imaging.TextureID, img *image.NRGBA)
}
