package worker

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/planet-projector/internal/detection"
	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/projection"
)

// CommandQueueCap is the suggested capacity for the command channel. The
// protocol never queues more than one job plus one cancel, so enqueueing
// from the interactive thread never blocks.
const CommandQueueCap = 16

// Run is the worker loop. It blocks on cmds, executes one job at a time and
// returns when cmds is closed (normal shutdown, not an error).
//
// All communication is by message passing: job commands in, progress and
// terminal results out through the channels carried by each job. Cancellation
// is cooperative; it is observed only at per-item checkpoints and never
// interrupts an item mid-flight.
//
// Run panics on protocol violations: a Cancel arriving while idle, or any
// non-Cancel command arriving mid-job.
func Run(cmds <-chan Command, store TextureStore, renderer Renderer) {
	for cmd := range cmds {
		switch c := cmd.(type) {
		case LoadImages:
			runLoadImages(c, cmds, store)
		case Projection:
			runProjection(c, cmds, renderer)
		case Cancel:
			panic("worker: Cancel received while idle")
		default:
			panic(fmt.Sprintf("worker: unexpected command %T", cmd))
		}
	}
}

// cancelRequested polls cmds without blocking. Only Cancel may arrive while
// a job is running.
func cancelRequested(cmds <-chan Command) bool {
	select {
	case cmd, ok := <-cmds:
		if !ok {
			// channel closed mid-job; finish the job, Run exits afterwards
			return false
		}
		if _, isCancel := cmd.(Cancel); isCancel {
			return true
		}
		panic(fmt.Sprintf("worker: unexpected command %T during job", cmd))
	default:
		return false
	}
}

// sendProgress delivers best-effort: when the consumer has not drained the
// previous message the new one is dropped, never blocking the worker.
func sendProgress(ch chan<- Progress, description string, fraction float64) {
	select {
	case ch <- Progress{Description: description, Fraction: fraction}:
	default:
	}
}

func runLoadImages(task LoadImages, cmds <-chan Command, store TextureStore) {
	var disk *detection.DiskInfo
	total := len(task.Items)

	for i, item := range task.Items {
		if cancelRequested(cmds) {
			task.Result <- Result{Status: Cancelled}
			return
		}

		img, err := imaging.LoadFrame(item.Path, task.Width, task.Height, task.Format)
		if err != nil {
			task.Result <- Result{Status: Failed, Err: err.Error()}
			return
		}
		store.Update(item.Texture, img)

		if i == 0 {
			d, err := detection.DetectDisk(img)
			if err != nil {
				task.Result <- Result{Status: Failed, Err: err.Error()}
				return
			}
			disk = &d
		}

		sendProgress(task.Progress, fmt.Sprintf("Loaded %s.", item.Path), float64(i)/float64(total))
	}

	task.Result <- Result{Status: Succeeded, Disk: disk}
}

func runProjection(task Projection, cmds <-chan Command, renderer Renderer) {
	width, height := projection.OutputSize(task.Params, task.RotationComp, task.Kind)
	buf := image.NewNRGBA(image.Rect(0, 0, width, height))
	count := len(task.Sources)

	for i, src := range task.Sources {
		if cancelRequested(cmds) {
			task.Result <- Result{Status: Cancelled}
			return
		}

		if err := renderer.RenderFrame(buf, src, i, count, task.Params, task.RotationComp, task.Kind); err != nil {
			task.Result <- Result{Status: Failed, Err: err.Error()}
			return
		}

		path, err := imaging.SaveFrame(task.OutputDir, i+1, buf)
		if err != nil {
			task.Result <- Result{Status: Failed, Err: err.Error()}
			return
		}
		description := fmt.Sprintf("Saved %s", path)

		if task.BounceBack && i < count-1 {
			mirrorPath, err := imaging.SaveFrame(task.OutputDir, imaging.MirrorIndex(count, i), buf)
			if err != nil {
				task.Result <- Result{Status: Failed, Err: err.Error()}
				return
			}
			description += ", " + filepath.Base(mirrorPath)
		}
		description += "."

		sendProgress(task.Progress, description, float64(i)/float64(count))
	}

	task.Result <- Result{Status: Succeeded}
}
