package playback

import "time"

// Direction describes which way playback is moving through the frame sequence.
type Direction int

const (
	// None means plain cyclic playback: after the last frame, wrap to frame 0.
	None Direction = iota

	// Forward means bounce-back playback currently moving toward higher indices.
	Forward

	// Backward means bounce-back playback currently moving toward lower indices.
	Backward
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// State holds per-view playback bookkeeping. It is created when a view starts
// playing and mutated only by the interactive thread.
type State struct {
	// Enabled is true while playback is running.
	Enabled bool

	// StartTime is the instant playback was started.
	StartTime time.Time

	// StartFrame is the frame index that was current when playback started.
	StartFrame int

	// Initial selects the playback mode: None for cyclic wraparound, Forward or
	// Backward for bounce-back starting in that direction.
	Initial Direction

	// Current is the direction reported by the most recent Advance call. It is
	// only meaningful in bounce-back mode.
	Current Direction
}

// Advance computes the frame index reached after elapsed whole frames of
// playback, starting from startFrame in a sequence of total frames.
//
// With initial == None the sequence wraps around cyclically. With
// initial == Forward or Backward the sequence is a triangular wave of period
// 2*(total-1): frames run up to total-1, back down to 0, and repeat, without
// repeating the endpoints.
//
// Returns the new frame index and the direction of the branch it lies on.
// For total == 1 the frame is always 0 and the direction is returned unchanged.
//
// The two bounce-back branches were validated against worked scenarios rather
// than derived in closed form; see the package tests before reformulating.
func Advance(startFrame, elapsed, total int, initial Direction) (int, Direction) {
	if total == 1 {
		return 0, initial
	}

	switch initial {
	case None:
		return (startFrame + elapsed) % total, None

	case Forward:
		m := (startFrame + elapsed) % (total + total - 2)
		if m < total {
			return m, Forward
		}
		return 2*total - 2 - m, Backward

	default: // Backward
		correctedStart := total - startFrame - 2
		m := (correctedStart + elapsed) % (total + total - 2)
		if m < total-2 {
			return total - 2 - m, Backward
		}
		return m - (total - 2), Forward
	}
}

// ElapsedFrames converts wall-clock time since playback start into a whole
// frame count at the given playback rate.
func ElapsedFrames(sinceStart time.Duration, fps int) int {
	return int(sinceStart.Seconds() * float64(fps))
}
