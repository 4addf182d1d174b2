// Package playback computes frame indices for timed image-sequence playback.
//
// Two modes are supported: plain cyclic playback, which wraps from the last
// frame back to the first, and bounce-back playback, which runs the sequence
// forward to the last frame, then backward to the first, and repeats without
// jump-cutting.
//
// Advance is a pure function of the playback start state and the number of
// whole frames elapsed since then; callers derive that count from wall-clock
// time with ElapsedFrames and poll once per redraw.
package playback
