// Package worker runs long batch operations — bulk image load with disk
// detection, and bulk projection export — on a single dedicated goroutine,
// off the interactive thread.
//
// # Protocol
//
// The interactive thread sends job commands on the command channel and holds
// the progress and result channels carried inside each job. Per job lineage
// there are three unidirectional channels:
//
//   - command: interactive → worker; job submission and mid-job Cancel
//   - progress: worker → interactive; capacity 1, non-blocking producer,
//     stale messages are dropped
//   - result: worker → interactive; exactly one terminal message per job
//
// The job state machine is Idle → Running → Succeeded | Failed | Cancelled →
// Idle. One job runs at a time; cancellation is cooperative, checked once
// per unit of work. Closing the command channel shuts the worker down.
//
// No shared mutable memory crosses the thread boundary: frames are referred
// to by opaque texture handles, and the result channel conveys final state —
// progress is informational only.
package worker
