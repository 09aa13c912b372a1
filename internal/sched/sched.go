// Package sched wraps one-shot deferred callbacks behind a cancellable
// handle, so an in-flight resolution or settlement can be dropped when the
// owning component is torn down instead of firing against stale state.
package sched

import "time"

type Task struct {
	timer *time.Timer
}

// After runs fn once after d on a timer goroutine.
func After(d time.Duration, fn func()) *Task {
	return &Task{timer: time.AfterFunc(d, fn)}
}

// Cancel stops the task. It reports whether the callback was prevented
// from running; cancelling an already-fired task is a no-op.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	return t.timer.Stop()
}
