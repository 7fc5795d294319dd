/*
Package debounce defers an action until input has been quiet for a fixed
delay, discarding intermediate triggers.

Each Trigger call cancels any pending fire and schedules a new one, so only
the action attached to the most recent trigger ever runs.
*/
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when no explicit delay is given.
const DefaultDelay = 500 * time.Millisecond

// Debouncer schedules a single pending action with cancel-and-reschedule
// semantics. The zero value is not usable; construct with New.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

// New returns a Debouncer with the given quiet period.
// A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously pending action. If a stale timer fires anyway (it raced with a
// newer Trigger), the sequence check discards it.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := seq != d.seq
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Stop cancels any pending action without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
