// Package schedule runs a callback at a fixed wall-clock cadence.
package schedule

import (
	"sync"
	"time"
)

// Recurring invokes a zero-argument callback every interval, compensating
// for the callback's own runtime so the target cadence holds. Stop is
// idempotent, interrupts the inter-call wait immediately and does not
// return while an invocation is still in flight.
type Recurring struct {
	fn       func()
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Every starts a recurring task with an optional initial delay before the
// first invocation.
func Every(interval time.Duration, initial time.Duration, fn func()) *Recurring {
	r := &Recurring{
		fn:       fn,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.run(initial)
	return r
}

func (r *Recurring) run(initial time.Duration) {
	defer close(r.done)

	if initial > 0 {
		if !r.wait(initial) {
			return
		}
	}
	next := time.Now()
	for {
		r.fn()
		next = next.Add(r.interval)
		d := time.Until(next)
		if d < 0 {
			// callback overran the interval, fire again immediately
			// but keep the grid anchored to now
			next = time.Now()
			d = 0
		}
		if !r.wait(d) {
			return
		}
	}
}

// wait sleeps for d unless a stop request arrives first. The stop channel
// is observed inside the select, so shutdown never waits out a sleep.
func (r *Recurring) wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-r.stop:
		return false
	}
}

// Stop requests shutdown and blocks until the loop has exited, so no
// callback invocation races the caller's teardown. Safe to call more
// than once.
func (r *Recurring) Stop() {
	r.once.Do(func() { close(r.stop) })
	<-r.done
}
