// Package debounce provides a cancelable trailing-edge debouncer.
package debounce

import (
	"sync"
	"time"
)

// Emission is a value released after the quiescence window.
// Gen identifies the push that produced it; see Debouncer.Fresh.
type Emission struct {
	Text string
	Gen  uint64
}

// Debouncer coalesces bursts of pushes into one trailing emission.
// A Debouncer is created once per owner and reused; it must be closed when
// the owner goes away.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool

	out  chan Emission
	done chan struct{}
}

// New creates a debouncer with the given quiescence window.
// A zero or negative delay emits on every push.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay: max(delay, 0),
		out:   make(chan Emission, 1),
		done:  make(chan struct{}),
	}
}

// Delay returns the quiescence window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// C returns the channel emissions are delivered on. Only the latest
// undelivered emission is kept.
func (d *Debouncer) C() <-chan Emission {
	return d.out
}

// Done is closed by Close.
func (d *Debouncer) Done() <-chan struct{} {
	return d.done
}

// Push schedules text for emission, replacing any pending value.
func (d *Debouncer) Push(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.stopLocked()
	d.gen++
	gen := d.gen

	if d.delay == 0 {
		d.deliverLocked(Emission{Text: text, Gen: gen})
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		// A later push or a cancel bumped the generation.
		if d.closed || gen != d.gen {
			return
		}
		d.timer = nil
		d.deliverLocked(Emission{Text: text, Gen: gen})
	})
}

// Pending reports whether an emission is scheduled but not yet released.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending emission, including one already released but
// not yet received.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	d.drainLocked()
}

// Fresh reports whether e came from the latest push and was not cancelled.
func (d *Debouncer) Fresh(e Emission) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed && e.Gen == d.gen
}

// Close cancels any pending emission and releases waiters. Further pushes
// are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.stopLocked()
	d.drainLocked()
	d.closed = true
	close(d.done)
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) drainLocked() {
	select {
	case <-d.out:
	default:
	}
}

// deliverLocked replaces any undelivered emission with e.
func (d *Debouncer) deliverLocked(e Emission) {
	d.drainLocked()
	d.out <- e
}
