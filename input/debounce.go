// Package input filters raw button edges into debounced one-shot flags.
package input

import (
	"sync/atomic"
	"time"

	"clipbox/hal"
)

// DefaultWindow is the minimum gap between two accepted edges on the
// same button.
const DefaultWindow = 200 * time.Millisecond

const buttonCount = 2

// Debouncer converts falling-edge events into per-button pending flags.
//
// OnEdge is the producer side and is safe to call from interrupt
// context; PollAndClear is the consumer side and belongs to the main
// loop. Each side only writes its own fields, so no lock is needed.
type Debouncer struct {
	window  time.Duration
	last    [buttonCount]int64 // nanoseconds since boot, interrupt side only
	pending [buttonCount]atomic.Bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// OnEdge records a falling edge seen at the given time since boot.
// Edges within the window of the last accepted one are dropped.
func (d *Debouncer) OnEdge(b hal.ButtonID, at time.Duration) {
	if int(b) >= buttonCount {
		return
	}
	if at.Nanoseconds()-d.last[b] <= d.window.Nanoseconds() {
		return
	}
	d.last[b] = at.Nanoseconds()
	d.pending[b].Store(true)
}

// PollAndClear reports whether a debounced press is pending and
// consumes it.
func (d *Debouncer) PollAndClear(b hal.ButtonID) bool {
	if int(b) >= buttonCount {
		return false
	}
	return d.pending[b].Swap(false)
}
