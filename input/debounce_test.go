package input

import (
	"testing"
	"time"

	"clipbox/hal"
)

func TestDebounceWindow(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)

	d.OnEdge(hal.ButtonRecord, 500*time.Millisecond)
	if !d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("first edge should set the flag")
	}

	// A bounce inside the window is dropped even though the flag was
	// already consumed.
	d.OnEdge(hal.ButtonRecord, 600*time.Millisecond)
	if d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("edge inside the window should be dropped")
	}

	// Just past the window (strictly greater) is accepted again.
	d.OnEdge(hal.ButtonRecord, 701*time.Millisecond)
	if !d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("edge past the window should set the flag")
	}
}

func TestDebounceBoundaryIsExclusive(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)

	d.OnEdge(hal.ButtonPlay, 300*time.Millisecond)
	if !d.PollAndClear(hal.ButtonPlay) {
		t.Fatal("first edge should set the flag")
	}
	// Exactly at the window boundary: still dropped.
	d.OnEdge(hal.ButtonPlay, 500*time.Millisecond)
	if d.PollAndClear(hal.ButtonPlay) {
		t.Fatal("edge exactly at the window boundary should be dropped")
	}
}

func TestDebounceButtonsIndependent(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)

	d.OnEdge(hal.ButtonRecord, 300*time.Millisecond)
	d.OnEdge(hal.ButtonPlay, 310*time.Millisecond)

	if !d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("record flag missing")
	}
	if !d.PollAndClear(hal.ButtonPlay) {
		t.Fatal("play flag missing")
	}
}

func TestDebounceConsumeOnce(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)

	d.OnEdge(hal.ButtonRecord, 400*time.Millisecond)
	if !d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("flag missing")
	}
	if d.PollAndClear(hal.ButtonRecord) {
		t.Fatal("flag observed twice for one press")
	}
}
