// Package app wires the HAL into the record/playback controller and
// owns the main loop.
package app

import (
	"time"

	"clipbox/control"
	"clipbox/hal"
	"clipbox/input"
	"clipbox/internal/buildinfo"
)

// New wires the appliance with default clip parameters and returns the
// per-poll step function.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, control.Config{})
}

// NewWithConfig wires the appliance: debouncer on the button edges,
// controller on everything else.
func NewWithConfig(h hal.HAL, cfg control.Config) (func() error, error) {
	deb := input.NewDebouncer(input.DefaultWindow)
	c, err := control.New(h, deb, cfg)
	if err != nil {
		return nil, err
	}
	if btns := h.Buttons(); btns != nil {
		if err := btns.Notify(deb.OnEdge); err != nil {
			return nil, err
		}
	}
	h.Logger().WriteLineString("clipbox " + buildinfo.Short() + " ready, waiting for a command")
	return c.Step, nil
}

// Run starts the appliance and polls forever at the fixed cadence.
// This is the device entrypoint; the process has no normal exit.
func Run(h hal.HAL) {
	step, err := New(h)
	if err != nil {
		h.Logger().WriteLineString("boot: " + err.Error())
		select {}
	}
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("cycle: " + err.Error())
		}
		time.Sleep(control.PollInterval)
	}
}
