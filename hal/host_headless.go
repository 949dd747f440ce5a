//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after N ticks, 0 = run forever

	// Scripted button presses for smoke runs, in ticks (0 = never).
	PressRecordAt uint64
	PressPlayAt   uint64
}

// RunHeadless runs the appliance loop without opening a window.
func RunHeadless(ctx context.Context, cfg HostConfig, hcfg HeadlessConfig, newApp func(HAL) func() error) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 100
	}

	h := NewWithConfig(cfg).(*hostHAL)
	step := newApp(h)

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			if hcfg.PressRecordAt != 0 && tick == hcfg.PressRecordAt {
				h.buttons.Inject(ButtonRecord)
			}
			if hcfg.PressPlayAt != 0 && tick == hcfg.PressPlayAt {
				h.buttons.Inject(ButtonPlay)
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return nil
			}
		}
	}
}
