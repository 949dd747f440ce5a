//go:build !tinygo

package hal

import (
	"errors"
	"sync/atomic"
)

// levelOut is a silent PWM channel that only tracks its duty level.
type levelOut struct {
	maxLevel uint32
	level    atomic.Uint32
}

func (o *levelOut) Configure(baseHz uint32) (uint32, error) {
	if baseHz == 0 {
		return 0, errors.New("host pwm: invalid base rate")
	}
	o.maxLevel = hostClockHz/baseHz - 1
	if o.maxLevel == 0 {
		o.maxLevel = 1
	}
	return o.maxLevel, nil
}

func (o *levelOut) SetLevel(level uint32) {
	if level > o.maxLevel {
		level = o.maxLevel
	}
	o.level.Store(level)
}

// Level reports the last written duty level.
func (o *levelOut) Level() uint32 { return o.level.Load() }
