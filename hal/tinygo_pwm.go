//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// pwmOut drives one buzzer pin. The wrap value is sized so one PWM
// period spans one audio sample at the base rate, making the duty
// range the playback level range.
type pwmOut struct {
	pin machine.Pin
	pwm pwmDevice
	ch  uint8
	top uint32
}

func newPWMOut(pin machine.Pin) *pwmOut {
	return &pwmOut{pin: pin, pwm: pwmForPin(pin)}
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (o *pwmOut) Configure(baseHz uint32) (uint32, error) {
	if o == nil || o.pwm == nil {
		return 0, ErrNotImplemented
	}
	if baseHz == 0 {
		return 0, ErrNotImplemented
	}

	top := machine.CPUFrequency()/baseHz - 1
	if top == 0 {
		top = 1
	}

	if err := o.pwm.Configure(machine.PWMConfig{}); err != nil {
		return 0, err
	}
	ch, err := o.pwm.Channel(o.pin)
	if err != nil {
		return 0, err
	}
	o.ch = ch
	o.pwm.SetTop(top)
	o.top = o.pwm.Top()
	o.pwm.Set(o.ch, 0)
	o.pwm.Enable(true)
	return o.top, nil
}

func (o *pwmOut) SetLevel(level uint32) {
	if o == nil || o.pwm == nil {
		return
	}
	if level > o.top {
		level = o.top
	}
	o.pwm.Set(o.ch, level)
}
