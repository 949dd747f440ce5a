package hal

import (
	"errors"
	"image/color"
	"time"
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// RGBLED groups the three channels of the status LED.
//
// Any channel may be nil on boards without it.
type RGBLED struct {
	R LED
	G LED
	B LED
}

// ButtonID identifies one of the two user buttons.
type ButtonID uint8

const (
	ButtonRecord ButtonID = iota
	ButtonPlay
)

// Buttons delivers raw falling-edge events from the user buttons.
//
// The handler runs in interrupt context on hardware: it must only touch
// data safe to share with the main loop (see input.Debouncer). The
// timestamp is time since boot.
type Buttons interface {
	Notify(handler func(b ButtonID, at time.Duration)) error
}

// FullScale is the maximum converter code (12-bit path).
const FullScale = 4095

// SampleSource is a block-capture analog input.
//
// ReadBlock discards any stale queued conversions, free-runs the
// converter and returns once len(dst) readings have landed in dst in
// arrival order. Readings are right-aligned codes, 0..FullScale.
// There is no timeout: a stalled converter stalls the call.
type SampleSource interface {
	Configure(sampleRate uint32) error
	ReadBlock(dst []uint16) error
}

// PWMOut is a single timed pulse-width output channel.
//
// Configure sets the carrier so that one period spans 1/baseHz seconds
// and reports the maximum duty level. SetLevel maps linearly onto the
// duty cycle; level 0 is silence.
type PWMOut interface {
	Configure(baseHz uint32) (maxLevel uint32, err error)
	SetLevel(level uint32)
}

// Display is a 1-bit raster sink.
//
// It is a superset of drivers.Displayer from tinygo.org/x/drivers, so
// tinyfont can draw text on it directly. Any non-black color sets the
// pixel. Display pushes the buffer to the panel.
type Display interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	ClearBuffer()
	Display() error
}

// HAL provides the only contact point between the appliance and the
// outside world.
type HAL interface {
	Logger() Logger
	LEDs() RGBLED
	Buttons() Buttons
	Mic() SampleSource
	Output() (a, b PWMOut)
	Display() Display
}
