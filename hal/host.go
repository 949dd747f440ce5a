//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"clipbox/raster"
)

// The simulated PWM wrap mirrors the Pico's 125 MHz system clock.
const hostClockHz = 125_000_000

// HostConfig selects host simulator options.
type HostConfig struct {
	// UseMic captures from the default system microphone via portaudio
	// instead of the synthetic signal source (needs cgo).
	UseMic bool
}

type hostHAL struct {
	logger  *hostLogger
	leds    RGBLED
	buttons *hostButtons
	mic     SampleSource
	outA    PWMOut
	outB    PWMOut
	disp    *raster.Frame
}

// New returns a host HAL implementation with the synthetic microphone.
func New() HAL { return NewWithConfig(HostConfig{}) }

func NewWithConfig(cfg HostConfig) HAL {
	logger := &hostLogger{w: os.Stdout}

	var mic SampleSource
	if cfg.UseMic {
		m, err := newMicSource()
		if err != nil {
			logger.WriteLineString("mic: " + err.Error() + "; falling back to synthetic source")
		} else {
			mic = m
		}
	}
	if mic == nil {
		// A 440 Hz square riding on the converter midpoint.
		mic = &SquareSource{FreqHz: 440, Low: 1024, High: 3072}
	}

	a, b := newHostOutputs()
	return &hostHAL{
		logger: logger,
		leds: RGBLED{
			R: &hostLED{name: "R", logger: logger},
			G: &hostLED{name: "G", logger: logger},
			B: &hostLED{name: "B", logger: logger},
		},
		buttons: &hostButtons{start: time.Now()},
		mic:     mic,
		outA:    a,
		outB:    b,
		disp:    raster.New(128, 64),
	}
}

func (h *hostHAL) Logger() Logger        { return h.logger }
func (h *hostHAL) LEDs() RGBLED          { return h.leds }
func (h *hostHAL) Buttons() Buttons      { return h.buttons }
func (h *hostHAL) Mic() SampleSource     { return h.mic }
func (h *hostHAL) Output() (a, b PWMOut) { return h.outA, h.outB }
func (h *hostHAL) Display() Display      { return h.disp }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

type hostLED struct {
	mu     sync.Mutex
	name   string
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.logger.WriteLineString("led " + l.name + ": on")
	}
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.logger.WriteLineString("led " + l.name + ": off")
	}
	l.on = false
}

// hostButtons forwards injected edges to the registered handler, with
// timestamps relative to HAL creation.
type hostButtons struct {
	mu      sync.Mutex
	start   time.Time
	handler func(ButtonID, time.Duration)
}

func (b *hostButtons) Notify(handler func(ButtonID, time.Duration)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = handler
	return nil
}

// Inject simulates a falling edge on the given button.
func (b *hostButtons) Inject(id ButtonID) {
	b.mu.Lock()
	handler := b.handler
	at := time.Since(b.start)
	b.mu.Unlock()
	if handler != nil {
		handler(id, at)
	}
}
