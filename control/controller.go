// Package control sequences the record/playback cycle and drives the
// status LED.
package control

import (
	"time"

	"clipbox/audio"
	"clipbox/hal"
	"clipbox/input"
	"clipbox/waveform"
)

// PollInterval is the cadence of the main loop between Step calls.
const PollInterval = 10 * time.Millisecond

// State is the standing mode of the appliance. Recording and playing
// are transient synchronous phases inside a transition, not states.
type State uint8

const (
	StateIdle State = iota
	StateAwaitingPlayback
)

// Config carries the clip parameters.
type Config struct {
	SampleRate uint32
	ClipLen    time.Duration
	Alpha      float32
	Gain       float32
}

func (c *Config) fillDefaults() {
	if c.SampleRate == 0 {
		c.SampleRate = 48000
	}
	if c.ClipLen == 0 {
		c.ClipLen = 2 * time.Second
	}
	if c.Alpha == 0 {
		c.Alpha = audio.DefaultAlpha
	}
	if c.Gain == 0 {
		c.Gain = audio.DefaultGain
	}
}

// Controller owns the sample buffer and the system state. It is not
// concurrency-safe: Step must only be called from the single main
// loop. Button edges arrive through the Debouncer, which is the sole
// structure shared with interrupt context.
type Controller struct {
	cfg Config

	deb    *input.Debouncer
	log    hal.Logger
	leds   hal.RGBLED
	mic    hal.SampleSource
	outA   hal.PWMOut
	outB   hal.PWMOut
	disp   hal.Display
	player *audio.Player

	buf      []uint16
	captured int
	state    State
}

// New wires a controller against the given HAL pieces. The sample
// buffer capacity is fixed here: SampleRate times ClipLen.
func New(h hal.HAL, deb *input.Debouncer, cfg Config) (*Controller, error) {
	cfg.fillDefaults()

	a, b := h.Output()
	maxLevel, err := a.Configure(cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	if _, err := b.Configure(cfg.SampleRate); err != nil {
		return nil, err
	}

	capacity := int(int64(cfg.SampleRate) * cfg.ClipLen.Nanoseconds() / int64(time.Second))
	return &Controller{
		cfg:  cfg,
		deb:  deb,
		log:  h.Logger(),
		leds: h.LEDs(),
		mic:  h.Mic(),
		outA: a,
		outB: b,
		disp: h.Display(),
		player: &audio.Player{
			Gain:     cfg.Gain,
			MaxLevel: maxLevel,
		},
		buf: make([]uint16, capacity),
	}, nil
}

func (c *Controller) State() State  { return c.state }
func (c *Controller) Captured() int { return c.captured }

// Step runs one poll of the state machine. Recording and playback
// happen synchronously inside the call; edges arriving meanwhile are
// latched by the debouncer and seen on a later step.
func (c *Controller) Step() error {
	switch c.state {
	case StateIdle:
		if !c.deb.PollAndClear(hal.ButtonRecord) {
			return nil
		}
		return c.record()

	case StateAwaitingPlayback:
		if !c.deb.PollAndClear(hal.ButtonPlay) {
			return nil
		}
		return c.play()
	}
	return nil
}

func (c *Controller) record() error {
	c.setLED(true, false, false)
	c.logln("recording...")

	n, err := audio.Capture(c.mic, c.buf, c.cfg.SampleRate, c.cfg.ClipLen)
	if err != nil {
		c.setLED(false, false, false)
		return err
	}
	audio.Smooth(c.buf[:n], c.cfg.Alpha)
	c.captured = n
	c.setLED(false, false, false)

	c.logln("recording done, drawing waveform")
	if err := waveform.Render(c.disp, c.buf[:n]); err != nil {
		return err
	}

	c.state = StateAwaitingPlayback
	c.logln("ready to play, press the other button")
	return nil
}

func (c *Controller) play() error {
	c.setLED(false, true, false)
	c.logln("playing...")
	c.player.Play(c.outA, c.outB, c.buf[:c.captured], c.cfg.SampleRate)
	c.setLED(false, false, false)

	c.logln("playback done, restarting cycle")
	if err := waveform.Clear(c.disp); err != nil {
		return err
	}

	// A record press during playback must not start a recording the
	// moment playback ends.
	c.deb.PollAndClear(hal.ButtonRecord)

	c.state = StateIdle
	return nil
}

func (c *Controller) setLED(r, g, b bool) {
	set := func(l hal.LED, on bool) {
		if l == nil {
			return
		}
		if on {
			l.High()
		} else {
			l.Low()
		}
	}
	set(c.leds.R, r)
	set(c.leds.G, g)
	set(c.leds.B, b)
}

func (c *Controller) logln(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}
}
