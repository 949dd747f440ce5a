//go:build !tinygo && cgo

package hal

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// newHostOutputs returns the two simulated buzzer channels. Channel A
// feeds the desktop speaker through Ebiten's audio pipeline; channel B
// is driven in parallel in hardware, so on the host it only tracks its
// level.
func newHostOutputs() (PWMOut, PWMOut) {
	return &speakerOut{}, &levelOut{}
}

// speakerOut converts duty levels to PCM. Between level writes the
// reader repeats the last sample, which is what a held PWM duty does.
type speakerOut struct {
	mu   sync.Mutex
	cond *sync.Cond

	ctx      *audio.Context
	player   *audio.Player
	maxLevel uint32

	buf  []int16
	r    int
	w    int
	n    int
	last int16
}

func (o *speakerOut) Configure(baseHz uint32) (uint32, error) {
	if baseHz == 0 {
		return 0, errors.New("host audio: invalid base rate")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cond == nil {
		o.cond = sync.NewCond(&o.mu)
	}
	if o.ctx == nil {
		o.ctx = audio.NewContext(int(baseHz))
	} else if o.ctx.SampleRate() != int(baseHz) {
		return 0, errors.New("host audio: ebiten audio context sample rate is fixed")
	}

	o.maxLevel = hostClockHz/baseHz - 1
	if o.maxLevel == 0 {
		o.maxLevel = 1
	}

	ring := int(baseHz / 10) // ~100ms
	if ring < 2048 {
		ring = 2048
	}
	o.buf = make([]int16, ring)
	o.r, o.w, o.n = 0, 0, 0

	if o.player == nil {
		p, err := o.ctx.NewPlayer(&speakerReader{o: o})
		if err != nil {
			return 0, err
		}
		p.Play()
		o.player = p
	}
	return o.maxLevel, nil
}

func (o *speakerOut) SetLevel(level uint32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.maxLevel == 0 || len(o.buf) == 0 {
		return
	}
	if level > o.maxLevel {
		level = o.maxLevel
	}
	s := int16(int32(uint64(level)*65535/uint64(o.maxLevel)) - 32768)
	if o.n == len(o.buf) {
		// Playback is outpacing the consumer; drop the oldest sample.
		o.r++
		if o.r >= len(o.buf) {
			o.r = 0
		}
		o.n--
	}
	o.buf[o.w] = s
	o.w++
	if o.w >= len(o.buf) {
		o.w = 0
	}
	o.n++
	o.last = s
	o.cond.Signal()
}

type speakerReader struct {
	o *speakerOut
}

// Read emits 16-bit little-endian stereo, repeating the held duty
// level when no fresh samples are queued.
func (r *speakerReader) Read(p []byte) (int, error) {
	o := r.o
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := 0; i+3 < len(p); i += 4 {
		s := o.last
		if o.n > 0 {
			s = o.buf[o.r]
			o.r++
			if o.r >= len(o.buf) {
				o.r = 0
			}
			o.n--
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return len(p) / 4 * 4, nil
}
