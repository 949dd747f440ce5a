package audio

import (
	"time"

	"clipbox/hal"
)

// DefaultGain is the playback amplification factor applied before
// clipping.
const DefaultGain = 1.7

// Player drains a captured clip through two pulse-width outputs at the
// original sample rate.
type Player struct {
	// Gain scales each sample before clipping. Zero means DefaultGain.
	Gain float32
	// MaxLevel is the duty-cycle ceiling reported by PWMOut.Configure.
	MaxLevel uint32
	// Sleep paces the loop; tests inject a recorder here. Nil means
	// time.Sleep.
	Sleep func(time.Duration)
}

// Play writes each sample to both outputs at 1/sampleRate intervals:
// scale by Gain, saturate at full scale, rescale into the duty range.
// Both outputs are forced to zero afterwards; an empty clip is a no-op
// beyond the zeroing.
func (p *Player) Play(a, b hal.PWMOut, samples []uint16, sampleRate uint32) {
	gain := p.Gain
	if gain == 0 {
		gain = DefaultGain
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	period := time.Second / time.Duration(sampleRate)

	for _, s := range samples {
		amplified := uint32(float32(s) * gain)
		if amplified > hal.FullScale {
			amplified = hal.FullScale
		}
		level := uint32(uint64(amplified) * uint64(p.MaxLevel) / hal.FullScale)
		a.SetLevel(level)
		b.SetLevel(level)
		sleep(period)
	}
	a.SetLevel(0)
	b.SetLevel(0)
}
