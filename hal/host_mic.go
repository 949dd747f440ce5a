//go:build !tinygo && cgo

package hal

import (
	"errors"

	"github.com/gordonklaus/portaudio"
)

// micSource captures from the default system microphone and rescales
// float samples into 12-bit converter codes.
type micSource struct {
	rate uint32
}

func newMicSource() (SampleSource, error) {
	return &micSource{}, nil
}

func (m *micSource) Configure(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("mic: zero sample rate")
	}
	m.rate = sampleRate
	return nil
}

func (m *micSource) ReadBlock(dst []uint16) error {
	if m.rate == 0 {
		return errors.New("mic: not configured")
	}
	if len(dst) == 0 {
		return nil
	}

	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	frames := make([]float32, 256)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.rate), len(frames), frames)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	n := 0
	for n < len(dst) {
		if err := stream.Read(); err != nil {
			return err
		}
		for _, v := range frames {
			if n >= len(dst) {
				break
			}
			dst[n] = floatToCode(v)
			n++
		}
	}
	return nil
}

// floatToCode maps [-1, 1] onto 0..FullScale with the midpoint at
// half scale, clamping out-of-range input.
func floatToCode(v float32) uint16 {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return uint16((v + 1) / 2 * FullScale)
}
