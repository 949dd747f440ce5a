package hal

import "errors"

// SquareSource is a deterministic SampleSource producing a square wave
// phased by sample index, used by the host simulator and tests.
type SquareSource struct {
	FreqHz uint32
	Low    uint16
	High   uint16

	rate uint32
	pos  uint64
}

func (s *SquareSource) Configure(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("signal: zero sample rate")
	}
	s.rate = sampleRate
	return nil
}

func (s *SquareSource) ReadBlock(dst []uint16) error {
	if s.rate == 0 {
		return errors.New("signal: not configured")
	}
	freq := s.FreqHz
	if freq == 0 {
		freq = 1000
	}
	half := s.rate / (2 * freq)
	if half == 0 {
		half = 1
	}
	for i := range dst {
		if (s.pos/uint64(half))%2 == 0 {
			dst[i] = s.High
		} else {
			dst[i] = s.Low
		}
		s.pos++
	}
	return nil
}
