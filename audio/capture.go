// Package audio holds the real-time clip pipeline: block acquisition,
// the exponential smoothing filter, and paced pulse-width playback.
package audio

import (
	"time"

	"clipbox/hal"
)

// Capture fills buf from src at the given sample rate for the given
// duration and returns the number of samples captured.
//
// The requested count is clamped to len(buf) without error: clip
// duration is a build-time configuration, not user input. The call
// blocks until the block transfer completes.
func Capture(src hal.SampleSource, buf []uint16, sampleRate uint32, d time.Duration) (int, error) {
	want := int(int64(sampleRate) * d.Nanoseconds() / int64(time.Second))
	if want > len(buf) {
		want = len(buf)
	}
	if want <= 0 {
		return 0, nil
	}
	if err := src.Configure(sampleRate); err != nil {
		return 0, err
	}
	if err := src.ReadBlock(buf[:want]); err != nil {
		return 0, err
	}
	return want, nil
}
