package audio

// DefaultAlpha is the smoothing weight of the clip filter. Lower is
// smoother but lags more.
const DefaultAlpha = 0.2

// Smooth applies a single-pass exponential moving average in place:
//
//	out[0] = in[0]
//	out[i] = alpha*in[i] + (1-alpha)*out[i-1]
//
// The recursion uses the previous smoothed value, not a window over the
// raw input. Results are rounded to the nearest code.
func Smooth(buf []uint16, alpha float32) {
	if len(buf) < 2 {
		return
	}
	prev := buf[0]
	for i := 1; i < len(buf); i++ {
		prev = uint16(alpha*float32(buf[i]) + (1-alpha)*float32(prev) + 0.5)
		buf[i] = prev
	}
}
