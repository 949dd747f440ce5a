// Package waveform draws a captured clip as a 1-bit oscillogram.
package waveform

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"clipbox/hal"
)

const (
	caption = "captured wave"
	// headerPx is the band reserved for the caption above the plot.
	headerPx = 12
	// visualGain amplifies the trace vertically on screen.
	visualGain = 4.0
	// midScale is the zero-amplitude converter code.
	midScale = (hal.FullScale + 1) / 2
)

var pixelOn = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Render redraws the whole screen from the clip and pushes it to the
// panel. The midline of the area below the header is the zero axis;
// clips wider than the screen are decimated by nearest index. An empty
// clip degenerates to caption and axis only.
func Render(d hal.Display, samples []uint16) error {
	w16, h16 := d.Size()
	width, height := int(w16), int(h16)

	d.ClearBuffer()
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 10, 8, caption, pixelOn)

	plotHeight := height - headerPx
	axis := headerPx + plotHeight/2

	for x := 0; x < width; x++ {
		d.SetPixel(int16(x), int16(axis), pixelOn)
	}

	columns := len(samples)
	if columns > width {
		columns = width
	}
	for x := 0; x < columns; x++ {
		idx := x
		if len(samples) > width {
			idx = x * len(samples) / width
		}

		amplitude := int(samples[idx]) - midScale
		y := axis - int(float32(amplitude)/midScale*float32(plotHeight)/2*visualGain)
		if y < headerPx {
			y = headerPx
		}
		if y >= height {
			y = height - 1
		}

		if y > axis {
			for yy := axis; yy <= y; yy++ {
				d.SetPixel(int16(x), int16(yy), pixelOn)
			}
		} else {
			for yy := y; yy <= axis; yy++ {
				d.SetPixel(int16(x), int16(yy), pixelOn)
			}
		}
	}

	return d.Display()
}

// Clear blanks the screen and pushes the empty frame to the panel.
func Clear(d hal.Display) error {
	d.ClearBuffer()
	return d.Display()
}
