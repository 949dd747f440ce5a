// Package raster provides an in-memory 1-bit framebuffer in SSD1306
// page layout: one byte covers an 8-pixel vertical strip, pages stacked
// top to bottom.
package raster

import "image/color"

type Frame struct {
	w, h int16
	buf  []byte
}

// New returns a cleared frame. Height is rounded up to a whole page.
func New(w, h int16) *Frame {
	if w <= 0 || h <= 0 {
		return nil
	}
	pages := (int(h) + 7) / 8
	return &Frame{w: w, h: h, buf: make([]byte, int(w)*pages)}
}

func (f *Frame) Size() (x, y int16) { return f.w, f.h }

// Buffer exposes the raw page-layout bytes, ready for panel transfer.
func (f *Frame) Buffer() []byte { return f.buf }

// SetPixel sets or clears a pixel. Any non-black color sets it.
func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	idx := int(x) + int(y)/8*int(f.w)
	bit := byte(1) << (uint(y) % 8)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		f.buf[idx] |= bit
	} else {
		f.buf[idx] &^= bit
	}
}

// Pixel reports whether the pixel at (x, y) is set.
func (f *Frame) Pixel(x, y int16) bool {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return false
	}
	idx := int(x) + int(y)/8*int(f.w)
	return f.buf[idx]&(1<<(uint(y)%8)) != 0
}

func (f *Frame) ClearBuffer() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Display is the present hook. The plain frame has no attached panel.
func (f *Frame) Display() error { return nil }
