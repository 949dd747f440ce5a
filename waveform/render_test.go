package waveform

import (
	"testing"

	"clipbox/raster"
)

const (
	width  = 128
	height = 64
	axis   = headerPx + (height-headerPx)/2
)

func TestRenderDecimationByNearestIndex(t *testing.T) {
	// 256 samples on a 128-wide screen: column x must sample index 2x
	// exactly. Even indices are full scale, odd indices are zero, so a
	// renderer that walked raw indices would alternate direction per
	// column; nearest-index decimation points every column up.
	samples := make([]uint16, 256)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 4095
		}
	}

	f := raster.New(width, height)
	if err := Render(f, samples); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for x := int16(0); x < width; x++ {
		if !f.Pixel(x, headerPx) {
			t.Fatalf("column %d: expected full-scale run clipped at the header", x)
		}
		if f.Pixel(x, axis+4) {
			t.Fatalf("column %d: unexpected pixels below the axis", x)
		}
	}
}

func TestRenderAxisAndCaptionOnlyForEmptyClip(t *testing.T) {
	f := raster.New(width, height)
	if err := Render(f, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for x := int16(0); x < width; x++ {
		if !f.Pixel(x, axis) {
			t.Fatalf("axis row missing at column %d", x)
		}
	}
	// Nothing in the plot band besides the axis.
	for x := int16(0); x < width; x++ {
		for y := int16(headerPx); y < height; y++ {
			if y == axis {
				continue
			}
			if f.Pixel(x, y) {
				t.Fatalf("stray pixel at (%d, %d) for empty clip", x, y)
			}
		}
	}
}

func TestRenderQuiescentColumnStaysOnAxis(t *testing.T) {
	// Mid-scale samples have zero amplitude: the trace is the axis row.
	samples := make([]uint16, width)
	for i := range samples {
		samples[i] = 2048
	}

	f := raster.New(width, height)
	if err := Render(f, samples); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for x := int16(0); x < width; x++ {
		if !f.Pixel(x, axis) {
			t.Fatalf("axis missing at column %d", x)
		}
		if f.Pixel(x, axis-1) || f.Pixel(x, axis+1) {
			t.Fatalf("quiescent column %d left the axis", x)
		}
	}
}

func TestRenderNegativeAmplitudeFillsDownward(t *testing.T) {
	samples := []uint16{0} // full negative swing, clipped at the bottom

	f := raster.New(width, height)
	if err := Render(f, samples); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := int16(axis); y < height; y++ {
		if !f.Pixel(0, y) {
			t.Fatalf("expected downward run at y=%d", y)
		}
	}
	if f.Pixel(0, axis-1) {
		t.Fatal("negative swing drew above the axis")
	}
}

func TestRenderShortClipLeavesRightColumnsEmpty(t *testing.T) {
	samples := make([]uint16, 10)
	for i := range samples {
		samples[i] = 4095
	}

	f := raster.New(width, height)
	if err := Render(f, samples); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !f.Pixel(0, headerPx) {
		t.Fatal("column 0 missing its run")
	}
	// Columns past the clip only carry the axis.
	for x := int16(10); x < width; x++ {
		if f.Pixel(x, headerPx+1) || f.Pixel(x, axis+1) {
			t.Fatalf("column %d drawn past clip length", x)
		}
	}
}
