package audio

import "testing"

func TestSmoothRecursiveFormula(t *testing.T) {
	buf := []uint16{4095, 0, 4095, 0}
	Smooth(buf, 0.2)

	// out[0] = 4095
	// out[1] = round(0.2*0    + 0.8*4095) = 3276
	// out[2] = round(0.2*4095 + 0.8*3276) = 3440
	// out[3] = round(0.2*0    + 0.8*3440) = 2752
	want := []uint16{4095, 3276, 3440, 2752}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("out[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestSmoothUsesPriorOutputNotInput(t *testing.T) {
	// A plain moving average over raw input would give out[2] =
	// 0.2*4095 + 0.8*0 = 819 here; the recursive filter must not.
	buf := []uint16{4095, 0, 4095}
	Smooth(buf, 0.2)
	if buf[2] == 819 {
		t.Fatal("filter averaged raw input instead of prior output")
	}
	if buf[2] != 3440 {
		t.Fatalf("out[2] = %d, want 3440", buf[2])
	}
}

func TestSmoothConstantSignalIsFixedPoint(t *testing.T) {
	buf := []uint16{2048, 2048, 2048, 2048}
	Smooth(buf, 0.2)
	for i, v := range buf {
		if v != 2048 {
			t.Fatalf("out[%d] = %d, want 2048", i, v)
		}
	}
}

func TestSmoothDegenerateLengths(t *testing.T) {
	Smooth(nil, 0.2)
	one := []uint16{123}
	Smooth(one, 0.2)
	if one[0] != 123 {
		t.Fatalf("single sample changed to %d", one[0])
	}
}
