package hal

import "testing"

func TestSquareSourcePhase(t *testing.T) {
	src := &SquareSource{FreqHz: 1000, Low: 0, High: 4095}
	if err := src.Configure(48000); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	dst := make([]uint16, 96)
	if err := src.ReadBlock(dst); err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}

	// 48 kHz at 1 kHz square: 24 samples per half period.
	for i := 0; i < 24; i++ {
		if dst[i] != 4095 {
			t.Fatalf("dst[%d] = %d, want high half", i, dst[i])
		}
	}
	for i := 24; i < 48; i++ {
		if dst[i] != 0 {
			t.Fatalf("dst[%d] = %d, want low half", i, dst[i])
		}
	}
	if dst[48] != 4095 {
		t.Fatalf("dst[48] = %d, want next period high", dst[48])
	}
}

func TestSquareSourcePhaseSpansBlocks(t *testing.T) {
	src := &SquareSource{FreqHz: 1000, Low: 0, High: 4095}
	if err := src.Configure(48000); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	first := make([]uint16, 12)
	second := make([]uint16, 12)
	if err := src.ReadBlock(first); err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}
	if err := src.ReadBlock(second); err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}

	// Samples 12..23 are still in the first high half period.
	for i, v := range second {
		if v != 4095 {
			t.Fatalf("second[%d] = %d, want continuation of high half", i, v)
		}
	}
}

func TestSquareSourceRequiresConfigure(t *testing.T) {
	src := &SquareSource{FreqHz: 1000, High: 4095}
	if err := src.ReadBlock(make([]uint16, 4)); err == nil {
		t.Fatal("expected error before Configure")
	}
	if err := src.Configure(0); err == nil {
		t.Fatal("expected error for zero rate")
	}
}
