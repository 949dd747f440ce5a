//go:build tinygo && baremetal

package hal

import (
	"device/rp"
	"errors"
	"machine"
	"unsafe"
)

// The ADC runs from the fixed 48 MHz USB-derived clock.
const adcClockHz = 48_000_000

// adcSource captures blocks of conversions through the ADC FIFO and a
// DMA channel, one halfword per conversion, no CPU work per sample.
type adcSource struct {
	mux uint32 // AINSEL input select
}

func newADCSource(pin machine.Pin, mux uint32) *adcSource {
	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{Resolution: 12})
	return &adcSource{mux: mux}
}

// Configure sets the conversion pacing divisor for the target rate.
// The divisor is 16.8 fixed point: rate = 48 MHz / (DIV/256).
func (s *adcSource) Configure(sampleRate uint32) error {
	if sampleRate == 0 || sampleRate > adcClockHz/96 {
		return errors.New("adc: sample rate out of range")
	}
	div := uint32((uint64(adcClockHz) << 8) / uint64(sampleRate))
	rp.ADC.DIV.Set(div)
	return nil
}

// ReadBlock drains stale conversions, free-runs the converter and
// blocks until len(dst) readings have been moved into dst by DMA.
// A stalled converter stalls this call; there is no timeout.
func (s *adcSource) ReadBlock(dst []uint16) error {
	if len(dst) == 0 {
		return nil
	}

	rp.ADC.CS.ReplaceBits(s.mux, 0x7, rp.ADC_CS_AINSEL_Pos)

	// FIFO on, DREQ on, request DMA at one entry, full 12-bit results.
	rp.ADC.FCS.Set(rp.ADC_FCS_EN | rp.ADC_FCS_DREQ_EN | 1<<rp.ADC_FCS_THRESH_Pos)
	for !rp.ADC.FCS.HasBits(rp.ADC_FCS_EMPTY) {
		_ = rp.ADC.FIFO.Get()
	}

	rp.DMA.CH0_READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&rp.ADC.FIFO))))
	rp.DMA.CH0_WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(&dst[0]))))
	rp.DMA.CH0_TRANS_COUNT.Set(uint32(len(dst)))
	rp.DMA.CH0_CTRL_TRIG.Set(rp.DMA_CH0_CTRL_TRIG_EN |
		rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_SIZE_HALFWORD<<rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos |
		rp.DMA_CH0_CTRL_TRIG_INCR_WRITE |
		rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_ADC<<rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos)

	rp.ADC.CS.SetBits(rp.ADC_CS_START_MANY)
	for rp.DMA.CH0_CTRL_TRIG.HasBits(rp.DMA_CH0_CTRL_TRIG_BUSY) {
	}
	rp.ADC.CS.ClearBits(rp.ADC_CS_START_MANY)

	return nil
}
