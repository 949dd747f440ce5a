//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"clipbox/raster"
)

// Pin map for the Pico audio carrier.
const (
	pinButtonRecord = machine.GP5
	pinButtonPlay   = machine.GP6

	pinLEDRed   = machine.GP13
	pinLEDGreen = machine.GP11
	pinLEDBlue  = machine.GP12

	pinBuzzerA = machine.GP21
	pinBuzzerB = machine.GP10

	pinMic     = machine.GP28 // ADC2
	adcMicMux  = 2
	pinOLEDSDA = machine.GP14
	pinOLEDSCL = machine.GP15
)

type tinyGoHAL struct {
	logger  *uartLogger
	leds    RGBLED
	buttons *tinyGoButtons
	mic     SampleSource
	outA    PWMOut
	outB    PWMOut
	disp    Display
}

// New returns a Pico (RP2040) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	disp, err := newOLED()
	if err != nil {
		// Run headless on a detached frame rather than failing boot.
		disp = raster.New(128, 64)
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		leds: RGBLED{
			R: newPinLED(pinLEDRed),
			G: newPinLED(pinLEDGreen),
			B: newPinLED(pinLEDBlue),
		},
		buttons: &tinyGoButtons{boot: time.Now()},
		mic:     newADCSource(pinMic, adcMicMux),
		outA:    newPWMOut(pinBuzzerA),
		outB:    newPWMOut(pinBuzzerB),
		disp:    disp,
	}
}

func (h *tinyGoHAL) Logger() Logger        { return h.logger }
func (h *tinyGoHAL) LEDs() RGBLED          { return h.leds }
func (h *tinyGoHAL) Buttons() Buttons      { return h.buttons }
func (h *tinyGoHAL) Mic() SampleSource     { return h.mic }
func (h *tinyGoHAL) Output() (a, b PWMOut) { return h.outA, h.outB }
func (h *tinyGoHAL) Display() Display      { return h.disp }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func newPinLED(pin machine.Pin) *pinLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &pinLED{pin: pin}
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type tinyGoButtons struct {
	boot time.Time
}

// Notify arms falling-edge interrupts on both buttons with pull-ups.
// The handler runs in interrupt context.
func (b *tinyGoButtons) Notify(handler func(ButtonID, time.Duration)) error {
	pinButtonRecord.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinButtonPlay.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	boot := b.boot
	dispatch := func(p machine.Pin) {
		at := time.Since(boot)
		switch p {
		case pinButtonRecord:
			handler(ButtonRecord, at)
		case pinButtonPlay:
			handler(ButtonPlay, at)
		}
	}

	if err := pinButtonRecord.SetInterrupt(machine.PinFalling, dispatch); err != nil {
		return err
	}
	return pinButtonPlay.SetInterrupt(machine.PinFalling, dispatch)
}
