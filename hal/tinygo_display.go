//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// newOLED brings up the 128x64 SSD1306 panel on I2C1.
//
// The driver keeps its own page-layout buffer, so it plays the render
// target role directly behind the Display interface.
func newOLED() (Display, error) {
	err := machine.I2C1.Configure(machine.I2CConfig{
		SDA:       pinOLEDSDA,
		SCL:       pinOLEDSCL,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return &dev, nil
}
