//go:build clue_alpha

package board

import (
	"machine"

	"tinygo.org/x/drivers/st7789"
)

// Wiring for the Adafruit CLUE.
const (
	screenW = 240
	screenH = 240

	i2cFreq = 400 * machine.KHz
	spiFreq = 8_000_000
)

type tft struct {
	st7789.Device
}

func open() (*Board, error) {
	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{
		SCL:       machine.SCL_PIN,
		SDA:       machine.SDA_PIN,
		Frequency: i2cFreq,
	}); err != nil {
		return nil, err
	}

	if err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: spiFreq,
		SCK:       machine.TFT_SCK,
		SDO:       machine.TFT_SDO,
		SDI:       machine.TFT_SDO,
		Mode:      0,
	}); err != nil {
		return nil, err
	}
	d := &tft{Device: st7789.New(machine.SPI1, machine.TFT_RESET, machine.TFT_DC, machine.TFT_CS, machine.TFT_LITE)}
	d.Configure(st7789.Config{
		Width:     screenW,
		Height:    screenH,
		Rotation:  st7789.ROTATION_180,
		RowOffset: 80,
	})

	b := openIndicator()
	b.Display = d
	b.bus = i2c
	return b, nil
}

// openIndicator configures the LED pin only. The buses and the panel are
// left exactly as they are.
func openIndicator() *Board {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()
	return &Board{Name: "clue", LED: led, Delay: sleeper{}}
}
