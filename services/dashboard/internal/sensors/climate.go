package sensors

import (
	"time"

	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bmp280"
)

// standby500us is the shortest BMP280 normal-mode standby (t_sb = 0.5 ms).
const standby500us = bmp280.Standby(0)

// ClimateSettle covers one 4x/4x oversampled conversion plus standby.
const ClimateSettle = 20 * time.Millisecond

type climateDriver interface {
	Connected() bool
	ReadTemperature() (int32, error) // milli-°C
	ReadPressure() (int32, error)    // milli-Pa
}

// Barometer reads pressure and temperature from the BMP280.
type Barometer struct {
	name  string
	dev   climateDriver
	setup func()
	delay Delay
}

// NewBarometer binds the BMP280 at 0x77 to bus. delay is the board's shared
// wait, used for the first conversion after entering normal mode.
func NewBarometer(bus drivers.I2C, delay Delay) *Barometer {
	d := bmp280.New(bus)
	return newBarometer(&d, delay, func() {
		d.Configure(standby500us, bmp280.FILTER_4X, bmp280.SAMPLING_4X, bmp280.SAMPLING_4X, bmp280.MODE_NORMAL)
	})
}

func newBarometer(dev climateDriver, delay Delay, setup func()) *Barometer {
	return &Barometer{name: "pressure", dev: dev, setup: setup, delay: delay}
}

func (s *Barometer) Name() string { return s.name }

// Init checks the chip ID, loads calibration, starts normal mode and waits
// for the first conversion to land.
func (s *Barometer) Init() error {
	if !s.dev.Connected() {
		return initErr(s.name, errcode.NotConnected)
	}
	if s.setup != nil {
		s.setup()
	}
	s.delay.Sleep(ClimateSettle)
	return nil
}

func (s *Barometer) Read() (Reading, error) {
	t, err := s.dev.ReadTemperature()
	if err != nil {
		return nil, readErr(s.name, err)
	}
	p, err := s.dev.ReadPressure()
	if err != nil {
		return nil, readErr(s.name, err)
	}
	return Climate{MilliC: t, MilliPa: p}, nil
}
