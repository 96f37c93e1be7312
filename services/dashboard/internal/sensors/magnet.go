package sensors

import (
	"errors"

	"cluedash-go/drivers/lis3mdl"
	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
)

type magDriver interface {
	Configure(cfg lis3mdl.Config) error
	ReadMagneticField() (x, y, z int32, err error) // mG
}

// Magnetometer reads the LIS3MDL at ±4 gauss.
type Magnetometer struct {
	name string
	dev  magDriver
}

// NewMagnetometer binds the LIS3MDL at 0x1C to bus.
func NewMagnetometer(bus drivers.I2C) *Magnetometer {
	d := lis3mdl.New(bus)
	return newMagnetometer(&d)
}

func newMagnetometer(dev magDriver) *Magnetometer {
	return &Magnetometer{name: "magnet", dev: dev}
}

func (s *Magnetometer) Name() string { return s.name }

func (s *Magnetometer) Init() error {
	if err := s.dev.Configure(lis3mdl.Config{Range: lis3mdl.Range4Gauss}); err != nil {
		if errors.Is(err, lis3mdl.ErrNotConnected) {
			return initErr(s.name, errcode.NotConnected)
		}
		return initErr(s.name, err)
	}
	return nil
}

func (s *Magnetometer) Read() (Reading, error) {
	x, y, z, err := s.dev.ReadMagneticField()
	if err != nil {
		return nil, readErr(s.name, err)
	}
	return MagField{X: x, Y: y, Z: z}, nil
}
