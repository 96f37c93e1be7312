package sensors

import (
	"errors"

	"cluedash-go/drivers/sht3x"
	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
)

type humidityDriver interface {
	Status() (uint16, error)
	Measure(delay sht3x.Delayer) (sht3x.Sample, error)
}

// Hygrometer reads the SHT3x. Every read waits on the shared delay while the
// chip converts.
type Hygrometer struct {
	name  string
	dev   humidityDriver
	delay Delay
}

// NewHygrometer binds the SHT3x at 0x44 to bus, high repeatability.
func NewHygrometer(bus drivers.I2C, delay Delay) *Hygrometer {
	d := sht3x.New(bus)
	d.Configure(sht3x.Config{Repeatability: sht3x.High})
	return newHygrometer(&d, delay)
}

func newHygrometer(dev humidityDriver, delay Delay) *Hygrometer {
	return &Hygrometer{name: "humidity", dev: dev, delay: delay}
}

func (s *Hygrometer) Name() string { return s.name }

// Init reads the status register; a valid CRC proves the chip answers.
func (s *Hygrometer) Init() error {
	if _, err := s.dev.Status(); err != nil {
		if errors.Is(err, sht3x.ErrCRC) {
			return initErr(s.name, errcode.CRC)
		}
		return &errcode.E{C: errcode.NotConnected, Op: s.name + ".init", Err: err}
	}
	return nil
}

func (s *Hygrometer) Read() (Reading, error) {
	m, err := s.dev.Measure(s.delay)
	if err != nil {
		if errors.Is(err, sht3x.ErrCRC) {
			return nil, errcode.Wrap(errcode.CRC, s.name+".read", err)
		}
		return nil, readErr(s.name, err)
	}
	return Humidity{MilliC: m.MilliCelsius(), CentiRH: m.CentiRelHumidity()}, nil
}
