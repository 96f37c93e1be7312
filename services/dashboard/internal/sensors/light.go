package sensors

import (
	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/apds9960"
)

// APDS9960 registers.
const (
	lightAddr   = 0x39
	lightEnable = 0x80
	lightCData  = 0x94 // C, R, G, B little-endian, 8 bytes
	lightPData  = 0x9C

	// PON | AEN | PEN: colour and proximity engines run side by side.
	lightEnableColorProx = 0x07
)

// LightSensor reads colour and proximity from the APDS9960. The driver
// checks and configures the chip; the engines are enabled and the data
// registers read through the bus directly, since the driver runs one engine
// at a time and drops read errors.
type LightSensor struct {
	name      string
	bus       drivers.I2C
	connected func() bool
	setup     func()
	buf       [8]byte
}

// NewLight binds the APDS9960 at 0x39 to bus.
func NewLight(bus drivers.I2C) *LightSensor {
	d := apds9960.New(bus)
	return newLight(bus, d.Connected, func() {
		d.Configure(apds9960.Configuration{})
	})
}

func newLight(bus drivers.I2C, connected func() bool, setup func()) *LightSensor {
	return &LightSensor{name: "light", bus: bus, connected: connected, setup: setup}
}

func (s *LightSensor) Name() string { return s.name }

// Init verifies the chip ID, applies the driver defaults and enables the
// colour and proximity engines together.
func (s *LightSensor) Init() error {
	if s.connected != nil && !s.connected() {
		return initErr(s.name, errcode.NotConnected)
	}
	if s.setup != nil {
		s.setup()
	}
	if err := s.bus.Tx(lightAddr, []byte{lightEnable, lightEnableColorProx}, nil); err != nil {
		return initErr(s.name, err)
	}
	return nil
}

func (s *LightSensor) Read() (Reading, error) {
	if err := s.bus.Tx(lightAddr, []byte{lightCData}, s.buf[:8]); err != nil {
		return nil, readErr(s.name, err)
	}
	l := Light{
		Clear: u16(s.buf[0:]),
		Red:   u16(s.buf[2:]),
		Green: u16(s.buf[4:]),
		Blue:  u16(s.buf[6:]),
	}
	if err := s.bus.Tx(lightAddr, []byte{lightPData}, s.buf[:1]); err != nil {
		return nil, readErr(s.name, err)
	}
	l.Proximity = int32(s.buf[0])
	return l, nil
}

func u16(p []byte) int32 { return int32(uint16(p[0]) | uint16(p[1])<<8) }
