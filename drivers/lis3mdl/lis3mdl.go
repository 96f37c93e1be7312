// Package lis3mdl provides a driver for the ST LIS3MDL 3-axis magnetometer.
//
// The device runs in continuous conversion with ultra-high-performance X/Y/Z
// at 80 Hz. Readings are milligauss.
package lis3mdl

import (
	"errors"

	"tinygo.org/x/drivers"
)

// I2C addresses (SDO/SA1 low / high).
const (
	Address    = 0x1C
	AddressAlt = 0x1E
)

// Registers.
const (
	regWhoAmI = 0x0F
	regCtrl1  = 0x20
	regCtrl2  = 0x21
	regCtrl3  = 0x22
	regCtrl4  = 0x23
	regOutXL  = 0x28

	autoIncrement = 0x80

	chipID = 0x3D

	ctrl1UHPXY80Hz = 0x7C // OM=11, DO=111
	ctrl3Continuous = 0x00 // MD=00
	ctrl4UHPZ      = 0x0C // OMZ=11
)

// Range is the full-scale setting (CTRL_REG2 FS bits).
type Range uint8

const (
	Range4Gauss  Range = 0x00
	Range8Gauss  Range = 0x20
	Range12Gauss Range = 0x40
	Range16Gauss Range = 0x60
)

// lsbPerGauss is the datasheet sensitivity for the range.
func (r Range) lsbPerGauss() int32 {
	switch r {
	case Range8Gauss:
		return 3421
	case Range12Gauss:
		return 2281
	case Range16Gauss:
		return 1711
	default:
		return 6842
	}
}

// ErrNotConnected is returned by Configure when WHO_AM_I does not match.
var ErrNotConnected = errors.New("lis3mdl: not connected")

// Config is applied by Configure. Zero values select ±4 gauss at the default
// address.
type Config struct {
	Address uint16
	Range   Range
}

// Device wraps an I2C connection to a LIS3MDL.
type Device struct {
	bus     drivers.I2C
	Address uint16

	rng Range
	reg [2]byte
	buf [6]byte
}

// New creates a new LIS3MDL connection. It does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Connected reads WHO_AM_I. A bus error counts as not connected.
func (d *Device) Connected() bool {
	id := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{regWhoAmI}, id); err != nil {
		return false
	}
	return id[0] == chipID
}

// Configure checks the chip ID, then writes CTRL_REG1..4.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	d.rng = cfg.Range
	if !d.Connected() {
		return ErrNotConnected
	}
	for _, w := range [][2]byte{
		{regCtrl1, ctrl1UHPXY80Hz},
		{regCtrl2, byte(d.rng)},
		{regCtrl4, ctrl4UHPZ},
		{regCtrl3, ctrl3Continuous},
	} {
		d.reg = w
		if err := d.bus.Tx(d.Address, d.reg[:], nil); err != nil {
			return err
		}
	}
	return nil
}

// ReadMagneticField returns the field on each axis in milligauss.
func (d *Device) ReadMagneticField() (x, y, z int32, err error) {
	if err = d.bus.Tx(d.Address, []byte{regOutXL | autoIncrement}, d.buf[:]); err != nil {
		return 0, 0, 0, err
	}
	s := d.rng.lsbPerGauss()
	return d.milli(0, s), d.milli(2, s), d.milli(4, s), nil
}

func (d *Device) milli(off int, lsbPerGauss int32) int32 {
	raw := int32(int16(uint16(d.buf[off]) | uint16(d.buf[off+1])<<8))
	return raw * 1000 / lsbPerGauss
}
