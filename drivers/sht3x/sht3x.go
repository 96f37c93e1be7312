// Package sht3x provides a driver for the Sensirion SHT30/31/35 humidity and
// temperature sensors.
//
// Measurements are single-shot without clock stretching:
//
//	d := sht3x.New(bus)
//	d.Configure(sht3x.Config{Repeatability: sht3x.High})
//	s, err := d.Measure(delay)  // command, wait on delay, read + CRC check
//
// The wait between command and read goes through a caller-supplied Delayer
// so one delay instance can be shared by several drivers on a board.
//
// Values are fixed-point: milli-°C and centi-%RH.
package sht3x

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C addresses (ADDR pin low / high).
const (
	AddressA = 0x44
	AddressB = 0x45
)

// Commands.
const (
	cmdSoftReset  = 0x30A2
	cmdReadStatus = 0xF32D

	crcInit = 0xFF
	crcPoly = 0x31
)

// Repeatability selects the single-shot command and its conversion time.
type Repeatability uint8

const (
	High Repeatability = iota
	Medium
	Low
)

func (r Repeatability) command() uint16 {
	switch r {
	case Medium:
		return 0x240B
	case Low:
		return 0x2416
	default:
		return 0x2400
	}
}

// ConversionTime is the datasheet maximum for the repeatability setting.
func (r Repeatability) ConversionTime() time.Duration {
	switch r {
	case Medium:
		return 6 * time.Millisecond
	case Low:
		return 4 * time.Millisecond
	default:
		return 15 * time.Millisecond
	}
}

// Errors returned by the driver.
var (
	ErrCRC = errors.New("sht3x: crc mismatch")
)

// Delayer blocks for the given duration.
type Delayer interface {
	Sleep(d time.Duration)
}

type sleeper struct{}

func (sleeper) Sleep(d time.Duration) { time.Sleep(d) }

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to AddressA if zero.
	Address uint16
	// Repeatability defaults to High.
	Repeatability Repeatability
}

// Device wraps an I2C connection to an SHT3x device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	rep Repeatability
	cmd [2]byte
	buf [6]byte
}

// New creates a new SHT3x connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: AddressA,
	}
}

// Configure applies optional config. It does not touch the device.
func (d *Device) Configure(cfgs ...Config) {
	if len(cfgs) == 0 {
		return
	}
	c := cfgs[0]
	if c.Address != 0 {
		d.Address = c.Address
	}
	d.rep = c.Repeatability
}

// Reset issues a soft reset. Give the device ~2ms afterwards before using.
func (d *Device) Reset() error {
	return d.write(cmdSoftReset)
}

// Status reads the 16-bit status register.
func (d *Device) Status() (uint16, error) {
	d.putCmd(cmdReadStatus)
	r := d.buf[:3]
	if err := d.bus.Tx(d.Address, d.cmd[:], r); err != nil {
		return 0, err
	}
	if CRC8(r[:2]) != r[2] {
		return 0, ErrCRC
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// Measure runs one single-shot measurement. The bus is released while the
// device converts; delay is only used for that wait. A nil delay falls back
// to time.Sleep.
func (d *Device) Measure(delay Delayer) (Sample, error) {
	if delay == nil {
		delay = sleeper{}
	}
	if err := d.write(d.rep.command()); err != nil {
		return Sample{}, err
	}
	delay.Sleep(d.rep.ConversionTime())

	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return Sample{}, err
	}
	if CRC8(data[0:2]) != data[2] || CRC8(data[3:5]) != data[5] {
		return Sample{}, ErrCRC
	}
	return Sample{
		RawTemp:     uint16(data[0])<<8 | uint16(data[1]),
		RawHumidity: uint16(data[3])<<8 | uint16(data[4]),
	}, nil
}

func (d *Device) putCmd(c uint16) {
	d.cmd[0] = byte(c >> 8)
	d.cmd[1] = byte(c)
}

func (d *Device) write(c uint16) error {
	d.putCmd(c)
	return d.bus.Tx(d.Address, d.cmd[:], nil)
}

// Sample holds raw readings.
type Sample struct {
	RawTemp     uint16
	RawHumidity uint16
}

// MilliCelsius returns temperature in milli-°C: -45 + 175 * raw / 65535.
func (s Sample) MilliCelsius() int32 {
	return int32(int64(s.RawTemp)*175000/0xFFFF) - 45000
}

// CentiRelHumidity returns hundredths of %RH: 100 * raw / 65535.
func (s Sample) CentiRelHumidity() int32 {
	return int32(int64(s.RawHumidity) * 10000 / 0xFFFF)
}

// CRC8 computes the Sensirion checksum (poly 0x31, init 0xFF).
func CRC8(p []byte) byte {
	crc := byte(crcInit)
	for _, b := range p {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
