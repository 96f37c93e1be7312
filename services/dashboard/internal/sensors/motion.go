package sensors

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/lsm6ds3"
)

// MotionConfig is handed to the driver at Init for its common setup. The
// driver reads a zero range as "unset" and falls back to its widest scale,
// so Init writes the ±2 g / 250 dps ranges itself afterwards.
var MotionConfig = lsm6ds3.Configuration{
	AccelRange:      lsm6ds3.ACCEL_2G,
	AccelSampleRate: lsm6ds3.ACCEL_SR_104,
	AccelBandWidth:  lsm6ds3.ACCEL_BW_100,
	GyroRange:       lsm6ds3.GYRO_250DPS,
	GyroSampleRate:  lsm6ds3.GYRO_SR_104,
}

// LSM6DS3 registers and fixed scales.
const (
	imuAddr      = 0x6A
	imuCtrl1XL   = 0x10
	imuOutXLG    = 0x22 // gyro X..Z then accel X..Z, 12 bytes
	imuCtrlXL    = 0x42 // 104 Hz, ±2 g, 100 Hz bandwidth
	imuCtrlG     = 0x40 // 104 Hz, 250 dps
	gyroMicroDPS = 8750 // per LSB at 250 dps
	accelMicroG  = 61   // per LSB at ±2 g
)

// GyroAccel reads the LSM6DS3-family IMU. Configuration goes through the
// driver; samples are read straight from the output registers so every bus
// error reaches the caller.
type GyroAccel struct {
	name  string
	bus   drivers.I2C
	setup func() error
	buf   [12]byte
}

// NewGyroAccel binds the IMU at 0x6A to bus.
func NewGyroAccel(bus drivers.I2C) *GyroAccel {
	d := lsm6ds3.New(bus)
	return newGyroAccel(bus, func() error { return d.Configure(MotionConfig) })
}

func newGyroAccel(bus drivers.I2C, setup func() error) *GyroAccel {
	return &GyroAccel{name: "gyro", bus: bus, setup: setup}
}

func (s *GyroAccel) Name() string { return s.name }

// Init runs the driver setup, then pins CTRL1_XL and CTRL2_G to the fixed
// ranges in one auto-incremented write.
func (s *GyroAccel) Init() error {
	if s.setup != nil {
		if err := s.setup(); err != nil {
			return initErr(s.name, err)
		}
	}
	if err := s.bus.Tx(imuAddr, []byte{imuCtrl1XL, imuCtrlXL, imuCtrlG}, nil); err != nil {
		return initErr(s.name, err)
	}
	return nil
}

func (s *GyroAccel) Read() (Reading, error) {
	if err := s.bus.Tx(imuAddr, []byte{imuOutXLG}, s.buf[:]); err != nil {
		return nil, readErr(s.name, err)
	}
	return Motion{
		Gyro:  Vector3{s.axis(0, gyroMicroDPS), s.axis(2, gyroMicroDPS), s.axis(4, gyroMicroDPS)},
		Accel: Vector3{s.axis(6, accelMicroG), s.axis(8, accelMicroG), s.axis(10, accelMicroG)},
	}, nil
}

func (s *GyroAccel) axis(off int, microPerLSB int32) float32 {
	return micro(le16(s.buf[off:]) * microPerLSB)
}

func micro(v int32) float32 { return float32(v) / 1e6 }

func le16(p []byte) int32 { return int32(int16(uint16(p[0]) | uint16(p[1])<<8)) }
