// Package sensors wraps each CLUE sensor driver behind one Session contract:
// configure once, then produce a typed Reading per poll.
package sensors

import (
	"time"

	"cluedash-go/errcode"
)

// Kind identifies a Reading variant.
type Kind uint8

const (
	KindMotion Kind = iota
	KindLight
	KindClimate
	KindMagField
	KindHumidity
)

func (k Kind) String() string {
	switch k {
	case KindMotion:
		return "motion"
	case KindLight:
		return "light"
	case KindClimate:
		return "climate"
	case KindMagField:
		return "magfield"
	case KindHumidity:
		return "humidity"
	}
	return "unknown"
}

// Reading is an immutable value from one poll.
type Reading interface {
	Kind() Kind
}

// Vector3 is a three-axis value.
type Vector3 struct{ X, Y, Z float32 }

// Motion is gyroscope rotation (degrees/s) and acceleration (g).
type Motion struct {
	Gyro  Vector3
	Accel Vector3
}

// Light is the raw RGBC channel counts plus proximity (0..255).
type Light struct {
	Red, Green, Blue, Clear int32
	Proximity               int32
}

// Climate is the barometer reading: milli-°C and milli-Pa.
type Climate struct {
	MilliC  int32
	MilliPa int32
}

// MagField is the magnetic field in milligauss.
type MagField struct{ X, Y, Z int32 }

// Humidity is milli-°C and hundredths of %RH.
type Humidity struct {
	MilliC  int32
	CentiRH int32
}

func (Motion) Kind() Kind   { return KindMotion }
func (Light) Kind() Kind    { return KindLight }
func (Climate) Kind() Kind  { return KindClimate }
func (MagField) Kind() Kind { return KindMagField }
func (Humidity) Kind() Kind { return KindHumidity }

// Session is one configured sensor on its bus lease.
type Session interface {
	Name() string
	// Init applies the fixed configuration. A session is live only after
	// Init returns nil.
	Init() error
	Read() (Reading, error)
}

// Delay is the board's blocking wait, shared by reference.
type Delay interface {
	Sleep(d time.Duration)
}

func initErr(name string, err error) error {
	return errcode.Wrap(errcode.Of(err), name+".init", err)
}

func readErr(name string, err error) error {
	c := errcode.Of(err)
	if c == errcode.Error {
		c = errcode.IOError
	}
	return errcode.Wrap(c, name+".read", err)
}
