package dashboard

import "time"

// DefaultCadence is the pause between poll-and-render cycles.
const DefaultCadence = 250 * time.Millisecond

// Poll order; one bus lease each.
const (
	SensorGyro     = "gyro"
	SensorLight    = "light"
	SensorPressure = "pressure"
	SensorMagnet   = "magnet"
	SensorHumidity = "humidity"
)

var pollOrder = []string{SensorGyro, SensorLight, SensorPressure, SensorMagnet, SensorHumidity}

// Config controls the loop. All fields are optional.
type Config struct {
	// Cadence defaults to DefaultCadence if zero.
	Cadence time.Duration
	// Owner is the name the sensor bus is claimed under. Default "dashboard".
	Owner string
}

func (c Config) withDefaults() Config {
	if c.Cadence <= 0 {
		c.Cadence = DefaultCadence
	}
	if c.Owner == "" {
		c.Owner = "dashboard"
	}
	return c
}
