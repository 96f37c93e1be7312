//go:build !clue_alpha

package sensors

import (
	"errors"
	"testing"
	"time"

	"cluedash-go/board"
	"cluedash-go/drivers/sht3x"
	"cluedash-go/errcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNack = errors.New("nack")

type countingDelay struct{ waits []time.Duration }

func (d *countingDelay) Sleep(t time.Duration) { d.waits = append(d.waits, t) }

// poke writes raw register bytes into the emulated bus.
func poke(t *testing.T, bus *board.SimBus, addr uint16, reg byte, data ...byte) {
	t.Helper()
	require.NoError(t, bus.Tx(addr, append([]byte{reg}, data...), nil))
}

func le(vs ...int16) []byte {
	var out []byte
	for _, v := range vs {
		out = append(out, byte(uint16(v)), byte(uint16(v)>>8))
	}
	return out
}

// ---- fakes ----

type fakeClimate struct {
	connected bool
	t, p      int32
	err       error
}

func (f *fakeClimate) Connected() bool                 { return f.connected }
func (f *fakeClimate) ReadTemperature() (int32, error) { return f.t, nil }
func (f *fakeClimate) ReadPressure() (int32, error)    { return f.p, f.err }

// ---- tests ----

func TestGyroAccelPinsRangesAndConverts(t *testing.T) {
	bus := board.NewSimBus()
	setups := 0
	s := newGyroAccel(bus, func() error { setups++; return nil })
	require.NoError(t, s.Init())
	assert.Equal(t, 1, setups)
	assert.Equal(t, byte(0x42), bus.Reg(board.AddrLSM6DS, 0x10), "CTRL1_XL: 104 Hz, 2 g, 100 Hz BW")
	assert.Equal(t, byte(0x40), bus.Reg(board.AddrLSM6DS, 0x11), "CTRL2_G: 104 Hz, 250 dps")

	poke(t, bus, board.AddrLSM6DS, 0x22, le(400, -8, 0, 0, -16384, 16384)...)
	r, err := s.Read()
	require.NoError(t, err)
	m, ok := r.(Motion)
	require.True(t, ok)
	assert.Equal(t, KindMotion, r.Kind())
	assert.InDelta(t, 3.5, m.Gyro.X, 1e-6)
	assert.InDelta(t, -0.07, m.Gyro.Y, 1e-6)
	assert.InDelta(t, 0, m.Gyro.Z, 1e-6)
	assert.InDelta(t, -0.999424, m.Accel.Y, 1e-6)
	assert.InDelta(t, 0.999424, m.Accel.Z, 1e-6)
}

func TestGyroAccelInitFailureIsReported(t *testing.T) {
	s := newGyroAccel(board.NewSimBus(), func() error { return errcode.IOError })
	err := s.Init()
	assert.ErrorIs(t, err, errcode.IOError)
	assert.Contains(t, err.Error(), "gyro.init")
}

func TestGyroAccelReadErrorIsIOError(t *testing.T) {
	bus := board.NewSimBus()
	s := newGyroAccel(bus, nil)
	require.NoError(t, s.Init())

	bus.FailAfter(0)
	_, err := s.Read()
	assert.Equal(t, errcode.IOError, errcode.Of(err))
	assert.Contains(t, err.Error(), "gyro.read")
}

func TestLightInitRequiresChip(t *testing.T) {
	bus := board.NewSimBus()
	setups := 0
	s := newLight(bus, func() bool { return false }, func() { setups++ })
	assert.ErrorIs(t, s.Init(), errcode.NotConnected)
	assert.Zero(t, setups, "no configuration on an absent chip")
	assert.Zero(t, bus.Reg(board.AddrAPDS, 0x80))
}

func TestLightRunsColourAndProximityTogether(t *testing.T) {
	bus := board.NewSimBus()
	s := newLight(bus, func() bool { return true }, nil)
	require.NoError(t, s.Init())
	assert.Equal(t, byte(0x07), bus.Reg(board.AddrAPDS, 0x80), "PON|AEN|PEN")

	poke(t, bus, board.AddrAPDS, 0x94, le(99, 12, 34, 56)...)
	poke(t, bus, board.AddrAPDS, 0x9C, 7)
	r, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, Light{Red: 12, Green: 34, Blue: 56, Clear: 99, Proximity: 7}, r)
}

func TestLightReadFailsOnDeadBus(t *testing.T) {
	bus := board.NewSimBus()
	s := newLight(bus, func() bool { return true }, nil)
	require.NoError(t, s.Init())

	bus.FailAfter(0)
	r, err := s.Read()
	assert.Nil(t, r)
	assert.ErrorIs(t, err, errcode.IOError)
	assert.Contains(t, err.Error(), "light.read")

	// Colour read succeeds, proximity read fails.
	bus.FailAfter(1)
	_, err = s.Read()
	assert.ErrorIs(t, err, errcode.IOError)
}

func TestBarometerWaitsForFirstConversion(t *testing.T) {
	var d countingDelay
	s := newBarometer(&fakeClimate{connected: true, t: 25_080, p: 100_653_000}, &d, nil)
	require.NoError(t, s.Init())
	assert.Equal(t, []time.Duration{ClimateSettle}, d.waits)

	r, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, Climate{MilliC: 25_080, MilliPa: 100_653_000}, r)
}

func TestBarometerErrors(t *testing.T) {
	var d countingDelay
	s := newBarometer(&fakeClimate{}, &d, nil)
	assert.ErrorIs(t, s.Init(), errcode.NotConnected)
	assert.Empty(t, d.waits)

	s = newBarometer(&fakeClimate{connected: true, err: errNack}, &d, nil)
	require.NoError(t, s.Init())
	_, err := s.Read()
	assert.ErrorIs(t, err, errNack)
	assert.Contains(t, err.Error(), "pressure.read")
}

func TestMagnetometer(t *testing.T) {
	bus := board.NewSimBus()
	s := NewMagnetometer(bus)
	require.NoError(t, s.Init())
	assert.Equal(t, byte(0x7C), bus.Reg(board.AddrLIS3, 0x20))

	poke(t, bus, board.AddrLIS3, 0x28, le(-1711, 0, 27368)...)
	r, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, MagField{X: -250, Y: 0, Z: 4000}, r)

	bus.FailAfter(0)
	_, err = s.Read()
	assert.Equal(t, errcode.IOError, errcode.Of(err))
}

func TestMagnetometerMissingChip(t *testing.T) {
	bus := board.NewSimBus()
	bus.FailAfter(0)
	err := NewMagnetometer(bus).Init()
	assert.ErrorIs(t, err, errcode.NotConnected)
	assert.Contains(t, err.Error(), "magnet.init")
}

// shtBus answers like an SHT3x so the real driver runs end to end.
type shtBus struct {
	armed bool
	fail  bool
}

func (b *shtBus) Tx(addr uint16, w, r []byte) error {
	if b.fail {
		return errNack
	}
	if len(w) == 2 {
		b.armed = true
	}
	switch len(r) {
	case 3:
		r[0], r[1] = 0, 0
		r[2] = sht3x.CRC8(r[:2])
	case 6:
		r[0], r[1] = 0x66, 0x66 // 25.000 °C
		r[2] = sht3x.CRC8(r[0:2])
		r[3], r[4] = 0x80, 0x00 // 50.00 %RH
		r[5] = sht3x.CRC8(r[3:5])
	}
	return nil
}

func TestHygrometerReadAfterInit(t *testing.T) {
	var d countingDelay
	s := NewHygrometer(&shtBus{}, &d)
	require.NoError(t, s.Init())

	r, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, Humidity{MilliC: 25000, CentiRH: 5000}, r)
	assert.Equal(t, []time.Duration{sht3x.High.ConversionTime()}, d.waits, "one shared-delay wait per read")
}

func TestHygrometerBusFailure(t *testing.T) {
	bus := &shtBus{fail: true}
	s := NewHygrometer(bus, &countingDelay{})
	assert.ErrorIs(t, s.Init(), errcode.NotConnected)

	bus.fail = false
	require.NoError(t, s.Init())
	bus.fail = true
	_, err := s.Read()
	assert.ErrorIs(t, err, errNack)
	assert.Equal(t, errcode.IOError, errcode.Of(err))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "motion", KindMotion.String())
	assert.Equal(t, "humidity", KindHumidity.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
