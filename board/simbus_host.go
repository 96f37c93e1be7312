//go:build !clue_alpha

package board

import (
	"math"
	"sync"

	"cluedash-go/drivers/sht3x"
	"cluedash-go/errcode"
	"cluedash-go/x/conv"
)

// Sensor addresses on the CLUE sensor bus.
const (
	AddrLSM6DS = 0x6A
	AddrAPDS   = 0x39
	AddrBMP280 = 0x77
	AddrLIS3   = 0x1C
	AddrSHT3x  = sht3x.AddressA
)

// SimBus emulates the CLUE sensor bus: register files for the register-mapped
// chips and a command/response model for the SHT3x. Values drift on Step so
// the screen moves.
type SimBus struct {
	mu    sync.Mutex
	regs  map[uint16]*[256]byte
	ptr   map[uint16]byte
	phase float64

	shtArmed bool
	shtT     uint16
	shtH     uint16

	txCount   int
	failAfter int // <0: never
}

// NewSimBus returns a bus with all five sensors present.
func NewSimBus() *SimBus {
	s := &SimBus{
		regs:      map[uint16]*[256]byte{},
		ptr:       map[uint16]byte{},
		failAfter: -1,
	}
	for _, a := range []uint16{AddrLSM6DS, AddrAPDS, AddrBMP280, AddrLIS3} {
		s.regs[a] = &[256]byte{}
	}
	s.regs[AddrLSM6DS][0x0F] = 0x69
	s.regs[AddrAPDS][0x92] = 0xAB
	s.regs[AddrBMP280][0xD0] = 0x58
	s.regs[AddrLIS3][0x0F] = 0x3D

	// BMP280 datasheet calibration example.
	cal := []int32{27504, 26435, -1000, 36477, -10685, 3024, 2855, 140, -7, 15500, -14600, 6000}
	for i, v := range cal {
		putLE16(s.regs[AddrBMP280][:], 0x88+2*i, uint16(int16(v)))
	}
	s.Step()
	return s
}

// FailAfter makes every transaction after the next n fail. n < 0 disables.
func (s *SimBus) FailAfter(n int) {
	s.mu.Lock()
	if n < 0 {
		s.failAfter = -1
	} else {
		s.failAfter = s.txCount + n
	}
	s.mu.Unlock()
}

// Transactions returns the number of Tx calls seen.
func (s *SimBus) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

// Reg returns the current value of one emulated register.
func (s *SimBus) Reg(addr uint16, reg byte) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if regs, ok := s.regs[addr]; ok {
		return regs[reg]
	}
	return 0
}

// Step advances the synthetic signals by one sample.
func (s *SimBus) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase += 0.15
	w := func(k float64) float64 { return math.Sin(s.phase * k) }

	g := s.regs[AddrLSM6DS][:]
	for i, k := range []float64{1, 0.7, 0.3} {
		putLE16(g, 0x22+2*i, uint16(int16(4000*w(k))))
	}
	// Z axis carries 1 g at ±2 g full scale.
	putLE16(g, 0x28, uint16(int16(800*w(0.5))))
	putLE16(g, 0x2A, uint16(int16(800*w(0.9))))
	putLE16(g, 0x2C, uint16(int16(16384)))

	a := s.regs[AddrAPDS][:]
	a[0x93] = 0x03 // AVALID | PVALID
	base := 300 + 200*w(0.2)
	for i, k := range []float64{1.0, 0.8, 0.6, 0.4} { // C, R, G, B
		putLE16(a, 0x94+2*i, uint16(base*k))
	}
	a[0x9C] = byte(40 + 30*w(0.4))

	b := s.regs[AddrBMP280][:]
	adcP := uint32(415148 + int32(200*w(0.1)))
	adcT := uint32(519888 + int32(300*w(0.05)))
	b[0xF7], b[0xF8], b[0xF9] = byte(adcP>>12), byte(adcP>>4), byte(adcP<<4)
	b[0xFA], b[0xFB], b[0xFC] = byte(adcT>>12), byte(adcT>>4), byte(adcT<<4)

	m := s.regs[AddrLIS3][:]
	for i, k := range []float64{0.5, 0.25, 0.125} {
		putLE16(m, 0x28+2*i, uint16(int16(2500*w(k))))
	}

	s.shtT = uint16(26214 + 300*w(0.05))
	s.shtH = uint16(29000 + 1500*w(0.07))
}

// Tx implements drivers.I2C.
func (s *SimBus) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	if s.failAfter >= 0 && s.txCount > s.failAfter {
		return errcode.IOError
	}
	if addr == AddrSHT3x {
		return s.shtTx(w, r)
	}
	regs, ok := s.regs[addr]
	if !ok {
		return &errcode.E{C: errcode.IOError, Op: "sim_i2c", Msg: string(conv.AppendHex8([]byte("nack "), byte(addr)))}
	}
	if len(w) > 0 {
		reg := w[0]
		if addr == AddrLIS3 {
			reg &= 0x7F // auto-increment flag
		}
		for i, v := range w[1:] {
			regs[reg+byte(i)] = v
		}
		s.ptr[addr] = reg
	}
	p := s.ptr[addr]
	for i := range r {
		r[i] = regs[p+byte(i)]
	}
	return nil
}

func (s *SimBus) shtTx(w, r []byte) error {
	if len(w) == 2 {
		s.shtArmed = true
	}
	if len(r) == 0 {
		return nil
	}
	if len(r) == 3 { // status register
		r[0], r[1] = 0, 0
		r[2] = sht3x.CRC8(r[:2])
		return nil
	}
	if !s.shtArmed || len(r) != 6 {
		return &errcode.E{C: errcode.IOError, Op: "sim_i2c", Msg: "sht3x nack"}
	}
	s.shtArmed = false
	r[0], r[1] = byte(s.shtT>>8), byte(s.shtT)
	r[2] = sht3x.CRC8(r[0:2])
	r[3], r[4] = byte(s.shtH>>8), byte(s.shtH)
	r[5] = sht3x.CRC8(r[3:5])
	return nil
}

func putLE16(p []byte, off int, v uint16) {
	p[off] = byte(v)
	p[off+1] = byte(v >> 8)
}
