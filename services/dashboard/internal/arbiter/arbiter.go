// Package arbiter shares one physical I²C bus between a fixed number of
// logical users.
//
// Every Lease satisfies drivers.I2C. A Lease holds the physical bus for the
// length of one Tx only: a write followed by a read is issued as a single
// repeated-start transaction, so no user keeps the bus across a point where
// another could start.
package arbiter

import (
	"sync"

	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
)

// Arbiter owns the physical bus and issues leases on it.
type Arbiter struct {
	mu     sync.Mutex // held for exactly one physical transaction
	bus    drivers.I2C
	slots  int
	leases []*Lease

	statsMu sync.Mutex
}

// Lease is one user's logical handle on the bus.
type Lease struct {
	a    *Arbiter
	name string

	tx, errs uint32
}

// Ensure leases satisfy the driver contract at compile time.
var _ drivers.I2C = (*Lease)(nil)

// New wraps an already-claimed physical bus. slots is the fixed number of
// leases that may ever be issued.
func New(bus drivers.I2C, slots int) *Arbiter {
	return &Arbiter{bus: bus, slots: slots}
}

// Acquire issues the next lease. It fails once every slot is taken.
func (a *Arbiter) Acquire(name string) (*Lease, error) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()
	if len(a.leases) >= a.slots {
		return nil, &errcode.E{C: errcode.LeaseLimit, Op: "acquire", Msg: name}
	}
	l := &Lease{a: a, name: name}
	a.leases = append(a.leases, l)
	return l, nil
}

// AcquireN issues one lease per name, all or nothing.
func (a *Arbiter) AcquireN(names ...string) ([]*Lease, error) {
	a.statsMu.Lock()
	free := a.slots - len(a.leases)
	a.statsMu.Unlock()
	if len(names) > free {
		return nil, &errcode.E{C: errcode.LeaseLimit, Op: "acquire"}
	}
	out := make([]*Lease, 0, len(names))
	for _, n := range names {
		l, err := a.Acquire(n)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Name returns the label the lease was acquired with.
func (l *Lease) Name() string { return l.name }

// Tx performs one transaction on the physical bus.
func (l *Lease) Tx(addr uint16, w, r []byte) error {
	a := l.a
	a.mu.Lock()
	err := a.bus.Tx(addr, w, r)
	a.mu.Unlock()

	a.statsMu.Lock()
	l.tx++
	if err != nil {
		l.errs++
	}
	a.statsMu.Unlock()
	return err
}

// Stat is a per-lease transaction count.
type Stat struct {
	Name     string
	Tx, Errs uint32
}

// Stats returns counters for every issued lease, in acquisition order.
func (a *Arbiter) Stats() []Stat {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()
	out := make([]Stat, len(a.leases))
	for i, l := range a.leases {
		out[i] = Stat{Name: l.name, Tx: l.tx, Errs: l.errs}
	}
	return out
}
