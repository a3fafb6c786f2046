// services/indicator/internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"os"
	"sync"

	"thermohygro-go/errcode"
	"thermohygro-go/services/indicator/internal/platform/setups"
)

// Open returns in-memory peripherals for host runs and tests.
func Open(plan setups.Plan) (Resources, error) {
	switch plan.I2C.ID {
	case "i2c0", "i2c1":
	default:
		return Resources{}, errcode.UnknownBus
	}
	return Resources{
		I2C:     NewHostI2C(),
		Port:    &RegisterPort{},
		Console: os.Stdout,
	}, nil
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C and answers like an Si70xx: any
// single command byte followed by a read returns the word stored for that
// command, MSB first.
type HostI2C struct {
	mu    sync.Mutex
	words map[byte]uint16
	fail  error

	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

// NewHostI2C starts at about 21.5 °C and 45 %RH.
func NewHostI2C() *HostI2C {
	h := &HostI2C{words: make(map[byte]uint16)}
	h.SetRaw(25491, 26738)
	return h
}

// SetRaw sets the raw temperature and humidity codes returned from now on.
func (h *HostI2C) SetRaw(temp, hum uint16) {
	h.mu.Lock()
	h.words[0xE3] = temp
	h.words[0xE0] = temp
	h.words[0xE5] = hum
	h.mu.Unlock()
}

// Fail makes every transaction return err until called with nil.
func (h *HostI2C) Fail(err error) {
	h.mu.Lock()
	h.fail = err
	h.mu.Unlock()
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	if h.fail != nil {
		return h.fail
	}
	if len(w) == 1 && len(r) > 0 {
		v := h.words[w[0]]
		r[0] = byte(v >> 8)
		if len(r) > 1 {
			r[1] = byte(v)
		}
	}
	return nil
}

// ----------------------------- GPIO port (host) -------------------------------

// RegisterPort is a plain pair of 8-bit registers.
type RegisterPort struct {
	mu       sync.Mutex
	dir, out uint8
}

func (p *RegisterPort) Dir() uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dir
}

func (p *RegisterPort) SetDir(v uint8) {
	p.mu.Lock()
	p.dir = v
	p.mu.Unlock()
}

func (p *RegisterPort) Out() uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out
}

func (p *RegisterPort) SetOut(v uint8) {
	p.mu.Lock()
	p.out = v
	p.mu.Unlock()
}
