// services/indicator/internal/platform/factories_rp2.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"time"

	"thermohygro-go/errcode"
	"thermohygro-go/services/indicator/internal/platform/setups"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Open configures the I2C controller, the LED pins and the console UART
// named by plan.
func Open(plan setups.Plan) (Resources, error) {
	var hw *machine.I2C
	switch plan.I2C.ID {
	case "i2c0":
		hw = machine.I2C0
	case "i2c1":
		hw = machine.I2C1
	default:
		return Resources{}, errcode.UnknownBus
	}
	sda := machine.Pin(plan.I2C.SDA)
	scl := machine.Pin(plan.I2C.SCL)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := hw.Configure(machine.I2CConfig{
		SCL:       scl,
		SDA:       sda,
		Frequency: plan.I2C.Hz,
	}); err != nil {
		return Resources{}, &errcode.E{C: errcode.BusError, Op: "platform.i2c", Err: err}
	}

	port, err := newPinPort(plan.LED.Pins)
	if err != nil {
		return Resources{}, err
	}

	con := &console{}
	if plan.Console.ID != "" {
		var u *uartx.UART
		switch plan.Console.ID {
		case "uart0":
			u = uartx.UART0
		case "uart1":
			u = uartx.UART1
		default:
			return Resources{}, errcode.UnknownBus
		}
		// Defaults inside uartx apply to zero fields.
		_ = u.Configure(uartx.UARTConfig{
			BaudRate: plan.Console.Baud,
			TX:       machine.Pin(plan.Console.TX),
			RX:       machine.Pin(plan.Console.RX),
		})
		con.u = u
	}

	return Resources{
		I2C:       hw,
		Port:      port,
		Console:   con,
		BootDelay: 2 * time.Second,
	}, nil
}

// ---- GPIO port ----

// pinPort presents GPIOs as an 8-bit port. The registers are shadows: bits
// with no GPIO (the I2C lines) are stored but never reach hardware, so the
// I2C controller keeps sole ownership of its pins.
type pinPort struct {
	pins     [8]int
	dir, out uint8
}

func newPinPort(pins [8]int) (*pinPort, error) {
	p := &pinPort{pins: pins}
	for _, n := range pins {
		if n < 0 {
			continue
		}
		// Constrain to RP2's user GPIOs (GP0..GP28).
		if n > 28 {
			return nil, errcode.UnknownPin
		}
		// Start tri-stated, matching dir == 0.
		machine.Pin(n).Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return p, nil
}

func (p *pinPort) Dir() uint8 { return p.dir }
func (p *pinPort) Out() uint8 { return p.out }

func (p *pinPort) SetDir(v uint8) {
	changed := p.dir ^ v
	p.dir = v
	for bit := 0; bit < 8; bit++ {
		m := uint8(1) << bit
		if changed&m == 0 || p.pins[bit] < 0 {
			continue
		}
		pin := machine.Pin(p.pins[bit])
		if v&m != 0 {
			pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
			pin.Set(p.out&m != 0)
		} else {
			pin.Configure(machine.PinConfig{Mode: machine.PinInput})
		}
	}
}

func (p *pinPort) SetOut(v uint8) {
	changed := p.out ^ v
	p.out = v
	for bit := 0; bit < 8; bit++ {
		m := uint8(1) << bit
		if changed&m == 0 || p.dir&m == 0 || p.pins[bit] < 0 {
			continue
		}
		machine.Pin(p.pins[bit]).Set(v&m != 0)
	}
}

// ---- console ----

// console mirrors log lines to USB CDC and, when configured, a UART.
type console struct{ u *uartx.UART }

func (c *console) Write(b []byte) (int, error) {
	print(string(b))
	if c.u == nil {
		return len(b), nil
	}
	return c.u.Write(b)
}
