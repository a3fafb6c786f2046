package charlieplex

import "thermohygro-go/errcode"

// Port is an 8-bit GPIO port seen as two registers: a direction mask
// (1 = output) and an output-level mask (1 = high). Pins whose direction bit
// is clear are tri-stated. Implementations need not be safe for concurrent use.
type Port interface {
	Dir() uint8
	SetDir(v uint8)
	Out() uint8
	SetOut(v uint8)
}

// Group is the set of port bits that belong to the LED array. Every write
// through a Group is a masked read-modify-write: bits outside Mask keep
// whatever value the port holds, so pins shared with another peripheral
// (the I2C lines) are never disturbed.
type Group struct {
	port     Port
	Mask     uint8
	Reserved uint8
}

// NewGroup binds mask to port. mask must not overlap reserved.
func NewGroup(port Port, mask, reserved uint8) (*Group, error) {
	if mask&reserved != 0 {
		return nil, &errcode.E{C: errcode.PinConflict, Op: "charlieplex.group", Msg: "led mask overlaps reserved pins"}
	}
	if mask == 0 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "charlieplex.group", Msg: "empty led mask"}
	}
	return &Group{port: port, Mask: mask, Reserved: reserved}, nil
}

// SetDirection makes the group's direction bits equal to bits&Mask.
func (g *Group) SetDirection(bits uint8) {
	g.port.SetDir(g.port.Dir()&^g.Mask | bits&g.Mask)
}

// SetOutput makes the group's output bits equal to bits&Mask.
func (g *Group) SetOutput(bits uint8) {
	g.port.SetOut(g.port.Out()&^g.Mask | bits&g.Mask)
}

// Release drives the group low and tri-states it. Output is cleared first so
// no pin glitches high while switching to input.
func (g *Group) Release() {
	g.SetOutput(0)
	g.SetDirection(0)
}
