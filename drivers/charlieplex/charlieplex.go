// Package charlieplex drives a 12-LED charlieplexed array from four pins of
// an 8-bit port. Each LED sits between a pair of pins in one polarity; lighting
// it means driving that pair as outputs (one high, one low) while every other
// group pin stays tri-stated.
//
//	g, _ := charlieplex.NewGroup(port, charlieplex.GroupMask, charlieplex.ReservedMask)
//	d := charlieplex.New(g, charlieplex.Config{})
//	d.Animate()  // boot self-test sweep
//	d.Set(7)
package charlieplex

import (
	"time"

	"thermohygro-go/errcode"
)

// Port bits used by the LED array and the ones reserved for the I2C bus.
const (
	pin3 = 1 << 3
	pin4 = 1 << 4
	pin6 = 1 << 6
	pin7 = 1 << 7

	GroupMask    uint8 = pin3 | pin4 | pin6 | pin7
	ReservedMask uint8 = 1<<1 | 1<<2

	// Count is the number of addressable LEDs.
	Count = 12
)

// Pattern is the (direction, output) pair that lights one LED.
type Pattern struct {
	Dir uint8
	Out uint8
}

// Patterns maps a logical LED index to its pin pattern. Indices 0..5 are the
// humidity bands, 6..11 the temperature bands.
var Patterns = [Count]Pattern{
	{Dir: pin4 | pin6, Out: pin4},
	{Dir: pin4 | pin6, Out: pin6},
	{Dir: pin3 | pin4, Out: pin3},
	{Dir: pin3 | pin4, Out: pin4},
	{Dir: pin4 | pin7, Out: pin7},
	{Dir: pin4 | pin7, Out: pin4},

	{Dir: pin3 | pin6, Out: pin3},
	{Dir: pin3 | pin6, Out: pin6},
	{Dir: pin3 | pin7, Out: pin3},
	{Dir: pin3 | pin7, Out: pin7},
	{Dir: pin6 | pin7, Out: pin6},
	{Dir: pin6 | pin7, Out: pin7},
}

// PatternFor returns the pattern for LED i.
func PatternFor(i int) (Pattern, bool) {
	if i < 0 || i >= Count {
		return Pattern{}, false
	}
	return Patterns[i], true
}

// Config controls timing. All fields are optional.
type Config struct {
	// Frame is the hold time per LED during Animate. Default 100 ms.
	Frame time.Duration
	// Sleep is the delay primitive. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Driver lights one LED at a time on a Group. It keeps no state besides the
// port registers themselves.
type Driver struct {
	g   *Group
	cfg Config
}

// New creates a driver over g. It does not touch the port.
func New(g *Group, cfg Config) *Driver {
	if cfg.Frame <= 0 {
		cfg.Frame = 100 * time.Millisecond
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Driver{g: g, cfg: cfg}
}

// Set lights LED i and nothing else. An out-of-range index leaves the port
// untouched and returns errcode.InvalidIndex.
func (d *Driver) Set(i int) error {
	p, ok := PatternFor(i)
	if !ok {
		return errcode.InvalidIndex
	}
	d.g.Release()
	d.g.SetDirection(p.Dir)
	d.g.SetOutput(p.Out)
	return nil
}

// Off turns every LED in the group off.
func (d *Driver) Off() { d.g.Release() }

// Animate lights each LED in index order for one frame, then leaves the
// last one lit.
func (d *Driver) Animate() {
	for i := 0; i < Count; i++ {
		_ = d.Set(i)
		d.cfg.Sleep(d.cfg.Frame)
	}
}
