package charlieplex

import (
	"errors"
	"math/bits"
	"testing"
	"time"

	"thermohygro-go/errcode"
)

// Compile-time check.
var _ Port = (*fakePort)(nil)

type fakePort struct {
	dir, out uint8
	writes   int
}

func (p *fakePort) Dir() uint8     { return p.dir }
func (p *fakePort) SetDir(v uint8) { p.dir = v; p.writes++ }
func (p *fakePort) Out() uint8     { return p.out }
func (p *fakePort) SetOut(v uint8) { p.out = v; p.writes++ }

func (p *fakePort) pattern() Pattern {
	return Pattern{Dir: p.dir & GroupMask, Out: p.out & GroupMask}
}

func newTestDriver(t *testing.T, port *fakePort, cfg Config) *Driver {
	t.Helper()
	g, err := NewGroup(port, GroupMask, ReservedMask)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	return New(g, cfg)
}

func TestPatternTableInvariants(t *testing.T) {
	seen := map[Pattern]int{}
	for i, p := range Patterns {
		if p.Dir&^GroupMask != 0 || p.Out&^GroupMask != 0 {
			t.Fatalf("led %d: pattern %+v leaves the group", i, p)
		}
		if p.Dir&ReservedMask != 0 || p.Out&ReservedMask != 0 {
			t.Fatalf("led %d: pattern %+v touches reserved bits", i, p)
		}
		if n := bits.OnesCount8(p.Dir); n != 2 {
			t.Fatalf("led %d: %d pins driven, want 2", i, n)
		}
		if n := bits.OnesCount8(p.Out); n != 1 {
			t.Fatalf("led %d: %d pins high, want 1", i, n)
		}
		if p.Out&^p.Dir != 0 {
			t.Fatalf("led %d: high pin is not an output", i)
		}
		if j, dup := seen[p]; dup {
			t.Fatalf("led %d duplicates led %d", i, j)
		}
		seen[p] = i
	}
}

func TestSetPreservesReservedBits(t *testing.T) {
	// I2C lines configured, plus two unrelated bits (0 and 5) set.
	port := &fakePort{dir: 0x06 | 0x21, out: 0x06 | 0x01}
	d := newTestDriver(t, port, Config{})

	for i := 0; i < Count; i++ {
		if err := d.Set(i); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
		if port.dir&^GroupMask != 0x27 || port.out&^GroupMask != 0x07 {
			t.Fatalf("Set(%d) disturbed non-LED bits: dir=%08b out=%08b", i, port.dir, port.out)
		}
		if got := port.pattern(); got != Patterns[i] {
			t.Fatalf("Set(%d) pattern = %+v, want %+v", i, got, Patterns[i])
		}
		if n := bits.OnesCount8(port.out & GroupMask); n != 1 {
			t.Fatalf("Set(%d): %d LED pins high", i, n)
		}
	}
}

func TestSetIsPure(t *testing.T) {
	port := &fakePort{}
	d := newTestDriver(t, port, Config{})
	for i := 0; i < Count; i++ {
		_ = d.Set(5)
		a := port.pattern()
		_ = d.Set(i)
		_ = d.Set(5)
		if b := port.pattern(); a != b {
			t.Fatalf("Set(5) after Set(%d) = %+v, want %+v", i, b, a)
		}
	}
}

func TestSetOutOfRangeIsNoOp(t *testing.T) {
	port := &fakePort{}
	d := newTestDriver(t, port, Config{})
	_ = d.Set(3)
	before, writes := *port, port.writes

	for _, i := range []int{-1, 12, 255} {
		err := d.Set(i)
		if !errors.Is(err, errcode.InvalidIndex) {
			t.Fatalf("Set(%d) err = %v, want invalid_index", i, err)
		}
	}
	if port.writes != writes || port.dir != before.dir || port.out != before.out {
		t.Fatalf("out-of-range Set touched the port")
	}
}

func TestOffReleasesGroupOnly(t *testing.T) {
	port := &fakePort{dir: 0x06, out: 0x06}
	d := newTestDriver(t, port, Config{})
	_ = d.Set(11)
	d.Off()
	if port.dir != 0x06 || port.out != 0x06 {
		t.Fatalf("Off left dir=%08b out=%08b", port.dir, port.out)
	}
}

func TestNewGroupRejectsReservedOverlap(t *testing.T) {
	_, err := NewGroup(&fakePort{}, GroupMask|0x02, ReservedMask)
	if errcode.Of(err) != errcode.PinConflict {
		t.Fatalf("overlap err = %v, want pin_conflict", err)
	}
	_, err = NewGroup(&fakePort{}, 0, ReservedMask)
	if errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("empty mask err = %v, want unknown_pin", err)
	}
}

func TestAnimateSweepsInOrder(t *testing.T) {
	port := &fakePort{}
	var (
		frames []Pattern
		holds  []time.Duration
	)
	d := newTestDriver(t, port, Config{Sleep: func(dt time.Duration) {
		frames = append(frames, port.pattern())
		holds = append(holds, dt)
	}})

	d.Animate()

	if len(frames) != Count {
		t.Fatalf("animation frames = %d, want %d", len(frames), Count)
	}
	seen := map[Pattern]bool{}
	for i, f := range frames {
		if f != Patterns[i] {
			t.Fatalf("frame %d = %+v, want %+v", i, f, Patterns[i])
		}
		if holds[i] != 100*time.Millisecond {
			t.Fatalf("frame %d held %v, want 100ms", i, holds[i])
		}
		seen[f] = true
	}
	if len(seen) != Count {
		t.Fatalf("distinct frames = %d, want %d", len(seen), Count)
	}
}
