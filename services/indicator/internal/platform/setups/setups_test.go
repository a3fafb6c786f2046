package setups

import "testing"

func TestPlansAreConsistent(t *testing.T) {
	for _, p := range []Plan{RocketBoi, Greenhouse} {
		if p.LED.Mask&p.LED.Reserved != 0 {
			t.Fatalf("%s: led mask %08b overlaps reserved %08b", p.Name, p.LED.Mask, p.LED.Reserved)
		}
		used := map[int]bool{p.I2C.SDA: true, p.I2C.SCL: true}
		for bit := 0; bit < 8; bit++ {
			pin := p.LED.Pins[bit]
			inMask := p.LED.Mask&(1<<bit) != 0
			if inMask && pin < 0 {
				t.Fatalf("%s: led bit %d has no gpio", p.Name, bit)
			}
			if !inMask && pin >= 0 {
				t.Fatalf("%s: bit %d outside the led mask is wired to gp%d", p.Name, bit, pin)
			}
			if pin >= 0 {
				if used[pin] {
					t.Fatalf("%s: gp%d assigned twice", p.Name, pin)
				}
				used[pin] = true
			}
		}
		for i := 1; i < 5; i++ {
			if p.Thresholds.Celsius[i] <= p.Thresholds.Celsius[i-1] || p.Thresholds.Percent[i] <= p.Thresholds.Percent[i-1] {
				t.Fatalf("%s: thresholds not increasing at %d", p.Name, i)
			}
		}
		if p.Timing.Hold <= 0 || p.Timing.Frame <= p.Timing.Hold {
			t.Fatalf("%s: timing hold=%v frame=%v", p.Name, p.Timing.Hold, p.Timing.Frame)
		}
	}
}
