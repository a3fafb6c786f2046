package indicator

import "golang.org/x/exp/constraints"

// Bands is the number of indicator states per quantity.
const Bands = 6

// TemperatureOffset moves temperature bands onto LEDs 6..11.
const TemperatureOffset = Bands

// Band returns the smallest i in [0,4] with raw < set[i], or 5 when raw is
// at or above every breakpoint. The comparison is strict, so a value equal
// to set[i] lands in band i+1.
func Band[T constraints.Unsigned, S ~[5]T](raw T, set S) uint8 {
	for i, limit := range set {
		if raw < limit {
			return uint8(i)
		}
	}
	return Bands - 1
}
