package indicator

import (
	"thermohygro-go/errcode"
	"thermohygro-go/services/indicator/internal/platform/setups"
)

// Set is five raw-domain breakpoints in increasing order.
type Set [5]uint16

// Table holds the breakpoints for both quantities.
type Table struct {
	Temperature Set
	Humidity    Set
}

// Physical holds breakpoints in human units (°C and %RH).
type Physical struct {
	Celsius [5]float64
	Percent [5]float64
}

// Validate reports errcode.InvalidThresholds unless both rows strictly increase.
func (p Physical) Validate() error {
	for i := 1; i < 5; i++ {
		if p.Celsius[i] <= p.Celsius[i-1] {
			return &errcode.E{C: errcode.InvalidThresholds, Op: "thresholds", Msg: "temperature breakpoints not increasing"}
		}
		if p.Percent[i] <= p.Percent[i-1] {
			return &errcode.E{C: errcode.InvalidThresholds, Op: "thresholds", Msg: "humidity breakpoints not increasing"}
		}
	}
	return nil
}

// TemperatureRaw encodes °C the way the sensor does:
// raw = ((T + 46.85) * 65536) / 175.72, truncated. The explicit conversion
// rounds the product before dividing, matching a plain double evaluation.
func TemperatureRaw(celsius float64) uint16 {
	scaled := float64((celsius + 46.85) * 65536)
	return rawFrom(scaled / 175.72)
}

// HumidityRaw encodes %RH the way the sensor does:
// raw = ((H + 6) * 65536) / 125, truncated.
func HumidityRaw(percent float64) uint16 {
	scaled := float64((percent + 6) * 65536)
	return rawFrom(scaled / 125)
}

// TemperatureCelsius is the inverse of TemperatureRaw (up to quantisation).
func TemperatureCelsius(raw uint16) float64 { return float64(raw)*175.72/65536 - 46.85 }

// HumidityPercent is the inverse of HumidityRaw (up to quantisation).
func HumidityPercent(raw uint16) float64 { return float64(raw)*125/65536 - 6 }

// rawFrom truncates toward zero and saturates to the 16-bit code range.
func rawFrom(v float64) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= 65535:
		return 65535
	}
	return uint16(v)
}

// Derive converts physical breakpoints to raw ones.
func Derive(p Physical) (Table, error) {
	if err := p.Validate(); err != nil {
		return Table{}, err
	}
	var t Table
	for i := range t.Temperature {
		t.Temperature[i] = TemperatureRaw(p.Celsius[i])
		t.Humidity[i] = HumidityRaw(p.Percent[i])
	}
	return t, nil
}

// Derived once at package initialisation; the sampling path only reads it.
var selectedTable, selectedErr = Derive(Physical{
	Celsius: setups.Selected.Thresholds.Celsius,
	Percent: setups.Selected.Thresholds.Percent,
})

// Thresholds returns the table for the setup selected at build time.
func Thresholds() (Table, error) { return selectedTable, selectedErr }
