package indicator

// Reader is the part of si70xx.Device the indicator samples through.
type Reader interface {
	ReadHumidity() (uint16, error)
	ReadTemperatureFromPrevious() (uint16, error)
}

// NoLED marks a quantity whose read failed; its display slot stays dark.
const NoLED = -1

// Sensor classifies raw readings into LED indices.
type Sensor struct {
	dev   Reader
	table Table
}

func NewSensor(dev Reader, t Table) *Sensor {
	return &Sensor{dev: dev, table: t}
}

// HumidityLED measures humidity and returns its LED (0..5).
func (s *Sensor) HumidityLED() (led int, raw uint16, err error) {
	raw, err = s.dev.ReadHumidity()
	if err != nil {
		return NoLED, raw, err
	}
	return int(Band(raw, s.table.Humidity)), raw, nil
}

// TemperatureLED reads the temperature converted alongside the last humidity
// measurement and returns its LED (6..11).
func (s *Sensor) TemperatureLED() (led int, raw uint16, err error) {
	raw, err = s.dev.ReadTemperatureFromPrevious()
	if err != nil {
		return NoLED, raw, err
	}
	return TemperatureOffset + int(Band(raw, s.table.Temperature)), raw, nil
}
