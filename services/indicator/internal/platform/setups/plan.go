package setups

import "time"

// Plan specifies wiring, timing and thresholds chosen by a setup. Nothing in
// it changes at runtime; the platform provider and the indicator consume it
// at boot.
type Plan struct {
	Name string

	I2C     I2CPlan
	LED     LEDPlan
	Console UARTPlan
	Timing  TimingPlan

	Thresholds ThresholdPlan
}

type I2CPlan struct {
	ID  string // "i2c0" or "i2c1"
	SDA int    // GPIO number
	SCL int    // GPIO number
	Hz  uint32 // bus frequency
}

// LEDPlan describes the charlieplexed array as bits of an 8-bit port.
type LEDPlan struct {
	Mask     uint8 // port bits driven by the LED array
	Reserved uint8 // port bits owned by the I2C bus; never written
	// Pins maps port bit n to a GPIO number, or -1 when the bit has no
	// GPIO of its own on this board.
	Pins [8]int
}

type UARTPlan struct {
	ID   string // "uart0" or "uart1"; empty disables the console UART
	TX   int
	RX   int
	Baud uint32
}

type TimingPlan struct {
	Hold  time.Duration // per-LED hold during display
	Frame time.Duration // per-LED frame of the boot animation
}

// ThresholdPlan holds five increasing breakpoints per quantity.
type ThresholdPlan struct {
	Celsius [5]float64
	Percent [5]float64
}
