package setups

import "time"

// RocketBoi is the first board revision: an Si70xx on the I2C bus and twelve LEDs
// on port bits 3, 4, 6 and 7, with bits 1 and 2 shared with I2C.
var RocketBoi = Plan{
	Name: "rocketboi",

	I2C: I2CPlan{ID: "i2c0", SDA: 4, SCL: 5, Hz: 100_000},

	LED: LEDPlan{
		Mask:     1<<3 | 1<<4 | 1<<6 | 1<<7,
		Reserved: 1<<1 | 1<<2,
		Pins:     [8]int{-1, -1, -1, 10, 11, -1, 12, 13},
	},

	Console: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115_200},

	Timing: TimingPlan{
		Hold:  8 * time.Millisecond,
		Frame: 100 * time.Millisecond,
	},

	Thresholds: ThresholdPlan{
		Celsius: [5]float64{18, 20, 21, 22, 24},
		Percent: [5]float64{30, 40, 50, 60, 70},
	},
}
