package setups

import "time"

// Greenhouse reuses the RocketBoi wiring with bands suited to a warm,
// humid growing space.
var Greenhouse = Plan{
	Name: "greenhouse",

	I2C:     RocketBoi.I2C,
	LED:     RocketBoi.LED,
	Console: RocketBoi.Console,

	Timing: TimingPlan{
		Hold:  8 * time.Millisecond,
		Frame: 100 * time.Millisecond,
	},

	Thresholds: ThresholdPlan{
		Celsius: [5]float64{16, 20, 24, 28, 32},
		Percent: [5]float64{50, 60, 70, 80, 90},
	},
}
