package indicator

import (
	"context"
	"time"

	"thermohygro-go/drivers/si70xx"
)

// SelfTest is the bench check for a freshly assembled board. Each cycle
// sweeps the LEDs, then exercises every sensor command and flashes the
// verdict on LED 0: two short flashes for pass, one long flash for fail.
// cycles == 0 runs until ctx is done.
func SelfTest(ctx context.Context, cycles int) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	return b.selfTest(ctx, cycles, time.Sleep)
}

func (b *board) selfTest(ctx context.Context, cycles int, sleep func(time.Duration)) error {
	for cycle := 1; cycles == 0 || cycle <= cycles; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.o.println("=== selftest: cycle", cycle, "===")
		b.leds.Animate()
		b.leds.Off()

		miss := checkSensor(b.dev, b.o.println)
		pass := len(miss) == 0
		if pass {
			b.o.println("[PASS] sensor answered all commands; readings in range")
		} else {
			b.o.println("[FAIL] failed checks:", miss)
		}
		b.flashVerdict(pass, sleep)
	}
	return nil
}

// checkSensor runs each sensor command once and returns the names of the
// checks that failed.
func checkSensor(dev *si70xx.Device, log func(a ...any)) []string {
	var miss []string
	if err := dev.Connected(); err != nil {
		log("probe:", err.Error())
		return append(miss, "probe")
	}

	rh, err := dev.ReadHumidity()
	switch {
	case err != nil:
		log("humidity:", err.Error())
		miss = append(miss, "humidity")
	case !plausibleHumidity(rh):
		log("humidity out of range, deci %RH:", si70xx.DeciRelHumidity(rh))
		miss = append(miss, "humidity_range")
	}

	for _, c := range []struct {
		name string
		read func() (uint16, error)
	}{
		{"temperature", dev.ReadTemperature},
		{"temperature_prev", dev.ReadTemperatureFromPrevious},
	} {
		raw, err := c.read()
		switch {
		case err != nil:
			log(c.name+":", err.Error())
			miss = append(miss, c.name)
		case !plausibleTemperature(raw):
			log(c.name+" out of range, deci °C:", si70xx.DeciCelsius(raw))
			miss = append(miss, c.name+"_range")
		}
	}
	return miss
}

// Operating range of the part: -40..125 °C and 0..100 %RH.
func plausibleTemperature(raw uint16) bool {
	dc := si70xx.DeciCelsius(raw)
	return dc >= -400 && dc <= 1250
}

func plausibleHumidity(raw uint16) bool {
	dr := si70xx.DeciRelHumidity(raw)
	return dr >= 0 && dr <= 1000
}

func (b *board) flashVerdict(pass bool, sleep func(time.Duration)) {
	if pass {
		// Double short
		for i := 0; i < 2; i++ {
			_ = b.leds.Set(0)
			sleep(120 * time.Millisecond)
			b.leds.Off()
			sleep(200 * time.Millisecond)
		}
		return
	}
	// Single long
	_ = b.leds.Set(0)
	sleep(400 * time.Millisecond)
	b.leds.Off()
	sleep(200 * time.Millisecond)
}
