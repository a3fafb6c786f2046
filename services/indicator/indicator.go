// services/indicator/indicator.go
package indicator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"thermohygro-go/drivers/charlieplex"
	"thermohygro-go/drivers/si70xx"
	"thermohygro-go/services/indicator/internal/platform"
	"thermohygro-go/services/indicator/internal/platform/setups"
)

// -----------------------------------------------------------------------------
// Entry point
// -----------------------------------------------------------------------------

// Run opens the hardware for the setup selected at build time and runs the
// sample/display loop. On the device ctx is never cancelled and Run does not
// return unless bring-up fails.
func Run(ctx context.Context) error {
	b, err := openBoard()
	if err != nil {
		return err
	}
	if err := b.dev.Connected(); err != nil {
		// Not fatal: the loop keeps trying and shows the fault on the LEDs.
		b.o.println("[indicator] sensor probe failed:", err.Error())
	}
	svc := New(Config{Hold: b.plan.Timing.Hold, Log: b.o.println}, NewSensor(b.dev, b.table), b.leds)
	return svc.Run(ctx)
}

// board is the opened hardware for one setup.
type board struct {
	plan  setups.Plan
	table Table
	dev   *si70xx.Device
	leds  *charlieplex.Driver
	o     *out
}

func openBoard() (*board, error) {
	plan := setups.Selected
	table, err := Thresholds()
	if err != nil {
		return nil, err
	}
	res, err := platform.Open(plan)
	if err != nil {
		return nil, err
	}
	if res.BootDelay > 0 {
		time.Sleep(res.BootDelay)
	}
	o := &out{w: res.Console}
	o.println("[indicator] boot:", plan.Name)

	g, err := charlieplex.NewGroup(res.Port, plan.LED.Mask, plan.LED.Reserved)
	if err != nil {
		return nil, err
	}
	dev := si70xx.New(res.I2C)
	return &board{
		plan:  plan,
		table: table,
		dev:   &dev,
		leds:  charlieplex.New(g, charlieplex.Config{Frame: plan.Timing.Frame}),
		o:     o,
	}, nil
}

// -----------------------------------------------------------------------------
// Service
// -----------------------------------------------------------------------------

// Config controls timing and output. All fields are optional.
type Config struct {
	// Hold is how long each LED stays lit per alternation. Default 8 ms.
	Hold time.Duration
	// Sleep is the delay primitive. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Log receives one line per call. Defaults to stdout.
	Log func(a ...any)
}

func (c Config) withDefaults() Config {
	if c.Hold <= 0 {
		c.Hold = 8 * time.Millisecond
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	if c.Log == nil {
		c.Log = (&out{w: os.Stdout}).println
	}
	return c
}

// Reading is the outcome of one measurement round.
type Reading struct {
	Humidity    uint16 // raw
	Temperature uint16 // raw

	HumidityLED    int // 0..5, or NoLED
	TemperatureLED int // 6..11, or NoLED

	HumidityErr    error
	TemperatureErr error
}

// Service alternates between sampling the sensor and showing the result.
type Service struct {
	cfg    Config
	sensor *Sensor
	leds   *charlieplex.Driver
}

func New(cfg Config, sensor *Sensor, leds *charlieplex.Driver) *Service {
	return &Service{cfg: cfg.withDefaults(), sensor: sensor, leds: leds}
}

// Run plays the LED self-test once, then samples and displays until ctx is
// done.
func (s *Service) Run(ctx context.Context) error {
	s.leds.Animate()
	for {
		r := s.Sample()
		s.logReading(r)
		if err := s.Display(ctx, r); err != nil {
			s.leds.Off()
			return err
		}
	}
}

// Sample measures humidity, then the temperature from the same conversion.
func (s *Service) Sample() Reading {
	var r Reading
	r.HumidityLED, r.Humidity, r.HumidityErr = s.sensor.HumidityLED()
	r.TemperatureLED, r.Temperature, r.TemperatureErr = s.sensor.TemperatureLED()
	return r
}

// Display shows r for one display phase: temperature then humidity, each for
// Hold, repeated until an 8-bit counter wraps (255 alternations).
func (s *Service) Display(ctx context.Context, r Reading) error {
	for c := uint8(1); c != 0; c++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.show(r.TemperatureLED)
		s.cfg.Sleep(s.cfg.Hold)
		s.show(r.HumidityLED)
		s.cfg.Sleep(s.cfg.Hold)
	}
	return nil
}

func (s *Service) show(led int) {
	if led == NoLED {
		s.leds.Off()
		return
	}
	_ = s.leds.Set(led)
}

func (s *Service) logReading(r Reading) {
	if r.HumidityErr != nil {
		s.cfg.Log("[indicator] humidity read failed:", r.HumidityErr.Error())
	}
	if r.TemperatureErr != nil {
		s.cfg.Log("[indicator] temperature read failed:", r.TemperatureErr.Error())
	}
	if r.HumidityErr == nil && r.TemperatureErr == nil {
		s.cfg.Log("[indicator] rh_deci=", si70xx.DeciRelHumidity(r.Humidity),
			"t_deci=", si70xx.DeciCelsius(r.Temperature),
			"leds=", r.HumidityLED, r.TemperatureLED)
	}
}

// -----------------------------------------------------------------------------
// Output
// -----------------------------------------------------------------------------

type out struct {
	w io.Writer
}

func (o *out) println(a ...any) {
	line := fmt.Sprintln(a...)
	if o.w == nil {
		print(line)
		return
	}
	_, _ = io.WriteString(o.w, line)
}
