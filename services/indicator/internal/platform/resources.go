package platform

import (
	"io"
	"time"

	"thermohygro-go/drivers/charlieplex"

	"tinygo.org/x/drivers"
)

// Resources are the configured peripherals the indicator runs on.
type Resources struct {
	I2C     drivers.I2C
	Port    charlieplex.Port
	Console io.Writer

	// BootDelay lets a USB console enumerate before the first line.
	BootDelay time.Duration
}
