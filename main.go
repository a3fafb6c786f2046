package main

import (
	"context"

	"thermohygro-go/services/indicator"
)

func main() {
	println("boot")

	// Returns only if bring-up fails; the loop itself never ends on the device.
	if err := indicator.Run(context.Background()); err != nil {
		println("[main] indicator stopped:", err.Error())
	}
}
