// cmd/boardtest/main.go
//
// Bench check for an assembled board: LED sweep, every sensor command once,
// then a pass/fail flash on LED 0. Loops forever.
//
//	tinygo flash -target pico ./cmd/boardtest
package main

import (
	"context"

	"thermohygro-go/services/indicator"
)

// Cycles: 0 = loop forever
const cyclesToRun = 0

func main() {
	if err := indicator.SelfTest(context.Background(), cyclesToRun); err != nil {
		println("[boardtest] stopped:", err.Error())
	}
}
