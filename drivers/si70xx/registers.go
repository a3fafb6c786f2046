// Package si70xx provides command codes and constants for the Si7006/Si7021
// family of temperature/humidity sensors (also HTU21D-compatible parts).
package si70xx

const (
	// 8-bit write address as it appears on the wire (1000_0000b).
	AddressWire = 0x80
	// 7-bit I2C address passed to drivers.I2C.Tx.
	Address = AddressWire >> 1

	// --- Command codes ---

	cmdMeasureRHHold   = 0xE5 // measure RH, hold master
	cmdMeasureTempHold = 0xE3 // measure temperature, hold master
	cmdTempFromRH      = 0xE0 // temperature from the previous RH measurement
	cmdReadUserReg1    = 0xE7
	cmdReset           = 0xFE
)
