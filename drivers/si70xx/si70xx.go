// Package si70xx provides a driver for the Si70xx temperature/humidity
// sensor family. Measurements are returned in the sensor's raw 16-bit
// encoding so callers can compare against precomputed raw thresholds:
//
//	rh, err := d.ReadHumidity()                 // 0xE5, full RH conversion
//	t, err := d.ReadTemperatureFromPrevious()   // 0xE0, no new conversion
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided. Hold-master commands rely on clock stretching;
// the sensor, not this driver, waits out the conversion.
//
// Fixed-point helpers return tenths of units and never use floating point.
package si70xx

import (
	"thermohygro-go/errcode"

	"tinygo.org/x/drivers"
)

// Device wraps an I2C connection to a Si70xx device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	w [1]byte
	r [2]byte
}

// New creates a new Si70xx connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Connected probes the device by reading user register 1. It returns
// errcode.SensorAbsent (wrapping the bus failure) when nothing answers.
func (d *Device) Connected() error {
	if _, err := d.readReg(cmdReadUserReg1, 1); err != nil {
		return &errcode.E{C: errcode.SensorAbsent, Op: "si70xx.probe", Err: err}
	}
	return nil
}

// Reset issues a soft reset. The part needs ~15 ms before the next command.
func (d *Device) Reset() error {
	d.w[0] = cmdReset
	if err := d.bus.Tx(d.Address, d.w[:1], nil); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "si70xx.reset", err)
	}
	return nil
}

// ReadHumidity runs a relative humidity conversion and returns the raw code.
// The sensor also converts temperature as part of this cycle, which is what
// ReadTemperatureFromPrevious returns afterwards.
func (d *Device) ReadHumidity() (uint16, error) {
	return d.readWord(cmdMeasureRHHold)
}

// ReadTemperature runs a full temperature conversion. Slow.
func (d *Device) ReadTemperature() (uint16, error) {
	return d.readWord(cmdMeasureTempHold)
}

// ReadTemperatureFromPrevious returns the temperature measured during the
// last humidity conversion.
func (d *Device) ReadTemperatureFromPrevious() (uint16, error) {
	return d.readWord(cmdTempFromRH)
}

// DeciCelsius converts a raw temperature code to tenths of °C:
// T = 175.72*raw/65536 - 46.85.
func DeciCelsius(raw uint16) int32 {
	centi := (int32(raw)*17572)>>16 - 4685
	return centi / 10
}

// DeciRelHumidity converts a raw humidity code to tenths of %RH:
// RH = 125*raw/65536 - 6. The result may fall slightly outside 0..1000 at
// the extremes; the datasheet says to clamp for display.
func DeciRelHumidity(raw uint16) int32 {
	return (int32(raw)*1250)>>16 - 60
}
