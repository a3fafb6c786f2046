package errcode

import "errors"

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Two-wire bus transaction failed (NACK, arbitration loss, timeout).
	BusError Code = "bus_error"
	// Sensor did not answer the boot probe.
	SensorAbsent Code = "sensor_absent"

	InvalidIndex      Code = "invalid_index"
	InvalidThresholds Code = "invalid_thresholds"
	PinConflict       Code = "pin_conflict"
	UnknownBus        Code = "unknown_bus"
	UnknownPin        Code = "unknown_pin"

	Error Code = "error" // generic fallback
)

// E wraps a Code with the failing operation and the underlying cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, SomeCode) match a wrapped E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap returns nil for a nil cause, otherwise an *E carrying c.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level I2C driver errors to a Code. Every failure
// surfaced by drivers.I2C.Tx is a bus fault from our point of view.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if c := Of(err); c != Error {
		return c
	}
	return BusError
}
