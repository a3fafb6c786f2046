package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                 OK,
		"bus_error":          BusError,
		"sensor_absent":      SensorAbsent,
		"invalid_index":      InvalidIndex,
		"invalid_thresholds": InvalidThresholds,
		"pin_conflict":       PinConflict,
		"unknown_bus":        UnknownBus,
		"unknown_pin":        UnknownPin,
		"error":              Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestWrapKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("nack")
	err := Wrap(BusError, "si70xx.read", cause)

	if !errors.Is(err, BusError) {
		t.Fatalf("errors.Is(err, BusError) = false for %v", err)
	}
	if errors.Is(err, InvalidIndex) {
		t.Fatalf("errors.Is matched an unrelated code")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
	if got, want := err.Error(), "si70xx.read: bus_error: nack"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Wrap(BusError, "x", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestOf(t *testing.T) {
	wrapped := fmt.Errorf("sample: %w", Wrap(BusError, "read", errors.New("timeout")))
	for _, c := range []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{InvalidIndex, InvalidIndex},
		{&E{C: PinConflict}, PinConflict},
		{wrapped, BusError},
		{errors.New("other"), Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestMapDriverErr(t *testing.T) {
	if got := MapDriverErr(nil); got != OK {
		t.Fatalf("MapDriverErr(nil) = %q", got)
	}
	if got := MapDriverErr(errors.New("i2c: nack")); got != BusError {
		t.Fatalf("MapDriverErr(raw) = %q, want bus_error", got)
	}
	if got := MapDriverErr(SensorAbsent); got != SensorAbsent {
		t.Fatalf("MapDriverErr(code) = %q, want sensor_absent", got)
	}
}
