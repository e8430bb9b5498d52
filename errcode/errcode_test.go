package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":             OK,
		"unsupported":    Unsupported,
		"invalid_params": InvalidParams,
		"hardware_io":    HardwareIO,
		"device_fatal":   DeviceFatal,
		"unknown_pin":    UnknownPin,
		"pin_in_use":     PinInUse,
		"no_device":      NoDevice,
		"crc_mismatch":   CRCMismatch,
		"error":          Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("line stuck")
	wrapped := Wrap(HardwareIO, "keypad.read", "row 2 assert", cause)

	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", PinInUse, PinInUse},
		{"wrapped E", wrapped, HardwareIO},
		{"fmt wrapped E", fmt.Errorf("scan: %w", wrapped), HardwareIO},
		{"plain error", cause, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEIsAndUnwrap(t *testing.T) {
	cause := errors.New("bus fault")
	err := Wrap(DeviceFatal, "col", "", cause)

	if !errors.Is(err, DeviceFatal) {
		t.Fatalf("errors.Is(err, DeviceFatal) = false")
	}
	if errors.Is(err, HardwareIO) {
		t.Fatalf("errors.Is(err, HardwareIO) = true, want false")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
	if got, want := err.Error(), "col: device_fatal: bus fault"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestMapDriverErr(t *testing.T) {
	if got := MapDriverErr(nil); got != OK {
		t.Fatalf("nil -> %q", got)
	}
	if got := MapDriverErr(errors.New("spi")); got != HardwareIO {
		t.Fatalf("plain -> %q, want hardware_io", got)
	}
	if got := MapDriverErr(CRCMismatch); got != CRCMismatch {
		t.Fatalf("coded -> %q, want crc_mismatch", got)
	}
}
