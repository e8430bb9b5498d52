//go:build tinygo

package hal

import "machine"

// MachineFactory maps logical numbers directly to machine.Pin(n) within
// [Min, Max]. On STM32 the number is port*16 + bit (PA0=0, PB0=16, PC0=32);
// on RP2 it is the GP number.
type MachineFactory struct {
	Min, Max int
}

func (f MachineFactory) ByNumber(n int) (Pin, bool) {
	if n < f.Min || n > f.Max {
		return nil, false
	}
	return &MachinePin{p: machine.Pin(n), n: n}, true
}

// MachinePin adapts machine.Pin. Pin writes on MCUs cannot fail.
type MachinePin struct {
	p machine.Pin
	n int
}

// Machine returns the underlying pin for drivers that need it directly
// (e.g. the one-wire bus).
func (m *MachinePin) Machine() machine.Pin { return m.p }

func (m *MachinePin) Number() int { return m.n }

func (m *MachinePin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	m.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (m *MachinePin) ConfigureOutput(initial bool) error {
	m.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	m.p.Set(initial)
	return nil
}

func (m *MachinePin) Set(level bool) error { m.p.Set(level); return nil }
func (m *MachinePin) High() error          { m.p.High(); return nil }
func (m *MachinePin) Low() error           { m.p.Low(); return nil }
func (m *MachinePin) Get() (bool, error)   { return m.p.Get(), nil }
