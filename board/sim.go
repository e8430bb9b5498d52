//go:build !tinygo

package board

import (
	"io"
	"time"

	"embeddedpg-go/hal"
	"embeddedpg-go/probe"
)

// SimSetup wires every rig to its own simulated pins.
var SimSetup = Setup{
	Name:         "sim",
	KeypadRows:   [4]int{0, 1, 2, 3},
	KeypadCols:   [4]int{4, 5, 6, 7},
	KeypadSettle: time.Microsecond,
	MatrixData:   8,
	MatrixCS:     9,
	MatrixClock:  10,
	MatrixUnits:  1,
	LED:          11,
	Probe:        12,
	SerialLine:   13,
	LoggedPins:   []int{14, 15, 16, 17, 18, 19, 20, 21},
	Tick:         100 * time.Millisecond,
	Message:      "Hello World!",
}

// SimProbeTemp is the temperature of the probe attached by OpenSim.
const SimProbeTemp = 21500

// Sim is the simulated hardware behind a board from OpenSim.
type Sim struct {
	Pins   *hal.SimFactory
	Keypad *hal.SimKeypad
	Bus    *probe.SimBus
	Probe  probe.ROM
}

// OpenSim opens a board on simulated pins. A keypad model is attached to the
// keypad pins and a one-wire bus with a single DS18B20 to the probe pin.
func OpenSim(s Setup, out io.Writer) (*Board, *Sim) {
	f := hal.NewSimFactory(63)
	sim := &Sim{
		Pins:   f,
		Keypad: hal.NewSimKeypad(f, s.KeypadRows, s.KeypadCols),
		Bus:    probe.NewSimBus(),
	}
	sim.Probe = sim.Bus.AddProbe([6]byte{'s', 'i', 'm'}, SimProbeTemp)
	b := &Board{Setup: s, Pins: hal.NewRegistry(f), Out: out}
	b.openOneWire = func(hal.Pin) (probe.Bus, error) { return sim.Bus, nil }
	return b, sim
}
