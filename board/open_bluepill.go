//go:build tinygo && bluepill

package board

import (
	"machine"
	"time"

	"embeddedpg-go/hal"
)

// BluepillSetup is the STM32F103 rig. PA15, PB3 and PB4 are JTAG pins at
// reset and are only usable once SWD-only debug is selected. PA9/PA10 carry
// the console; the pin logger reconfigures them like any other pin.
var BluepillSetup = Setup{
	Name:        "bluepill",
	KeypadRows:  [4]int{int(machine.PA15), NC, NC, NC},
	KeypadCols:  [4]int{int(machine.PB3), int(machine.PB4), int(machine.PB5), NC},
	MatrixData:  int(machine.PB7),
	MatrixCS:    int(machine.PB8),
	MatrixClock: int(machine.PB6),
	MatrixUnits: 1,
	LED:         int(machine.PC13),
	Probe:       int(machine.PB12),
	SerialLine:  int(machine.PB12),
	LoggedPins: []int{
		int(machine.PB11), int(machine.PB10), int(machine.PB1), int(machine.PB0),
		int(machine.PA7), int(machine.PA6), int(machine.PA5), int(machine.PA4),
		int(machine.PA3), int(machine.PA2), int(machine.PA1), int(machine.PA0),
		int(machine.PC15), int(machine.PC14),
		int(machine.PB12), int(machine.PB13), int(machine.PB14), int(machine.PB15),
		int(machine.PA8), int(machine.PA9), int(machine.PA10), int(machine.PA11), int(machine.PA12),
		int(machine.PA15), int(machine.PB3), int(machine.PB4), int(machine.PB5),
		int(machine.PB6), int(machine.PB7), int(machine.PB8), int(machine.PB9),
	},
	Tick:    100 * time.Millisecond,
	Message: "Hello World!",
}

// Open configures the console UART and returns the bluepill board.
func Open() (*Board, error) {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})
	b := &Board{
		Setup: BluepillSetup,
		Pins:  hal.NewRegistry(hal.MachineFactory{Min: 0, Max: int(machine.PC15)}),
		Out:   machine.Serial,
	}
	b.openOneWire = machineOneWire
	return b, nil
}
