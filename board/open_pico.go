//go:build tinygo && (rp2040 || rp2350)

package board

import (
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
)

// PicoSetup keeps GP4/GP5 free for the console on UART1.
var PicoSetup = Setup{
	Name:        "pico",
	KeypadRows:  [4]int{10, 11, 12, 13},
	KeypadCols:  [4]int{6, 7, 8, 9},
	MatrixData:  19,
	MatrixCS:    17,
	MatrixClock: 18,
	MatrixUnits: 1,
	LED:         25,
	Probe:       15,
	SerialLine:  14,
	LoggedPins:  []int{2, 3, 16, 20, 21, 22, 26, 27, 28},
	Tick:        100 * time.Millisecond,
	Message:     "Hello World!",
}

// Open configures the console UART and returns the pico board.
func Open() (*Board, error) {
	if err := uartx.UART1.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       uartx.UART1_TX_PIN,
		RX:       uartx.UART1_RX_PIN,
	}); err != nil {
		return nil, errcode.Wrap(errcode.HardwareIO, "board.open", "uart1", err)
	}
	b := &Board{
		Setup: PicoSetup,
		Pins:  hal.NewRegistry(hal.MachineFactory{Min: 0, Max: 29}),
		Out:   uartx.UART1,
	}
	b.openOneWire = machineOneWire
	return b, nil
}
