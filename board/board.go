// Package board binds the rigs to a concrete target: pin numbers, the
// console sink, and the buses each platform provides.
//
// The target is chosen at build time:
//
//	tinygo -target=bluepill        STM32F103, pins numbered port*16+bit
//	tinygo -target=pico            RP2040, GP numbers, console on UART1
//	go build -tags periph (linux)  periph.io GPIO/SPI, BCM numbers
//	go build                       simulated pins, keypad and probe
package board

import (
	"io"
	"time"

	"tinygo.org/x/drivers"

	"embeddedpg-go/drivers/max7219"
	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
	"embeddedpg-go/keypad"
	"embeddedpg-go/probe"
	"embeddedpg-go/tick"
	"embeddedpg-go/x/bitbang"
	"embeddedpg-go/x/console"
)

// NC marks a pin that is not connected.
const NC = -1

// Setup is the compile-time wiring of one target.
type Setup struct {
	Name string

	// Keypad matrix; NC for absent rows or columns.
	KeypadRows   [4]int
	KeypadCols   [4]int
	KeypadLegend [4]string // optional legend override, rows top to bottom
	KeypadSettle time.Duration

	// LED matrix. With MatrixSPI set the platform bus is used and
	// MatrixData/MatrixClock are ignored; MatrixCS may be NC when the bus
	// asserts chip select itself.
	MatrixData  int
	MatrixCS    int
	MatrixClock int
	MatrixSPI   string
	MatrixUnits int

	LED        int
	Probe      int
	SerialLine int
	LoggedPins []int

	Tick    time.Duration
	Message string
}

// Board is an opened target.
type Board struct {
	Setup Setup
	Pins  *hal.Registry
	Out   io.Writer

	openSPI     func(name string) (drivers.SPI, error)
	openOneWire func(p hal.Pin) (probe.Bus, error)
}

// Log returns a console on the board's sink.
func (b *Board) Log(tag string) *console.Console { return console.New(b.Out, tag) }

// Ticker starts the main loop countdown.
func (b *Board) Ticker() *tick.Countdown { return tick.New(b.Setup.Tick) }

// Keypad claims the matrix pins for dev and returns a scanner over them.
// Rows start driven low; columns are pull-down inputs.
func (b *Board) Keypad(dev string) (*keypad.Scanner, error) {
	var rows [4]keypad.RowSlot
	var cols [4]keypad.ColSlot
	for i, n := range b.Setup.KeypadRows {
		if n == NC {
			continue
		}
		p, err := b.Pins.ClaimOutput(dev, n, false)
		if err != nil {
			return nil, err
		}
		rows[i] = keypad.Row(p)
	}
	for i, n := range b.Setup.KeypadCols {
		if n == NC {
			continue
		}
		p, err := b.Pins.ClaimInput(dev, n, hal.PullDown)
		if err != nil {
			return nil, err
		}
		cols[i] = keypad.Col(p)
	}
	cfg := keypad.Config{Settle: b.Setup.KeypadSettle, Sleeper: hal.Sleeper{}}
	if b.Setup.KeypadLegend != [4]string{} {
		l, err := keypad.ParseLayout(b.Setup.KeypadLegend)
		if err != nil {
			return nil, err
		}
		cfg.Layout = &l
	}
	return keypad.New(rows, cols, cfg)
}

// Matrix returns the LED matrix chain, not yet configured.
func (b *Board) Matrix(dev string) (*max7219.Device, error) {
	s := b.Setup
	var cs hal.Output
	if s.MatrixCS != NC {
		p, err := b.Pins.ClaimOutput(dev, s.MatrixCS, true)
		if err != nil {
			return nil, err
		}
		cs = p
	}
	var bus drivers.SPI
	if s.MatrixSPI != "" {
		if b.openSPI == nil {
			return nil, errcode.Wrap(errcode.Unsupported, "board.matrix", "no spi on "+s.Name, nil)
		}
		sb, err := b.openSPI(s.MatrixSPI)
		if err != nil {
			return nil, err
		}
		bus = sb
	} else {
		sck, err := b.Pins.ClaimOutput(dev, s.MatrixClock, false)
		if err != nil {
			return nil, err
		}
		sdo, err := b.Pins.ClaimOutput(dev, s.MatrixData, false)
		if err != nil {
			return nil, err
		}
		bus = &bitbang.SPI{SCK: sck, SDO: sdo}
	}
	return max7219.New(bus, cs, s.MatrixUnits), nil
}

// LED claims the on-board LED as an output, initially low.
func (b *Board) LED(dev string) (hal.Output, error) {
	if b.Setup.LED == NC {
		return nil, errcode.Wrap(errcode.Unsupported, "board.led", b.Setup.Name, nil)
	}
	return b.Pins.ClaimOutput(dev, b.Setup.LED, false)
}

// OneWire claims the probe pin and returns the one-wire bus on it.
func (b *Board) OneWire(dev string) (probe.Bus, error) {
	if b.openOneWire == nil || b.Setup.Probe == NC {
		return nil, errcode.Wrap(errcode.Unsupported, "board.onewire", b.Setup.Name, nil)
	}
	p, err := b.Pins.Claim(dev, b.Setup.Probe)
	if err != nil {
		return nil, err
	}
	return b.openOneWire(p)
}

// SerialLine claims the bit-banged serial output, initially low.
func (b *Board) SerialLine(dev string) (hal.Output, error) {
	if b.Setup.SerialLine == NC {
		return nil, errcode.Wrap(errcode.Unsupported, "board.serial", b.Setup.Name, nil)
	}
	return b.Pins.ClaimOutput(dev, b.Setup.SerialLine, false)
}

// LoggedPins claims every logged pin as a pull-down input, in order.
func (b *Board) LoggedPins(dev string) ([]hal.Input, error) {
	ins := make([]hal.Input, 0, len(b.Setup.LoggedPins))
	for _, n := range b.Setup.LoggedPins {
		p, err := b.Pins.ClaimInput(dev, n, hal.PullDown)
		if err != nil {
			return nil, err
		}
		ins = append(ins, p)
	}
	return ins, nil
}
