// Package max7219 drives MAX7219/MAX7221 LED controllers wired as 8x8 dot
// matrices, optionally daisy-chained.
//
//	d := max7219.New(bus, cs, 1)
//	err := d.Configure()  // test off, scan 8 rows, raw mode, cleared, shut down
//	err = d.PowerOn()
//	err = d.WriteRaw(0, rows)
//
// The bus is any tinygo drivers.SPI: a hardware SPI, a bit-banged one from
// the bitbang package, or an adapter over a Linux spidev. CS is the LOAD line;
// it may be nil when the bus asserts chip select itself.
package max7219

import (
	"tinygo.org/x/drivers"

	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
	"embeddedpg-go/x/mathx"
)

// Registers.
const (
	RegNoop        byte = 0x00
	RegDigit0      byte = 0x01 // digits 0..7 are 0x01..0x08
	RegDecodeMode  byte = 0x09
	RegIntensity   byte = 0x0A
	RegScanLimit   byte = 0x0B
	RegShutdown    byte = 0x0C
	RegDisplayTest byte = 0x0F
)

// MaxUnits bounds the daisy chain length.
const MaxUnits = 8

// Rows is one 8x8 frame: byte i lights row i, bit 7 is the leftmost column.
type Rows [8]byte

// Device is a chain of MAX7219 units sharing one bus and LOAD line.
// Unit 0 is the first unit shifted out, i.e. the far end of the chain.
type Device struct {
	bus   drivers.SPI
	cs    hal.Output
	units int
	buf   [2 * MaxUnits]byte
}

// New creates a chain of units (clamped to 1..MaxUnits). It does not touch
// the hardware.
func New(bus drivers.SPI, cs hal.Output, units int) *Device {
	return &Device{bus: bus, cs: cs, units: mathx.Clamp(units, 1, MaxUnits)}
}

// Units returns the chain length.
func (d *Device) Units() int { return d.units }

// Configure puts every unit in a known state: display test off, all eight
// rows scanned, raw (no decode) mode, cleared and shut down.
func (d *Device) Configure() error {
	if d.cs != nil {
		if err := d.cs.High(); err != nil {
			return ioErr("configure", err)
		}
	}
	for _, c := range [...][2]byte{
		{RegDisplayTest, 0x00},
		{RegScanLimit, 0x07},
		{RegDecodeMode, 0x00},
	} {
		if err := d.broadcast(c[0], c[1]); err != nil {
			return err
		}
	}
	for u := 0; u < d.units; u++ {
		if err := d.Clear(u); err != nil {
			return err
		}
	}
	return d.PowerOff()
}

// PowerOn leaves shutdown mode on every unit.
func (d *Device) PowerOn() error { return d.broadcast(RegShutdown, 0x01) }

// PowerOff enters shutdown mode on every unit. Display RAM is retained.
func (d *Device) PowerOff() error { return d.broadcast(RegShutdown, 0x00) }

// SetIntensity sets brightness 0x0..0xF (clamped) on every unit.
func (d *Device) SetIntensity(v uint8) error {
	return d.broadcast(RegIntensity, mathx.Clamp(v, 0, 0x0F))
}

// DisplayTest lights every LED (on) or returns to normal operation.
func (d *Device) DisplayTest(on bool) error {
	var v byte
	if on {
		v = 1
	}
	return d.broadcast(RegDisplayTest, v)
}

// WriteRaw writes a full frame to one unit.
func (d *Device) WriteRaw(unit int, rows Rows) error {
	if unit < 0 || unit >= d.units {
		return errcode.Wrap(errcode.InvalidParams, "max7219.write", "unit out of range", nil)
	}
	for i, b := range rows {
		if err := d.WriteCommand(unit, RegDigit0+byte(i), b); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks one unit.
func (d *Device) Clear(unit int) error { return d.WriteRaw(unit, Rows{}) }

// WriteCommand writes data to register on one unit; the other units in the
// chain receive NO-OP.
func (d *Device) WriteCommand(unit int, register, data byte) error {
	n := 0
	for u := 0; u < d.units; u++ {
		if u == unit {
			d.buf[n], d.buf[n+1] = register, data
		} else {
			d.buf[n], d.buf[n+1] = RegNoop, 0
		}
		n += 2
	}
	return d.send(d.buf[:n])
}

// broadcast writes the same register on every unit.
func (d *Device) broadcast(register, data byte) error {
	n := 0
	for u := 0; u < d.units; u++ {
		d.buf[n], d.buf[n+1] = register, data
		n += 2
	}
	return d.send(d.buf[:n])
}

// send frames w between LOAD low and LOAD high; data latches on the rising
// edge.
func (d *Device) send(w []byte) error {
	if d.cs != nil {
		if err := d.cs.Low(); err != nil {
			return ioErr("load", err)
		}
	}
	if err := d.bus.Tx(w, nil); err != nil {
		if d.cs != nil {
			_ = d.cs.High()
		}
		return ioErr("tx", err)
	}
	if d.cs != nil {
		if err := d.cs.High(); err != nil {
			return ioErr("load", err)
		}
	}
	return nil
}

func ioErr(what string, err error) error {
	return errcode.Wrap(errcode.HardwareIO, "max7219", what, err)
}
