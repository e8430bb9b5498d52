//go:build linux && periph && !tinygo

package board

import (
	"os"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
)

// PiSetup is a Raspberry Pi header wiring, BCM numbers. The LED matrix sits on
// the kernel SPI device, which drives CE0 itself.
var PiSetup = Setup{
	Name:        "rpi",
	KeypadRows:  [4]int{5, 6, 13, 19},
	KeypadCols:  [4]int{26, 16, 20, 21},
	MatrixData:  NC,
	MatrixCS:    NC,
	MatrixClock: NC,
	MatrixSPI:   "SPI0.0",
	MatrixUnits: 1,
	LED:         NC,
	Probe:       NC,
	SerialLine:  17,
	LoggedPins:  []int{4, 12, 17, 22, 23, 24, 25, 27},
	Tick:        100 * time.Millisecond,
	Message:     "Hello World!",
}

// SPIClock is the LED matrix SPI clock.
const SPIClock = 1 * physic.MegaHertz

// Open initialises the periph host drivers.
func Open() (*Board, error) {
	s := PiSetup
	if err := ApplyEnv(&s, os.Getenv); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, errcode.Wrap(errcode.HardwareIO, "board.open", "periph host init", err)
	}
	b := &Board{Setup: s, Pins: hal.NewRegistry(hal.PeriphFactory{}), Out: os.Stdout}
	b.openSPI = openSPI
	return b, nil
}

func openSPI(name string) (drivers.SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, errcode.Wrap(errcode.HardwareIO, "board.spi", name, err)
	}
	c, err := port.Connect(SPIClock, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, errcode.Wrap(errcode.HardwareIO, "board.spi", name, err)
	}
	return &spiConn{c: c}, nil
}

// spiConn adapts a periph spi.Conn to drivers.SPI.
type spiConn struct{ c spi.Conn }

func (s *spiConn) Tx(w, r []byte) error {
	if len(r) != 0 && len(r) != len(w) {
		return errcode.Wrap(errcode.InvalidParams, "spi.tx", "read and write lengths differ", nil)
	}
	return s.c.Tx(w, r)
}

func (s *spiConn) Transfer(b byte) (byte, error) {
	var r [1]byte
	err := s.c.Tx([]byte{b}, r[:])
	return r[0], err
}
