//go:build !tinygo

package hal

import (
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"embeddedpg-go/errcode"
)

// PeriphFactory looks pins up in the periph.io GPIO registry by
// "<Prefix><n>" (default "GPIO", the BCM numbering on a Raspberry Pi).
// The host drivers must already be initialised.
type PeriphFactory struct {
	Prefix string
}

func (f PeriphFactory) ByNumber(n int) (Pin, bool) {
	prefix := f.Prefix
	if prefix == "" {
		prefix = "GPIO"
	}
	p := gpioreg.ByName(prefix + strconv.Itoa(n))
	if p == nil {
		return nil, false
	}
	return &PeriphPin{p: p, n: n}, true
}

// PeriphPin adapts a periph.io gpio.PinIO. Output failures reported by the
// kernel driver surface as hardware I/O errors.
type PeriphPin struct {
	p gpio.PinIO
	n int
}

func (pp *PeriphPin) Number() int { return pp.n }

func (pp *PeriphPin) ConfigureInput(pull Pull) error {
	var gp gpio.Pull
	switch pull {
	case PullUp:
		gp = gpio.PullUp
	case PullDown:
		gp = gpio.PullDown
	default:
		gp = gpio.Float
	}
	return pp.p.In(gp, gpio.NoEdge)
}

func (pp *PeriphPin) ConfigureOutput(initial bool) error {
	return pp.Set(initial)
}

func (pp *PeriphPin) Set(level bool) error {
	if err := pp.p.Out(gpio.Level(level)); err != nil {
		return errcode.Wrap(errcode.HardwareIO, "periph.out", pp.p.Name(), err)
	}
	return nil
}

func (pp *PeriphPin) High() error { return pp.Set(true) }
func (pp *PeriphPin) Low() error  { return pp.Set(false) }

func (pp *PeriphPin) Get() (bool, error) {
	return pp.p.Read() == gpio.High, nil
}
