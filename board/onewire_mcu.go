//go:build tinygo

package board

import (
	"tinygo.org/x/drivers/onewire"

	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
	"embeddedpg-go/probe"
)

func machineOneWire(p hal.Pin) (probe.Bus, error) {
	mp, ok := p.(*hal.MachinePin)
	if !ok {
		return nil, errcode.Wrap(errcode.Unsupported, "board.onewire", "not a machine pin", nil)
	}
	ow := onewire.New(mp.Machine())
	return &ow, nil
}
