// Package thermo is the temperature rig: it finds a DS18B20 on the one-wire
// bus and logs its reading every tick.
package thermo

import (
	"context"
	"time"

	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
	"embeddedpg-go/probe"
	"embeddedpg-go/tick"
	"embeddedpg-go/x/console"
)

type Service struct {
	bus   probe.Bus
	tick  tick.Waiter
	log   *console.Console
	sleep func(time.Duration)

	probe *probe.Probe
}

// New builds the rig. Sleep waits out the first conversion; nil uses
// hal.Sleep.
func New(bus probe.Bus, t tick.Waiter, log *console.Console, sleep func(time.Duration)) *Service {
	if log == nil {
		log = console.New(nil, "")
	}
	if sleep == nil {
		sleep = hal.Sleep
	}
	return &Service{bus: bus, tick: t, log: log, sleep: sleep}
}

// Found reports whether Init found a probe.
func (s *Service) Found() bool { return s.probe != nil }

// Init searches the bus and waits for the first conversion. A bus without
// a probe is not an error; the rig then only ticks.
func (s *Service) Init() error {
	p, err := probe.Find(s.bus, s.log)
	switch errcode.Of(err) {
	case errcode.OK:
	case errcode.NoDevice:
		return nil
	default:
		return err
	}
	s.probe = p
	s.sleep(p.ConversionTime())
	return nil
}

// Step logs one reading. A reading with a bad CRC is logged and skipped.
func (s *Service) Step() error {
	if s.probe == nil {
		return nil
	}
	mC, err := s.probe.Read()
	if errcode.Of(err) == errcode.CRCMismatch {
		s.log.Error("read", err)
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Line().Str("temp ").Int(int64(mC)).Str(" mC").End()
	return nil
}

// Run calls Init, then Step once per tick until ctx is done or a step
// fails.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Init(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			s.log.Print("stopping")
			return nil
		default:
		}
		if err := s.Step(); err != nil {
			return err
		}
		s.tick.Wait()
	}
}
