// Package pinlog is the pin tester rig: it samples a list of pull-down
// inputs every tick and logs them as one bitstring.
package pinlog

import (
	"context"

	"embeddedpg-go/hal"
	"embeddedpg-go/tick"
	"embeddedpg-go/x/console"
)

// Claimer claims the logged pins as pull-down inputs, first pin first.
type Claimer func() ([]hal.Input, error)

type Service struct {
	claim Claimer
	tick  tick.Waiter
	log   *console.Console

	pins []hal.Input
	line []byte
}

func New(claim Claimer, t tick.Waiter, log *console.Console) *Service {
	if log == nil {
		log = console.New(nil, "")
	}
	return &Service{claim: claim, tick: t, log: log}
}

// Init claims the pins.
func (s *Service) Init() error {
	pins, err := s.claim()
	if err != nil {
		return err
	}
	s.pins = pins
	s.line = make([]byte, 1+len(pins))
	return nil
}

// Sample reads every pin into a bitstring: a leading 1, then one digit per
// pin. Pins that fail to read count as 0.
func (s *Service) Sample() string {
	if len(s.line) == 0 {
		s.line = []byte{'1'}
	}
	s.line[0] = '1'
	for i, p := range s.pins {
		v, err := p.Get()
		if err != nil || !v {
			s.line[i+1] = '0'
			continue
		}
		s.line[i+1] = '1'
	}
	return string(s.line)
}

// Step logs one sample.
func (s *Service) Step() error {
	s.log.Print(s.Sample())
	return nil
}

// Run calls Init, then Step once per tick until ctx is done.
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
