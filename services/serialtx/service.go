// Package serialtx is the bit-banged writer rig: each step sends the sync
// preamble followed by a message on one output line, one bit per tick.
package serialtx

import (
	"context"

	"embeddedpg-go/hal"
	"embeddedpg-go/tick"
	"embeddedpg-go/x/bitbang"
	"embeddedpg-go/x/console"
)

// DefaultMessage is sent when none is configured.
const DefaultMessage = "Hello World!"

type Service struct {
	line bitbang.Serial
	log  *console.Console
	msg  []byte
}

// New builds the rig. The tick paces every bit.
func New(line hal.Output, t tick.Waiter, msg string, log *console.Console) *Service {
	if msg == "" {
		msg = DefaultMessage
	}
	if log == nil {
		log = console.New(nil, "")
	}
	return &Service{line: bitbang.Serial{Line: line, Tick: t}, log: log, msg: []byte(msg)}
}

// Init drives the line low.
func (s *Service) Init() error { return s.line.Idle() }

// Step sends one frame: idle, timing pulses, then the message.
func (s *Service) Step() error {
	s.log.Print("Waiting...")
	if err := s.line.Hold(bitbang.SyncIdleTicks); err != nil {
		return err
	}
	s.log.Print("Timing...")
	if err := s.line.Pulse(bitbang.SyncPulses); err != nil {
		return err
	}
	s.log.Print("Writing...")
	for _, b := range s.msg {
		s.log.Line().Char(b).Char(' ').Hex(uint64(b)).End()
		if err := s.line.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Run calls Init, then sends frames back to back until ctx is done or a
// write fails. Steps pace themselves on the tick.
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
	}
}
