package bitbang

import (
	"embeddedpg-go/hal"
	"embeddedpg-go/tick"
)

// Frame timing of the Serial line, in ticks.
const (
	SyncIdleTicks = 32 // line held low before the timing pulses
	SyncPulses    = 4  // high/low pulses a receiver uses to lock onto the tick
)

// Serial writes bytes on a single line, one bit per tick, most significant
// bit first. Each byte is followed by one tick of low line.
type Serial struct {
	Line hal.Output
	Tick tick.Waiter
}

// Idle drives the line low.
func (s *Serial) Idle() error { return s.Line.Low() }

// WriteByte sends b and returns the line to low.
func (s *Serial) WriteByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := s.Line.Set(b&0x80 != 0); err != nil {
			return err
		}
		b <<= 1
		s.Tick.Wait()
	}
	if err := s.Line.Low(); err != nil {
		return err
	}
	s.Tick.Wait()
	return nil
}

// Write sends every byte of p.
func (s *Serial) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := s.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Hold keeps the line low for n ticks.
func (s *Serial) Hold(n int) error {
	if err := s.Line.Low(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s.Tick.Wait()
	}
	return nil
}

// Pulse emits n high/low pulses, each level held for one tick.
func (s *Serial) Pulse(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Line.High(); err != nil {
			return err
		}
		s.Tick.Wait()
		if err := s.Line.Low(); err != nil {
			return err
		}
		s.Tick.Wait()
	}
	return nil
}

// Sync sends the receiver preamble: SyncIdleTicks of low line followed by
// SyncPulses timing pulses.
func (s *Serial) Sync() error {
	if err := s.Hold(SyncIdleTicks); err != nil {
		return err
	}
	return s.Pulse(SyncPulses)
}
