// Package numpad is the keypad rig: it reads the key matrix every tick,
// logs the held keys, and shows a pattern on the LED matrix chosen by the
// key held alone.
package numpad

import (
	"context"

	"embeddedpg-go/drivers/max7219"
	"embeddedpg-go/hal"
	"embeddedpg-go/keypad"
	"embeddedpg-go/tick"
	"embeddedpg-go/x/console"
)

// Keys reads the key matrix.
type Keys interface {
	Read() (keypad.Button, error)
}

// Display is the LED matrix.
type Display interface {
	Configure() error
	PowerOn() error
	WriteRaw(unit int, rows max7219.Rows) error
}

// selectKeys are the keys that pick a pattern; other keys held alongside
// them are ignored.
const selectKeys = keypad.One | keypad.Two | keypad.Three

type Service struct {
	keys    Keys
	display Display
	led     hal.Output
	tick    tick.Waiter
	log     *console.Console

	pattern max7219.Rows
}

// New builds the rig. led may be nil on boards without one.
func New(keys Keys, display Display, led hal.Output, t tick.Waiter, log *console.Console) *Service {
	if log == nil {
		log = console.New(nil, "")
	}
	return &Service{keys: keys, display: display, led: led, tick: t, log: log, pattern: Chess}
}

// Pattern returns the pattern shown on the next Step.
func (s *Service) Pattern() max7219.Rows { return s.pattern }

// Init drives the on-board LED low and resets the display.
func (s *Service) Init() error {
	if s.led != nil {
		if err := s.led.Low(); err != nil {
			return err
		}
	}
	if err := s.display.Configure(); err != nil {
		return err
	}
	s.pattern = Chess
	return nil
}

// Step scans the keypad once and refreshes the display.
func (s *Service) Step() error {
	b, err := s.keys.Read()
	if err != nil {
		return err
	}
	s.log.Line().Str("buttons 0b").Bin(uint64(b&0xF), 4).End()

	switch b & selectKeys {
	case keypad.One:
		s.log.Print("hold 1")
		s.pattern = One
	case keypad.Two:
		s.log.Print("hold 2")
		s.pattern = Chess
	}

	if err := s.display.PowerOn(); err != nil {
		return err
	}
	return s.display.WriteRaw(0, s.pattern)
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
