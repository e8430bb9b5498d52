//go:build !tinygo

package hal

import (
	"sync"

	"embeddedpg-go/errcode"
)

// SimPin is a host-side pin for tests and workstation runs. Input pins read
// their level from Source when one is attached; a pin configured with a pull
// and no source idles at the pull level.
type SimPin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    Pull
	writes  int

	// Source, when set, supplies the level seen by Get.
	source func() bool
	// OnSet is called after every successful write with the new level.
	onSet func(level bool)

	// Fault injection.
	failWrites error
	failReads  error
}

func (p *SimPin) Number() int { return p.number }

func (p *SimPin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWrites != nil {
		return p.failWrites
	}
	p.modeOut = false
	p.pull = pull
	switch pull {
	case PullUp:
		p.level = true
	case PullDown:
		p.level = false
	}
	return nil
}

func (p *SimPin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	if p.failWrites != nil {
		p.mu.Unlock()
		return p.failWrites
	}
	p.modeOut = true
	p.mu.Unlock()
	return p.Set(initial)
}

func (p *SimPin) Set(level bool) error {
	p.mu.Lock()
	if p.failWrites != nil {
		p.mu.Unlock()
		return errcode.Wrap(errcode.HardwareIO, "sim.set", "", p.failWrites)
	}
	p.level = level
	p.writes++
	hook := p.onSet
	p.mu.Unlock()
	if hook != nil {
		hook(level)
	}
	return nil
}

func (p *SimPin) High() error { return p.Set(true) }
func (p *SimPin) Low() error  { return p.Set(false) }

func (p *SimPin) Get() (bool, error) {
	p.mu.RLock()
	src, err, lvl := p.source, p.failReads, p.level
	p.mu.RUnlock()
	if err != nil {
		return false, err
	}
	if src != nil {
		return src(), nil
	}
	return lvl, nil
}

// Level returns the last driven or idle level without consulting Source.
func (p *SimPin) Level() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// IsOutput reports whether the pin was last configured as an output.
func (p *SimPin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// Writes returns the number of successful writes.
func (p *SimPin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// SetSource attaches a level source for Get.
func (p *SimPin) SetSource(f func() bool) {
	p.mu.Lock()
	p.source = f
	p.mu.Unlock()
}

// OnSet registers a hook run after each write.
func (p *SimPin) OnSet(f func(level bool)) {
	p.mu.Lock()
	p.onSet = f
	p.mu.Unlock()
}

// FailWrites makes every write and configure fail with err (nil clears).
func (p *SimPin) FailWrites(err error) {
	p.mu.Lock()
	p.failWrites = err
	p.mu.Unlock()
}

// FailReads makes Get fail with err (nil clears).
func (p *SimPin) FailReads(err error) {
	p.mu.Lock()
	p.failReads = err
	p.mu.Unlock()
}

// SimFactory returns stable *SimPin instances per number in [0, Max].
type SimFactory struct {
	Max int

	mu   sync.Mutex
	pins map[int]*SimPin
}

// NewSimFactory provides pins 0..max.
func NewSimFactory(max int) *SimFactory {
	return &SimFactory{Max: max, pins: make(map[int]*SimPin)}
}

func (f *SimFactory) ByNumber(n int) (Pin, bool) {
	p, ok := f.Pin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

// Pin exposes the underlying *SimPin (e.g. to attach sources or faults).
func (f *SimFactory) Pin(n int) (*SimPin, bool) {
	if n < 0 || n > f.Max {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*SimPin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &SimPin{number: n}
		f.pins[n] = p
	}
	return p, true
}
