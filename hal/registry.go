package hal

import (
	"strconv"

	"embeddedpg-go/errcode"
)

// Registry hands out pins from a factory and records who owns each one.
// A rig claims its pins once at startup; nothing else can claim them after.
type Registry struct {
	pins   PinFactory
	owners map[int]string
	cache  map[int]Pin
}

func NewRegistry(f PinFactory) *Registry {
	return &Registry{
		pins:   f,
		owners: make(map[int]string),
		cache:  make(map[int]Pin),
	}
}

// Claim reserves pin n for devID without configuring it. Claiming a pin
// already held by devID returns the same pin.
func (r *Registry) Claim(devID string, n int) (Pin, error) {
	if owner, ok := r.owners[n]; ok {
		if owner != devID {
			return nil, errcode.Wrap(errcode.PinInUse, "hal.claim", "pin "+strconv.Itoa(n)+" held by "+owner, nil)
		}
		return r.cache[n], nil
	}
	p, ok := r.pins.ByNumber(n)
	if !ok || p == nil {
		return nil, errcode.Wrap(errcode.UnknownPin, "hal.claim", "pin "+strconv.Itoa(n), nil)
	}
	r.owners[n] = devID
	r.cache[n] = p
	return p, nil
}

// ClaimOutput claims pin n and configures it as an output at level initial.
func (r *Registry) ClaimOutput(devID string, n int, initial bool) (Pin, error) {
	p, err := r.Claim(devID, n)
	if err != nil {
		return nil, err
	}
	if err := p.ConfigureOutput(initial); err != nil {
		r.Release(devID, n)
		return nil, errcode.Wrap(errcode.HardwareIO, "hal.claim", "configure output "+strconv.Itoa(n), err)
	}
	return p, nil
}

// ClaimInput claims pin n and configures it as an input with pull.
func (r *Registry) ClaimInput(devID string, n int, pull Pull) (Pin, error) {
	p, err := r.Claim(devID, n)
	if err != nil {
		return nil, err
	}
	if err := p.ConfigureInput(pull); err != nil {
		r.Release(devID, n)
		return nil, errcode.Wrap(errcode.HardwareIO, "hal.claim", "configure input "+strconv.Itoa(n), err)
	}
	return p, nil
}

// Release frees pin n if devID owns it.
func (r *Registry) Release(devID string, n int) {
	if r.owners[n] == devID {
		delete(r.owners, n)
		delete(r.cache, n)
	}
}

// Owner returns the device holding pin n, if any.
func (r *Registry) Owner(n int) (string, bool) {
	o, ok := r.owners[n]
	return o, ok
}
