// Package bitbang drives simple serial protocols from plain GPIO lines.
package bitbang

import "embeddedpg-go/hal"

// SPI is a write-only, mode-0, MSB-first SPI master on two output lines.
// It satisfies tinygo.org/x/drivers.SPI. With no MISO line, received bytes
// are always zero.
type SPI struct {
	SCK hal.Output
	SDO hal.Output
}

// Transfer clocks out one byte.
func (s *SPI) Transfer(b byte) (byte, error) {
	for i := 7; i >= 0; i-- {
		if err := s.SDO.Set(b&(1<<uint(i)) != 0); err != nil {
			return 0, err
		}
		if err := s.SCK.High(); err != nil {
			return 0, err
		}
		if err := s.SCK.Low(); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

// Tx clocks out w. If r is non-nil it is zero-filled; when w is nil, len(r)
// zero bytes are sent.
func (s *SPI) Tx(w, r []byte) error {
	n := len(w)
	if w == nil {
		n = len(r)
	}
	for i := 0; i < n; i++ {
		var b byte
		if w != nil {
			b = w[i]
		}
		if _, err := s.Transfer(b); err != nil {
			return err
		}
		if i < len(r) {
			r[i] = 0
		}
	}
	return nil
}
