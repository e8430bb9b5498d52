//go:build !tinygo

package hal

import "sync"

// SimKeypad is an electrical model of a 4x4 key matrix wired to SimPins:
// a column pin reads high only while the row pin of a pressed key on that
// column is driven high. Unwired positions use pin number -1.
type SimKeypad struct {
	mu      sync.Mutex
	rows    [4]*SimPin
	pressed [4][4]bool
}

// NewSimKeypad attaches the model to the factory's pins.
func NewSimKeypad(f *SimFactory, rows, cols [4]int) *SimKeypad {
	k := &SimKeypad{}
	for i, n := range rows {
		if p, ok := f.Pin(n); ok {
			k.rows[i] = p
		}
	}
	for i, n := range cols {
		c := i
		if p, ok := f.Pin(n); ok {
			p.SetSource(func() bool { return k.column(c) })
		}
	}
	return k
}

func (k *SimKeypad) column(c int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	for r, p := range k.rows {
		if p != nil && k.pressed[r][c] && p.Level() {
			return true
		}
	}
	return false
}

// Press holds the key at (row, col).
func (k *SimKeypad) Press(row, col int) { k.set(row, col, true) }

// Release lets go of the key at (row, col).
func (k *SimKeypad) Release(row, col int) { k.set(row, col, false) }

// ReleaseAll lets go of every key.
func (k *SimKeypad) ReleaseAll() {
	k.mu.Lock()
	k.pressed = [4][4]bool{}
	k.mu.Unlock()
}

func (k *SimKeypad) set(row, col int, v bool) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return
	}
	k.mu.Lock()
	k.pressed[row][col] = v
	k.mu.Unlock()
}
