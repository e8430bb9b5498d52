// Package keypad scans a 4x4 row/column multiplexed key matrix and reports
// the pressed keys as a 16-bit mask.
//
// One row line is driven high at a time; after a settle delay every column
// line is sampled and the keys found are OR-ed into the result. The row is
// driven low again before the next one is asserted, so at most one row is
// ever active:
//
//	rows := [4]keypad.RowSlot{keypad.Row(r0)}
//	cols := [4]keypad.ColSlot{keypad.Col(c0), keypad.Col(c1), keypad.Col(c2)}
//	kp, err := keypad.New(rows, cols)
//	...
//	buttons, err := kp.Read()
//	if buttons.Has(keypad.One) { ... }
//
// Several keys pressed together are all reported. Ghosting across rows is
// not corrected.
package keypad

// Button is a set of keys, one bit per physical key.
type Button uint16

// None is the empty set: no key pressed.
const None Button = 0

const (
	One Button = 1 << iota
	Two
	Three
	A

	Four
	Five
	Six
	B

	Seven
	Eight
	Nine
	C

	Star
	Zero
	Hash
	D
)

// Alternative legends for the two symbol keys.
const (
	Asterisk   = Star
	Octothorpe = Hash
)

// NumKeys is the number of distinct key bits.
const NumKeys = 16

var keyNames = [NumKeys]string{
	"1", "2", "3", "A",
	"4", "5", "6", "B",
	"7", "8", "9", "C",
	"*", "0", "#", "D",
}

// Has reports whether every key in k is pressed in b.
func (b Button) Has(k Button) bool { return k != None && b&k == k }

// Only reports whether exactly the keys in k, and nothing else, are pressed.
func (b Button) Only(k Button) bool { return b == k }

// Count returns the number of keys pressed.
func (b Button) Count() int {
	n := 0
	for v := b; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Keys returns the single-bit keys in b, lowest bit first.
func (b Button) Keys() []Button {
	out := make([]Button, 0, b.Count())
	for i := 0; i < NumKeys; i++ {
		if k := Button(1) << i; b&k != 0 {
			out = append(out, k)
		}
	}
	return out
}

// String renders the pressed keys by legend, joined with '+', lowest bit
// first. None renders as "none".
func (b Button) String() string {
	if b == None {
		return "none"
	}
	var buf [2 * NumKeys]byte
	n := 0
	for i := 0; i < NumKeys; i++ {
		if b&(1<<i) == 0 {
			continue
		}
		if n > 0 {
			buf[n] = '+'
			n++
		}
		buf[n] = keyNames[i][0]
		n++
	}
	return string(buf[:n])
}
