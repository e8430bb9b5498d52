package keypad

import "embeddedpg-go/errcode"

// Layout maps a (row, column) intersection to the key bit wired there.
type Layout [4][4]Button

// DefaultLayout is the telephone-style arrangement:
//
//	1 2 3 A
//	4 5 6 B
//	7 8 9 C
//	* 0 # D
var DefaultLayout = Layout{
	{One, Two, Three, A},
	{Four, Five, Six, B},
	{Seven, Eight, Nine, C},
	{Star, Zero, Hash, D},
}

// At returns the key bit at row r, column c, or None when out of range.
func (l *Layout) At(r, c int) Button {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		return None
	}
	return l[r][c]
}

// Row returns the combined mask of every key on row r.
func (l *Layout) Row(r int) Button {
	var m Button
	for c := 0; c < 4; c++ {
		m |= l.At(r, c)
	}
	return m
}

// Locate returns the position of a single-bit key k.
func (l *Layout) Locate(k Button) (row, col int, ok bool) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if l[r][c] == k && k != None {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Validate checks that every position holds exactly one key bit and that no
// bit appears twice.
func (l *Layout) Validate() error {
	var seen Button
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			k := l[r][c]
			if k.Count() != 1 {
				return errcode.Wrap(errcode.InvalidParams, "keypad.layout", "position must hold a single key", nil)
			}
			if seen&k != 0 {
				return errcode.Wrap(errcode.InvalidParams, "keypad.layout", "duplicate key "+k.String(), nil)
			}
			seen |= k
		}
	}
	return nil
}

// KeyByLegend returns the key bit printed with legend ch ('0'-'9', 'A'-'D',
// '*', '#'). Lowercase 'a'-'d' are accepted.
func KeyByLegend(ch byte) (Button, bool) {
	if ch >= 'a' && ch <= 'd' {
		ch -= 'a' - 'A'
	}
	for i, name := range keyNames {
		if name[0] == ch {
			return Button(1) << i, true
		}
	}
	return None, false
}

// ParseLayout builds a Layout from the key legends of each row, top to
// bottom, left to right (e.g. "123A", "456B", "789C", "*0#D"). Boards that
// print different legends on the same electrical matrix use this to remap
// positions without changing the bit assignment.
func ParseLayout(rows [4]string) (Layout, error) {
	var l Layout
	for r, s := range rows {
		if len(s) != 4 {
			return Layout{}, errcode.Wrap(errcode.InvalidParams, "keypad.layout", "row "+s+" must have 4 legends", nil)
		}
		for c := 0; c < 4; c++ {
			k, ok := KeyByLegend(s[c])
			if !ok {
				return Layout{}, errcode.Wrap(errcode.InvalidParams, "keypad.layout", "unknown legend "+s[c:c+1], nil)
			}
			l[r][c] = k
		}
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
