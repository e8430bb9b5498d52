// Package hal is the pin layer shared by every rig: a small digital pin
// interface, one pin factory per platform, and a registry that hands each
// pin to exactly one owner.
package hal

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// Output is a line the caller drives.
type Output interface {
	Set(level bool) error
	High() error
	Low() error
}

// Input is a line the caller samples.
type Input interface {
	Get() (bool, error)
}

// Pin is one configurable GPIO. Operations return an error when the
// platform can report a failed electrical operation; MCU pins never do.
type Pin interface {
	Output
	Input
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
}

// PinFactory supplies GPIO pins by the board's numbering scheme.
type PinFactory interface {
	ByNumber(n int) (Pin, bool)
}
