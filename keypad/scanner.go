package keypad

import (
	"time"

	"embeddedpg-go/errcode"
)

// RowDriver is an output line that selects one keypad row.
type RowDriver interface {
	High() error
	Low() error
}

// ColumnSensor is an input line that senses one keypad column.
type ColumnSensor interface {
	Get() (bool, error)
}

// Sleeper blocks the caller for at least d.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a plain function to Sleeper.
type SleepFunc func(time.Duration)

func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// RowSlot is either a wired row or absent. The zero value is absent.
type RowSlot struct {
	drv   RowDriver
	wired bool
}

// ColSlot is either a wired column or absent. The zero value is absent.
type ColSlot struct {
	sns   ColumnSensor
	wired bool
}

// NoRow and NoCol mark unwired positions.
var (
	NoRow RowSlot
	NoCol ColSlot
)

// Row wires a row driver into a slot. A nil driver leaves the slot absent.
// A typed nil pointer inside the interface is not nil and yields a wired
// slot; callers must not pass one.
func Row(d RowDriver) RowSlot {
	if d == nil {
		return NoRow
	}
	return RowSlot{drv: d, wired: true}
}

// Col wires a column sensor into a slot. A nil sensor leaves the slot absent.
// As with Row, a typed nil pointer counts as wired.
func Col(s ColumnSensor) ColSlot {
	if s == nil {
		return NoCol
	}
	return ColSlot{sns: s, wired: true}
}

// Wired reports whether the slot holds a driver.
func (s RowSlot) Wired() bool { return s.wired }

// Wired reports whether the slot holds a sensor.
func (s ColSlot) Wired() bool { return s.wired }

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Layout overrides DefaultLayout.
	Layout *Layout
	// Settle is the wait between asserting a row and sampling the columns.
	// Zero means the default of 10 µs; a negative value disables the wait.
	Settle time.Duration
	// Sleeper performs the settle wait. Default time.Sleep.
	Sleeper Sleeper
}

const defaultSettle = 10 * time.Microsecond

// Scanner owns the row and column lines of one keypad.
type Scanner struct {
	rows   [4]RowSlot
	cols   [4]ColSlot
	layout Layout
	settle time.Duration
	sleep  Sleeper
}

// New takes ownership of the wired rows and columns, index i matching
// layout row/column i, and drives every wired row low. If a row cannot be
// driven low no scanner is returned. Only the first Config is used.
func New(rows [4]RowSlot, cols [4]ColSlot, cfgs ...Config) (*Scanner, error) {
	s := &Scanner{
		rows:   rows,
		cols:   cols,
		layout: DefaultLayout,
		settle: defaultSettle,
		sleep:  SleepFunc(time.Sleep),
	}
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Layout != nil {
			if err := c.Layout.Validate(); err != nil {
				return nil, err
			}
			s.layout = *c.Layout
		}
		if c.Settle != 0 {
			s.settle = c.Settle
		}
		if c.Sleeper != nil {
			s.sleep = c.Sleeper
		}
	}

	for i := range s.rows {
		if !s.rows[i].wired {
			continue
		}
		if err := s.rows[i].drv.Low(); err != nil {
			return nil, rowErr("keypad.new", i, "drive low", err)
		}
	}
	return s, nil
}

// Layout returns the layout used to decode scans.
func (s *Scanner) Layout() Layout { return s.layout }

// Settle returns the configured settle time.
func (s *Scanner) Settle() time.Duration { return s.settle }

// Read scans every wired row once and returns the keys pressed. A failure to
// drive a row, or a fatal column fault, aborts the scan; rows already
// scanned have been returned low.
func (s *Scanner) Read() (Button, error) {
	buttons := None
	for r := range s.rows {
		b, err := s.scanRow(r)
		if err != nil {
			return None, err
		}
		buttons |= b
	}
	return buttons, nil
}

// scanRow asserts row r, samples the columns and deasserts the row again.
func (s *Scanner) scanRow(r int) (Button, error) {
	row := s.rows[r]
	if !row.wired {
		return None, nil
	}

	if err := row.drv.High(); err != nil {
		// The line may have partially switched; leave it low if we can.
		_ = row.drv.Low()
		return None, rowErr("keypad.read", r, "drive high", err)
	}

	if s.settle > 0 {
		s.sleep.Sleep(s.settle)
	}

	buttons := None
	var fatal error
	for c, col := range s.cols {
		if !col.wired {
			continue
		}
		high, err := col.sns.Get()
		if err != nil {
			if errcode.Of(err) == errcode.DeviceFatal {
				fatal = errcode.Wrap(errcode.DeviceFatal, "keypad.read", colName(c), err)
				break
			}
			// A misread key is harmless; count it as released.
			continue
		}
		if high {
			buttons |= s.layout[r][c]
		}
	}

	if err := row.drv.Low(); err != nil {
		return None, rowErr("keypad.read", r, "drive low", err)
	}
	if fatal != nil {
		return None, fatal
	}
	return buttons, nil
}

func rowErr(op string, r int, what string, err error) error {
	return errcode.Wrap(errcode.HardwareIO, op, "row "+string(rune('0'+r))+" "+what, err)
}

func colName(c int) string { return "col " + string(rune('0'+c)) }
