//go:build !tinygo && !(linux && periph)

package board

import "os"

// Open returns the simulated board logging to stdout, with environment
// overrides applied.
func Open() (*Board, error) {
	s := SimSetup
	if err := ApplyEnv(&s, os.Getenv); err != nil {
		return nil, err
	}
	b, _ := OpenSim(s, os.Stdout)
	return b, nil
}
