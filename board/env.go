//go:build !tinygo

package board

import (
	"strconv"

	"github.com/google/shlex"

	"embeddedpg-go/errcode"
)

// Environment overrides for host targets.
const (
	EnvKeypadLegend = "EMBEDDEDPG_KEYPAD_LEGEND" // four rows, e.g. "123A 456B 789C '*0#D'"
	EnvLoggedPins   = "EMBEDDEDPG_LOGGED_PINS"   // pin numbers, e.g. "4 17 27"
	EnvMessage      = "EMBEDDEDPG_MESSAGE"
)

// ApplyEnv overrides fields of s from the environment. Unset variables leave
// s unchanged.
func ApplyEnv(s *Setup, getenv func(string) string) error {
	if v := getenv(EnvKeypadLegend); v != "" {
		words, err := shlex.Split(v)
		if err != nil {
			return errcode.Wrap(errcode.InvalidParams, "board.env", EnvKeypadLegend, err)
		}
		if len(words) != 4 {
			return errcode.Wrap(errcode.InvalidParams, "board.env", EnvKeypadLegend+" needs 4 rows", nil)
		}
		copy(s.KeypadLegend[:], words)
	}
	if v := getenv(EnvLoggedPins); v != "" {
		words, err := shlex.Split(v)
		if err != nil {
			return errcode.Wrap(errcode.InvalidParams, "board.env", EnvLoggedPins, err)
		}
		pins := make([]int, 0, len(words))
		for _, w := range words {
			n, err := strconv.Atoi(w)
			if err != nil || n < 0 {
				return errcode.Wrap(errcode.InvalidParams, "board.env", EnvLoggedPins+": "+w, err)
			}
			pins = append(pins, n)
		}
		s.LoggedPins = pins
	}
	if v := getenv(EnvMessage); v != "" {
		s.Message = v
	}
	return nil
}
