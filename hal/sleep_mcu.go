//go:build tinygo

package hal

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// Sleep busy-waits for short durations and falls back to time.Sleep for
// anything longer than a few milliseconds.
func Sleep(d time.Duration) { delay.Sleep(d) }
