//go:build !tinygo

package hal

import "time"

// Sleep blocks for at least d.
func Sleep(d time.Duration) { time.Sleep(d) }
