package hal

import "time"

// Sleeper exposes the platform Sleep as a value, for components that take
// their delay source as a dependency.
type Sleeper struct{}

func (Sleeper) Sleep(d time.Duration) { Sleep(d) }
