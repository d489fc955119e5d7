package interpreter

import "time"

// SetGracePeriod overrides the delay between the graceful and forceful signals.
func (e *Executor) SetGracePeriod(d time.Duration) {
	e.grace = d
}
