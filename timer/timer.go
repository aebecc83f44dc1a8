// Package timer is a stopwatch for code blocks.
package timer

import (
	"fmt"
	"time"
)

// Timer measures elapsed wall time. New starts it; Read reports
// without stopping, so later work stays off the bill once Stop has
// been called.
type Timer struct {
	start   time.Time
	elapsed time.Duration
}

func New() *Timer {
	return &Timer{start: time.Now()}
}

// Reset restarts the Timer and clears any stopped reading.
func (t *Timer) Reset() {
	t.start = time.Now()
	t.elapsed = 0
}

// Stop freezes the elapsed time.
func (t *Timer) Stop() {
	t.elapsed = time.Since(t.start)
}

// Elapsed returns the frozen duration, or the running one if the
// Timer was never stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.elapsed != 0 {
		return t.elapsed
	}
	return time.Since(t.start)
}

// Read formats Elapsed like "[0.503 s]".
func (t *Timer) Read() string {
	return fmt.Sprintf("[%0.3f s]", t.Elapsed().Seconds())
}
