package boundary

import "time"

// errorWindow is the trailing interval over which ErrorRate is computed.
const errorWindow = 60 * time.Second

// Metrics is a point-in-time snapshot of a boundary's failure accounting.
type Metrics struct {
	// ErrorCount is the cumulative number of calls that exhausted every
	// attempt.
	ErrorCount int64

	// FallbackCount is the cumulative number of fallback invocations.
	// The fallback runs on every exhausted call, so this tracks
	// ErrorCount exactly.
	FallbackCount int64

	// RecoveryCount is the cumulative number of calls that failed at
	// least once but succeeded within the retry budget.
	RecoveryCount int64

	// LastErrorAt is the timestamp of the most recent exhausted call.
	// Zero until the first one.
	LastErrorAt time.Time

	// ErrorRate is the number of failed attempts recorded within the
	// trailing 60-second window, recomputed when the snapshot is taken.
	ErrorRate int
}

// pruneLocked drops window entries older than errorWindow relative to now.
// b.mu must be held.
func (b *Boundary[T]) pruneLocked(now time.Time) {
	cutoff := now.Add(-errorWindow)
	i := 0
	for i < len(b.window) && !b.window[i].After(cutoff) {
		i++
	}
	if i > 0 {
		b.window = append(b.window[:0], b.window[i:]...)
	}
}

// Metrics returns a snapshot of the boundary's metrics. ErrorRate is
// recomputed against the pruned trailing window at read time.
func (b *Boundary[T]) Metrics() Metrics {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(now)
	m := b.metrics
	m.ErrorRate = len(b.window)
	return m
}

// ResetMetrics zeroes every counter, clears LastErrorAt, and discards the
// timestamp history. The error-state flag is left as is.
func (b *Boundary[T]) ResetMetrics() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.metrics = Metrics{}
	b.window = nil
}

// InErrorState reports whether any call has exhausted its attempts since
// the state was last cleared. The flag does not auto-clear on success.
func (b *Boundary[T]) InErrorState() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errState
}

// ClearErrorState resets the sticky error flag. Metrics are untouched.
func (b *Boundary[T]) ClearErrorState() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errState = false
}
