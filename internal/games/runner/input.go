package runner

import "time"

// DefaultRepeatWindow is used when a Debouncer is created with a
// non-positive window.
const DefaultRepeatWindow = 150 * time.Millisecond

// Debouncer folds terminal key auto-repeat into a single gesture. Terminals
// report no key-up, so presses closer together than the window are treated
// as the key still being held.
type Debouncer struct {
	window time.Duration
	last   time.Time
}

// NewDebouncer creates a debouncer with the given repeat window.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &Debouncer{window: window}
}

// Accept reports whether a press at now starts a new gesture. Every press,
// accepted or not, extends the hold.
func (d *Debouncer) Accept(now time.Time) bool {
	held := !d.last.IsZero() && now.Sub(d.last) < d.window
	d.last = now
	return !held
}

// Release forgets the current hold, so the next press is always accepted.
func (d *Debouncer) Release() {
	d.last = time.Time{}
}
