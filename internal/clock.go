package internal

import (
	"fmt"
	"time"
)

// Clock is the engine's time source. Day/week/month boundary math is always
// derived from the returned time's location, never from package-level state,
// so tests can pin both the instant and the timezone.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock time source used in production.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock is a Clock pinned to a settable instant, for tests.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time { return c.Time }

// Advance moves the fixed clock forward.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}

// Midnight returns the start of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekAgo returns local midnight seven days before t.
func WeekAgo(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, -7)
}

// MonthAgo returns local midnight one calendar month before t. Overflow days
// normalize forward: a month before March 31 is February 31, which Go
// renders as March 2 or 3 depending on the year.
func MonthAgo(t time.Time) time.Time {
	return Midnight(t).AddDate(0, -1, 0)
}

// FormatClockDuration renders a millisecond duration as HH:MM:SS, flooring
// to whole seconds. Hours are not wrapped at 24.
func FormatClockDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
