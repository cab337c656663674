package training

import "time"

// Week is the Monday-Sunday calendar window for a given offset from the reference week.
type Week struct {
	// Start is Monday 00:00:00.000 local time.
	Start time.Time
	// End is Sunday 23:59:59.999 local time.
	End time.Time
}

// ResolveWeek computes the calendar week containing ref, shifted by weekOffset whole
// weeks. Monday starts the week regardless of the host locale; the reference instant's
// local calendar date is used without timezone conversion.
func ResolveWeek(ref time.Time, weekOffset int) Week {
	dayOfWeek := int(ref.Weekday())
	// time.Weekday enumerates Sunday=0..Saturday=6.
	toMonday := 1 - dayOfWeek
	if dayOfWeek == 0 {
		toMonday = -6
	}

	monday := ref.AddDate(0, 0, toMonday+weekOffset*7)
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
	sunday := start.AddDate(0, 0, 6)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(999*time.Millisecond), ref.Location())
	return Week{Start: start, End: end}
}

// Contains reports whether the instant t falls within the week, inclusive on both ends.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ContainsDate reports whether t's calendar date falls within the week. Used for
// planned workouts, whose day carries no time-of-day semantics.
func (w Week) ContainsDate(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}
