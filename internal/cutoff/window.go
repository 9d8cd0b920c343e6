// Package cutoff implements the meal booking and cancellation cutoff
// engine: given the current time and a set of per-window cutoff rules it
// decides whether booking or cancelling a meal for today or tomorrow is
// still allowed, and explains the deadline when it is not.
package cutoff

import "time"

// Window is the coarse temporal bucket a target date falls into relative
// to the current calendar day.
type Window int

const (
	WindowToday Window = iota
	WindowTomorrow
	WindowBeyond
)

func (w Window) String() string {
	switch w {
	case WindowToday:
		return "today"
	case WindowTomorrow:
		return "tomorrow"
	default:
		return "beyond"
	}
}

// Classify buckets targetDate against now by calendar day, midnight to
// midnight in now's location. Past dates fall through to WindowBeyond and
// are therefore never restricted by the engine; callers that care about
// past meals must enforce that themselves.
func Classify(now, targetDate time.Time) Window {
	today := dateOnly(now)
	targetDay := dateOnly(targetDate.In(now.Location()))

	switch {
	case targetDay.Equal(today):
		return WindowToday
	case targetDay.Equal(today.AddDate(0, 0, 1)):
		return WindowTomorrow
	default:
		return WindowBeyond
	}
}

// dateOnly strips the time of day, keeping t's location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// resolveCutoff returns the absolute instant a cutoff hour stands for,
// anchored to referenceDay's calendar day. A negative hour means hour
// 24+h of the previous day (-7 resolves to 5 PM the day before).
// time.Date normalizes out-of-range day/hour values, so the previous-day
// arithmetic is safe across month and year boundaries.
func resolveCutoff(referenceDay time.Time, cutoffHour int) time.Time {
	y, m, d := referenceDay.Date()
	loc := referenceDay.Location()
	if cutoffHour < 0 {
		return time.Date(y, m, d-1, 24+cutoffHour, 0, 0, 0, loc)
	}
	return time.Date(y, m, d, cutoffHour, 0, 0, 0, loc)
}

// resolveCancellationCutoff anchors a cancellation cutoff hour.
// Cancellation anchoring intentionally differs from booking: a cutoff
// hour past 23 for the tomorrow window lands on tomorrow's own calendar
// day, whereas booking cutoffs always land on today's. Do not unify the
// two resolvers; that would silently change cutoff semantics.
func resolveCancellationCutoff(now time.Time, window Window, cutoffHour int) time.Time {
	y, m, d := now.Date()
	loc := now.Location()

	switch {
	case cutoffHour < 0:
		return time.Date(y, m, d-1, 24+cutoffHour, 0, 0, 0, loc)
	case window == WindowTomorrow && cutoffHour <= 23:
		return time.Date(y, m, d, cutoffHour, 0, 0, 0, loc)
	default:
		offset := 0
		if window == WindowTomorrow {
			offset = 1
		}
		return time.Date(y, m, d+offset, cutoffHour, 0, 0, 0, loc)
	}
}

// formatClock renders an instant as the locale clock string shown to
// users, e.g. "5:00 PM". Presentation only, never re-parsed.
func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
