package cutoff

import (
	"fmt"
	"time"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

// EvaluateBooking decides whether a meal of the given type may still be
// booked for targetDate, as of now, under cfg.
//
// Dates beyond tomorrow are always allowed, as is any meal type the
// window has no rule for (fail open on missing configuration). The
// cutoff instant is always anchored to now's calendar day, even for the
// tomorrow window: tomorrow's meals are booked by some hour today.
// The comparison is inclusive, booking exactly at the cutoff succeeds.
func EvaluateBooking(mealType meal.Type, now, targetDate time.Time, cfg meal.BookingConfig) meal.BookingStatus {
	window := Classify(now, targetDate)
	if window == WindowBeyond {
		return meal.BookingStatus{Allowed: true}
	}

	rules := cfg.Today
	if window == WindowTomorrow {
		rules = cfg.Tomorrow
	}

	rule, ok := meal.RuleFor(rules, mealType)
	if !ok {
		return meal.BookingStatus{Allowed: true}
	}

	cutoff := resolveCutoff(now, rule.CutoffHour)
	cutoffClock := formatClock(cutoff)

	if !now.After(cutoff) {
		return meal.BookingStatus{Allowed: true, CutoffTime: cutoffClock}
	}

	var reason string
	if window == WindowToday && rule.CutoffHour < 0 {
		// The deadline fell on the previous calendar day.
		reason = fmt.Sprintf(
			"%s booking for today is closed. Meals must be booked before yesterday %s",
			mealType.Title(), cutoffClock)
	} else {
		reason = fmt.Sprintf(
			"%s booking for %s is closed. Meals must be booked before %s",
			mealType.Title(), window, cutoffClock)
	}

	return meal.BookingStatus{Allowed: false, Reason: reason, CutoffTime: cutoffClock}
}
