package cutoff

import (
	"fmt"
	"time"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

// EvaluateCancellation decides whether a meal for targetDate may still be
// cancelled as of now. Cancellation uses a single cutoff hour per window,
// uniform across meal types; the mealType parameter is kept for symmetry
// with EvaluateBooking and for callers that log per-meal decisions.
func EvaluateCancellation(_ meal.Type, now, targetDate time.Time, cfg meal.CancellationConfig) meal.BookingStatus {
	window := Classify(now, targetDate)
	if window == WindowBeyond {
		return meal.BookingStatus{Allowed: true}
	}

	cutoffHour := cfg.Today
	if window == WindowTomorrow {
		cutoffHour = cfg.Tomorrow
	}

	cutoff := resolveCancellationCutoff(now, window, cutoffHour)
	cutoffClock := formatClock(cutoff)

	if !now.After(cutoff) {
		return meal.BookingStatus{Allowed: true, CutoffTime: cutoffClock}
	}

	var reason string
	if window == WindowToday {
		if cutoffHour < 0 {
			reason = fmt.Sprintf(
				"Meal cancellation for today is closed. Meals must be cancelled before yesterday %s",
				cutoffClock)
		} else {
			reason = fmt.Sprintf(
				"Meal cancellation for today is closed. Meals must be cancelled before %s",
				cutoffClock)
		}
	} else {
		// The cutoff for tomorrow's meals may fall on either day.
		cutoffDay := "tomorrow"
		if dateOnly(cutoff).Equal(dateOnly(now)) {
			cutoffDay = "today"
		}
		reason = fmt.Sprintf(
			"Meal cancellation for tomorrow is closed. Meals must be cancelled before %s %s",
			cutoffClock, cutoffDay)
	}

	return meal.BookingStatus{Allowed: false, Reason: reason, CutoffTime: cutoffClock}
}
