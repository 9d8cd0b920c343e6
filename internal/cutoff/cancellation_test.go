package cutoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

func TestEvaluateCancellation_TodayClosedSinceYesterday(t *testing.T) {
	// Today's meals cannot be cancelled after yesterday 5 PM; it is 6 AM.
	cfg := meal.CancellationConfig{Today: -7, Tomorrow: 17}
	now := datetime(2024, 1, 15, 6, 0)
	target := datetime(2024, 1, 15, 0, 0)

	status := EvaluateCancellation(meal.Lunch, now, target, cfg)

	assert.False(t, status.Allowed)
	assert.Equal(t, "5:00 PM", status.CutoffTime)
	assert.Equal(t, "Meal cancellation for today is closed. Meals must be cancelled before yesterday 5:00 PM", status.Reason)
}

func TestEvaluateCancellation_TodayPositiveHour(t *testing.T) {
	cfg := meal.CancellationConfig{Today: 10, Tomorrow: 17}
	target := datetime(2024, 1, 15, 0, 0)

	open := EvaluateCancellation(meal.Dinner, datetime(2024, 1, 15, 9, 0), target, cfg)
	assert.True(t, open.Allowed)
	assert.Equal(t, "10:00 AM", open.CutoffTime)

	closed := EvaluateCancellation(meal.Dinner, datetime(2024, 1, 15, 11, 0), target, cfg)
	assert.False(t, closed.Allowed)
	assert.Equal(t, "Meal cancellation for today is closed. Meals must be cancelled before 10:00 AM", closed.Reason)
}

func TestEvaluateCancellation_TomorrowCutoffIsToday(t *testing.T) {
	// Tomorrow's meals can be cancelled until 5 PM today; it is 6 PM, so
	// the reason names today as the day the deadline fell on.
	cfg := meal.CancellationConfig{Today: -7, Tomorrow: 17}
	now := datetime(2024, 1, 15, 18, 0)
	target := datetime(2024, 1, 16, 0, 0)

	status := EvaluateCancellation(meal.Breakfast, now, target, cfg)

	assert.False(t, status.Allowed)
	assert.Equal(t, "5:00 PM", status.CutoffTime)
	assert.Equal(t, "Meal cancellation for tomorrow is closed. Meals must be cancelled before 5:00 PM today", status.Reason)
}

func TestEvaluateCancellation_TomorrowHourPast23RollsForward(t *testing.T) {
	// An out-of-range hour for the tomorrow window lands past the target
	// day, so the cancellation stays open well into tomorrow.
	cfg := meal.CancellationConfig{Today: -7, Tomorrow: 26}
	now := datetime(2024, 1, 15, 18, 0)
	target := datetime(2024, 1, 16, 0, 0)

	status := EvaluateCancellation(meal.Dinner, now, target, cfg)

	assert.True(t, status.Allowed)
	assert.Equal(t, "2:00 AM", status.CutoffTime)
}

func TestEvaluateCancellation_BeyondAlwaysAllowed(t *testing.T) {
	cfg := meal.CancellationConfig{Today: -7, Tomorrow: 17}
	now := datetime(2024, 1, 15, 23, 59)

	for _, target := range []time.Time{
		datetime(2024, 1, 20, 0, 0),
		datetime(2024, 1, 14, 0, 0), // past
	} {
		status := EvaluateCancellation(meal.Lunch, now, target, cfg)
		assert.True(t, status.Allowed, "target %v", target)
		assert.Empty(t, status.CutoffTime)
	}
}

func TestEvaluateCancellation_UniformAcrossMealTypes(t *testing.T) {
	cfg := meal.CancellationConfig{Today: 10, Tomorrow: 17}
	now := datetime(2024, 1, 15, 11, 0)
	target := datetime(2024, 1, 15, 0, 0)

	breakfast := EvaluateCancellation(meal.Breakfast, now, target, cfg)
	lunch := EvaluateCancellation(meal.Lunch, now, target, cfg)
	dinner := EvaluateCancellation(meal.Dinner, now, target, cfg)

	assert.Equal(t, breakfast, lunch)
	assert.Equal(t, lunch, dinner)
}

func TestEvaluateCancellation_BoundaryInclusive(t *testing.T) {
	cfg := meal.CancellationConfig{Today: 12, Tomorrow: 17}
	target := datetime(2024, 1, 15, 0, 0)

	exactly := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	justAfter := time.Date(2024, 1, 15, 12, 0, 0, int(1*time.Millisecond), time.UTC)

	assert.True(t, EvaluateCancellation(meal.Lunch, exactly, target, cfg).Allowed)
	assert.False(t, EvaluateCancellation(meal.Lunch, justAfter, target, cfg).Allowed)
}
