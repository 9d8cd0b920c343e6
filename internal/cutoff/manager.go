package cutoff

import (
	"fmt"
	"sync"
	"time"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

// FallbackRestrictionMessage is shown when a booking is disallowed but
// the evaluation produced no specific reason.
const FallbackRestrictionMessage = "Booking not allowed for this meal"

// dayLayouts are the formats accepted for UI-supplied day strings.
var dayLayouts = []string{"2006-01-02", time.RFC3339}

// Manager holds the live booking and cancellation cutoff configuration
// and answers the restriction queries consumed by screens and the cart.
// Both configs are immutable value objects swapped as a whole; a mutex
// guards the swap so concurrent readers see either config in full.
// Instantiate one per session and pass it to consumers explicitly.
type Manager struct {
	mu           sync.RWMutex
	booking      meal.BookingConfig
	cancellation meal.CancellationConfig
	now          func() time.Time
}

// NewManager creates a manager with the given initial configuration,
// reading the system clock. Use meal.DefaultBookingConfig and
// meal.DefaultCancellationConfig unless a remote config is available.
func NewManager(booking meal.BookingConfig, cancellation meal.CancellationConfig) *Manager {
	return &Manager{
		booking:      booking,
		cancellation: cancellation,
		now:          time.Now,
	}
}

// WithClock replaces the manager's time source and returns the manager.
// Tests use this to pin "now".
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// SetConfig replaces the booking configuration, e.g. after a remote
// config fetch.
func (m *Manager) SetConfig(cfg meal.BookingConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.booking = cfg
}

// Config returns the current booking configuration.
func (m *Manager) Config() meal.BookingConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.booking
}

// SetCancellationConfig replaces the cancellation configuration.
func (m *Manager) SetCancellationConfig(cfg meal.CancellationConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellation = cfg
}

// CancellationConfig returns the current cancellation configuration.
func (m *Manager) CancellationConfig() meal.CancellationConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cancellation
}

// BookingStatus evaluates the booking cutoff for a meal on targetDate.
func (m *Manager) BookingStatus(mealType meal.Type, targetDate time.Time) meal.BookingStatus {
	return EvaluateBooking(mealType, m.now(), targetDate, m.Config())
}

// IsBookingAllowed is the boolean projection of BookingStatus.
func (m *Manager) IsBookingAllowed(mealType meal.Type, targetDate time.Time) bool {
	return m.BookingStatus(mealType, targetDate).Allowed
}

// CancellationStatus evaluates the cancellation cutoff for a meal on
// targetDate.
func (m *Manager) CancellationStatus(mealType meal.Type, targetDate time.Time) meal.BookingStatus {
	return EvaluateCancellation(mealType, m.now(), targetDate, m.CancellationConfig())
}

// IsCancellationAllowed is the boolean projection of CancellationStatus.
func (m *Manager) IsCancellationAllowed(mealType meal.Type, targetDate time.Time) bool {
	return m.CancellationStatus(mealType, targetDate).Allowed
}

// RestrictionStatus answers the kitchen screen's query: given the active
// day string and the selected tab, is booking still open? An empty day
// means no day is selected yet and booking is allowed; an unparseable
// day also fails open, matching the engine's posture on incomplete
// input. Only lunch and dinner are reachable through the tab entry
// point; any other tab value evaluates as dinner.
func (m *Manager) RestrictionStatus(activeDay string, tab meal.Type) meal.RestrictionStatus {
	if activeDay == "" {
		return meal.RestrictionStatus{IsAllowed: true}
	}

	targetDate, err := ParseDay(activeDay)
	if err != nil {
		return meal.RestrictionStatus{IsAllowed: true}
	}

	mealType := meal.Dinner
	if tab == meal.Lunch {
		mealType = meal.Lunch
	}

	return m.BookingStatus(mealType, targetDate).Restriction()
}

// RestrictionMessage returns the banner text for a restriction, or ""
// when booking is allowed.
func (m *Manager) RestrictionMessage(status meal.RestrictionStatus) string {
	if status.IsAllowed {
		return ""
	}
	if status.Reason != "" {
		return status.Reason
	}
	return FallbackRestrictionMessage
}

// CancellationRestrictionStatus is the UI-facing cancellation query; the
// caller supplies a structured date, no string parsing involved.
func (m *Manager) CancellationRestrictionStatus(targetDate time.Time, mealType meal.Type) meal.RestrictionStatus {
	return m.CancellationStatus(mealType, targetDate).Restriction()
}

// IsTomorrow reports whether the day string falls on tomorrow's calendar
// day. Empty or unparseable input is never tomorrow.
func (m *Manager) IsTomorrow(day string) bool {
	if day == "" {
		return false
	}
	t, err := ParseDay(day)
	if err != nil {
		return false
	}
	return Classify(m.now(), t) == WindowTomorrow
}

// ParseDay parses a UI-supplied day string ("2006-01-02" or RFC 3339)
// in the local timezone. String parsing lives here at the edge; the
// evaluators themselves only accept structured dates.
func ParseDay(s string) (time.Time, error) {
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized day format %q", s)
}
