// Package meal defines the meal ordering value types shared across the app:
// meal types, booking/cancellation cutoff configuration and the status
// records returned by the cutoff engine.
package meal

import "strings"

// Type identifies which booking rule applies within a day's rule set.
type Type string

const (
	Breakfast Type = "breakfast"
	Lunch     Type = "lunch"
	Dinner    Type = "dinner"
)

// Types lists all meal types in serving order.
var Types = []Type{Breakfast, Lunch, Dinner}

// Valid reports whether t is one of the known meal types.
func (t Type) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// Title returns the meal type with its first letter capitalized, as used
// in user-facing restriction messages ("Lunch booking for today...").
func (t Type) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BookingRule binds a meal type to a cutoff hour for one day window.
// CutoffHour is a 24-hour clock hour; a negative value means hour 24+h
// of the previous calendar day (e.g. -7 is 5 PM the day before).
type BookingRule struct {
	MealType   Type `yaml:"meal_type" json:"mealType" validate:"required,oneof=breakfast lunch dinner"`
	CutoffHour int  `yaml:"cutoff_hour" json:"cutoffHour" validate:"gte=-23,lte=23"`
}

// BookingConfig holds the per-meal-type booking cutoff rules for the
// today and tomorrow windows. Dates beyond tomorrow are not governed by
// configuration at all.
type BookingConfig struct {
	Today    []BookingRule `yaml:"today" json:"today" validate:"dive"`
	Tomorrow []BookingRule `yaml:"tomorrow" json:"tomorrow" validate:"dive"`
}

// RuleFor returns the first rule for the meal type in the given list,
// or false when no rule is configured (booking is then allowed).
func RuleFor(rules []BookingRule, mealType Type) (BookingRule, bool) {
	for _, r := range rules {
		if r.MealType == mealType {
			return r, true
		}
	}
	return BookingRule{}, false
}

// CancellationConfig holds a single cutoff hour per day window; unlike
// booking, cancellation does not distinguish meal types.
type CancellationConfig struct {
	Today    int `yaml:"today" json:"today" validate:"gte=-23,lte=23"`
	Tomorrow int `yaml:"tomorrow" json:"tomorrow" validate:"gte=-23,lte=23"`
}

// BookingStatus is the result of a cutoff evaluation.
// CutoffTime is a human-readable clock string ("5:00 PM"), populated
// whenever a concrete rule was evaluated; Reason only on disallow.
type BookingStatus struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	CutoffTime string `json:"cutoffTime,omitempty"`
}

// RestrictionStatus is the UI-facing projection of BookingStatus.
type RestrictionStatus struct {
	IsAllowed  bool   `json:"isAllowed"`
	Reason     string `json:"reason,omitempty"`
	CutoffTime string `json:"cutoffTime,omitempty"`
}

// Restriction converts a BookingStatus to its UI-facing shape.
func (s BookingStatus) Restriction() RestrictionStatus {
	return RestrictionStatus{
		IsAllowed:  s.Allowed,
		Reason:     s.Reason,
		CutoffTime: s.CutoffTime,
	}
}

// DefaultBookingConfig mirrors kitchen operational hours (8 AM - 5 PM):
// today's breakfast closes yesterday 5 PM, lunch at 9 AM, dinner at noon;
// anything for tomorrow can be booked until 5 PM today.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		Today: []BookingRule{
			{MealType: Breakfast, CutoffHour: -7},
			{MealType: Lunch, CutoffHour: 9},
			{MealType: Dinner, CutoffHour: 12},
		},
		Tomorrow: []BookingRule{
			{MealType: Breakfast, CutoffHour: 17},
			{MealType: Lunch, CutoffHour: 17},
			{MealType: Dinner, CutoffHour: 17},
		},
	}
}

// DefaultCancellationConfig: today's meals cannot be cancelled after
// yesterday 5 PM, tomorrow's until 5 PM today.
func DefaultCancellationConfig() CancellationConfig {
	return CancellationConfig{Today: -7, Tomorrow: 17}
}
