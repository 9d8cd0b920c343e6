package cart

// SelectedMeal is one meal picked on the kitchen screen with its count.
type SelectedMeal struct {
	MealID string
	Meal   MealInfo
	Count  int
}

// Selection maps a day string to the meals picked for that day, the
// shape the kitchen screen accumulates before the cart handoff.
type Selection map[string][]SelectedMeal

// MealCount returns the summed count across all days.
func (s Selection) MealCount() int {
	total := 0
	for _, meals := range s {
		for _, m := range meals {
			total += m.Count
		}
	}
	return total
}

// DayCount returns the number of days with at least one picked meal.
func (s Selection) DayCount() int {
	days := 0
	for _, meals := range s {
		for _, m := range meals {
			if m.Count > 0 {
				days++
				break
			}
		}
	}
	return days
}

// AddSelection moves every picked meal into the cart and returns how
// many meals were added. Entries with a zero count are skipped. Callers
// gate this on the cutoff manager's restriction status; the cart itself
// does not re-check booking windows.
func (s *Store) AddSelection(kitchenID, kitchenName, mealScheduleID string, sel Selection) int {
	added := 0
	for date, meals := range sel {
		for _, m := range meals {
			if m.Count <= 0 {
				continue
			}
			s.Add(Item{
				MealID:         m.MealID,
				KitchenID:      kitchenID,
				MealScheduleID: mealScheduleID,
				KitchenName:    kitchenName,
				Meal:           m.Meal,
				Date:           date,
				Quantity:       m.Count,
			})
			added += m.Count
		}
	}
	return added
}
