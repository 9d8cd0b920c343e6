// Package cart implements the in-memory meal cart: quantity-merging
// adds, per-kitchen and per-date views, and the selection helpers used
// when moving a kitchen screen's picked meals into the cart.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

// MealInfo is the denormalized meal snapshot carried by a cart item, so
// the cart renders without refetching the kitchen menu.
type MealInfo struct {
	Title          string    `json:"title"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	MealTime       meal.Type `json:"mealTime"`
	MealPreference string    `json:"mealPreference"`
}

// Item is one meal line in the cart. Two adds of the same meal for the
// same date and meal time merge into one line.
type Item struct {
	ID             string    `json:"id"`
	MealID         string    `json:"mealId"`
	KitchenID      string    `json:"kitchenId"`
	MealScheduleID string    `json:"mealScheduleId"`
	KitchenName    string    `json:"kitchenName"`
	Meal           MealInfo  `json:"meal"`
	Date           string    `json:"date"`
	Quantity       int       `json:"quantity"`
	AddedAt        time.Time `json:"addedAt"`
}

// Store holds cart items for one session. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []Item
	now   func() time.Time
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// WithClock replaces the store's time source, used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Add puts an item into the cart. When an item with the same meal, date
// and meal time already exists, its quantity is increased instead of
// appending a duplicate line. The item's ID and AddedAt are assigned
// here; values passed in are ignored.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		existing := &s.items[i]
		if existing.MealID == item.MealID &&
			existing.Date == item.Date &&
			existing.Meal.MealTime == item.Meal.MealTime {
			existing.Quantity += item.Quantity
			return
		}
	}

	item.ID = uuid.NewString()
	item.AddedAt = s.now()
	s.items = append(s.items, item)
}

// Remove deletes the item with the given ID, if present.
func (s *Store) Remove(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = filterItems(s.items, func(it Item) bool { return it.ID != itemID })
}

// UpdateQuantity sets an item's quantity; zero or negative removes it.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.items = filterItems(s.items, func(it Item) bool { return it.ID != itemID })
		return
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ClearKitchenItems removes every item belonging to a kitchen.
func (s *Store) ClearKitchenItems(kitchenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = filterItems(s.items, func(it Item) bool { return it.KitchenID != kitchenID })
}

// Items returns a copy of the cart contents.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the cart total, price times quantity over all items.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, it := range s.items {
		total += it.Meal.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount returns the summed quantity across all items.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// ItemsByKitchen returns the items belonging to a kitchen.
func (s *Store) ItemsByKitchen(kitchenID string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, it := range s.items {
		if it.KitchenID == kitchenID {
			out = append(out, it)
		}
	}
	return out
}

// ItemsByDate returns the items scheduled for a given day string.
func (s *Store) ItemsByDate(date string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, it := range s.items {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out
}

// HasItemsForKitchen reports whether any item belongs to the kitchen.
func (s *Store) HasItemsForKitchen(kitchenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.KitchenID == kitchenID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the quantity for a meal on a date at a meal time,
// or 0 when the cart has no such item.
func (s *Store) ItemQuantity(mealID, date string, mealTime meal.Type) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.MealID == mealID && it.Date == date && it.Meal.MealTime == mealTime {
			return it.Quantity
		}
	}
	return 0
}

func filterItems(items []Item, keep func(Item) bool) []Item {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
