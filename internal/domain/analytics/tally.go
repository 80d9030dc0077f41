package analytics

import (
	"sort"
	"strconv"
)

// Tally accumulates integer totals per key.
type Tally map[string]int

// Add increments the total for key by amount, starting from zero when the key is new.
func (t Tally) Add(key string, amount int) {
	current, ok := t[key]
	if !ok {
		current = 0
	}
	t[key] = current + amount
}

// Max returns the key with the highest total. Ties go to the lexicographically
// smallest key. ok is false when the tally is empty.
func (t Tally) Max() (key string, ok bool) {
	best := 0
	for k, v := range t {
		if !ok || v > best || (v == best && k < key) {
			key, best, ok = k, v, true
		}
	}
	return key, ok
}

// Top returns up to n entries ordered by descending value, ties by ascending key.
func (t Tally) Top(n int) []RankedItem {
	items := make([]RankedItem, 0, len(t))
	for k, v := range t {
		items = append(items, RankedItem{Name: k, Value: v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// ParseAmount parses a text-sourced quantity or price.
// Unparseable input is ordinary data from the order feed and yields 0.
func ParseAmount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
