package feeds

import "time"

// RecencyFilter drops items older than a configured window.
//
// Age is computed against the clock at filter time, not fetch time, and
// the window boundary is inclusive: an item exactly as old as the window
// is kept. Items without a timestamp are never dropped for age.
type RecencyFilter struct {
	Window time.Duration
}

// NewRecencyFilter creates a filter with the given window in minutes.
func NewRecencyFilter(windowMinutes int) *RecencyFilter {
	if windowMinutes < 0 {
		windowMinutes = 0
	}
	return &RecencyFilter{Window: time.Duration(windowMinutes) * time.Minute}
}

// Keep reports whether the item survives the filter at the given time.
func (f *RecencyFilter) Keep(item Item, now time.Time) bool {
	if !item.HasPublished() {
		return true
	}
	return now.Sub(item.Published) <= f.Window
}

// Apply returns only the items that survive the filter.
func (f *RecencyFilter) Apply(items []Item, now time.Time) []Item {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Keep(item, now) {
			kept = append(kept, item)
		}
	}
	return kept
}
