// Package selection picks the trending candidates out of scored items.
package selection

import (
	"sort"

	"github.com/newswire-labs/chirp/internal/feeds"
)

// Scored pairs an item with its controversy score. Items stay immutable
// through the pipeline; the score rides alongside instead of being
// written back.
type Scored struct {
	feeds.Item
	Score float64
}

// Selector filters scored items by threshold and ranks them.
type Selector struct {
	// Threshold is the minimum score to qualify, inclusive. Valid range
	// [0,1]; validated at config load, assumed valid here.
	Threshold float64
}

// New creates a selector with the given controversy threshold.
func New(threshold float64) *Selector {
	return &Selector{Threshold: threshold}
}

// Select keeps items scoring at or above the threshold and returns them
// ordered by score, then recency. The zero time is the defined minimum
// for missing timestamps, so no-date items rank last among equal
// scores. Callers decide how many of the returned candidates to act on.
func (s *Selector) Select(items []Scored) []Scored {
	kept := make([]Scored, 0, len(items))
	for _, item := range items {
		if item.Score >= s.Threshold {
			kept = append(kept, item)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Published.After(kept[j].Published)
	})

	return kept
}
