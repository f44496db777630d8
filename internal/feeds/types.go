package feeds

import (
	"context"
	"time"
)

// Item is a single normalized news item.
// Immutable once built: the pipeline only copies it, never writes back.
type Item struct {
	Title     string    // never empty after normalization
	Summary   string    // may be empty
	Link      string    // may be empty
	Published time.Time // zero when the feed gave no usable timestamp
	SourceURL string    // the feed URL this item came from
}

// HasPublished reports whether the item carries a usable timestamp.
func (it Item) HasPublished() bool {
	return !it.Published.IsZero()
}

// RawEntry is one loosely-typed feed entry: a mapping from field name to
// value. Feeds disagree about which fields they populate, so resolution
// into an Item happens in Normalize via ordered candidate keys.
type RawEntry map[string]string

// Source is the interface all feed readers implement.
type Source interface {
	// URL returns the feed URL, used as the source ID on items.
	URL() string

	// Fetch retrieves raw entries in feed order.
	Fetch(ctx context.Context) ([]RawEntry, error)
}
