package feeds

import (
	"strings"
	"time"
)

// Candidate keys per logical field, tried in order. First non-empty
// value wins.
var (
	titleKeys     = []string{"title"}
	summaryKeys   = []string{"summary", "description"}
	linkKeys      = []string{"link", "guid"}
	publishedKeys = []string{"published", "updated"}
)

// dateLayouts are the timestamp formats accepted from feed entries.
// Readers that already parsed a timestamp hand it over as RFC3339.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize maps one raw entry to an Item. ok is false when the entry
// must be dropped, which only happens for an empty or whitespace-only
// title. A timestamp that fails to parse is not a reason to drop the
// entry; the item is kept with Published left zero.
func Normalize(entry RawEntry, sourceURL string) (Item, bool) {
	title := resolve(entry, titleKeys)
	if strings.TrimSpace(title) == "" {
		return Item{}, false
	}

	return Item{
		Title:     title,
		Summary:   resolve(entry, summaryKeys),
		Link:      resolve(entry, linkKeys),
		Published: parseTimestamp(resolve(entry, publishedKeys)),
		SourceURL: sourceURL,
	}, true
}

// NormalizeAll maps a batch of raw entries, silently skipping rejects.
func NormalizeAll(entries []RawEntry, sourceURL string) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if item, ok := Normalize(entry, sourceURL); ok {
			items = append(items, item)
		}
	}
	return items
}

func resolve(entry RawEntry, keys []string) string {
	for _, k := range keys {
		if v := entry[k]; v != "" {
			return v
		}
	}
	return ""
}

// parseTimestamp returns the zero time when no layout matches.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
