// Package rss fetches RSS/Atom feeds over HTTP and converts their
// entries to raw field records for normalization.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/newswire-labs/chirp/internal/feeds"
)

// fetchTimeout bounds the whole fetch, including body read.
const fetchTimeout = 10 * time.Second

// userAgent is a browser-like identity. Several news sites return 403
// to anything that looks like a bot.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Source fetches items from a single RSS/Atom feed.
type Source struct {
	url    string
	client *http.Client
	parser *gofeed.Parser
}

// New creates a source for the given feed URL.
func New(url string) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
		parser: gofeed.NewParser(),
	}
}

func (s *Source) URL() string {
	return s.url
}

// Fetch retrieves and parses the feed, returning raw entries in feed
// order. Any failure (network, HTTP status, malformed feed) comes back
// as an error with no entries; callers treat it as recoverable.
func (s *Source) Fetch(ctx context.Context) ([]feeds.RawEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]feeds.RawEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, rawEntry(item))
	}
	return entries, nil
}

// rawEntry flattens a parsed feed item into the field map the
// normalizer resolves against. Absent fields are simply not set.
func rawEntry(item *gofeed.Item) feeds.RawEntry {
	entry := feeds.RawEntry{}
	set := func(key, value string) {
		if value != "" {
			entry[key] = value
		}
	}

	set("title", item.Title)
	set("description", item.Description)
	set("link", item.Link)
	set("guid", item.GUID)
	set("published", timestamp(item.PublishedParsed, item.Published))
	set("updated", timestamp(item.UpdatedParsed, item.Updated))
	return entry
}

// timestamp prefers the parser's parsed time; otherwise it passes the
// raw string through so the normalizer can take its own shot at it.
func timestamp(parsed *time.Time, raw string) string {
	if parsed != nil {
		return parsed.Format(time.RFC3339)
	}
	return raw
}
