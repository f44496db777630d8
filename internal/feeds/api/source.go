// Package api fetches news from JSON news APIs and converts their
// articles to raw field records for normalization.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/newswire-labs/chirp/internal/feeds"
)

// fetchTimeout bounds the whole fetch, including body read.
const fetchTimeout = 10 * time.Second

// article is the generic shape shared by NewsAPI-style endpoints. The
// response wraps them in an "articles" array; endpoints without that
// key yield zero entries rather than an error.
type article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Source fetches items from a single JSON news API endpoint.
type Source struct {
	url    string
	client *http.Client
}

// New creates a source for the given API endpoint URL.
func New(url string) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

func (s *Source) URL() string {
	return s.url
}

// Fetch retrieves and decodes the endpoint, returning raw entries in
// response order. Any failure (network, HTTP status, malformed JSON)
// comes back as an error with no entries; callers treat it as
// recoverable.
func (s *Source) Fetch(ctx context.Context) ([]feeds.RawEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var body struct {
		Articles []article `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entries := make([]feeds.RawEntry, 0, len(body.Articles))
	for _, a := range body.Articles {
		entries = append(entries, rawEntry(a))
	}
	return entries, nil
}

// rawEntry maps one API article into the field map the normalizer
// resolves against. publishedAt is ISO-8601, which the normalizer's
// layout list already covers; the raw string passes through untouched.
func rawEntry(a article) feeds.RawEntry {
	entry := feeds.RawEntry{}
	set := func(key, value string) {
		if value != "" {
			entry[key] = value
		}
	}

	set("title", a.Title)
	set("description", a.Description)
	set("link", a.URL)
	set("published", a.PublishedAt)
	return entry
}
