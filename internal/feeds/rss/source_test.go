package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Article 1</title>
      <link>http://example.com/article1</link>
      <guid>http://example.com/guid1</guid>
      <description>First article</description>
      <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Article 2</title>
      <description>Second article, no date</description>
    </item>
  </channel>
</rss>`

func TestSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	src := New(server.URL)
	entries, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first["title"] != "Article 1" {
		t.Errorf("unexpected title: %q", first["title"])
	}
	if first["description"] != "First article" {
		t.Errorf("unexpected description: %q", first["description"])
	}
	if first["link"] != "http://example.com/article1" {
		t.Errorf("unexpected link: %q", first["link"])
	}
	if first["guid"] != "http://example.com/guid1" {
		t.Errorf("unexpected guid: %q", first["guid"])
	}
	// Parsed timestamps are handed over as RFC3339
	if !strings.HasPrefix(first["published"], "2024-01-01T12:00:00") {
		t.Errorf("unexpected published: %q", first["published"])
	}

	second := entries[1]
	if _, ok := second["published"]; ok {
		t.Errorf("entry without pubDate should have no published field, got %q", second["published"])
	}
}

func TestSourceFetchSetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	src := New(server.URL)
	if _, err := src.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("expected browser-like User-Agent, got %q", gotUA)
	}
}

func TestSourceFetch404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	src := New(server.URL)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestSourceFetchInvalidXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not valid xml"))
	}))
	defer server.Close()

	src := New(server.URL)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("expected error for malformed feed")
	}
}

func TestSourceFetchUnreachable(t *testing.T) {
	src := New("http://127.0.0.1:1/feed")
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestSourceURL(t *testing.T) {
	src := New("http://example.com/feed.xml")
	if src.URL() != "http://example.com/feed.xml" {
		t.Errorf("unexpected URL: %s", src.URL())
	}
}
