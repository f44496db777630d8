package compose

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newswire-labs/chirp/internal/feeds"
)

func TestFallbackWithLink(t *testing.T) {
	c := New(280)
	item := feeds.Item{
		Title: "Short headline",
		Link:  "http://example.com/story",
	}

	got := c.Fallback(item)
	want := "Short headline Read more: http://example.com/story"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFallbackWithoutLink(t *testing.T) {
	c := New(280)
	got := c.Fallback(feeds.Item{Title: "  Just a headline  "})
	if got != "Just a headline" {
		t.Errorf("got %q", got)
	}
}

func TestFallbackTruncatesTitleKeepsLink(t *testing.T) {
	c := New(100)
	link := "http://example.com/a-story"
	item := feeds.Item{
		Title: strings.Repeat("Very long headline ", 10),
		Link:  link,
	}

	got := c.Fallback(item)
	if len([]rune(got)) > 100 {
		t.Errorf("fallback exceeds max length: %d chars", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "... Read more: "+link) {
		t.Errorf("expected truncated title with intact link, got %q", got)
	}
}

func TestFallbackLinkTooLongForLimit(t *testing.T) {
	c := New(40)
	item := feeds.Item{
		Title: "A headline that is fairly long itself",
		Link:  "http://example.com/" + strings.Repeat("x", 60),
	}

	got := c.Fallback(item)
	if len([]rune(got)) > 40 {
		t.Errorf("fallback exceeds max length: %d chars", len([]rune(got)))
	}
	if strings.Contains(got, "Read more") {
		t.Errorf("link should be dropped when it cannot fit, got %q", got)
	}
}

func TestFallbackNeverExceedsMaxLength(t *testing.T) {
	for _, max := range []int{20, 50, 140, 280} {
		c := New(max)
		item := feeds.Item{
			Title: strings.Repeat("headline ", 50),
			Link:  "http://example.com/story/with/a/reasonably/long/path",
		}
		if got := c.Fallback(item); len([]rune(got)) > max {
			t.Errorf("max %d: fallback is %d chars", max, len([]rune(got)))
		}
	}
}

func TestCleanOutputSkipsPreambles(t *testing.T) {
	raw := `Sure, here's a post for you:
Breaking developments reshape the region's politics today. #News
`
	got := cleanOutput(raw)
	if !strings.HasPrefix(got, "Breaking developments") {
		t.Errorf("expected preamble skipped, got %q", got)
	}
}

func TestCleanOutputSkipsShortLines(t *testing.T) {
	raw := "Okay!\n\nshort\nThis is the substantial line of generated content."
	got := cleanOutput(raw)
	if got != "This is the substantial line of generated content." {
		t.Errorf("got %q", got)
	}
}

func TestStripEmojis(t *testing.T) {
	got := stripEmojis("Breaking news \U0001F525\U0001F525 today")
	if got != "Breaking news today" {
		t.Errorf("got %q", got)
	}
}

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"line<br/>break", "linebreak"},
		{"  spaced   out  ", "spaced out"},
	}

	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hi", 2, "hi"},
		{"hi", 1, "h"},
		{"", 5, ""},
	}

	for _, tc := range tests {
		if got := truncate(tc.input, tc.max); got != tc.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.expected)
		}
	}
}

func TestComposeFallsBackWhenBinaryMissing(t *testing.T) {
	c := New(280)
	c.Binary = "/nonexistent/qwen-binary"

	item := feeds.Item{Title: "Headline", Link: "http://example.com"}
	got := c.Compose(context.Background(), item)
	if got != c.Fallback(item) {
		t.Errorf("expected fallback content, got %q", got)
	}
}

func TestComposeUsesGeneratorOutput(t *testing.T) {
	// Stand-in generator that ignores its prompt and prints a post
	dir := t.TempDir()
	script := filepath.Join(dir, "fakegen")
	body := "#!/bin/sh\necho 'Fresh analysis of the day in politics, concise and shareable. #Test'\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}

	c := New(280)
	c.Binary = script

	got := c.Compose(context.Background(), feeds.Item{Title: "Headline"})
	if got != "Fresh analysis of the day in politics, concise and shareable. #Test" {
		t.Errorf("got %q", got)
	}
}
