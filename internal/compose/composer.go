// Package compose turns a selected news item into post text, either
// through the qwen CLI or a deterministic fallback built from the
// title and link.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/newswire-labs/chirp/internal/feeds"
	"github.com/newswire-labs/chirp/internal/logging"
)

// platformLimit is the hard X character cap. Generated text is always
// capped here; the fallback respects the configured MaxLength instead.
const platformLimit = 280

// preamblePrefixes are assistant lead-ins the CLI sometimes emits
// before the actual post text.
var preamblePrefixes = []string{"Response:", "Sure,", "Here", "Okay", "Generated"}

// Composer generates post content for news items.
type Composer struct {
	// Binary is the text-generation CLI to invoke. Defaults to "qwen".
	Binary string

	// Timeout bounds one CLI invocation.
	Timeout time.Duration

	// MaxLength caps fallback posts. At most platformLimit.
	MaxLength int
}

// New creates a composer with the given fallback length cap.
func New(maxLength int) *Composer {
	if maxLength <= 0 || maxLength > platformLimit {
		maxLength = platformLimit
	}
	return &Composer{
		Binary:    "qwen",
		Timeout:   30 * time.Second,
		MaxLength: maxLength,
	}
}

// Compose generates post text for an item. It never fails: any
// generation problem degrades to the deterministic fallback.
func (c *Composer) Compose(ctx context.Context, item feeds.Item) string {
	text, err := c.generate(ctx, item)
	if err != nil {
		logging.Warn("post generation failed, using fallback", "err", err)
		return c.Fallback(item)
	}
	return text
}

func (c *Composer) generate(ctx context.Context, item feeds.Item) (string, error) {
	prompt := buildPrompt(item.Title, StripHTML(item.Summary))

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.Binary, "-p", prompt).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Binary, err)
	}

	text := cleanOutput(string(out))
	if text == "" {
		return "", errors.New("no usable content in output")
	}

	text = stripEmojis(text)
	return truncate(text, platformLimit), nil
}

// Fallback builds a deterministic post from the title, appending the
// link when it fits within MaxLength.
func (c *Composer) Fallback(item feeds.Item) string {
	title := strings.TrimSpace(item.Title)
	if item.Link == "" {
		return truncate(title, c.MaxLength)
	}

	post := title + " Read more: " + item.Link
	if runeLen(post) <= c.MaxLength {
		return post
	}

	// Truncate the title, keep the link intact
	available := c.MaxLength - runeLen("... Read more: ") - runeLen(item.Link)
	if available > 10 {
		return string([]rune(title)[:available]) + "... Read more: " + item.Link
	}

	// Link too long for the limit, title only
	return truncate(title, c.MaxLength)
}

func buildPrompt(title, summary string) string {
	return fmt.Sprintf(`Create an engaging, concise X (Twitter) post (max 260 characters) about this news:
Title: %s
Summary: %s

Requirements:
- Use simple, clear English
- Avoid GenZ slang, internet abbreviations, and trendy phrases
- Do not use emojis
- Do not use first-person language (avoid 'I', 'my', 'me')
- Make it attention-grabbing and shareable
- Include relevant hashtags (max 2-3)
- Keep it under 260 characters to allow for potential link
- Make it sound professional and not clickbaity
- Include an opinion or reaction that would encourage engagement`, title, summary)
}

// cleanOutput picks the first substantial line of CLI output, skipping
// assistant preambles.
func cleanOutput(raw string) string {
	raw = strings.TrimSpace(raw)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 20 {
			continue
		}
		if hasPreamble(line) {
			continue
		}
		return line
	}

	return raw
}

func hasPreamble(line string) bool {
	for _, prefix := range preamblePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// truncate shortens a string to max runes, adding "..." if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func runeLen(s string) int {
	return len([]rune(s))
}
