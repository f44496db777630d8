package compose

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts plain text from a feed summary. RSS descriptions
// routinely carry markup that would leak into the prompt. On parse
// failure the input passes through unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return collapseWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// emojiRanges covers the common emoji and pictograph blocks.
var emojiRanges = []struct {
	lo, hi rune
}{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x2600, 0x27BF},   // misc symbols & dingbats
	{0x2B00, 0x2BFF},   // arrows & misc
	{0xFE00, 0xFE0F},   // variation selectors
	{0x200D, 0x200D},   // zero-width joiner
}

// stripEmojis removes emoji characters from generated text. The prompt
// forbids them, but the model does not always listen.
func stripEmojis(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(collapseSpaces(b.String()))
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}

// collapseSpaces squeezes runs of spaces left behind by removed runes,
// without touching other whitespace.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else if !unicode.IsSpace(r) {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
