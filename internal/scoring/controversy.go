// Package scoring estimates how controversial a news item is from
// keyword presence alone.
package scoring

import (
	"strings"

	"github.com/newswire-labs/chirp/internal/feeds"
)

// controversialKeywords spans conflict, politics, and social-unrest
// vocabulary. Each match adds keywordWeight.
var controversialKeywords = []string{
	"war", "conflict", "protest", "election", "scandal", "corruption",
	"violence", "controversy", "debate", "crisis", "crackdown", "ban",
	"protesters", "unrest", "tension", "accusation", "dispute", "disagreement",
	"terrorism", "shootings", "riots", "militants", "dictator", "authoritarian",
	"censorship", "human rights", "freedom", "opposition", "repression",
}

// highImpactKeywords overlap the main set; each match adds
// highImpactWeight on top.
var highImpactKeywords = []string{
	"war", "terrorism", "crisis", "scandal", "corruption", "shootings", "riots",
}

const (
	keywordWeight    = 0.1
	highImpactWeight = 0.2
)

// Score returns a controversy estimate in [0,1] for a title/summary
// pair. Pure and deterministic: the same inputs always produce the same
// score.
//
// Matching is plain substring containment with no word boundaries, so
// "warning" matches "war". The thresholds downstream were tuned against
// exactly this behavior; do not tighten the matching without retuning.
func Score(title, summary string) float64 {
	text := strings.ToLower(title + " " + summary)

	score := 0.0
	for _, kw := range controversialKeywords {
		if strings.Contains(text, kw) {
			score += keywordWeight
		}
	}
	for _, kw := range highImpactKeywords {
		if strings.Contains(text, kw) {
			score += highImpactWeight
		}
	}

	return clamp(score)
}

// ScoreItem scores a normalized item.
func ScoreItem(item feeds.Item) float64 {
	return Score(item.Title, item.Summary)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
