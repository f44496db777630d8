// Package pipeline runs one full ingestion pass: fetch every source,
// normalize, drop stale items, then score and rank the combined set.
package pipeline

import (
	"context"
	"time"

	"github.com/newswire-labs/chirp/internal/feeds"
	"github.com/newswire-labs/chirp/internal/logging"
	"github.com/newswire-labs/chirp/internal/scoring"
	"github.com/newswire-labs/chirp/internal/selection"
)

// Pipeline owns the per-cycle news flow. Sources are immutable after
// construction; each run builds fresh lists and shares nothing.
type Pipeline struct {
	sources  []feeds.Source
	recency  *feeds.RecencyFilter
	selector *selection.Selector
}

// New creates a pipeline over the given sources.
func New(sources []feeds.Source, recency *feeds.RecencyFilter, selector *selection.Selector) *Pipeline {
	sourcesCopy := make([]feeds.Source, len(sources))
	copy(sourcesCopy, sources)

	return &Pipeline{
		sources:  sourcesCopy,
		recency:  recency,
		selector: selector,
	}
}

// FetchAll fetches every source sequentially and returns the combined
// normalized, recency-filtered items. A failing source contributes
// nothing but never aborts the others; the error is logged and the
// loop moves on.
func (p *Pipeline) FetchAll(ctx context.Context) []feeds.Item {
	var all []feeds.Item

	for _, src := range p.sources {
		entries, err := src.Fetch(ctx)
		if err != nil {
			logging.Error("source fetch failed", "source", src.URL(), "err", err)
			continue
		}

		items := feeds.NormalizeAll(entries, src.URL())
		items = p.recency.Apply(items, time.Now())
		logging.Info("fetched source", "source", src.URL(), "items", len(items))

		all = append(all, items...)
	}

	return all
}

// FilterTrending scores every item and returns the ranked candidates
// at or above the controversy threshold, most trending first.
func (p *Pipeline) FilterTrending(items []feeds.Item) []selection.Scored {
	scored := make([]selection.Scored, 0, len(items))
	for _, item := range items {
		scored = append(scored, selection.Scored{Item: item, Score: scoring.ScoreItem(item)})
	}
	return p.selector.Select(scored)
}
