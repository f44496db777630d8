// Package bot wires the pipeline, composer, and publisher into posting
// cycles.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newswire-labs/chirp/internal/compose"
	"github.com/newswire-labs/chirp/internal/config"
	"github.com/newswire-labs/chirp/internal/feeds"
	"github.com/newswire-labs/chirp/internal/feeds/api"
	"github.com/newswire-labs/chirp/internal/feeds/rss"
	"github.com/newswire-labs/chirp/internal/logging"
	"github.com/newswire-labs/chirp/internal/pipeline"
	"github.com/newswire-labs/chirp/internal/publish"
	"github.com/newswire-labs/chirp/internal/selection"
)

// Publisher is the outbound side of a cycle. *publish.Client satisfies
// it; tests inject fakes.
type Publisher interface {
	Post(ctx context.Context, content string) (*publish.Result, error)
}

// Bot runs posting cycles over the configured news sources.
type Bot struct {
	cfg       *config.Config
	pipeline  *pipeline.Pipeline
	composer  *compose.Composer
	publisher Publisher
	now       func() time.Time // swappable for tests
}

// New builds a bot from validated configuration.
func New(cfg *config.Config, publisher Publisher) *Bot {
	sources := make([]feeds.Source, 0, len(cfg.NewsSources))
	for _, url := range cfg.NewsSources {
		sources = append(sources, newSource(url))
	}

	p := pipeline.New(
		sources,
		feeds.NewRecencyFilter(cfg.Content.MinNewsAgeMinutes),
		selection.New(cfg.Content.ControversyThreshold),
	)

	return &Bot{
		cfg:       cfg,
		pipeline:  p,
		composer:  compose.New(cfg.Content.MaxPostLength),
		publisher: publisher,
		now:       time.Now,
	}
}

// newSource picks a reader for a configured URL: anything mentioning
// rss is a syndication feed, everything else is assumed to be a JSON
// news API endpoint.
func newSource(url string) feeds.Source {
	if strings.Contains(url, "rss") {
		return rss.New(url)
	}
	return api.New(url)
}

// RunCycle executes one fetch, select, compose, publish pass. Outside
// active hours or with nothing trending it logs and returns nil; only
// a failed publish surfaces as an error.
func (b *Bot) RunCycle(ctx context.Context) error {
	run := uuid.NewString()[:8]

	hour := b.now().Hour()
	active := b.cfg.Schedule.ActiveHours
	if hour < active.Start || hour > active.End {
		logging.Info("outside active hours, skipping", "run", run, "hour", hour, "window", fmt.Sprintf("%d-%d", active.Start, active.End))
		return nil
	}

	items := b.pipeline.FetchAll(ctx)
	logging.Info("fetched news items", "run", run, "count", len(items))

	trending := b.pipeline.FilterTrending(items)
	logging.Info("trending candidates", "run", run, "count", len(trending))
	if len(trending) == 0 {
		return nil
	}

	// One post per cycle: only the top candidate is acted on.
	pick := trending[0]
	content := b.composer.Compose(ctx, pick.Item)

	if content == "" || len([]rune(content)) > b.cfg.Content.MaxPostLength {
		logging.Warn("generated content too long or empty, skipping post", "run", run, "length", len([]rune(content)))
		return nil
	}

	result, err := b.publisher.Post(ctx, content)
	if err != nil {
		return fmt.Errorf("post to X: %w", err)
	}

	logging.Info("successfully posted", "run", run, "tweet_id", result.TweetID, "score", pick.Score, "title", pick.Title)
	return nil
}

// Preview runs the pipeline and composes the top post without
// publishing. Used by the dry-run command.
func (b *Bot) Preview(ctx context.Context) ([]selection.Scored, string) {
	items := b.pipeline.FetchAll(ctx)
	trending := b.pipeline.FilterTrending(items)
	if len(trending) == 0 {
		return nil, ""
	}
	return trending, b.composer.Compose(ctx, trending[0].Item)
}
