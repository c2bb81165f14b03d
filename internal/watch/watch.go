// Package watch re-runs a fixed search and prints each batch, for headless
// scheduled use.
package watch

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
	"github.com/ryosukesatoh/newsdeck/internal/render"
)

// Runner executes the fetch -> render cycle once per invocation. Scheduling
// is the caller's concern.
type Runner struct {
	query   newsapi.Query
	gateway newsapi.Searcher
	out     io.Writer
	logger  zerolog.Logger
}

func New(query newsapi.Query, gateway newsapi.Searcher, out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{
		query:   query,
		gateway: gateway,
		out:     out,
		logger:  logger,
	}
}

// Run performs one search and writes the rendered batch. A failed search
// returns an error and writes nothing; the next tick starts fresh.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info().Str("topic", r.query.Topic).Msg("running search")

	articles, err := r.gateway.Search(ctx, r.query)
	if err != nil {
		return fmt.Errorf("watch: search failed: %w", err)
	}

	r.logger.Info().Int("count", len(articles)).Msg("search succeeded")
	render.Batch(r.out, r.query.Topic, articles)
	return nil
}
