// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package generator turns a seed into the complete, idempotent seed script.

# Pipeline

	seed ─▶ catalog.Build ─▶ ranking.Synthesize ─▶ ranking.Materialize ─▶ emit ─▶ sqlgen.Script

Every stage shares one [catalog.Context], so the script is a pure function of
(seed, preset, UTC day of the reference clock, asset inputs). The only line
that differs between two runs on the same day is the "generated at" header
comment.
*/
package generator

import (
	"log/slog"
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/validate"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
)

// Options configures one generation run.
type Options struct {
	Seed   string
	Preset catalog.Preset

	// Now is the reference clock. Only its UTC day affects the dataset.
	Now time.Time

	// GeneratedAt is the wall time printed in the header. Defaults to Now.
	GeneratedAt time.Time

	// Assets resolves image URLs. Nil means placeholders only.
	Assets *manifest.Resolver

	Logger *slog.Logger
}

// Validate checks the options before any work is done.
func (o Options) Validate() error {
	if err := o.Preset.Validate(); err != nil {
		return err
	}
	return (&validate.Validator{}).
		Custom("now", o.Now.IsZero(), "Reference time is required").
		Err()
}

// Result is a finished run: the intermediate data plus the rendered script.
type Result struct {
	Seed   string
	Preset string
	AsOf   time.Time

	Graph    *catalog.Graph
	Events   ranking.Events
	Rankings []ranking.Row
	Script   *sqlgen.Script
}

// Counts reports the number of generated rows per table.
func (r *Result) Counts() map[string]int {
	counts := r.Graph.Counts()
	counts[schema.PlayEvents.Table] = len(r.Events.Plays)
	counts[schema.CoinSpendEvents.Table] = len(r.Events.Coins)
	counts[schema.Rankings.Table] = len(r.Rankings)
	return counts
}

// Generate runs the whole pipeline in memory. It performs no I/O.
func Generate(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = opts.Now
	}

	// 1. Catalog graph
	ctx := catalog.NewContext(opts.Seed, opts.Now)
	graph := catalog.Build(ctx, opts.Preset, opts.Assets)

	// 2. Activity and rankings
	asOf := ranking.AsOf(opts.Now)
	events := ranking.Synthesize(ctx, graph, opts.Preset)
	rows := ranking.Materialize(ctx.Rand, graph, events, asOf)

	for rankingType, entries := range ranking.ByType(rows) {
		if len(entries) > 0 && entries[0].Fallback {
			logger.Debug("ranking_backfilled",
				slog.String("type", string(rankingType)),
				slog.Int("rows", len(entries)),
			)
		}
	}

	// 3. Script
	result := &Result{
		Seed:     opts.Seed,
		Preset:   opts.Preset.Name,
		AsOf:     asOf,
		Graph:    graph,
		Events:   events,
		Rankings: rows,
	}
	result.Script = emit(result, ctx.Anchor(), generatedAt)

	logger.Info("dataset_generated",
		slog.String("seed", opts.Seed),
		slog.String("preset", opts.Preset.Name),
		slog.String("as_of", asOf.Format(sqlgen.DateLayout)),
		slog.Int("videos", len(graph.Videos)),
		slog.Int("statements", result.Script.Len()),
	)

	return result, nil
}
