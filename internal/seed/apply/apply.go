// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package apply executes a seed script against a live store.

Statements run one by one, in script order, outside any transaction: the
script is written for executors (Cloudflare D1 among them) that accept a flat
statement list and reject explicit transactions, and it is safe to re-run
after a partial failure.
*/
package apply

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/dberr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
)

// Executor runs one SQL statement.
type Executor interface {
	Exec(ctx context.Context, statement string) error
}

// SQLite executes statements through database/sql (modernc driver).
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an open SQLite database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Exec implements [Executor].
func (s *SQLite) Exec(ctx context.Context, statement string) error {
	_, err := s.db.ExecContext(ctx, statement)
	return err
}

// Postgres executes statements through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps a connected pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Exec implements [Executor].
func (p *Postgres) Exec(ctx context.Context, statement string) error {
	_, err := p.pool.Exec(ctx, statement)
	return err
}

// Report summarizes an applied script.
type Report struct {
	Statements int
	Duration   time.Duration
}

// Apply runs every statement of script in order and stops at the first
// failure. The error names the 1-based statement index and phase order is
// preserved, so a failed run can simply be repeated.
func Apply(ctx context.Context, executor Executor, script *sqlgen.Script, logger *slog.Logger) (Report, error) {
	startTime := time.Now()
	statements := script.Statements()

	for i, statement := range statements {
		if err := ctx.Err(); err != nil {
			return Report{Statements: i, Duration: time.Since(startTime)}, fmt.Errorf("apply: interrupted: %w", err)
		}

		if err := executor.Exec(ctx, statement); err != nil {
			logger.Error("seed_statement_failed",
				slog.Int("index", i+1),
				slog.String("statement", truncate(statement, 200)),
				slog.Any("error", err),
			)
			return Report{Statements: i, Duration: time.Since(startTime)}, dberr.Wrap(err, fmt.Sprintf("statement %d", i+1))
		}
	}

	report := Report{Statements: len(statements), Duration: time.Since(startTime)}
	logger.Info("seed_script_applied",
		slog.Int("statements", report.Statements),
		slog.Int64("duration_ms", report.Duration.Milliseconds()),
	)
	return report, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
