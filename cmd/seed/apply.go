// Copyright (c) 2026 Oshidora. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/config"
	pgstore "github.com/nakatsuka-k/oshidora-sub000/internal/platform/postgres"
	redisstore "github.com/nakatsuka-k/oshidora-sub000/internal/platform/redis"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/sqlite"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/apply"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
)

func (app *cli) applyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Generate the script and run it against a database",
		Long: `Runs the seed script statement by statement against an existing schema.
Running it again refreshes the seeded rows in place. When a Redis URL is set,
the ranking snapshots are also published as sorted sets.`,
		Args: cobra.NoArgs,
		RunE: app.apply,
	}

	flags := cmd.Flags()
	flags.StringVar(&app.cfg.DatabaseDriver, "driver", app.cfg.DatabaseDriver, "target database (sqlite|postgres)")
	flags.StringVar(&app.cfg.DatabaseURL, "dsn", app.cfg.DatabaseURL, "SQLite path or PostgreSQL URL")
	flags.StringVar(&app.cfg.RedisURL, "redis", app.cfg.RedisURL, "optional Redis URL for ranking snapshots")
	return cmd
}

// apply handles the apply subcommand.
func (app *cli) apply(cmd *cobra.Command, _ []string) error {
	if err := app.cfg.ValidateApply(); err != nil {
		return err
	}

	// 1. Generate before touching any store
	result, err := app.generate()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Open the target
	executor, closeTarget, err := app.openTarget(ctx)
	if err != nil {
		return err
	}
	defer closeTarget()

	// 3. Run the script
	report, err := apply.Apply(ctx, executor, result.Script, app.logger)
	if err != nil {
		return err
	}

	// 4. Mirror rankings
	if app.cfg.RedisURL != "" {
		if err := app.publish(ctx, result.Rankings); err != nil {
			return err
		}
	}

	fmt.Fprintf(app.stdout, "applied %d statements for seed %q (%s)\n",
		report.Statements, result.Seed, result.AsOf.Format("2006-01-02"))
	return nil
}

// openTarget connects to the configured database.
func (app *cli) openTarget(ctx context.Context) (apply.Executor, func(), error) {
	switch app.cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, app.cfg.DatabaseURL, app.logger)
		if err != nil {
			return nil, nil, err
		}
		return apply.NewPostgres(pool), pool.Close, nil

	default:
		db, err := sqlite.Open(ctx, app.cfg.DatabaseURL, app.logger)
		if err != nil {
			return nil, nil, err
		}
		return apply.NewSQLite(db), func() {
			if cerr := db.Close(); cerr != nil {
				app.logger.Error("sqlite_close_failed", slog.Any("error", cerr))
			}
		}, nil
	}
}

// publish writes the ranking snapshots to Redis.
func (app *cli) publish(ctx context.Context, rows []ranking.Row) error {
	client, err := redisstore.NewClient(ctx, app.cfg.RedisURL, app.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			app.logger.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	return ranking.NewRedisPublisher(client, app.logger).Publish(ctx, rows)
}
