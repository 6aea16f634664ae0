// Copyright (c) 2026 Oshidora. All rights reserved.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nakatsuka-k/oshidora-sub000/internal/api"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/constants"
	redisstore "github.com/nakatsuka-k/oshidora-sub000/internal/platform/redis"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/preview"
)

func (app *cli) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview generated datasets over HTTP",
		Args:  cobra.NoArgs,
		RunE:  app.serve,
	}

	flags := cmd.Flags()
	flags.StringVar(&app.cfg.ServerPort, "port", app.cfg.ServerPort, "listen port")
	flags.StringVar(&app.cfg.RedisURL, "redis", app.cfg.RedisURL, "optional Redis URL checked by /ready")
	return cmd
}

// serve handles the serve subcommand and blocks until a signal arrives.
func (app *cli) serve(cmd *cobra.Command, _ []string) error {
	preset, err := app.preset()
	if err != nil {
		return err
	}

	// A fixed --now pins every preview to one as-of date.
	clock := app.clock
	if app.now != "" {
		pinned, err := app.referenceTime()
		if err != nil {
			return err
		}
		clock = func() time.Time { return pinned }
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Readiness checks
	var checks []api.Check
	if app.cfg.RedisURL != "" {
		client, err := redisstore.NewClient(ctx, app.cfg.RedisURL, app.logger)
		if err != nil {
			return err
		}
		defer client.Close()
		checks = append(checks, api.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisstore.Ping(ctx, client) },
		})
	}
	liveness, readiness := api.NewHealthHandlers(checks, app.logger)

	// 2. Preview wiring
	service := preview.NewService(preset, app.assets(), clock, app.logger)
	server := api.NewServer(ctx, app.cfg, app.logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Preview:   preview.NewHandler(service),
	})

	// 3. Run until a signal or a listener failure
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		app.logger.Info("shutdown_signal_received")
	case err := <-serverErr:
		return err
	}

	app.logger.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return err
	}

	app.logger.Info("server_stopped")
	return nil
}
