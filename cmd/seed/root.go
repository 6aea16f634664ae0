// Copyright (c) 2026 Oshidora. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/config"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/constants"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/generator"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/uuidv7"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfg    *config.Config
	now    string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	// clock is the wall clock, replaced in tests.
	clock func() time.Time
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	app := &cli{cfg: cfg, stdout: stdout, stderr: stderr, clock: time.Now}
	root := app.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", describe(err))
		return 1
	}
	return 0
}

// describe renders field details of validation errors on one line.
func describe(err error) string {
	if ae := apperr.As(err); ae != nil {
		return ae.Describe()
	}
	return err.Error()
}

func (app *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Generate the deterministic oshidora development dataset",
		Long: `Prints an idempotent SQL script that inserts or refreshes the oshidora
seed dataset. The same seed on the same UTC day always yields the same rows.
Rows created by hand are never touched: every seeded id starts with "seed_".`,
		Version:           constants.AppVersion,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE:              app.print,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.cfg.Seed, "seed", app.cfg.Seed, "seed string; the whole dataset derives from it")
	flags.StringVar(&app.cfg.AssetBaseURL, "assetBaseUrl", app.cfg.AssetBaseURL, "base URL of placeholder assets")
	flags.StringVar(&app.cfg.AssetExt, "assetExt", app.cfg.AssetExt, "placeholder asset extension (svg|png)")
	flags.StringVar(&app.cfg.ManifestPath, "manifest", app.cfg.ManifestPath, "optional asset manifest JSON")
	flags.StringVar(&app.cfg.UploadResultPath, "uploads", app.cfg.UploadResultPath, "optional upload result JSON")
	flags.StringVar(&app.cfg.Preset, "preset", app.cfg.Preset, "dataset size ("+strings.Join(catalog.PresetNames(), "|")+")")
	flags.StringVar(&app.now, "now", "", "reference time in RFC 3339 (default: current time)")

	root.AddCommand(app.applyCommand(), app.serveCommand())
	return root
}

// setup builds the logger once flags are parsed.
func (app *cli) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if app.cfg.Debug {
		level = slog.LevelDebug
	}

	app.logger = slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", constants.AppName),
		slog.String("run_id", uuidv7.New()),
	)
	return nil
}

// referenceTime returns --now, or the wall clock when it is unset.
func (app *cli) referenceTime() (time.Time, error) {
	if app.now == "" {
		return app.clock().UTC(), nil
	}

	parsed, err := time.Parse(time.RFC3339, app.now)
	if err != nil {
		return time.Time{}, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "now",
			Message: "Must be an RFC 3339 timestamp",
		})
	}
	return parsed.UTC(), nil
}

// preset validates the generation settings and resolves the preset.
func (app *cli) preset() (catalog.Preset, error) {
	if err := app.cfg.ValidateGeneration(); err != nil {
		return catalog.Preset{}, err
	}
	return catalog.PresetConfig(app.cfg.Preset)
}

// assets opens the optional asset inputs. Missing files only warn.
func (app *cli) assets() *manifest.Resolver {
	return manifest.Open(app.cfg.ManifestPath, app.cfg.UploadResultPath, app.cfg.AssetBaseURL, app.cfg.AssetExt, app.logger)
}

// generate validates every input before any output is produced.
func (app *cli) generate() (*generator.Result, error) {
	preset, err := app.preset()
	if err != nil {
		return nil, err
	}

	now, err := app.referenceTime()
	if err != nil {
		return nil, err
	}

	return generator.Generate(generator.Options{
		Seed:        app.cfg.Seed,
		Preset:      preset,
		Now:         now,
		GeneratedAt: app.clock().UTC(),
		Assets:      app.assets(),
		Logger:      app.logger,
	})
}

// print handles the root command: the script goes to stdout in one flush.
func (app *cli) print(cmd *cobra.Command, _ []string) error {
	result, err := app.generate()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(app.stdout)
	if _, err := result.Script.WriteTo(out); err != nil {
		return fmt.Errorf("seed: write script: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("seed: flush script: %w", err)
	}
	return nil
}
