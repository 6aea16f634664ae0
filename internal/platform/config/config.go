// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package config handles settings for the seed generator and its subcommands.

It leverages 'caarlos0/env' to map OS environment variables (prefixed with
OSHIDORA_) into a strongly-typed Go struct. Command-line flags take their
defaults from this struct, so the precedence is flag > environment > default.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/validate"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "OSHIDORA_"

// Supported asset file extensions for placeholder URLs.
const (
	AssetExtSVG = "svg"
	AssetExtPNG = "png"
)

// Supported database drivers for the apply subcommand.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the oshidora seed tool.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Generation inputs
	Seed         string `env:"SEED"           envDefault:"oshidora"`
	Preset       string `env:"PRESET"         envDefault:"default"`
	AssetBaseURL string `env:"ASSET_BASE_URL" envDefault:"http://localhost:8787/media"`
	AssetExt     string `env:"ASSET_EXT"      envDefault:"svg"`

	// Optional asset inputs. Missing files only produce a warning.
	ManifestPath     string `env:"ASSET_MANIFEST_PATH" envDefault:"seed-assets/manifest.json"`
	UploadResultPath string `env:"UPLOAD_RESULT_PATH"  envDefault:"seed-assets/upload-result.json"`

	// Apply target
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string `env:"DATABASE_URL"    envDefault:"oshidora-dev.db"`

	// Ranking publication (empty disables it)
	RedisURL string `env:"REDIS_URL"`

	// Preview server
	ServerPort   string `env:"SERVER_PORT"   envDefault:"8080"`
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// ValidateGeneration checks the settings every subcommand needs before a
// dataset can be generated. The asset base is joined verbatim, so relative
// bases such as "/media" are accepted.
func (c *Config) ValidateGeneration() error {
	return (&validate.Validator{}).
		OneOf("assetExt", c.AssetExt, AssetExtSVG, AssetExtPNG).
		Err()
}

// ValidateApply checks the settings used by the apply subcommand.
func (c *Config) ValidateApply() error {
	v := &validate.Validator{}
	v.OneOf("driver", c.DatabaseDriver, DriverSQLite, DriverPostgres).
		Required("dsn", c.DatabaseURL)
	if c.RedisURL != "" {
		v.URL("redis", c.RedisURL)
	}
	return v.Err()
}

// IsDevelopment reports whether the tool is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
