// Copyright (c) 2026 Oshidora. All rights reserved.

// Package sqlite opens SQLite databases through the pure-Go modernc driver.
//
// SQLite is the local stand-in for the Cloudflare D1 store the seed script
// targets. Foreign keys are enforced on every connection so a script that
// would break referential integrity on D1 fails here too.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	// modernc registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	// driverName is the name modernc.org/sqlite registers with database/sql.
	driverName = "sqlite"
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// busyTimeoutMillis lets a second process wait instead of failing.
	busyTimeoutMillis = 5000
)

// DSN builds a modernc DSN for path with foreign keys and a busy timeout.
//
// A path already carrying query parameters keeps them.
func DSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return fmt.Sprintf("file:%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		strings.TrimPrefix(path, "file:"), separator, busyTimeoutMillis)
}

// Open opens and pings the database at path.
//
// The pool is capped at one connection: seed statements run strictly in order
// and SQLite allows a single writer anyway.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open(driverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return db, nil
}

// Ping verifies that the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}
