// Copyright (c) 2026 Oshidora. All rights reserved.

// Command seed generates the deterministic oshidora development dataset.
//
// # Subcommands
//
//   - (root): print the idempotent seed script on stdout.
//   - apply: run the script against SQLite or PostgreSQL and optionally
//     publish the ranking snapshots to Redis.
//   - serve: preview datasets over HTTP.
//
// Logs go to stderr as JSON so stdout carries nothing but the script.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
