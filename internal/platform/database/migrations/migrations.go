// Copyright (c) 2026 Oshidora. All rights reserved.

// Package migrations embeds the reference schema the seed script targets.
//
// The DDL sticks to the subset shared by SQLite (Cloudflare D1) and
// PostgreSQL: TEXT ids and timestamps, INTEGER flags, composite primary keys
// for junctions.
package migrations

import "embed"

// FS holds the golang-migrate style NNNNNN_name.{up,down}.sql files.
//
//go:embed *.sql
var FS embed.FS
