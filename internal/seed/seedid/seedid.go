// Copyright (c) 2026 Oshidora. All rights reserved.

// Package seedid formats the deterministic identifiers of generated rows.
//
// Every generated row is addressed as seed_<prefix>_<NNN>. The same
// (prefix, n) always yields the same id, which is what lets the seed script
// delete and upsert its own rows on every run. Cleanup relies on the
// structural shape too: rows are matched with LIKE 'seed\_<prefix>\_%'.
package seedid

import (
	"fmt"
	"strings"
)

// Namespace is the leading segment shared by every generated id.
const Namespace = "seed"

// Escape is the LIKE escape character used by [Pattern] and [AnyPattern].
const Escape = `\`

// Entity prefixes. No prefix followed by "_" starts another id, so the
// cleanup patterns of two kinds never overlap.
const (
	User         = "user"
	Category     = "category"
	Tag          = "tag"
	Genre        = "genre"
	CastCategory = "castcategory"
	Cast         = "cast"
	Profile      = "profile"
	Work         = "work"
	Video        = "video"
	Comment      = "comment"
	Inquiry      = "inquiry"
	Notice       = "notice"
	Play         = "play"
	Coin         = "coin"
)

// prefixes lists every entity prefix.
func prefixes() []string {
	return []string{
		User, Category, Tag, Genre, CastCategory, Cast, Profile,
		Work, Video, Comment, Inquiry, Notice, Play, Coin,
	}
}

// ID formats the n-th identifier of prefix, zero-padded to width 3.
//
//	seedid.ID("work", 1)    // "seed_work_001"
//	seedid.ID("play", 1234) // "seed_play_1234"
func ID(prefix string, n int) string {
	return fmt.Sprintf("%s_%s_%03d", Namespace, prefix, n)
}

// Pattern returns the LIKE pattern matching every id of prefix.
// Use it with ESCAPE '\'.
func Pattern(prefix string) string {
	return escapeLike(Namespace+"_"+prefix+"_") + "%"
}

// AnyPattern returns the LIKE pattern matching every generated id.
func AnyPattern() string {
	return escapeLike(Namespace+"_") + "%"
}

func escapeLike(s string) string {
	return strings.NewReplacer(Escape, Escape+Escape, "_", Escape+"_", "%", Escape+"%").Replace(s)
}
