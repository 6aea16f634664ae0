// Copyright (c) 2026 Oshidora. All rights reserved.

package catalog

import (
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/random"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
)

// Day is the length of one calendar day in UTC.
const Day = 24 * time.Hour

// Context owns every source of variation of one generation run: the seed,
// its random stream, the id counters and the reference clock.
//
// # Concurrency
//
// Context is not safe for concurrent use. Create one per run.
type Context struct {
	Seed string
	Rand *random.Source

	// Now is the reference clock. Timestamps only depend on its UTC day.
	Now time.Time

	anchor   time.Time
	counters map[string]int
}

// NewContext starts a run for seed at the reference time now.
func NewContext(seed string, now time.Time) *Context {
	return &Context{
		Seed:     seed,
		Rand:     random.New(seed),
		Now:      now,
		anchor:   now.UTC().Truncate(Day),
		counters: make(map[string]int),
	}
}

// NextID allocates the next identifier of prefix: seed_<prefix>_001, _002, ...
func (c *Context) NextID(prefix string) string {
	c.counters[prefix]++
	return seedid.ID(prefix, c.counters[prefix])
}

// Count reports how many identifiers of prefix have been allocated.
func (c *Context) Count(prefix string) int {
	return c.counters[prefix]
}

// Anchor is UTC midnight of the reference day.
func (c *Context) Anchor() time.Time {
	return c.anchor
}

// Before draws a whole-second instant uniformly from [Anchor-span, Anchor).
func (c *Context) Before(span time.Duration) time.Time {
	seconds := int(span / time.Second)
	return c.anchor.Add(-span).Add(time.Duration(c.Rand.Intn(seconds)) * time.Second)
}
