// Copyright (c) 2026 Oshidora. All rights reserved.

package ranking

import (
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/random"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/pointer"
)

// EventWindow is how far back synthetic activity reaches from the anchor day.
const EventWindow = 7 * catalog.Day

// actorProbability is the share of events attributed to a signed-in user.
const actorProbability = 0.9

var coinAmounts = []int{10, 30, 50, 100}

// PlayEvent is one playback start. UserID is nil for anonymous plays.
type PlayEvent struct {
	ID        string
	VideoID   string
	UserID    *string
	CreatedAt time.Time
}

// CoinSpendEvent is one coin purchase of a video.
type CoinSpendEvent struct {
	ID        string
	VideoID   string
	UserID    *string
	Amount    int
	CreatedAt time.Time
}

// Events is the synthetic activity of one run.
type Events struct {
	Plays []PlayEvent
	Coins []CoinSpendEvent
}

// Synthesize draws the activity of a run, plays first, then coin spends.
//
// Every event falls in [anchor-EventWindow, anchor), so the as-of day (the
// day before the anchor) always lies inside the window.
func Synthesize(ctx *catalog.Context, graph *catalog.Graph, preset catalog.Preset) Events {
	var events Events
	users := graph.UserIDs()

	for range preset.PlayEvents {
		video := random.Pick(ctx.Rand, graph.Videos)
		events.Plays = append(events.Plays, PlayEvent{
			ID:        ctx.NextID(seedid.Play),
			VideoID:   video.ID,
			UserID:    actor(ctx, users),
			CreatedAt: ctx.Before(EventWindow),
		})
	}

	for range preset.CoinSpendEvents {
		video := random.Pick(ctx.Rand, graph.Videos)
		events.Coins = append(events.Coins, CoinSpendEvent{
			ID:        ctx.NextID(seedid.Coin),
			VideoID:   video.ID,
			UserID:    actor(ctx, users),
			Amount:    random.Pick(ctx.Rand, coinAmounts),
			CreatedAt: ctx.Before(EventWindow),
		})
	}

	return events
}

// actor draws the acting user, or nil for an anonymous event.
func actor(ctx *catalog.Context, users []string) *string {
	if !ctx.Rand.Chance(actorProbability) {
		return nil
	}
	return pointer.To(random.Pick(ctx.Rand, users))
}
