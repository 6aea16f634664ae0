// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package ranking synthesizes viewing activity and materializes the daily
ranking snapshots derived from it.

A snapshot covers one as-of date, the UTC day before the reference day.
Entities are ordered by descending value; ties keep the order in which the
entities were first encountered while tallying events, so a snapshot is a
pure function of the event list. Only the top [TopN] entries are kept and
ranks run 1..n without gaps.

No ranking type is ever empty: a type that received no activity on the
as-of date is backfilled with a sample of its candidates and placeholder
values.
*/
package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/random"
)

// Type identifies a ranking.
type Type string

const (
	VideoPlays   Type = "video_plays"
	VideoCoins   Type = "video_coins"
	CastActor    Type = "cast_actor"
	CastDirector Type = "cast_director"
	CastWriter   Type = "cast_writer"
)

// Types lists every ranking type in emission order.
func Types() []Type {
	return []Type{VideoPlays, VideoCoins, CastActor, CastDirector, CastWriter}
}

// ParseType validates a ranking type name.
func ParseType(name string) (Type, bool) {
	for _, t := range Types() {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// castMarkers maps cast ranking types to the role marker they bucket by.
var castMarkers = map[Type]string{
	CastActor:    catalog.RoleActor,
	CastDirector: catalog.RoleDirector,
	CastWriter:   catalog.RoleWriter,
}

const (
	// TopN is the number of entries kept per ranking.
	TopN = 20

	// FallbackSize is the number of entries of a backfilled ranking.
	FallbackSize = 10
)

// Row is one ranking entry.
type Row struct {
	Type     Type
	AsOfDate time.Time
	Rank     int
	EntityID string
	Label    string
	Value    int

	// Fallback marks placeholder entries of a backfilled ranking.
	Fallback bool
}

// AsOf returns UTC midnight of the day before now.
func AsOf(now time.Time) time.Time {
	return now.UTC().Truncate(catalog.Day).Add(-catalog.Day)
}

// Materialize computes every ranking for asOf.
//
// Rows come back grouped by type in [Types] order, ranks ascending. Only a
// backfill draws from rng.
func Materialize(rng *random.Source, graph *catalog.Graph, events Events, asOf time.Time) []Row {
	asOfDay := asOf.UTC().Truncate(catalog.Day)
	onAsOfDay := func(ts time.Time) bool {
		return ts.UTC().Truncate(catalog.Day).Equal(asOfDay)
	}

	// 1. Tally activity of the as-of day, in event order
	tallies := make(map[Type]*tally, len(Types()))
	for _, t := range Types() {
		tallies[t] = newTally()
	}

	castsOf := graph.CastsOf()
	for _, play := range events.Plays {
		if !onAsOfDay(play.CreatedAt) {
			continue
		}
		tallies[VideoPlays].add(play.VideoID, 1)

		for _, edge := range castsOf[play.VideoID] {
			for _, t := range []Type{CastActor, CastDirector, CastWriter} {
				if strings.Contains(edge.Role, castMarkers[t]) {
					tallies[t].add(edge.TargetID, 1)
				}
			}
		}
	}

	for _, coin := range events.Coins {
		if onAsOfDay(coin.CreatedAt) {
			tallies[VideoCoins].add(coin.VideoID, coin.Amount)
		}
	}

	// 2. Rank each type, backfilling empty ones
	labels := labelIndex(graph)

	var rows []Row
	for _, t := range Types() {
		entries := tallies[t].ranked(TopN)
		fallback := len(entries) == 0
		if fallback {
			entries = backfill(rng, candidates(graph, t))
		}

		for i, entry := range entries {
			rows = append(rows, Row{
				Type:     t,
				AsOfDate: asOfDay,
				Rank:     i + 1,
				EntityID: entry.id,
				Label:    labels[entry.id],
				Value:    entry.value,
				Fallback: fallback,
			})
		}
	}

	return rows
}

// ByType groups rows by ranking type, keeping their order.
func ByType(rows []Row) map[Type][]Row {
	grouped := make(map[Type][]Row)
	for _, row := range rows {
		grouped[row.Type] = append(grouped[row.Type], row)
	}
	return grouped
}

// # Tally

type entry struct {
	id    string
	value int
}

// tally sums values per entity and remembers first-encounter order.
type tally struct {
	order  []string
	totals map[string]int
}

func newTally() *tally {
	return &tally{totals: make(map[string]int)}
}

func (t *tally) add(id string, value int) {
	if _, seen := t.totals[id]; !seen {
		t.order = append(t.order, id)
	}
	t.totals[id] += value
}

// ranked sorts by descending total, stable on encounter order, and keeps limit.
func (t *tally) ranked(limit int) []entry {
	entries := make([]entry, len(t.order))
	for i, id := range t.order {
		entries[i] = entry{id: id, value: t.totals[id]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// # Fallback

func candidates(graph *catalog.Graph, t Type) []string {
	marker, isCast := castMarkers[t]
	if !isCast {
		return graph.VideoIDs()
	}

	var ids []string
	for _, cast := range graph.Casts {
		if strings.Contains(cast.Role, marker) {
			ids = append(ids, cast.ID)
		}
	}
	return ids
}

// backfill samples up to FallbackSize candidates with values 100, 90, ...
func backfill(rng *random.Source, ids []string) []entry {
	picked := random.PickN(rng, ids, FallbackSize)

	entries := make([]entry, len(picked))
	for i, id := range picked {
		entries[i] = entry{id: id, value: (FallbackSize - i) * 10}
	}
	return entries
}

func labelIndex(graph *catalog.Graph) map[string]string {
	labels := make(map[string]string, len(graph.Videos)+len(graph.Casts))
	for _, video := range graph.Videos {
		labels[video.ID] = video.Title
	}
	for _, cast := range graph.Casts {
		labels[cast.ID] = cast.Name
	}
	return labels
}
