// Copyright (c) 2026 Oshidora. All rights reserved.

package generator

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/slice"
)

// emit renders a finished run. updatedAt stamps every upserted row.
func emit(result *Result, updatedAt, generatedAt time.Time) *sqlgen.Script {
	script := &sqlgen.Script{}

	script.Comment("oshidora seed script")
	script.Comment(fmt.Sprintf("seed: %q  preset: %s  as-of: %s",
		result.Seed, result.Preset, result.AsOf.Format(sqlgen.DateLayout)))
	script.Comment("generated at " + generatedAt.UTC().Format(time.RFC3339))
	script.Comment("safe to re-run: deletes seed rows, then upserts them; no transaction statements")

	script.Add(sqlgen.PhaseCleanup, cleanup()...)

	emitter := &emitter{script: script, updatedAt: updatedAt}
	emitter.catalog(result.Graph)
	emitter.events(result.Events)
	emitter.rankings(result.Rankings)
	emitter.patches(result.Graph)

	return script
}

type emitter struct {
	script    *sqlgen.Script
	updatedAt time.Time
}

func (e *emitter) upsert(table string, columns []string, conflict *sqlgen.Conflict, values ...any) {
	e.script.Add(sqlgen.PhaseUpsert, sqlgen.Insert{
		Table:    table,
		Columns:  columns,
		Values:   values,
		Conflict: conflict,
	})
}

// refresh lists the columns to overwrite on conflict: every column except the
// conflict target and created_at.
func refresh(columns []string, target ...string) []string {
	return slice.Filter(columns, func(column string) bool {
		return column != "created_at" && !slices.Contains(target, column)
	})
}

// byID overwrites every mutable column of a row keyed by id.
func byID(columns []string) *sqlgen.Conflict {
	return sqlgen.DoUpdate([]string{"id"}, refresh(columns, "id")...)
}

// # Catalog

func (e *emitter) catalog(graph *catalog.Graph) {

	// 1. Accounts: keyed by email, credentials refreshed
	users := schema.Users
	for _, user := range graph.Users {
		e.upsert(users.Table, users.Columns(),
			sqlgen.DoUpdate([]string{users.Email}, users.PasswordSalt, users.PasswordHash, users.UpdatedAt),
			user.ID, user.Email, user.DisplayName, sqlgen.Optional(user.AvatarURL),
			user.Credential.Salt, user.Credential.Hash, user.EmailVerified,
			user.CreatedAt, e.updatedAt,
		)
	}

	// 2. Taxonomy: keyed by name, ordering and slugs refreshed
	categories := schema.Categories
	for _, category := range graph.Categories {
		e.upsert(categories.Table, categories.Columns(),
			sqlgen.DoUpdate([]string{categories.Name}, categories.Slug, categories.SortOrder, categories.UpdatedAt),
			category.ID, category.Name, category.Slug, category.SortOrder, category.CreatedAt, e.updatedAt,
		)
	}

	tags := schema.Tags
	for _, tag := range graph.Tags {
		e.upsert(tags.Table, tags.Columns(),
			sqlgen.DoUpdate([]string{tags.Name}, tags.Slug, tags.UpdatedAt),
			tag.ID, tag.Name, tag.Slug, tag.CreatedAt, e.updatedAt,
		)
	}

	genres := schema.Genres
	for _, genre := range graph.Genres {
		e.upsert(genres.Table, genres.Columns(),
			sqlgen.DoUpdate([]string{genres.Name}, genres.Slug, genres.SortOrder, genres.UpdatedAt),
			genre.ID, genre.Name, genre.Slug, genre.SortOrder, genre.CreatedAt, e.updatedAt,
		)
	}

	castCategories := schema.CastCategories
	for _, castCategory := range graph.CastCategories {
		e.upsert(castCategories.Table, castCategories.Columns(),
			sqlgen.DoUpdate([]string{castCategories.Name}, castCategories.SortOrder, castCategories.UpdatedAt),
			castCategory.ID, castCategory.Name, castCategory.SortOrder, castCategory.CreatedAt, e.updatedAt,
		)
	}

	// 3. People
	casts := schema.Casts
	for _, cast := range graph.Casts {
		e.upsert(casts.Table, casts.Columns(), byID(casts.Columns()),
			cast.ID, cast.CastCategoryID, cast.Name, cast.Role, sqlgen.Optional(cast.ThumbnailURL),
			cast.CreatedAt, e.updatedAt,
		)
	}

	profiles := schema.CastProfiles
	for _, profile := range graph.CastProfiles {
		e.upsert(profiles.Table, profiles.Columns(), byID(profiles.Columns()),
			profile.ID, profile.CastID, profile.Bio, profile.Birthplace, snsLinks(profile.SNSLinks),
			profile.CreatedAt, e.updatedAt,
		)
	}

	// 4. Works and their relations
	works := schema.Works
	for _, work := range graph.Works {
		e.upsert(works.Table, works.Columns(), byID(works.Columns()),
			work.ID, work.Title, work.Description, sqlgen.Optional(work.ThumbnailURL), work.Published,
			work.CreatedAt, e.updatedAt,
		)
	}
	e.edges(schema.WorkCategories, graph.WorkCategories)
	e.edges(schema.WorkTags, graph.WorkTags)
	e.edges(schema.WorkCasts, graph.WorkCasts)

	// 5. Videos and their relations
	videos := schema.Videos
	for _, video := range graph.Videos {
		e.upsert(videos.Table, videos.Columns(), byID(videos.Columns()),
			video.ID, video.WorkID, video.EpisodeNo, video.Title, video.Description,
			sqlgen.Optional(video.ThumbnailURL), video.DurationSeconds, video.PriceCoin,
			video.PublishedAt, video.CreatedAt, e.updatedAt,
		)
	}
	e.edges(schema.VideoCategories, graph.VideoCategories)
	e.edges(schema.VideoTags, graph.VideoTags)
	e.edges(schema.VideoCasts, graph.VideoCasts)
	e.edges(schema.VideoGenres, graph.VideoGenres)
	e.edges(schema.VideoRecommendations, graph.Recommendations)

	// 6. Engagement
	comments := schema.Comments
	for _, comment := range graph.Comments {
		e.upsert(comments.Table, comments.Columns(), byID(comments.Columns()),
			comment.ID, comment.VideoID, sqlgen.Optional(comment.UserID), comment.AuthorName,
			comment.Body, comment.Status, comment.CreatedAt, e.updatedAt,
		)
	}

	e.favorites(schema.FavoriteCasts, graph.FavoriteCasts)
	e.favorites(schema.FavoriteVideos, graph.FavoriteVideos)
	e.edges(schema.FeaturedVideos, graph.FeaturedVideos)

	inquiries := schema.Inquiries
	for _, inquiry := range graph.Inquiries {
		e.upsert(inquiries.Table, inquiries.Columns(), byID(inquiries.Columns()),
			inquiry.ID, sqlgen.Optional(inquiry.UserID), inquiry.Name, inquiry.Email,
			inquiry.Subject, inquiry.Body, inquiry.Status, inquiry.CreatedAt, e.updatedAt,
		)
	}

	notices := schema.Notices
	for _, notice := range graph.Notices {
		e.upsert(notices.Table, notices.Columns(), byID(notices.Columns()),
			notice.ID, notice.Title, notice.Body, sqlgen.Optional(notice.ImageURL),
			notice.PublishedAt, notice.CreatedAt, e.updatedAt,
		)
	}
}

func (e *emitter) edges(table schema.EdgeTable, edges []catalog.Edge) {
	conflict := sqlgen.DoUpdate(table.Key(), refresh(table.Columns(), table.Key()...)...)
	for _, edge := range edges {
		values := []any{edge.OwnerID, edge.TargetID}
		if table.Role != "" {
			values = append(values, edge.Role)
		}
		values = append(values, edge.SortOrder)
		e.upsert(table.Table, table.Columns(), conflict, values...)
	}
}

func (e *emitter) favorites(table schema.FavoritesTable, favorites []catalog.Favorite) {
	conflict := sqlgen.DoUpdate(table.Key(), table.CreatedAt)
	for _, favorite := range favorites {
		e.upsert(table.Table, table.Columns(), conflict, favorite.UserID, favorite.TargetID, favorite.CreatedAt)
	}
}

// # Events & Rankings

func (e *emitter) events(events ranking.Events) {
	plays := schema.PlayEvents
	for _, play := range events.Plays {
		e.upsert(plays.Table, plays.Columns(), byID(plays.Columns()),
			play.ID, play.VideoID, play.UserID, play.CreatedAt,
		)
	}

	coins := schema.CoinSpendEvents
	for _, coin := range events.Coins {
		e.upsert(coins.Table, coins.Columns(), byID(coins.Columns()),
			coin.ID, coin.VideoID, coin.UserID, coin.Amount, coin.CreatedAt,
		)
	}
}

func (e *emitter) rankings(rows []ranking.Row) {
	rankings := schema.Rankings
	conflict := sqlgen.DoUpdate(rankings.Key(), rankings.EntityID, rankings.Label, rankings.Value, rankings.UpdatedAt)

	for _, row := range rows {
		e.upsert(rankings.Table, rankings.Columns(), conflict,
			string(row.Type), row.AsOfDate.Format(sqlgen.DateLayout), row.Rank,
			row.EntityID, row.Label, row.Value, e.updatedAt, e.updatedAt,
		)
	}
}

// # Patches

// patches writes what upserts cannot: self references and labels that a
// natural-key conflict may have left untouched.
func (e *emitter) patches(graph *catalog.Graph) {
	categories := schema.Categories
	for _, category := range graph.Categories {
		if category.ParentID == "" {
			continue
		}
		e.script.Add(sqlgen.PhasePatch, sqlgen.Update{
			Table: categories.Table,
			Set:   []sqlgen.Assignment{sqlgen.Set(categories.ParentID, category.ParentID)},
			Where: sqlgen.Eq(categories.ID, category.ID),
		})
	}

	// Repeats the upserted roles so running the patch phase alone restores the ranking markers.
	casts := schema.Casts
	for i, marker := range catalog.RoleMarkers() {
		if i >= len(graph.Casts) {
			break
		}
		e.script.Add(sqlgen.PhasePatch, sqlgen.Update{
			Table: casts.Table,
			Set:   []sqlgen.Assignment{sqlgen.Set(casts.Role, marker)},
			Where: sqlgen.Eq(casts.ID, seedid.ID(seedid.Cast, i+1)),
		})
	}
}

// snsLinks encodes profile links as a JSON array; no links is "[]".
func snsLinks(links []string) string {
	if links == nil {
		links = []string{}
	}
	encoded, err := json.Marshal(links)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
