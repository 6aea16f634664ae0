// Copyright (c) 2026 Oshidora. All rights reserved.

package generator

import (
	"slices"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
)

// seedRef matches a column holding a generated id of prefix.
func seedRef(column, prefix string) sqlgen.Condition {
	return sqlgen.Like(column, seedid.Pattern(prefix))
}

// cleanupConditions lists, per table, which rows belong to the seed: rows
// with a generated id, and rows whose parent is a generated row (otherwise the
// parent could not be deleted).
func cleanupConditions() map[string][]sqlgen.Condition {
	edge := func(table schema.EdgeTable, owner, target string) []sqlgen.Condition {
		conditions := []sqlgen.Condition{seedRef(table.TargetID, target)}
		if owner != "" {
			conditions = append([]sqlgen.Condition{seedRef(table.OwnerID, owner)}, conditions...)
		}
		return conditions
	}
	favorite := func(table schema.FavoritesTable, target string) []sqlgen.Condition {
		return []sqlgen.Condition{seedRef(table.UserID, seedid.User), seedRef(table.TargetID, target)}
	}

	return map[string][]sqlgen.Condition{
		schema.Users.Table: {
			seedRef(schema.Users.ID, seedid.User),
			sqlgen.Like(schema.Users.Email, catalog.UserEmailPattern),
		},
		schema.Categories.Table:     {seedRef(schema.Categories.ID, seedid.Category)},
		schema.Tags.Table:           {seedRef(schema.Tags.ID, seedid.Tag)},
		schema.Genres.Table:         {seedRef(schema.Genres.ID, seedid.Genre)},
		schema.CastCategories.Table: {seedRef(schema.CastCategories.ID, seedid.CastCategory)},
		schema.Casts.Table: {
			seedRef(schema.Casts.ID, seedid.Cast),
			seedRef(schema.Casts.CastCategoryID, seedid.CastCategory),
		},
		schema.CastProfiles.Table: {
			seedRef(schema.CastProfiles.ID, seedid.Profile),
			seedRef(schema.CastProfiles.CastID, seedid.Cast),
		},
		schema.Works.Table:          {seedRef(schema.Works.ID, seedid.Work)},
		schema.WorkCategories.Table: edge(schema.WorkCategories, seedid.Work, seedid.Category),
		schema.WorkTags.Table:       edge(schema.WorkTags, seedid.Work, seedid.Tag),
		schema.WorkCasts.Table:      edge(schema.WorkCasts, seedid.Work, seedid.Cast),
		schema.Videos.Table: {
			seedRef(schema.Videos.ID, seedid.Video),
			seedRef(schema.Videos.WorkID, seedid.Work),
		},
		schema.VideoCategories.Table:      edge(schema.VideoCategories, seedid.Video, seedid.Category),
		schema.VideoTags.Table:            edge(schema.VideoTags, seedid.Video, seedid.Tag),
		schema.VideoCasts.Table:           edge(schema.VideoCasts, seedid.Video, seedid.Cast),
		schema.VideoGenres.Table:          edge(schema.VideoGenres, seedid.Video, seedid.Genre),
		schema.VideoRecommendations.Table: edge(schema.VideoRecommendations, seedid.Video, seedid.Video),
		schema.Comments.Table: {
			seedRef(schema.Comments.ID, seedid.Comment),
			seedRef(schema.Comments.VideoID, seedid.Video),
			seedRef(schema.Comments.UserID, seedid.User),
		},
		schema.FavoriteCasts.Table:  favorite(schema.FavoriteCasts, seedid.Cast),
		schema.FavoriteVideos.Table: favorite(schema.FavoriteVideos, seedid.Video),
		schema.FeaturedVideos.Table: edge(schema.FeaturedVideos, "", seedid.Video),
		schema.Inquiries.Table: {
			seedRef(schema.Inquiries.ID, seedid.Inquiry),
			seedRef(schema.Inquiries.UserID, seedid.User),
		},
		schema.Notices.Table: {seedRef(schema.Notices.ID, seedid.Notice)},
		schema.PlayEvents.Table: {
			seedRef(schema.PlayEvents.ID, seedid.Play),
			seedRef(schema.PlayEvents.VideoID, seedid.Video),
			seedRef(schema.PlayEvents.UserID, seedid.User),
		},
		schema.CoinSpendEvents.Table: {
			seedRef(schema.CoinSpendEvents.ID, seedid.Coin),
			seedRef(schema.CoinSpendEvents.VideoID, seedid.Video),
			seedRef(schema.CoinSpendEvents.UserID, seedid.User),
		},
		schema.Rankings.Table: {sqlgen.Like(schema.Rankings.EntityID, seedid.AnyPattern())},
	}
}

// cleanup returns the statements of the cleanup phase.
//
// Foreign categories parented under a seed category are detached first, then
// every table is cleared of seed rows, children before parents.
func cleanup() []sqlgen.Statement {
	statements := []sqlgen.Statement{
		sqlgen.Update{
			Table: schema.Categories.Table,
			Set:   []sqlgen.Assignment{sqlgen.Set(schema.Categories.ParentID, sqlgen.Null)},
			Where: seedRef(schema.Categories.ParentID, seedid.Category),
		},
	}

	conditions := cleanupConditions()
	tables := schema.Tables()
	slices.Reverse(tables)

	for _, table := range tables {
		statements = append(statements, sqlgen.Delete{
			Table: table,
			Where: sqlgen.Or(conditions[table]...),
		})
	}

	return statements
}
