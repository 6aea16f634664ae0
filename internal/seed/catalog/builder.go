// Copyright (c) 2026 Oshidora. All rights reserved.

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/sec"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/random"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/slice"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/slug"
)

// Role markers. A cast belongs to a ranking bucket when its role text
// contains the marker.
const (
	RoleActor    = "Actor"
	RoleDirector = "Director"
	RoleWriter   = "Writer"
)

// RoleMarkers lists the markers in guaranteed-cast order: seed_cast_001 is
// the actor, 002 the director, 003 the writer.
func RoleMarkers() []string {
	return []string{RoleActor, RoleDirector, RoleWriter}
}

// GuaranteedSortOrder is the sort order of the first guaranteed cast edge on
// every video; the others follow it.
const GuaranteedSortOrder = 100

// UserEmail is the synthetic address of the n-th seeded user.
func UserEmail(n int) string {
	return fmt.Sprintf("seed.user%03d@example.com", n)
}

// UserEmailPattern matches every [UserEmail] in a LIKE clause.
const UserEmailPattern = "seed.user%@example.com"

// Lookback windows of generated timestamps.
const (
	accountWindow  = 365 * Day
	catalogWindow  = 180 * Day
	activityWindow = 30 * Day
)

// Builder assembles a [Graph]. Use [Build] unless the steps are needed
// individually.
type Builder struct {
	ctx    *Context
	preset Preset
	assets *manifest.Resolver
	slugs  slug.Set
	graph  *Graph
}

// NewBuilder prepares a builder. assets may be nil for placeholder-only URLs.
func NewBuilder(ctx *Context, preset Preset, assets *manifest.Resolver) *Builder {
	if assets == nil {
		assets = manifest.NewResolver(manifest.DefaultBaseURL, manifest.DefaultExt, nil, nil)
	}
	return &Builder{ctx: ctx, preset: preset, assets: assets, graph: &Graph{}}
}

// Build generates the whole catalog in construction order.
//
// The preset must be valid (see [Preset.Validate]). Asset resolution draws
// nothing from the random stream, so the manifest never changes graph shape.
func Build(ctx *Context, preset Preset, assets *manifest.Resolver) *Graph {
	builder := NewBuilder(ctx, preset, assets)

	// 1. Accounts and taxonomy
	builder.users()
	builder.categories()
	builder.tags()
	builder.genres()
	builder.castCategories()

	// 2. People
	builder.casts()
	builder.castProfiles()

	// 3. Content and its relations
	builder.works()
	builder.videos()
	builder.recommendations()

	// 4. Engagement
	builder.comments()
	builder.favorites()
	builder.featured()
	builder.inquiries()
	builder.notices()

	return builder.graph
}

// # Accounts & Taxonomy

func (b *Builder) users() {
	for range b.preset.Users {
		id := b.ctx.NextID(seedid.User)
		n := b.ctx.Count(seedid.User)
		email := UserEmail(n)

		b.graph.Users = append(b.graph.Users, User{
			ID:            id,
			Email:         email,
			DisplayName:   b.personName(),
			AvatarURL:     b.assets.URL(manifest.KindUsers, n, id),
			Credential:    sec.DeriveCredential(b.ctx.Seed, email),
			EmailVerified: b.ctx.Rand.Chance(0.8),
			CreatedAt:     b.ctx.Before(accountWindow),
		})
	}
}

func (b *Builder) categories() {
	names := random.PickN(b.ctx.Rand, categoryNames, len(categoryNames))
	for i := range b.preset.Categories {
		id := b.ctx.NextID(seedid.Category)
		name := nthName(names, i)

		b.graph.Categories = append(b.graph.Categories, Category{
			ID:        id,
			Name:      name,
			Slug:      b.slugs.Make(name, id),
			SortOrder: i + 1,
			CreatedAt: b.ctx.Before(catalogWindow),
		})
	}

	// The second half hangs under the first.
	half := len(b.graph.Categories) / 2
	roots := b.graph.Categories[:half]
	for i := half; i < len(b.graph.Categories); i++ {
		b.graph.Categories[i].ParentID = random.Pick(b.ctx.Rand, roots).ID
	}
}

func (b *Builder) tags() {
	names := random.PickN(b.ctx.Rand, tagNames, len(tagNames))
	for i := range b.preset.Tags {
		id := b.ctx.NextID(seedid.Tag)
		name := nthName(names, i)

		b.graph.Tags = append(b.graph.Tags, Tag{
			ID:        id,
			Name:      name,
			Slug:      b.slugs.Make(name, id),
			CreatedAt: b.ctx.Before(catalogWindow),
		})
	}
}

func (b *Builder) genres() {
	names := random.PickN(b.ctx.Rand, genreNames, len(genreNames))
	for i := range b.preset.Genres {
		id := b.ctx.NextID(seedid.Genre)
		name := nthName(names, i)

		b.graph.Genres = append(b.graph.Genres, Genre{
			ID:        id,
			Name:      name,
			Slug:      b.slugs.Make(name, id),
			SortOrder: i + 1,
			CreatedAt: b.ctx.Before(catalogWindow),
		})
	}
}

func (b *Builder) castCategories() {
	for i := range b.preset.CastCategories {
		b.graph.CastCategories = append(b.graph.CastCategories, CastCategory{
			ID:        b.ctx.NextID(seedid.CastCategory),
			Name:      nthName(castCategoryNames, i),
			SortOrder: i + 1,
			CreatedAt: b.ctx.Before(catalogWindow),
		})
	}
}

// # People

func (b *Builder) casts() {
	markers := RoleMarkers()
	for i := range b.preset.Casts {
		id := b.ctx.NextID(seedid.Cast)
		n := b.ctx.Count(seedid.Cast)

		role := random.Pick(b.ctx.Rand, roleTitles)
		if i < len(markers) {
			role = markers[i]
		}

		b.graph.Casts = append(b.graph.Casts, Cast{
			ID:             id,
			CastCategoryID: random.Pick(b.ctx.Rand, b.graph.CastCategories).ID,
			Name:           b.personName(),
			Role:           role,
			ThumbnailURL:   b.assets.URL(manifest.KindCasts, n, id),
			CreatedAt:      b.ctx.Before(catalogWindow),
		})
	}
}

func (b *Builder) castProfiles() {
	for _, cast := range b.graph.Casts {
		b.graph.CastProfiles = append(b.graph.CastProfiles, CastProfile{
			ID:         b.ctx.NextID(seedid.Profile),
			CastID:     cast.ID,
			Bio:        random.Pick(b.ctx.Rand, bioTemplates),
			Birthplace: random.Pick(b.ctx.Rand, birthplaces),
			SNSLinks:   b.assets.SNSLinks(cast.ID),
			CreatedAt:  cast.CreatedAt,
		})
	}
}

// # Content

func (b *Builder) works() {
	for range b.preset.Works {
		id := b.ctx.NextID(seedid.Work)
		n := b.ctx.Count(seedid.Work)

		b.graph.Works = append(b.graph.Works, Work{
			ID:           id,
			Title:        random.Pick(b.ctx.Rand, titleOpeners) + " " + random.Pick(b.ctx.Rand, titleSubjects),
			Description:  random.Pick(b.ctx.Rand, synopses),
			ThumbnailURL: b.assets.URL(manifest.KindWorks, n, id),
			Published:    b.ctx.Rand.Chance(0.9),
			CreatedAt:    b.ctx.Before(catalogWindow),
		})

		b.graph.WorkCategories = append(b.graph.WorkCategories, edges(id, slice.Map(random.PickN(b.ctx.Rand, b.graph.Categories, 2), categoryID))...)
		b.graph.WorkTags = append(b.graph.WorkTags, edges(id, slice.Map(random.PickN(b.ctx.Rand, b.graph.Tags, 3), tagID))...)
		b.graph.WorkCasts = append(b.graph.WorkCasts, castEdges(id, random.PickN(b.ctx.Rand, b.graph.Casts, 3))...)
	}
}

func (b *Builder) videos() {
	for _, work := range b.graph.Works {
		for episode := 1; episode <= b.preset.EpisodesPerWork; episode++ {
			id := b.ctx.NextID(seedid.Video)
			n := b.ctx.Count(seedid.Video)

			createdAt := b.ctx.Before(catalogWindow)
			if createdAt.Before(work.CreatedAt) {
				createdAt = work.CreatedAt
			}

			b.graph.Videos = append(b.graph.Videos, Video{
				ID:              id,
				WorkID:          work.ID,
				EpisodeNo:       episode,
				Title:           fmt.Sprintf("%s #%d", work.Title, episode),
				Description:     random.Pick(b.ctx.Rand, episodeBlurbs),
				ThumbnailURL:    b.assets.URL(manifest.KindVideos, n, id),
				DurationSeconds: b.ctx.Rand.Between(300, 2700),
				PriceCoin:       random.Pick(b.ctx.Rand, coinPrices),
				PublishedAt:     createdAt.Add(time.Duration(b.ctx.Rand.Intn(72)) * time.Hour),
				CreatedAt:       createdAt,
			})

			b.graph.VideoCategories = append(b.graph.VideoCategories, edges(id, slice.Map(random.PickN(b.ctx.Rand, b.graph.Categories, 2), categoryID))...)
			b.graph.VideoTags = append(b.graph.VideoTags, edges(id, slice.Map(random.PickN(b.ctx.Rand, b.graph.Tags, 3), tagID))...)

			casts := castEdges(id, random.PickN(b.ctx.Rand, b.graph.Casts, b.ctx.Rand.Between(2, 3)))
			b.graph.VideoCasts = append(b.graph.VideoCasts, guaranteeRoles(id, casts)...)

			genres := random.PickN(b.ctx.Rand, b.graph.Genres, b.ctx.Rand.Between(1, 2))
			b.graph.VideoGenres = append(b.graph.VideoGenres, edges(id, slice.Map(genres, genreID))...)
		}
	}
}

// guaranteeRoles attaches the three guaranteed casts to a video. A guaranteed
// cast that was already sampled keeps its edge, relabelled in place.
func guaranteeRoles(videoID string, casts []Edge) []Edge {
	for i, marker := range RoleMarkers() {
		castID := seedid.ID(seedid.Cast, i+1)
		sortOrder := GuaranteedSortOrder + i

		found := false
		for j := range casts {
			if casts[j].TargetID == castID {
				casts[j].Role = marker
				casts[j].SortOrder = sortOrder
				found = true
				break
			}
		}
		if !found {
			casts = append(casts, Edge{OwnerID: videoID, TargetID: castID, Role: marker, SortOrder: sortOrder})
		}
	}
	return casts
}

func (b *Builder) recommendations() {
	ids := b.graph.VideoIDs()
	for _, video := range b.graph.Videos {
		others := slice.Filter(ids, func(id string) bool { return id != video.ID })
		b.graph.Recommendations = append(b.graph.Recommendations,
			edges(video.ID, random.PickN(b.ctx.Rand, others, b.preset.RecommendationsPerVideo))...)
	}
}

// # Engagement

func (b *Builder) comments() {
	for range b.preset.Comments {
		video := random.Pick(b.ctx.Rand, b.graph.Videos)

		comment := Comment{
			ID:        b.ctx.NextID(seedid.Comment),
			VideoID:   video.ID,
			Body:      random.Pick(b.ctx.Rand, commentBodies),
			Status:    random.Pick(b.ctx.Rand, commentStatuses),
			CreatedAt: b.ctx.Before(activityWindow),
		}
		if b.ctx.Rand.Chance(0.8) {
			user := random.Pick(b.ctx.Rand, b.graph.Users)
			comment.UserID = user.ID
			comment.AuthorName = user.DisplayName
		} else {
			comment.AuthorName = random.Pick(b.ctx.Rand, guestNames)
		}

		b.graph.Comments = append(b.graph.Comments, comment)
	}
}

func (b *Builder) favorites() {
	for _, user := range b.graph.Users {
		for _, cast := range random.PickN(b.ctx.Rand, b.graph.Casts, b.preset.FavoriteCastsPerUser) {
			b.graph.FavoriteCasts = append(b.graph.FavoriteCasts, Favorite{
				UserID: user.ID, TargetID: cast.ID, CreatedAt: b.ctx.Before(activityWindow),
			})
		}
		for _, video := range random.PickN(b.ctx.Rand, b.graph.Videos, b.preset.FavoriteVideosPerUser) {
			b.graph.FavoriteVideos = append(b.graph.FavoriteVideos, Favorite{
				UserID: user.ID, TargetID: video.ID, CreatedAt: b.ctx.Before(activityWindow),
			})
		}
	}
}

func (b *Builder) featured() {
	ids := b.graph.VideoIDs()
	for _, slotKey := range featuredSlotKeys[:b.preset.FeaturedSlots] {
		b.graph.FeaturedVideos = append(b.graph.FeaturedVideos,
			edges(slotKey, random.PickN(b.ctx.Rand, ids, b.preset.FeaturedPerSlot))...)
	}
}

func (b *Builder) inquiries() {
	for range b.preset.Inquiries {
		id := b.ctx.NextID(seedid.Inquiry)

		inquiry := Inquiry{
			ID:        id,
			Subject:   random.Pick(b.ctx.Rand, inquirySubjects),
			Body:      random.Pick(b.ctx.Rand, inquiryBodies),
			Status:    random.Pick(b.ctx.Rand, inquiryStatuses),
			CreatedAt: b.ctx.Before(activityWindow),
		}
		if b.ctx.Rand.Chance(0.6) {
			user := random.Pick(b.ctx.Rand, b.graph.Users)
			inquiry.UserID = user.ID
			inquiry.Name = user.DisplayName
			inquiry.Email = user.Email
		} else {
			inquiry.Name = random.Pick(b.ctx.Rand, guestNames)
			inquiry.Email = strings.ReplaceAll(id, "_", ".") + "@example.com"
		}

		b.graph.Inquiries = append(b.graph.Inquiries, inquiry)
	}
}

func (b *Builder) notices() {
	for i := range b.preset.Notices {
		id := b.ctx.NextID(seedid.Notice)
		n := b.ctx.Count(seedid.Notice)
		createdAt := b.ctx.Before(activityWindow)

		b.graph.Notices = append(b.graph.Notices, Notice{
			ID:          id,
			Title:       nthName(noticeTitles, i),
			Body:        random.Pick(b.ctx.Rand, noticeBodies),
			ImageURL:    b.assets.URL(manifest.KindNotices, n, id),
			PublishedAt: createdAt,
			CreatedAt:   createdAt,
		})
	}
}

// # Helpers

func (b *Builder) personName() string {
	return random.Pick(b.ctx.Rand, givenNames) + " " + random.Pick(b.ctx.Rand, familyNames)
}

// nthName returns the i-th name of pool, numbering repeats once the pool is
// exhausted so names stay unique.
func nthName(pool []string, i int) string {
	if i < len(pool) {
		return pool[i]
	}
	return fmt.Sprintf("%s %d", pool[i%len(pool)], i/len(pool)+1)
}

// edges relates owner to targets, sort order following draw order.
func edges(ownerID string, targetIDs []string) []Edge {
	out := make([]Edge, len(targetIDs))
	for i, targetID := range targetIDs {
		out[i] = Edge{OwnerID: ownerID, TargetID: targetID, SortOrder: i + 1}
	}
	return out
}

func castEdges(ownerID string, casts []Cast) []Edge {
	out := make([]Edge, len(casts))
	for i, cast := range casts {
		out[i] = Edge{OwnerID: ownerID, TargetID: cast.ID, Role: cast.Role, SortOrder: i + 1}
	}
	return out
}

func categoryID(category Category) string { return category.ID }
func tagID(tag Tag) string { return tag.ID }
func genreID(genre Genre) string { return genre.ID }
