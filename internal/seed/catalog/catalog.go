// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package catalog builds the entity graph of a seeded oshidora dataset.

The graph is built once, in a fixed construction order, from a single
[Context]. Every relation endpoint is allocated before the relation that
references it, so emitting entities in graph order never produces a dangling
reference.

Entities are plain values. After the builder returns, only the explicit
patches of the emitter (category parents, guaranteed role labels) change
what a row looks like in the target store.
*/
package catalog

import (
	"time"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/sec"
)

// User is a viewer account with a deterministic development credential.
type User struct {
	ID            string
	Email         string
	DisplayName   string
	AvatarURL     string
	Credential    sec.Credential
	EmailVerified bool
	CreatedAt     time.Time
}

// Category is a browse category. ParentID is empty for top-level categories.
type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string
	SortOrder int
	CreatedAt time.Time
}

// Tag is a free-form label on works and videos.
type Tag struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

// Genre classifies videos.
type Genre struct {
	ID        string
	Name      string
	Slug      string
	SortOrder int
	CreatedAt time.Time
}

// CastCategory groups casts on the talent directory.
type CastCategory struct {
	ID        string
	Name      string
	SortOrder int
	CreatedAt time.Time
}

// Cast is a performer or creator.
// Role is free text; ranking buckets match it by substring.
type Cast struct {
	ID             string
	CastCategoryID string
	Name           string
	Role           string
	ThumbnailURL   string
	CreatedAt      time.Time
}

// CastProfile is the one-to-one detail record of a cast.
type CastProfile struct {
	ID         string
	CastID     string
	Bio        string
	Birthplace string
	SNSLinks   []string
	CreatedAt  time.Time
}

// Work is a series. Its videos are episodes.
type Work struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	Published    bool
	CreatedAt    time.Time
}

// Video is one episode of a work.
type Video struct {
	ID              string
	WorkID          string
	EpisodeNo       int
	Title           string
	Description     string
	ThumbnailURL    string
	DurationSeconds int
	PriceCoin       int
	PublishedAt     time.Time
	CreatedAt       time.Time
}

// Comment is a viewer comment on a video. UserID is empty for guests.
type Comment struct {
	ID         string
	VideoID    string
	UserID     string
	AuthorName string
	Body       string
	Status     string
	CreatedAt  time.Time
}

// Inquiry is a support request. UserID is empty for guests.
type Inquiry struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Subject   string
	Body      string
	Status    string
	CreatedAt time.Time
}

// Notice is an operator announcement.
type Notice struct {
	ID          string
	Title       string
	Body        string
	ImageURL    string
	PublishedAt time.Time
	CreatedAt   time.Time
}

// Edge is one row of a many-to-many relation.
// (OwnerID, TargetID) is unique within a relation.
type Edge struct {
	OwnerID   string
	TargetID  string
	Role      string
	SortOrder int
}

// Favorite is one user bookmark.
type Favorite struct {
	UserID    string
	TargetID  string
	CreatedAt time.Time
}

// Graph is the complete generated catalog, each slice in construction order.
type Graph struct {
	Users          []User
	Categories     []Category
	Tags           []Tag
	Genres         []Genre
	CastCategories []CastCategory
	Casts          []Cast
	CastProfiles   []CastProfile
	Works          []Work
	Videos         []Video
	Comments       []Comment
	Inquiries      []Inquiry
	Notices        []Notice

	WorkCategories  []Edge
	WorkTags        []Edge
	WorkCasts       []Edge
	VideoCategories []Edge
	VideoTags       []Edge
	VideoCasts      []Edge
	VideoGenres     []Edge
	Recommendations []Edge
	FeaturedVideos  []Edge

	FavoriteCasts  []Favorite
	FavoriteVideos []Favorite
}

// VideoIDs returns the ids of every video in construction order.
func (g *Graph) VideoIDs() []string {
	ids := make([]string, len(g.Videos))
	for i, video := range g.Videos {
		ids[i] = video.ID
	}
	return ids
}

// UserIDs returns the ids of every user in construction order.
func (g *Graph) UserIDs() []string {
	ids := make([]string, len(g.Users))
	for i, user := range g.Users {
		ids[i] = user.ID
	}
	return ids
}

// CastsOf returns the video_casts edges of each video, keyed by video id.
func (g *Graph) CastsOf() map[string][]Edge {
	byVideo := make(map[string][]Edge, len(g.Videos))
	for _, edge := range g.VideoCasts {
		byVideo[edge.OwnerID] = append(byVideo[edge.OwnerID], edge)
	}
	return byVideo
}

// Counts reports the number of generated rows per catalog table.
func (g *Graph) Counts() map[string]int {
	return map[string]int{
		schema.Users.Table:                len(g.Users),
		schema.Categories.Table:           len(g.Categories),
		schema.Tags.Table:                 len(g.Tags),
		schema.Genres.Table:               len(g.Genres),
		schema.CastCategories.Table:       len(g.CastCategories),
		schema.Casts.Table:                len(g.Casts),
		schema.CastProfiles.Table:         len(g.CastProfiles),
		schema.Works.Table:                len(g.Works),
		schema.WorkCategories.Table:       len(g.WorkCategories),
		schema.WorkTags.Table:             len(g.WorkTags),
		schema.WorkCasts.Table:            len(g.WorkCasts),
		schema.Videos.Table:               len(g.Videos),
		schema.VideoCategories.Table:      len(g.VideoCategories),
		schema.VideoTags.Table:            len(g.VideoTags),
		schema.VideoCasts.Table:           len(g.VideoCasts),
		schema.VideoGenres.Table:          len(g.VideoGenres),
		schema.VideoRecommendations.Table: len(g.Recommendations),
		schema.Comments.Table:             len(g.Comments),
		schema.FavoriteCasts.Table:        len(g.FavoriteCasts),
		schema.FavoriteVideos.Table:       len(g.FavoriteVideos),
		schema.FeaturedVideos.Table:       len(g.FeaturedVideos),
		schema.Inquiries.Table:            len(g.Inquiries),
		schema.Notices.Table:              len(g.Notices),
	}
}
