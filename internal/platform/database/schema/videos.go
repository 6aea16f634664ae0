package schema

// VideosTable represents the 'videos' table
type VideosTable struct {
	Table           string
	ID              string
	WorkID          string
	EpisodeNo       string
	Title           string
	Description     string
	ThumbnailURL    string
	DurationSeconds string
	PriceCoin       string
	PublishedAt     string
	CreatedAt       string
	UpdatedAt       string
}

// Videos is the schema definition for videos
var Videos = VideosTable{
	Table:           "videos",
	ID:              "id",
	WorkID:          "work_id",
	EpisodeNo:       "episode_no",
	Title:           "title",
	Description:     "description",
	ThumbnailURL:    "thumbnail_url",
	DurationSeconds: "duration_seconds",
	PriceCoin:       "price_coin",
	PublishedAt:     "published_at",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

func (t VideosTable) Columns() []string {
	return []string{
		t.ID, t.WorkID, t.EpisodeNo, t.Title, t.Description, t.ThumbnailURL,
		t.DurationSeconds, t.PriceCoin, t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	}
}

// VideoCategories is the schema definition for video_categories
var VideoCategories = EdgeTable{
	Table:     "video_categories",
	OwnerID:   "video_id",
	TargetID:  "category_id",
	SortOrder: "sort_order",
}

// VideoTags is the schema definition for video_tags
var VideoTags = EdgeTable{
	Table:     "video_tags",
	OwnerID:   "video_id",
	TargetID:  "tag_id",
	SortOrder: "sort_order",
}

// VideoCasts is the schema definition for video_casts
var VideoCasts = EdgeTable{
	Table:     "video_casts",
	OwnerID:   "video_id",
	TargetID:  "cast_id",
	Role:      "role_name",
	SortOrder: "sort_order",
}

// VideoGenres is the schema definition for video_genres
var VideoGenres = EdgeTable{
	Table:     "video_genres",
	OwnerID:   "video_id",
	TargetID:  "genre_id",
	SortOrder: "sort_order",
}

// VideoRecommendations is the schema definition for video_recommendations
var VideoRecommendations = EdgeTable{
	Table:     "video_recommendations",
	OwnerID:   "video_id",
	TargetID:  "recommended_video_id",
	SortOrder: "sort_order",
}

// FeaturedVideos is the schema definition for featured_videos.
// The owner is a slot key, not an entity id.
var FeaturedVideos = EdgeTable{
	Table:     "featured_videos",
	OwnerID:   "slot_key",
	TargetID:  "video_id",
	SortOrder: "sort_order",
}
