package schema

// Tables lists every table in foreign-key dependency order: a table only
// references tables that appear before it. Cleanup walks this list backwards.
func Tables() []string {
	return []string{
		Users.Table,
		Categories.Table,
		Tags.Table,
		Genres.Table,
		CastCategories.Table,
		Casts.Table,
		CastProfiles.Table,
		Works.Table,
		WorkCategories.Table,
		WorkTags.Table,
		WorkCasts.Table,
		Videos.Table,
		VideoCategories.Table,
		VideoTags.Table,
		VideoCasts.Table,
		VideoGenres.Table,
		VideoRecommendations.Table,
		Comments.Table,
		FavoriteCasts.Table,
		FavoriteVideos.Table,
		FeaturedVideos.Table,
		Inquiries.Table,
		Notices.Table,
		PlayEvents.Table,
		CoinSpendEvents.Table,
		Rankings.Table,
	}
}
