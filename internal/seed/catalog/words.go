// Copyright (c) 2026 Oshidora. All rights reserved.

package catalog

// Word pools. Several entries carry single quotes so every emitted script
// exercises literal escaping.

var givenNames = []string{
	"Haruto", "Yui", "Sota", "Aoi", "Ren", "Hina", "Minato", "Sakura",
	"Riku", "Mei", "Kaito", "Rin", "Daniel", "Chloe", "Sean", "Noa",
}

var familyNames = []string{
	"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto",
	"Nakamura", "Kobayashi", "O'Brien", "D'Souza", "Kato", "Yoshida", "Mori",
}

var guestNames = []string{
	"Guest Viewer", "Anonymous Fan", "Night Owl", "Binge Watcher", "Drama Lover",
}

var categoryNames = []string{
	"Drama", "Romance", "Comedy", "Mystery", "Action", "Fantasy", "Documentary",
	"Variety", "Music", "Anime", "Thriller", "Sports", "Cooking", "Travel",
	"Idol", "Stage",
}

var tagNames = []string{
	"Heartwarming", "Tearjerker", "Plot Twist", "Slow Burn", "Office", "School",
	"Time Loop", "Revenge", "Found Family", "Rivals", "Small Town", "Period Piece",
	"Director's Cut", "Behind the Scenes", "Fan Favorite", "New Face", "Award Winner",
	"Short Episodes", "Based on Manga", "Original Story", "Vertical Video",
	"Bilingual", "Live Action", "Late Night",
}

var genreNames = []string{
	"Love Story", "Suspense", "Slice of Life", "Human Drama", "Sci-Fi",
	"Horror", "Historical", "Youth", "Workplace", "Family", "Adventure", "Satire",
}

var castCategoryNames = []string{
	"Actors", "Creators", "Voice Talent", "Musicians", "Comedians", "Models",
}

// roleTitles are the free-form roles of casts beyond the guaranteed three.
// Markers are matched as substrings, so "Voice Actor" counts as an actor.
var roleTitles = []string{
	"Actor", "Voice Actor", "Director", "Assistant Director", "Writer",
	"Writer / Director", "Producer", "Composer", "Narrator",
}

var titleOpeners = []string{
	"The Last", "Midnight", "Summer's", "Forgotten", "Tokyo", "Another",
	"Don't Forget the", "Beyond the", "A Quiet", "Neon", "Our", "Rainy Day",
}

var titleSubjects = []string{
	"Promise", "Station", "Letter", "Kitchen", "Orchestra", "Detective",
	"Garden", "Runaway", "Confession", "Lighthouse", "Rooftop", "Café",
}

var synopses = []string{
	"A story about second chances, told over one long night.",
	"When the family's café is about to close, three siblings make a last bet.",
	"She didn't plan to fall for her rival, but the finals are in a week.",
	"An ordinary office, an extraordinary secret, and a boss who knows too much.",
	"A detective's final case leads back to the town he swore he'd never return to.",
	"Shot entirely on phones, this drama follows a band's first tour.",
}

var episodeBlurbs = []string{
	"Things get complicated.",
	"An old friend shows up at the worst possible moment.",
	"Nobody's telling the whole truth.",
	"The plan falls apart.",
	"A promise is finally kept.",
	"It's not over yet.",
}

var commentBodies = []string{
	"Loved this episode!",
	"I can't stop rewatching the ending.",
	"The director's choices here are so bold.",
	"Who else cried at the rooftop scene?",
	"Please release the next one soon!",
	"Best cast of the season, hands down.",
	"That twist... I didn't see it coming.",
	"It's a slow start but worth it.",
}

var commentStatuses = []string{"approved", "approved", "approved", "pending"}

var bioTemplates = []string{
	"Debuted on stage in Osaka and hasn't looked back since.",
	"Known for quiet roles and a surprisingly loud laugh.",
	"A former dancer who's now one of the platform's most-watched faces.",
	"Writes, directs, and occasionally acts in friends' short films.",
	"Voice behind several late-night radio dramas.",
}

var birthplaces = []string{
	"Tokyo", "Osaka", "Kyoto", "Fukuoka", "Sapporo", "Nagoya", "Okinawa", "Sendai",
}

var inquirySubjects = []string{
	"Can't play a video",
	"Question about coins",
	"Account email change",
	"Feature request",
	"Subtitle timing is off",
}

var inquiryBodies = []string{
	"The player shows a black screen after the opening. I've tried two browsers.",
	"I bought coins but my balance didn't update.",
	"I'd like to change the email on my account.",
	"It'd be great to have a watch-later list.",
	"Subtitles are about a second behind in episode 2.",
}

var inquiryStatuses = []string{"open", "open", "in_progress", "closed"}

var noticeTitles = []string{
	"Scheduled maintenance",
	"New works this week",
	"Coin campaign: 20% bonus",
	"We've updated our terms",
	"Holiday schedule",
	"App update available",
}

var noticeBodies = []string{
	"Service will be unavailable for about 30 minutes. We're sorry for the inconvenience.",
	"Don't miss this week's new releases, including three original dramas.",
	"Buy coins this weekend and get a 20% bonus.",
	"Please review the updated terms of service.",
}

var coinPrices = []int{0, 0, 30, 50, 100}

// featuredSlotKeys name the featured rails of the home screen.
var featuredSlotKeys = []string{"home_hero", "home_new", "home_popular", "home_staff_picks"}
