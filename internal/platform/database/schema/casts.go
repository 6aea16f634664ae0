package schema

// CastsTable represents the 'casts' table
type CastsTable struct {
	Table          string
	ID             string
	CastCategoryID string
	Name           string
	Role           string
	ThumbnailURL   string
	CreatedAt      string
	UpdatedAt      string
}

// Casts is the schema definition for casts
var Casts = CastsTable{
	Table:          "casts",
	ID:             "id",
	CastCategoryID: "cast_category_id",
	Name:           "name",
	Role:           "role",
	ThumbnailURL:   "thumbnail_url",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

func (t CastsTable) Columns() []string {
	return []string{t.ID, t.CastCategoryID, t.Name, t.Role, t.ThumbnailURL, t.CreatedAt, t.UpdatedAt}
}

// CastProfilesTable represents the 'cast_profiles' table
type CastProfilesTable struct {
	Table      string
	ID         string
	CastID     string
	Bio        string
	Birthplace string
	SNSLinks   string
	CreatedAt  string
	UpdatedAt  string
}

// CastProfiles is the schema definition for cast_profiles
var CastProfiles = CastProfilesTable{
	Table:      "cast_profiles",
	ID:         "id",
	CastID:     "cast_id",
	Bio:        "bio",
	Birthplace: "birthplace",
	SNSLinks:   "sns_links",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t CastProfilesTable) Columns() []string {
	return []string{t.ID, t.CastID, t.Bio, t.Birthplace, t.SNSLinks, t.CreatedAt, t.UpdatedAt}
}
