package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table      string
	ID         string
	VideoID    string
	UserID     string
	AuthorName string
	Body       string
	Status     string
	CreatedAt  string
	UpdatedAt  string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:      "comments",
	ID:         "id",
	VideoID:    "video_id",
	UserID:     "user_id",
	AuthorName: "author_name",
	Body:       "body",
	Status:     "status",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t CommentsTable) Columns() []string {
	return []string{t.ID, t.VideoID, t.UserID, t.AuthorName, t.Body, t.Status, t.CreatedAt, t.UpdatedAt}
}

// FavoritesTable represents a user favorites junction
type FavoritesTable struct {
	Table     string
	UserID    string
	TargetID  string
	CreatedAt string
}

func (t FavoritesTable) Columns() []string {
	return []string{t.UserID, t.TargetID, t.CreatedAt}
}

// Key is the composite primary key of the junction.
func (t FavoritesTable) Key() []string {
	return []string{t.UserID, t.TargetID}
}

// FavoriteCasts is the schema definition for favorite_casts
var FavoriteCasts = FavoritesTable{
	Table:     "favorite_casts",
	UserID:    "user_id",
	TargetID:  "cast_id",
	CreatedAt: "created_at",
}

// FavoriteVideos is the schema definition for favorite_videos
var FavoriteVideos = FavoritesTable{
	Table:     "favorite_videos",
	UserID:    "user_id",
	TargetID:  "video_id",
	CreatedAt: "created_at",
}

// InquiriesTable represents the 'inquiries' table
type InquiriesTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Email     string
	Subject   string
	Body      string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// Inquiries is the schema definition for inquiries
var Inquiries = InquiriesTable{
	Table:     "inquiries",
	ID:        "id",
	UserID:    "user_id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Body:      "body",
	Status:    "status",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t InquiriesTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.Email, t.Subject, t.Body, t.Status, t.CreatedAt, t.UpdatedAt}
}

// NoticesTable represents the 'notices' table
type NoticesTable struct {
	Table       string
	ID          string
	Title       string
	Body        string
	ImageURL    string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
}

// Notices is the schema definition for notices
var Notices = NoticesTable{
	Table:       "notices",
	ID:          "id",
	Title:       "title",
	Body:        "body",
	ImageURL:    "image_url",
	PublishedAt: "published_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t NoticesTable) Columns() []string {
	return []string{t.ID, t.Title, t.Body, t.ImageURL, t.PublishedAt, t.CreatedAt, t.UpdatedAt}
}
