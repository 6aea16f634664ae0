package schema

// WorksTable represents the 'works' table
type WorksTable struct {
	Table        string
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	IsPublished  string
	CreatedAt    string
	UpdatedAt    string
}

// Works is the schema definition for works
var Works = WorksTable{
	Table:        "works",
	ID:           "id",
	Title:        "title",
	Description:  "description",
	ThumbnailURL: "thumbnail_url",
	IsPublished:  "is_published",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t WorksTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.ThumbnailURL, t.IsPublished, t.CreatedAt, t.UpdatedAt}
}

// EdgeTable describes a many-to-many junction table keyed by (owner, target).
//
// Role is empty for junctions that carry no role label.
type EdgeTable struct {
	Table     string
	OwnerID   string
	TargetID  string
	Role      string
	SortOrder string
}

// Columns lists owner, target, the optional role label and sort order.
func (t EdgeTable) Columns() []string {
	if t.Role == "" {
		return []string{t.OwnerID, t.TargetID, t.SortOrder}
	}
	return []string{t.OwnerID, t.TargetID, t.Role, t.SortOrder}
}

// Key is the composite primary key of the junction.
func (t EdgeTable) Key() []string {
	return []string{t.OwnerID, t.TargetID}
}

// WorkCategories is the schema definition for work_categories
var WorkCategories = EdgeTable{
	Table:     "work_categories",
	OwnerID:   "work_id",
	TargetID:  "category_id",
	SortOrder: "sort_order",
}

// WorkTags is the schema definition for work_tags
var WorkTags = EdgeTable{
	Table:     "work_tags",
	OwnerID:   "work_id",
	TargetID:  "tag_id",
	SortOrder: "sort_order",
}

// WorkCasts is the schema definition for work_casts
var WorkCasts = EdgeTable{
	Table:     "work_casts",
	OwnerID:   "work_id",
	TargetID:  "cast_id",
	Role:      "role_name",
	SortOrder: "sort_order",
}
