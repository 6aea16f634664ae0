package schema

// CategoriesTable represents the 'categories' table
type CategoriesTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	ParentID  string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// Categories is the schema definition for categories
var Categories = CategoriesTable{
	Table:     "categories",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	ParentID:  "parent_id",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns omits parent_id: parents are assigned after every category exists.
func (t CategoriesTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}

// TagsTable represents the 'tags' table
type TagsTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// Tags is the schema definition for tags
var Tags = TagsTable{
	Table:     "tags",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t TagsTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt}
}

// GenresTable represents the 'genres' table
type GenresTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// Genres is the schema definition for genres
var Genres = GenresTable{
	Table:     "genres",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t GenresTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}

// CastCategoriesTable represents the 'cast_categories' table
type CastCategoriesTable struct {
	Table     string
	ID        string
	Name      string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// CastCategories is the schema definition for cast_categories
var CastCategories = CastCategoriesTable{
	Table:     "cast_categories",
	ID:        "id",
	Name:      "name",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CastCategoriesTable) Columns() []string {
	return []string{t.ID, t.Name, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}
