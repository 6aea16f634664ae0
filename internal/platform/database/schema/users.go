package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table         string
	ID            string
	Email         string
	DisplayName   string
	AvatarURL     string
	PasswordSalt  string
	PasswordHash  string
	EmailVerified string
	CreatedAt     string
	UpdatedAt     string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:         "users",
	ID:            "id",
	Email:         "email",
	DisplayName:   "display_name",
	AvatarURL:     "avatar_url",
	PasswordSalt:  "password_salt",
	PasswordHash:  "password_hash",
	EmailVerified: "email_verified",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t UsersTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.DisplayName, t.AvatarURL, t.PasswordSalt, t.PasswordHash,
		t.EmailVerified, t.CreatedAt, t.UpdatedAt,
	}
}
