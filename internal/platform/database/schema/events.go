package schema

// PlayEventsTable represents the 'play_events' table
type PlayEventsTable struct {
	Table     string
	ID        string
	VideoID   string
	UserID    string
	CreatedAt string
}

// PlayEvents is the schema definition for play_events
var PlayEvents = PlayEventsTable{
	Table:     "play_events",
	ID:        "id",
	VideoID:   "video_id",
	UserID:    "user_id",
	CreatedAt: "created_at",
}

func (t PlayEventsTable) Columns() []string {
	return []string{t.ID, t.VideoID, t.UserID, t.CreatedAt}
}

// CoinSpendEventsTable represents the 'coin_spend_events' table
type CoinSpendEventsTable struct {
	Table     string
	ID        string
	VideoID   string
	UserID    string
	Amount    string
	CreatedAt string
}

// CoinSpendEvents is the schema definition for coin_spend_events
var CoinSpendEvents = CoinSpendEventsTable{
	Table:     "coin_spend_events",
	ID:        "id",
	VideoID:   "video_id",
	UserID:    "user_id",
	Amount:    "amount",
	CreatedAt: "created_at",
}

func (t CoinSpendEventsTable) Columns() []string {
	return []string{t.ID, t.VideoID, t.UserID, t.Amount, t.CreatedAt}
}

// RankingsTable represents the 'rankings' table
type RankingsTable struct {
	Table     string
	Type      string
	AsOfDate  string
	Rank      string
	EntityID  string
	Label     string
	Value     string
	CreatedAt string
	UpdatedAt string
}

// Rankings is the schema definition for rankings
var Rankings = RankingsTable{
	Table:     "rankings",
	Type:      "type",
	AsOfDate:  "as_of_date",
	Rank:      "rank",
	EntityID:  "entity_id",
	Label:     "label",
	Value:     "value",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t RankingsTable) Columns() []string {
	return []string{t.Type, t.AsOfDate, t.Rank, t.EntityID, t.Label, t.Value, t.CreatedAt, t.UpdatedAt}
}

// Key is the composite primary key of a ranking row.
func (t RankingsTable) Key() []string {
	return []string{t.Type, t.AsOfDate, t.Rank}
}
