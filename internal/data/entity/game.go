package entity

// GameRecord is one marketplace title from the games snapshot.
// Rows are immutable after load; item IDs are unique.
type GameRecord struct {
	ItemID           int64    `db:"item_id"`
	AppName          string   `db:"app_name"`
	Developer        string   `db:"developer"`
	ReleaseYear      int      `db:"release_year"`
	Price            float64  `db:"price"`
	Genres           []string `db:"genres"`
	CombinedFeatures string   `db:"combined_features"`
}

// IsFree reports whether the title has no price at all.
func (g *GameRecord) IsFree() bool {
	return g.Price == 0
}
