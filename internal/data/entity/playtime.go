package entity

// GenrePlaytime is one accumulated-playtime row, in minutes.
type GenrePlaytime struct {
	UserID          string   `db:"user_id"`
	Genres          []string `db:"genres"`
	ReleaseYear     int      `db:"release_year"`
	PlaytimeForever int64    `db:"playtime_forever"`
}

// HasGenre reports whether the row's genre set contains the label
// (exact, case-sensitive match).
func (p *GenrePlaytime) HasGenre(label string) bool {
	for _, g := range p.Genres {
		if g == label {
			return true
		}
	}
	return false
}
