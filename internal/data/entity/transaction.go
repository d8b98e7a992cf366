package entity

// UserTransaction is one purchase row. ItemID references a GameRecord but
// dangling references are tolerated, not validated.
type UserTransaction struct {
	UserID    string  `db:"user_id"`
	ItemID    int64   `db:"item_id"`
	Price     float64 `db:"price"`
	Recommend bool    `db:"recommend"`
}
