package request

// Query parameters for the aggregation endpoints. Developer, user and
// genre lookups are exact, case-sensitive matches.

type DeveloperQuery struct {
	Developer string `validate:"required,min=1,max=255"`
}

type UserQuery struct {
	UserID string `validate:"required,min=1,max=255"`
}

type GenreQuery struct {
	Genre string `validate:"required,min=1,max=100"`
}

type YearQuery struct {
	Year int `validate:"required,gte=1900,lte=2100"`
}

type RecommendQuery struct {
	ItemID int64 `validate:"gte=0"`
}
