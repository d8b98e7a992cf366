package response

// Aggregation results are typed numeric records; currency and percent
// rendering belongs to clients, not here.

// YearFreeRatio is one release year of a developer's catalogue.
type YearFreeRatio struct {
	Year    int     `json:"year"`
	Total   int     `json:"total"`
	Free    int     `json:"free"`
	PctFree float64 `json:"pct_free"`
}

// DeveloperFreeRatioResponse lists a developer's free/total split per
// year, ordered by ascending year.
type DeveloperFreeRatioResponse struct {
	Developer string          `json:"developer"`
	Years     []YearFreeRatio `json:"years"`
}

// UserSpendResponse summarizes one user's transactions.
type UserSpendResponse struct {
	UserID           string  `json:"user_id"`
	TotalSpent       float64 `json:"total_spent"`
	RecommendRatePct float64 `json:"recommend_rate_pct"`
	ItemCount        int     `json:"item_count"`
}

// YearPlaytime is one release year of accumulated playtime minutes.
type YearPlaytime struct {
	Year     int   `json:"year"`
	Playtime int64 `json:"playtime"`
}

// GenreTopPlayerResponse identifies the most engaged player of a genre
// and that player's playtime per release year, ordered by ascending year.
type GenreTopPlayerResponse struct {
	UserID string         `json:"user_id"`
	Genre  string         `json:"genre"`
	Years  []YearPlaytime `json:"years"`
}

// RankedDeveloper is one entry of the yearly top-developers ranking.
type RankedDeveloper struct {
	Rank      int    `json:"rank"`
	Developer string `json:"developer"`
}

// DeveloperSentimentResponse counts a developer's positive and negative
// reviews; neutral reviews are ignored.
type DeveloperSentimentResponse struct {
	Developer string `json:"developer"`
	Positive  int    `json:"positive"`
	Negative  int    `json:"negative"`
}
