package response

// RankedGame is one entry of a similarity ranking.
type RankedGame struct {
	Rank    int    `json:"rank"`
	AppName string `json:"app_name"`
}

// RecommendResponse lists the nearest titles to the queried one.
type RecommendResponse struct {
	ItemID          int64        `json:"item_id"`
	AppName         string       `json:"app_name"`
	Recommendations []RankedGame `json:"recommendations"`
}
