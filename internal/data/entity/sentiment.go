package entity

// Sentiment classes as stored in the snapshot.
const (
	SentimentNegative = 0
	SentimentNeutral  = 1
	SentimentPositive = 2
)

// SentimentReview is one scored review attributed to a developer.
type SentimentReview struct {
	Developer string `db:"developer"`
	Sentiment int    `db:"sentiment"`
}
