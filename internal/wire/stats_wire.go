package wire

import (
	"steam-insights/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler) {
	// All aggregation endpoints are public, read-only queries

	// GET /api/developers/{developer}/free-ratio - free/total split per year
	r.Get("/api/developers/{developer}/free-ratio", statsHandler.DeveloperFreeRatio)

	// GET /api/developers/{developer}/sentiment - positive/negative review counts
	r.Get("/api/developers/{developer}/sentiment", statsHandler.DeveloperSentiment)

	// GET /api/users/{user_id}/spend - total spend and recommendation rate
	r.Get("/api/users/{user_id}/spend", statsHandler.UserSpend)

	// GET /api/genres/{genre}/top-player - most engaged player for a genre
	r.Get("/api/genres/{genre}/top-player", statsHandler.GenreTopPlayer)

	// GET /api/years/{year}/top-developers - top 3 by positive reviews
	r.Get("/api/years/{year}/top-developers", statsHandler.TopDevelopersByYear)
}
