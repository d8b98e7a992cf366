package wire

import (
	"steam-insights/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRecommend(r chi.Router, recommendHandler *adaptor.RecommendHandler) {
	// GET /api/games/{item_id}/recommendations - content-based top 5
	r.Get("/api/games/{item_id}/recommendations", recommendHandler.SimilarGames)
}
