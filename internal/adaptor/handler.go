package adaptor

import (
	"steam-insights/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Stats     *StatsHandler
	Recommend *RecommendHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Stats:     NewStatsHandler(service.Stats, log),
		Recommend: NewRecommendHandler(service.Recommend, log),
	}
}
