package usecase

import (
	"steam-insights/internal/data/repository"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Stats     StatsService
	Recommend RecommendService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Stats:     NewStatsService(repo, log),
		Recommend: NewRecommendService(repo, log),
	}
}
