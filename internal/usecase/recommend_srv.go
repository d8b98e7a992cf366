package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"steam-insights/internal/data/entity"
	"steam-insights/internal/data/repository"
	"steam-insights/internal/dto/response"
	"steam-insights/pkg/metrics"
	"steam-insights/pkg/similarity"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

// topSimilar is how many neighbors a recommendation returns
const topSimilar = 5

type RecommendService interface {
	SimilarGames(ctx context.Context, itemID int64) (*response.RecommendResponse, error)
}

type recommendService struct {
	repo *repository.Repository
	log  *zap.Logger

	// The similarity matrix is built once per corpus version and shared
	// read-only across all queries afterwards
	once     sync.Once
	matrix   *similarity.Matrix
	index    map[int64]int
	buildErr error
}

func NewRecommendService(
	repo *repository.Repository,
	log *zap.Logger,
) RecommendService {
	return &recommendService{
		repo: repo,
		log:  log.With(zap.String("service", "recommend")),
	}
}

// SimilarGames ranks every other title by TF-IDF cosine similarity to the
// queried one and returns the top 5. Ties keep the stored table order.
func (s *recommendService) SimilarGames(ctx context.Context, itemID int64) (*response.RecommendResponse, error) {
	games, err := s.repo.Game.All(ctx)
	if err != nil {
		s.log.Error("Failed to get games", zap.Error(err))
		return nil, fmt.Errorf("recommend similar: %w", err)
	}

	s.once.Do(func() { s.build(games) })
	if s.buildErr != nil {
		return nil, s.buildErr
	}

	queryIdx, ok := s.index[itemID]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", itemID, utils.ErrNotFound)
	}

	if s.matrix.IsEmpty(queryIdx) {
		return nil, fmt.Errorf("%w: item %d has no usable feature text", utils.ErrComputation, itemID)
	}

	neighbors := s.matrix.Neighbors(queryIdx, topSimilar)

	recommendations := make([]response.RankedGame, len(neighbors))
	for i, idx := range neighbors {
		recommendations[i] = response.RankedGame{
			Rank:    i + 1,
			AppName: games[idx].AppName,
		}
	}

	s.log.Info("Recommendations computed",
		zap.Int64("item_id", itemID),
		zap.Int("count", len(recommendations)),
	)

	return &response.RecommendResponse{
		ItemID:          itemID,
		AppName:         games[queryIdx].AppName,
		Recommendations: recommendations,
	}, nil
}

// build vectorizes every title's combined feature text and fills the
// dense pairwise similarity matrix. Runs at most once; concurrent first
// callers wait on the same build.
func (s *recommendService) build(games []entity.GameRecord) {
	if len(games) == 0 {
		s.buildErr = fmt.Errorf("%w: similarity over an empty corpus", utils.ErrComputation)
		return
	}

	start := time.Now()

	docs := make([]string, len(games))
	s.index = make(map[int64]int, len(games))
	for i := range games {
		docs[i] = games[i].CombinedFeatures
		// Item IDs are unique by invariant; keep the first on duplicates
		if _, ok := s.index[games[i].ItemID]; !ok {
			s.index[games[i].ItemID] = i
		}
	}

	s.matrix = similarity.Build(docs)

	took := time.Since(start)
	metrics.SimilarityCorpusSize.Set(float64(len(games)))
	metrics.SimilarityBuildDuration.Observe(took.Seconds())

	s.log.Info("Similarity matrix built",
		zap.Int("titles", len(games)),
		zap.Duration("took", took),
	)
}
