package usecase

import (
	"context"
	"fmt"
	"sort"

	"steam-insights/internal/data/entity"
	"steam-insights/internal/data/repository"
	"steam-insights/internal/dto/response"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

type StatsService interface {
	DeveloperFreeRatio(ctx context.Context, developer string) (*response.DeveloperFreeRatioResponse, error)
	UserSpend(ctx context.Context, userID string) (*response.UserSpendResponse, error)
	GenreTopPlayer(ctx context.Context, genre string) (*response.GenreTopPlayerResponse, error)
	TopDevelopersByYear(ctx context.Context, year int) ([]response.RankedDeveloper, error)
	DeveloperSentiment(ctx context.Context, developer string) (*response.DeveloperSentimentResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(
	repo *repository.Repository,
	log *zap.Logger,
) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

// DeveloperFreeRatio groups the developer's titles by release year and
// reports, per year, how many there are, how many are free and the free
// percentage rounded to 2 decimals. Years come back in ascending order.
func (s *statsService) DeveloperFreeRatio(ctx context.Context, developer string) (*response.DeveloperFreeRatioResponse, error) {
	games, err := s.repo.Game.All(ctx)
	if err != nil {
		s.log.Error("Failed to get games", zap.Error(err))
		return nil, fmt.Errorf("developer free ratio: %w", err)
	}

	type yearAgg struct {
		total int
		free  int
	}
	byYear := make(map[int]*yearAgg)

	matched := false
	for i := range games {
		g := &games[i]
		if g.Developer != developer {
			continue
		}
		matched = true

		agg := byYear[g.ReleaseYear]
		if agg == nil {
			agg = &yearAgg{}
			byYear[g.ReleaseYear] = agg
		}
		agg.total++
		if g.IsFree() {
			agg.free++
		}
	}

	if !matched {
		return nil, fmt.Errorf("developer %q: %w", developer, utils.ErrNotFound)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	result := &response.DeveloperFreeRatioResponse{
		Developer: developer,
		Years:     make([]response.YearFreeRatio, 0, len(years)),
	}
	for _, year := range years {
		agg := byYear[year]

		// A matched year always has total > 0; report 0 instead of
		// dividing if that invariant ever breaks
		pct := 0.0
		if agg.total > 0 {
			pct = utils.Round2(float64(agg.free) / float64(agg.total) * 100)
		}

		result.Years = append(result.Years, response.YearFreeRatio{
			Year:    year,
			Total:   agg.total,
			Free:    agg.free,
			PctFree: pct,
		})
	}

	s.log.Info("Developer free ratio computed",
		zap.String("developer", developer),
		zap.Int("years", len(result.Years)),
	)

	return result, nil
}

// UserSpend sums a user's spend, the share of transactions marked as
// recommended (percentage, 2 decimals) and the transaction count.
func (s *statsService) UserSpend(ctx context.Context, userID string) (*response.UserSpendResponse, error) {
	txs, err := s.repo.Transaction.All(ctx)
	if err != nil {
		s.log.Error("Failed to get transactions", zap.Error(err))
		return nil, fmt.Errorf("user spend: %w", err)
	}

	var (
		total       float64
		recommended int
		count       int
	)
	for i := range txs {
		if txs[i].UserID != userID {
			continue
		}
		count++
		total += txs[i].Price
		if txs[i].Recommend {
			recommended++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("user %q: %w", userID, utils.ErrNotFound)
	}

	return &response.UserSpendResponse{
		UserID:           userID,
		TotalSpent:       total,
		RecommendRatePct: utils.Round2(float64(recommended) / float64(count) * 100),
		ItemCount:        count,
	}, nil
}

// GenreTopPlayer finds the user with the highest total playtime across
// all rows containing the genre, then reports that user's playtime per
// release year. Equal totals keep the first user seen in stored order.
func (s *statsService) GenreTopPlayer(ctx context.Context, genre string) (*response.GenreTopPlayerResponse, error) {
	playtimes, err := s.repo.GenrePlaytime.All(ctx)
	if err != nil {
		s.log.Error("Failed to get genre playtimes", zap.Error(err))
		return nil, fmt.Errorf("genre top player: %w", err)
	}

	totals := make(map[string]int64)
	var order []string

	for i := range playtimes {
		p := &playtimes[i]
		if !p.HasGenre(genre) {
			continue
		}
		if _, seen := totals[p.UserID]; !seen {
			order = append(order, p.UserID)
		}
		totals[p.UserID] += p.PlaytimeForever
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("genre %q: %w", genre, utils.ErrNotFound)
	}

	// Strict comparison keeps the first-seen user on ties
	topUser := order[0]
	for _, userID := range order[1:] {
		if totals[userID] > totals[topUser] {
			topUser = userID
		}
	}

	byYear := make(map[int]int64)
	for i := range playtimes {
		p := &playtimes[i]
		if p.UserID != topUser || !p.HasGenre(genre) {
			continue
		}
		byYear[p.ReleaseYear] += p.PlaytimeForever
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	result := &response.GenreTopPlayerResponse{
		UserID: topUser,
		Genre:  genre,
		Years:  make([]response.YearPlaytime, 0, len(years)),
	}
	for _, year := range years {
		result.Years = append(result.Years, response.YearPlaytime{
			Year:     year,
			Playtime: byYear[year],
		})
	}

	s.log.Info("Genre top player computed",
		zap.String("genre", genre),
		zap.String("user_id", topUser),
		zap.Int64("total_playtime", totals[topUser]),
	)

	return result, nil
}

// TopDevelopersByYear ranks developers by their count of positively
// reviewed titles in the year and returns up to the top 3. Equal counts
// keep first-seen stored order.
func (s *statsService) TopDevelopersByYear(ctx context.Context, year int) ([]response.RankedDeveloper, error) {
	recs, err := s.repo.DeveloperYear.All(ctx)
	if err != nil {
		s.log.Error("Failed to get developer year records", zap.Error(err))
		return nil, fmt.Errorf("top developers by year: %w", err)
	}

	counts := make(map[string]int)
	var order []string

	for i := range recs {
		if recs[i].Year != year {
			continue
		}
		if _, seen := counts[recs[i].Developer]; !seen {
			order = append(order, recs[i].Developer)
		}
		counts[recs[i].Developer]++
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("year %d: %w", year, utils.ErrNotFound)
	}

	// Stable sort over first-seen order breaks count ties deterministically
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if len(order) > 3 {
		order = order[:3]
	}

	ranking := make([]response.RankedDeveloper, len(order))
	for i, developer := range order {
		ranking[i] = response.RankedDeveloper{
			Rank:      i + 1,
			Developer: developer,
		}
	}

	return ranking, nil
}

// DeveloperSentiment counts the developer's positive and negative
// reviews. Neutral reviews count for presence but not for either bucket.
func (s *statsService) DeveloperSentiment(ctx context.Context, developer string) (*response.DeveloperSentimentResponse, error) {
	reviews, err := s.repo.Sentiment.All(ctx)
	if err != nil {
		s.log.Error("Failed to get sentiment reviews", zap.Error(err))
		return nil, fmt.Errorf("developer sentiment: %w", err)
	}

	var (
		positive int
		negative int
		matched  bool
	)
	for i := range reviews {
		if reviews[i].Developer != developer {
			continue
		}
		matched = true
		switch reviews[i].Sentiment {
		case entity.SentimentPositive:
			positive++
		case entity.SentimentNegative:
			negative++
		}
	}

	if !matched {
		return nil, fmt.Errorf("developer %q: %w", developer, utils.ErrNotFound)
	}

	return &response.DeveloperSentimentResponse{
		Developer: developer,
		Positive:  positive,
		Negative:  negative,
	}, nil
}
