package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"steam-insights/internal/dto/response"
	"steam-insights/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStatsService lets each test pin the engine outcome
type stubStatsService struct {
	freeRatio func(developer string) (*response.DeveloperFreeRatioResponse, error)
	spend     func(userID string) (*response.UserSpendResponse, error)
}

func (s *stubStatsService) DeveloperFreeRatio(ctx context.Context, developer string) (*response.DeveloperFreeRatioResponse, error) {
	return s.freeRatio(developer)
}

func (s *stubStatsService) UserSpend(ctx context.Context, userID string) (*response.UserSpendResponse, error) {
	return s.spend(userID)
}

func (s *stubStatsService) GenreTopPlayer(ctx context.Context, genre string) (*response.GenreTopPlayerResponse, error) {
	return nil, fmt.Errorf("genre %q: %w", genre, utils.ErrNotFound)
}

func (s *stubStatsService) TopDevelopersByYear(ctx context.Context, year int) ([]response.RankedDeveloper, error) {
	return nil, fmt.Errorf("year %d: %w", year, utils.ErrNotFound)
}

func (s *stubStatsService) DeveloperSentiment(ctx context.Context, developer string) (*response.DeveloperSentimentResponse, error) {
	return nil, fmt.Errorf("developer %q: %w", developer, utils.ErrNotFound)
}

func statsRouter(service *stubStatsService) *chi.Mux {
	h := NewStatsHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/developers/{developer}/free-ratio", h.DeveloperFreeRatio)
	r.Get("/api/users/{user_id}/spend", h.UserSpend)
	r.Get("/api/years/{year}/top-developers", h.TopDevelopersByYear)
	return r
}

func TestDeveloperFreeRatioHandlerSuccess(t *testing.T) {
	service := &stubStatsService{
		freeRatio: func(developer string) (*response.DeveloperFreeRatioResponse, error) {
			return &response.DeveloperFreeRatioResponse{
				Developer: developer,
				Years: []response.YearFreeRatio{
					{Year: 2015, Total: 3, Free: 1, PctFree: 33.33},
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/developers/Valve/free-ratio", nil)
	rec := httptest.NewRecorder()
	statsRouter(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "success", body.Message)
	assert.NotNil(t, body.Data)
}

func TestUserSpendHandlerNotFound(t *testing.T) {
	service := &stubStatsService{
		spend: func(userID string) (*response.UserSpendResponse, error) {
			return nil, fmt.Errorf("user %q: %w", userID, utils.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost/spend", nil)
	rec := httptest.NewRecorder()
	statsRouter(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
}

func TestUserSpendHandlerInternalError(t *testing.T) {
	service := &stubStatsService{
		spend: func(userID string) (*response.UserSpendResponse, error) {
			return nil, fmt.Errorf("user spend: %w", utils.ErrDataUnavailable)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/spend", nil)
	rec := httptest.NewRecorder()
	statsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTopDevelopersHandlerRejectsBadYear(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/years/not-a-year/top-developers", nil)
	rec := httptest.NewRecorder()
	statsRouter(&stubStatsService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
