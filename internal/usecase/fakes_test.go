package usecase

import (
	"context"

	"steam-insights/internal/data/entity"
	"steam-insights/internal/data/repository"

	"go.uber.org/zap"
)

// In-memory table fakes standing in for the snapshot-backed repositories.

type fakeGameRepo struct {
	rows []entity.GameRecord
	err  error
}

func (f *fakeGameRepo) All(ctx context.Context) ([]entity.GameRecord, error) {
	return f.rows, f.err
}

type fakeTransactionRepo struct {
	rows []entity.UserTransaction
	err  error
}

func (f *fakeTransactionRepo) All(ctx context.Context) ([]entity.UserTransaction, error) {
	return f.rows, f.err
}

type fakeSentimentRepo struct {
	rows []entity.SentimentReview
	err  error
}

func (f *fakeSentimentRepo) All(ctx context.Context) ([]entity.SentimentReview, error) {
	return f.rows, f.err
}

type fakePlaytimeRepo struct {
	rows []entity.GenrePlaytime
	err  error
}

func (f *fakePlaytimeRepo) All(ctx context.Context) ([]entity.GenrePlaytime, error) {
	return f.rows, f.err
}

type fakeDeveloperYearRepo struct {
	rows []entity.DeveloperYearPositive
	err  error
}

func (f *fakeDeveloperYearRepo) All(ctx context.Context) ([]entity.DeveloperYearPositive, error) {
	return f.rows, f.err
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Game:          &fakeGameRepo{},
		Transaction:   &fakeTransactionRepo{},
		Sentiment:     &fakeSentimentRepo{},
		GenrePlaytime: &fakePlaytimeRepo{},
		DeveloperYear: &fakeDeveloperYearRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
