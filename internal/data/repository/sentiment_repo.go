package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"steam-insights/internal/data/entity"
	"steam-insights/pkg/database"
	"steam-insights/pkg/metrics"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

type SentimentRepository interface {
	All(ctx context.Context) ([]entity.SentimentReview, error)
}

type sentimentRepository struct {
	db   database.DuckIface
	log  *zap.Logger
	path string

	once sync.Once
	rows []entity.SentimentReview
	err  error
}

func NewSentimentRepository(db database.DuckIface, snapshotDir string, log *zap.Logger) SentimentRepository {
	return &sentimentRepository{
		db:   db,
		log:  log.With(zap.String("repository", "sentiment")),
		path: snapshotPath(snapshotDir, "sentiment"),
	}
}

// All returns every review row in stored order, loaded once
func (r *sentimentRepository) All(ctx context.Context) ([]entity.SentimentReview, error) {
	r.once.Do(func() {
		start := time.Now()
		r.rows, r.err = r.load(context.WithoutCancel(ctx))
		if r.err != nil {
			metrics.SnapshotLoadErrors.WithLabelValues("sentiment").Inc()
			r.log.Error("Failed to load sentiment table", zap.Error(r.err))
			return
		}
		metrics.RecordTableLoad("sentiment", len(r.rows), time.Since(start))
		r.log.Info("Sentiment table loaded",
			zap.Int("rows", len(r.rows)),
			zap.Duration("took", time.Since(start)),
		)
	})

	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *sentimentRepository) load(ctx context.Context) ([]entity.SentimentReview, error) {
	query := `
		SELECT developer, sentiment
		FROM read_parquet(?)
	`

	rows, err := r.db.QueryContext(ctx, query, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read sentiment snapshot: %v", utils.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var reviews []entity.SentimentReview
	for rows.Next() {
		var rev entity.SentimentReview
		if err := rows.Scan(&rev.Developer, &rev.Sentiment); err != nil {
			return nil, fmt.Errorf("%w: scan sentiment row: %v", utils.ErrDataUnavailable, err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate sentiment snapshot: %v", utils.ErrDataUnavailable, err)
	}

	return reviews, nil
}
