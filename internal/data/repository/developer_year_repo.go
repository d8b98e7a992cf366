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

type DeveloperYearRepository interface {
	All(ctx context.Context) ([]entity.DeveloperYearPositive, error)
}

type developerYearRepository struct {
	db   database.DuckIface
	log  *zap.Logger
	path string

	once sync.Once
	rows []entity.DeveloperYearPositive
	err  error
}

func NewDeveloperYearRepository(db database.DuckIface, snapshotDir string, log *zap.Logger) DeveloperYearRepository {
	return &developerYearRepository{
		db:   db,
		log:  log.With(zap.String("repository", "developer_year")),
		path: snapshotPath(snapshotDir, "developer_year_positive"),
	}
}

// All returns every positively-reviewed title row in stored order, loaded once
func (r *developerYearRepository) All(ctx context.Context) ([]entity.DeveloperYearPositive, error) {
	r.once.Do(func() {
		start := time.Now()
		r.rows, r.err = r.load(context.WithoutCancel(ctx))
		if r.err != nil {
			metrics.SnapshotLoadErrors.WithLabelValues("developer_year_positive").Inc()
			r.log.Error("Failed to load developer year table", zap.Error(r.err))
			return
		}
		metrics.RecordTableLoad("developer_year_positive", len(r.rows), time.Since(start))
		r.log.Info("Developer year table loaded",
			zap.Int("rows", len(r.rows)),
			zap.Duration("took", time.Since(start)),
		)
	})

	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *developerYearRepository) load(ctx context.Context) ([]entity.DeveloperYearPositive, error) {
	query := `
		SELECT year, developer
		FROM read_parquet(?)
	`

	rows, err := r.db.QueryContext(ctx, query, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read developer year snapshot: %v", utils.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var recs []entity.DeveloperYearPositive
	for rows.Next() {
		var rec entity.DeveloperYearPositive
		if err := rows.Scan(&rec.Year, &rec.Developer); err != nil {
			return nil, fmt.Errorf("%w: scan developer year row: %v", utils.ErrDataUnavailable, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate developer year snapshot: %v", utils.ErrDataUnavailable, err)
	}

	return recs, nil
}
