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

type GameRepository interface {
	All(ctx context.Context) ([]entity.GameRecord, error)
}

type gameRepository struct {
	db   database.DuckIface
	log  *zap.Logger
	path string

	once sync.Once
	rows []entity.GameRecord
	err  error
}

func NewGameRepository(db database.DuckIface, snapshotDir string, log *zap.Logger) GameRepository {
	return &gameRepository{
		db:   db,
		log:  log.With(zap.String("repository", "game")),
		path: snapshotPath(snapshotDir, "games"),
	}
}

// All returns every game row in stored order. The snapshot is read once;
// concurrent first callers wait on the same load and every caller
// afterwards observes the same immutable slice.
func (r *gameRepository) All(ctx context.Context) ([]entity.GameRecord, error) {
	r.once.Do(func() {
		start := time.Now()
		// The first caller cancelling must not poison the cache
		r.rows, r.err = r.load(context.WithoutCancel(ctx))
		if r.err != nil {
			metrics.SnapshotLoadErrors.WithLabelValues("games").Inc()
			r.log.Error("Failed to load games table", zap.Error(r.err))
			return
		}
		metrics.RecordTableLoad("games", len(r.rows), time.Since(start))
		r.log.Info("Games table loaded",
			zap.Int("rows", len(r.rows)),
			zap.Duration("took", time.Since(start)),
		)
	})

	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *gameRepository) load(ctx context.Context) ([]entity.GameRecord, error) {
	query := `
		SELECT item_id, app_name, developer, release_year, price,
		       array_to_string(genres, ';') AS genres,
		       combined_features
		FROM read_parquet(?)
	`

	rows, err := r.db.QueryContext(ctx, query, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read games snapshot: %v", utils.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var games []entity.GameRecord
	for rows.Next() {
		var g entity.GameRecord
		var genres string
		err := rows.Scan(
			&g.ItemID,
			&g.AppName,
			&g.Developer,
			&g.ReleaseYear,
			&g.Price,
			&genres,
			&g.CombinedFeatures,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan game row: %v", utils.ErrDataUnavailable, err)
		}
		g.Genres = splitList(genres)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate games snapshot: %v", utils.ErrDataUnavailable, err)
	}

	return games, nil
}
