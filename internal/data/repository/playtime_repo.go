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

type GenrePlaytimeRepository interface {
	All(ctx context.Context) ([]entity.GenrePlaytime, error)
}

type genrePlaytimeRepository struct {
	db   database.DuckIface
	log  *zap.Logger
	path string

	once sync.Once
	rows []entity.GenrePlaytime
	err  error
}

func NewGenrePlaytimeRepository(db database.DuckIface, snapshotDir string, log *zap.Logger) GenrePlaytimeRepository {
	return &genrePlaytimeRepository{
		db:   db,
		log:  log.With(zap.String("repository", "genre_playtime")),
		path: snapshotPath(snapshotDir, "genre_playtime"),
	}
}

// All returns every playtime row in stored order, loaded once. The stored
// order doubles as the tie-break order for the top-player query.
func (r *genrePlaytimeRepository) All(ctx context.Context) ([]entity.GenrePlaytime, error) {
	r.once.Do(func() {
		start := time.Now()
		r.rows, r.err = r.load(context.WithoutCancel(ctx))
		if r.err != nil {
			metrics.SnapshotLoadErrors.WithLabelValues("genre_playtime").Inc()
			r.log.Error("Failed to load genre playtime table", zap.Error(r.err))
			return
		}
		metrics.RecordTableLoad("genre_playtime", len(r.rows), time.Since(start))
		r.log.Info("Genre playtime table loaded",
			zap.Int("rows", len(r.rows)),
			zap.Duration("took", time.Since(start)),
		)
	})

	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *genrePlaytimeRepository) load(ctx context.Context) ([]entity.GenrePlaytime, error) {
	query := `
		SELECT user_id,
		       array_to_string(genres, ';') AS genres,
		       release_year, playtime_forever
		FROM read_parquet(?)
	`

	rows, err := r.db.QueryContext(ctx, query, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read genre playtime snapshot: %v", utils.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var playtimes []entity.GenrePlaytime
	for rows.Next() {
		var p entity.GenrePlaytime
		var genres string
		if err := rows.Scan(&p.UserID, &genres, &p.ReleaseYear, &p.PlaytimeForever); err != nil {
			return nil, fmt.Errorf("%w: scan genre playtime row: %v", utils.ErrDataUnavailable, err)
		}
		p.Genres = splitList(genres)
		playtimes = append(playtimes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate genre playtime snapshot: %v", utils.ErrDataUnavailable, err)
	}

	return playtimes, nil
}
