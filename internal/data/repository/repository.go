package repository

import (
	"path/filepath"
	"strings"

	"steam-insights/pkg/database"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

// Repository is the dataset store. Each table repository reads its
// parquet file once and caches the rows for the process lifetime; all
// query engines share the same immutable slices.
type Repository struct {
	Game          GameRepository
	Transaction   TransactionRepository
	Sentiment     SentimentRepository
	GenrePlaytime GenrePlaytimeRepository
	DeveloperYear DeveloperYearRepository
}

func NewRepository(db database.DuckIface, config utils.DatasetConfig, log *zap.Logger) *Repository {
	return &Repository{
		Game:          NewGameRepository(db, config.SnapshotDir, log),
		Transaction:   NewTransactionRepository(db, config.SnapshotDir, log),
		Sentiment:     NewSentimentRepository(db, config.SnapshotDir, log),
		GenrePlaytime: NewGenrePlaytimeRepository(db, config.SnapshotDir, log),
		DeveloperYear: NewDeveloperYearRepository(db, config.SnapshotDir, log),
	}
}

// snapshotPath returns the parquet file backing one table
func snapshotPath(dir, table string) string {
	return filepath.Join(dir, table+".parquet")
}

// splitList splits a ';'-joined DuckDB list column back into elements
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}
