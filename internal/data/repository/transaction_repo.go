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

type TransactionRepository interface {
	All(ctx context.Context) ([]entity.UserTransaction, error)
}

type transactionRepository struct {
	db   database.DuckIface
	log  *zap.Logger
	path string

	once sync.Once
	rows []entity.UserTransaction
	err  error
}

func NewTransactionRepository(db database.DuckIface, snapshotDir string, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:   db,
		log:  log.With(zap.String("repository", "transaction")),
		path: snapshotPath(snapshotDir, "transactions"),
	}
}

// All returns every transaction row in stored order, loaded once
func (r *transactionRepository) All(ctx context.Context) ([]entity.UserTransaction, error) {
	r.once.Do(func() {
		start := time.Now()
		r.rows, r.err = r.load(context.WithoutCancel(ctx))
		if r.err != nil {
			metrics.SnapshotLoadErrors.WithLabelValues("transactions").Inc()
			r.log.Error("Failed to load transactions table", zap.Error(r.err))
			return
		}
		metrics.RecordTableLoad("transactions", len(r.rows), time.Since(start))
		r.log.Info("Transactions table loaded",
			zap.Int("rows", len(r.rows)),
			zap.Duration("took", time.Since(start)),
		)
	})

	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *transactionRepository) load(ctx context.Context) ([]entity.UserTransaction, error) {
	query := `
		SELECT user_id, item_id, price, recommend
		FROM read_parquet(?)
	`

	rows, err := r.db.QueryContext(ctx, query, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read transactions snapshot: %v", utils.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var txs []entity.UserTransaction
	for rows.Next() {
		var t entity.UserTransaction
		if err := rows.Scan(&t.UserID, &t.ItemID, &t.Price, &t.Recommend); err != nil {
			return nil, fmt.Errorf("%w: scan transaction row: %v", utils.ErrDataUnavailable, err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions snapshot: %v", utils.ErrDataUnavailable, err)
	}

	return txs, nil
}
