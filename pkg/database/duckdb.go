package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"steam-insights/pkg/utils"
)

// DuckIface interface for database abstraction
type DuckIface interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// DB wrapper struct
type DB struct {
	conn *sql.DB
}

// QueryContext implements DuckIface
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// QueryRowContext implements DuckIface
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// PingContext implements DuckIface
func (db *DB) PingContext(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close implements DuckIface
func (db *DB) Close() error {
	return db.conn.Close()
}

// InitDB opens an in-memory DuckDB instance. The snapshot itself stays in
// parquet files; tables are pulled in through read_parquet at load time,
// so there is no database file and no write path.
func InitDB(config utils.DatasetConfig) (DuckIface, error) {
	numThreads := config.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Build connection string with tuning options
	connStr := fmt.Sprintf("?threads=%d&max_memory=%s&access_mode=read_write&autoinstall_known_extensions=false&autoload_known_extensions=false",
		numThreads, config.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	// A single in-process connection is enough for read-only analytics
	conn.SetMaxOpenConns(numThreads)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping duckdb failed: %w", err)
	}

	return &DB{conn: conn}, nil
}
