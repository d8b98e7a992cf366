// main.go
package main

import (
	"log"

	"steam-insights/cmd"
	"steam-insights/internal/data/repository"
	"steam-insights/internal/wire"
	"steam-insights/pkg/database"
	"steam-insights/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("snapshot_dir", config.Dataset.SnapshotDir),
	)

	// Open the analytical database (in-memory DuckDB over the snapshot)
	db, err := database.InitDB(config.Dataset)
	if err != nil {
		logger.Fatal("Failed to open snapshot database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Snapshot database ready")

	// Initialize all repositories (tables load lazily, once each)
	repos := repository.NewRepository(db, config.Dataset, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
