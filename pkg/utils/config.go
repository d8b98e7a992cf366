package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// DatasetConfig points at the columnar snapshot directory. One parquet
// file per table lives under SnapshotDir.
type DatasetConfig struct {
	SnapshotDir string
	Threads     int
	MaxMemory   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SNAPSHOT_DIR", "data/")
	viper.SetDefault("DB_THREADS", 0)
	viper.SetDefault("DB_MAX_MEMORY", "1GB")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Dataset: DatasetConfig{
			SnapshotDir: viper.GetString("SNAPSHOT_DIR"),
			Threads:     viper.GetInt("DB_THREADS"),
			MaxMemory:   viper.GetString("DB_MAX_MEMORY"),
		},
	}

	return config, nil
}
