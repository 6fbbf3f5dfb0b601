package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIBaseURL is used whenever no base URL is configured.
const DefaultAPIBaseURL = "https://ventas-bfzl.onrender.com"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	Env                string        `mapstructure:"app_env"`
	LogLevel           string        `mapstructure:"log_level"`
	APIBaseURL         string        `mapstructure:"api_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	SnapshotStorageType string `mapstructure:"snapshot_storage_type"`
	SnapshotPath        string `mapstructure:"snapshot_path"`
	PublishersFile      string `mapstructure:"publishers_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "dulpromax-b2b")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "")
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("snapshot_storage_type", "none")
	v.SetDefault("snapshot_path", "./data/catalog.db")
	v.SetDefault("publishers_file", "")

	v.AutomaticEnv()
	// The frontend build reads the same endpoint from VITE_API_BASE_URL.
	if err := v.BindEnv("api_base_url", "API_BASE_URL", "VITE_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("bind api_base_url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	cfg.SnapshotStorageType = strings.ToLower(strings.TrimSpace(cfg.SnapshotStorageType))
	cfg.PublishersFile = strings.TrimSpace(cfg.PublishersFile)

	return &cfg, nil
}
