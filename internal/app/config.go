package app

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSupabase = "supabase"
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port string `env:"GOPORT" envDefault:"8000"`

	DBDriver    string  `env:"DB_DRIVER" envDefault:"supabase"`
	DBUrl       string  `env:"DB_URL"`
	DBApiKey    string  `env:"DB_API_KEY"`
	DBRateLimit float64 `env:"DB_RATE_LIMIT" envDefault:"10"`
	DBRateBurst int     `env:"DB_RATE_BURST" envDefault:"5"`

	SeedFile   string `env:"SEED_FILE"`
	SQLitePath string `env:"SQLITE_PATH"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// LoadConfig reads the process configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DBDriver {
	case DriverSupabase:
		if cfg.DBUrl == "" {
			return Config{}, fmt.Errorf("DB_URL is required for the %s driver", cfg.DBDriver)
		}
		if cfg.DBApiKey == "" {
			slog.Error("DB_API_KEY environment variable not set")
		}
	case DriverCSV:
		if cfg.SeedFile == "" {
			return Config{}, fmt.Errorf("SEED_FILE is required for the %s driver", cfg.DBDriver)
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return Config{}, fmt.Errorf("SQLITE_PATH is required for the %s driver", cfg.DBDriver)
		}
	default:
		return Config{}, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}
