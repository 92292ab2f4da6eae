package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Local file via gorm (default)
	DatabaseDriverPostgres DatabaseDriver = "postgres" // PostgreSQL via pgx
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port int32
		Host string
		Mode string // gin mode: debug, release or test
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver       DatabaseDriver
		Path         string // SQLite file, used by the sqlite driver
		DSN          string // Connection string, used by the postgres driver
		QueryTimeout time.Duration
		LogLevel     string // gorm logger level: silent, error, warn, info
	}
)

// loadEnvFiles populates the process environment from .env files. Variables
// already set by the runtime win, then .env.local, then .env.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

func NewConfig() *Config {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("database_driver", string(DatabaseDriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", DefaultDatabaseDSN)
	v.SetDefault("database_query_timeout", "5s")
	v.SetDefault("database_log_level", "warn")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
			Mode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:       DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:         v.GetString("DATABASE_PATH"),
			DSN:          v.GetString("DATABASE_DSN"),
			QueryTimeout: v.GetDuration("DATABASE_QUERY_TIMEOUT"),
			LogLevel:     v.GetString("DATABASE_LOG_LEVEL"),
		},
	}
}
