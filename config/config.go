// Package config loads runtime configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/collegeops/attendance-service/store"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Config struct {
	// StorageBackend selects where collection snapshots live.
	StorageBackend string

	// DataDir is the snapshot directory for the file backend.
	DataDir string

	// RedisURL and RedisKeyPrefix configure the redis backend.
	RedisURL       string
	RedisKeyPrefix string

	LogLevel slog.Level
}

func LoadConfig() (*Config, error) {
	// .env is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg := &Config{
		StorageBackend: getEnv("ATTEND_STORAGE", BackendFile),
		DataDir:        getEnv("ATTEND_DATA_DIR", "./data"),
		RedisURL:       getEnv("ATTEND_REDIS_URL", "redis://localhost:6379/0"),
		RedisKeyPrefix: getEnv("ATTEND_REDIS_PREFIX", "attend:"),
		LogLevel:       parseLogLevel(getEnv("ATTEND_LOG_LEVEL", "info")),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}

// OpenStore constructs the configured snapshot store.
func (c *Config) OpenStore() (store.Store, error) {
	switch c.StorageBackend {
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendFile:
		return store.NewFileStore(c.DataDir)
	case BackendRedis:
		return store.NewRedisStoreURL(c.RedisURL, c.RedisKeyPrefix)
	}
	return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
