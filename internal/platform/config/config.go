package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Store backends selectable via TALLY_STORE.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	Store           string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
	Redis           Redis
}

// Redis captures connection settings for the Redis-backed receipt store.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Defaults favor local development: port 8080, in-memory store.
func FromEnv() Server {
	return Server{
		Addr:            getEnv("TALLY_ADDR", ":8080"),
		Store:           getEnv("TALLY_STORE", StoreMemory),
		LogLevel:        parseLogLevel(getEnv("TALLY_LOG_LEVEL", "info")),
		ShutdownTimeout: getDuration("TALLY_SHUTDOWN_TIMEOUT", 10*time.Second),
		Redis: Redis{
			URL:          os.Getenv("TALLY_REDIS_URL"),
			PoolSize:     getInt("TALLY_REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("TALLY_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("TALLY_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("TALLY_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("TALLY_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
