package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures the process level settings of the casino backend.
type Config struct {
	Addr     string // HTTP listen address
	RedisURL string // empty keeps hand history in memory only
	LogLevel string
	Table    string // table whose hand history this process owns
}

// Load reads an optional .env file and then the environment. A missing .env
// is not an error.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:     getenv("CASINO_ADDR", ":8080"),
		RedisURL: os.Getenv("CASINO_REDIS_URL"),
		LogLevel: getenv("CASINO_LOG_LEVEL", "info"),
		Table:    getenv("CASINO_TABLE", "lobby"),
	}
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
