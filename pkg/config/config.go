// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	DatabaseURL string
	SQLitePath  string

	// Redis
	RedisURL     string
	CacheEnabled bool

	// RabbitMQ (remote mode event bus; empty means in-process)
	RabbitMQURL string

	// Analytics
	TrendWindowDays   []int
	ContextWindows    []int
	TrendCacheTTL     time.Duration
	CorrelationTTL    time.Duration
	TaskListCacheTTL  time.Duration
	TaskCacheTTL      time.Duration
	MoodCacheTTL      time.Duration
	ProductivityTTL   time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("ARIA_DB_PATH", "aria.db"),

		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CacheEnabled: getBoolEnv("CACHE_ENABLED", true),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		TrendWindowDays:  getIntListEnv("TREND_WINDOW_DAYS", []int{7, 14, 30}),
		ContextWindows:   getIntListEnv("CONTEXT_WINDOWS", []int{5, 10, 20}),
		TrendCacheTTL:    getDurationEnv("TREND_CACHE_TTL", 15*time.Minute),
		CorrelationTTL:   getDurationEnv("CORRELATION_CACHE_TTL", 30*time.Minute),
		TaskListCacheTTL: getDurationEnv("TASK_LIST_CACHE_TTL", 5*time.Minute),
		TaskCacheTTL:     getDurationEnv("TASK_CACHE_TTL", 10*time.Minute),
		MoodCacheTTL:     getDurationEnv("MOOD_CACHE_TTL", time.Hour),
		ProductivityTTL:  getDurationEnv("PRODUCTIVITY_CACHE_TTL", 30*time.Minute),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// UsesPostgres returns true when a PostgreSQL DSN is configured.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getIntListEnv parses a comma-separated list of integers, e.g. "7,14,30".
func getIntListEnv(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return defaultValue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
