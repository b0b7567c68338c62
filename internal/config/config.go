package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	RateLimitRPS   float64
	RateLimitBurst int

	// invalid values replaced by defaults, reported by LogWarnings
	warnings []warning
}

type warning struct {
	key      string
	value    string
	fallback any
}

// Load reads the environment. It does not log: call LogWarnings once the
// logger built from the result is installed.
func Load() Config {
	var w []warning
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5, &w),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10, &w),
		warnings:       w,
	}
}

// LogWarnings reports every environment value Load had to replace with its default.
func (c Config) LogWarnings(logger *slog.Logger) {
	for _, w := range c.warnings {
		logger.Warn("invalid value in environment, using default", "key", w.key, "value", w.value, "default", w.fallback)
	}
}

// NewLogger builds the slog logger for cfg. Production gets JSON output.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.Env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int, warnings *[]warning) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		*warnings = append(*warnings, warning{key: key, value: v, fallback: fallback})
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64, warnings *[]warning) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		*warnings = append(*warnings, warning{key: key, value: v, fallback: fallback})
		return fallback
	}
	return f
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
