package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = "3000"
	DefaultGeminiModel  = "gemini-2.0-flash"
	DefaultServiceName  = "Backend Zinda Hai"
	DefaultMaxBodyBytes = 10 << 20
)

// AppConfig is read once at startup and shared read-only by every request.
type AppConfig struct {
	Port           string
	GeminiAPIKey   string
	GeminiModel    string
	ServiceName    string
	AllowedOrigins []string
	MaxBodyBytes   int64
	LogLevel       string
	LogFormat      string
}

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Load builds the configuration from the process environment. A .env file in
// the working directory is read first; variables already set win over it.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &AppConfig{
		Port:           getEnv("PORT", DefaultPort),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", DefaultGeminiModel),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		MaxBodyBytes:   DefaultMaxBodyBytes,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	if raw := getEnv("MAX_BODY_BYTES", ""); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_BODY_BYTES %q", raw)
		}
		cfg.MaxBodyBytes = n
	}

	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *AppConfig) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
