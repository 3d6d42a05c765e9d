package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/studyquiz-api/internal/config"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "SERVICE_NAME", "ALLOWED_ORIGINS", "MAX_BODY_BYTES", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		clearEnv(t)

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	})

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, ":3000", cfg.Addr())
		assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
		assert.Equal(t, "Backend Zinda Hai", cfg.ServiceName)
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
		assert.Equal(t, int64(10*1024*1024), cfg.MaxBodyBytes)
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("PORT", "8080")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("MAX_BODY_BYTES", "2048")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
		assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		// godotenv only fills variables that are absent, not empty.
		require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
		require.NoError(t, os.Unsetenv("GEMINI_MODEL"))

		dir := t.TempDir()
		env := "GEMINI_API_KEY=from-dotenv\nGEMINI_MODEL=gemini-2.5-pro\nPORT=7070\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
		t.Chdir(dir)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.GeminiAPIKey)
		assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
		assert.Equal(t, ":9090", cfg.Addr(), "process environment wins over .env")
	})

	t.Run("MalformedDotEnvFile", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))
		t.Chdir(dir)

		_, err := config.Load()
		assert.ErrorContains(t, err, "load .env")
	})

	t.Run("InvalidBodyLimit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("MAX_BODY_BYTES", "lots")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	config.InitLogger("debug", "text")
	assert.Equal(t, logrus.DebugLevel, config.Logger.GetLevel())

	config.InitLogger("nonsense", "json")
	assert.Equal(t, logrus.InfoLevel, config.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, config.Logger.Formatter)
}

func TestWithContext(t *testing.T) {
	entry := config.WithContext(context.Background())
	assert.NotContains(t, entry.Data, "request_id")

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-7")
	entry = config.WithContext(ctx)
	assert.Equal(t, "req-7", entry.Data["request_id"])
}
