package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-board/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Zero(t, cfg.APITimeout)
	assert.Equal(t, 4*time.Second, cfg.BannerTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ACTIVITIES_API_URL", "https://api.mergington.edu")
	t.Setenv("ACTIVITIES_API_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "https://api.mergington.edu", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_TTL=1h\nHTTP_ADDR=:7000\n"), 0o600))

	// переменная окружения важнее файла
	t.Setenv("HTTP_ADDR", ":7001")
	// godotenv выставляет переменные процесса; регистрируем откат через t.Setenv
	t.Setenv("SESSION_TTL", "")
	require.NoError(t, os.Unsetenv("SESSION_TTL"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, ":7001", cfg.HTTPAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "relative api url", key: "ACTIVITIES_API_URL", value: "/activities"},
		{name: "bad scheme", key: "ACTIVITIES_API_URL", value: "ftp://x"},
		{name: "negative timeout", key: "ACTIVITIES_API_TIMEOUT", value: "-1s"},
		{name: "zero banner", key: "BANNER_TIMEOUT", value: "0s"},
		{name: "unparsable duration", key: "SESSION_TTL", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoad_MalformedDefaultEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err := config.Load()
	assert.Error(t, err)
}
