// Package config загружает настройки сервиса из окружения и файла .env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит настройки веб-интерфейса доски активностей.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	APIBaseURL string        `env:"ACTIVITIES_API_URL" envDefault:"http://localhost:8000"`
	APITimeout time.Duration `env:"ACTIVITIES_API_TIMEOUT" envDefault:"0s"`

	BannerTimeout time.Duration `env:"BANNER_TIMEOUT" envDefault:"4s"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает .env (если он есть) и переменные окружения.
// Уже заданные переменные окружения имеют приоритет над .env.
func Load(files ...string) (Config, error) {
	// без явных файлов .env необязателен, но битый .env считается ошибкой
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ACTIVITIES_API_URL %q must be an absolute http(s) url", c.APIBaseURL)
	}
	if c.APITimeout < 0 {
		return errors.New("ACTIVITIES_API_TIMEOUT must not be negative")
	}
	if c.BannerTimeout <= 0 {
		return errors.New("BANNER_TIMEOUT must be positive")
	}
	return nil
}

// SlogLevel переводит LOG_LEVEL в уровень slog; неизвестные значения дают info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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
