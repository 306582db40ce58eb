package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "MPESA_"

type Config struct {
	ClientKey         string       `koanf:"client_key" validate:"required"`
	ClientSecret      string       `koanf:"client_secret" validate:"required"`
	Environment       string       `koanf:"environment" validate:"required,oneof=production sandbox"`
	InitiatorPassword string       `koanf:"initiator_password"`
	PassKey           string       `koanf:"pass_key"`
	CertificateFile   string       `koanf:"certificate_file"`
	HTTP              HTTPConfig   `koanf:"http"`
	Logger            LoggerConfig `koanf:"logger"`
}

type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

var defaults = map[string]interface{}{
	"environment":   "sandbox",
	"http.timeout":  "30s",
	"logger.level":  "info",
	"logger.format": "text",
}

// LoadConfig reads MPESA_* variables; a .env file in the working directory is loaded first.
// Nested keys use a double underscore, e.g. MPESA_HTTP__TIMEOUT.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func (c LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func (c LoggerConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
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
