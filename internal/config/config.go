package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// ConfigFileEnv names an optional YAML file loaded before environment overrides.
const ConfigFileEnv = "GATEWAY_CONFIG_FILE"

const envPrefix = "GATEWAY_"

type Config struct {
	Primary    Primary      `koanf:"primary"`
	Server     ServerConfig `koanf:"server"`
	BankClient BankConfig   `koanf:"bank_client"`
	Retry      RetryConfig  `koanf:"retry"`
	Auth       AuthConfig   `koanf:"auth"`
	Logger     LoggerConfig `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

type BankConfig struct {
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	PaymentsPath   string        `koanf:"payments_path" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
	AttemptTimeout time.Duration `koanf:"attempt_timeout" validate:"required"`
}

// RetryConfig bounds retries of transient bank failures. Delay before retry n
// (zero based) is BaseDelay * 2^n.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay" validate:"required"`
	MaxRetries int           `koanf:"max_retries" validate:"min=0"`
}

type AuthConfig struct {
	Header string `koanf:"header" validate:"required"`
	APIKey string `koanf:"api_key" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         "10s",
		"server.write_timeout":        "60s",
		"server.idle_timeout":         "120s",
		"server.request_timeout":      "45s",
		"server.shutdown_timeout":     "30s",
		"bank_client.payments_path":   "/payments",
		"bank_client.request_timeout": "30s",
		"bank_client.attempt_timeout": "5s",
		"retry.base_delay":            "2s",
		"retry.max_retries":           3,
		"auth.header":                 "X-Api-Key",
		"logger.level":                "info",
		"logger.format":               "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default config", "error", err)
		return nil, err
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
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
