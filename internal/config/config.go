// Package config loads tileplan settings from the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. TILEPLAN_ALPHA.
const Prefix = "TILEPLAN"

// Config validation errors
var (
	ErrInvalidAlpha     = errors.New("alpha must be a finite number >= 0")
	ErrInvalidTimeout   = errors.New("timeout must be positive")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds the runtime settings shared by every command.
type Config struct {
	Alpha       float64       `envconfig:"ALPHA" default:"1"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Workers     int           `envconfig:"WORKERS" default:"0"` // 0 means one per CPU
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"console"`
	MetricsAddr string        `envconfig:"METRICS_ADDR" default:""` // empty disables /metrics
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Alpha:     1,
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads an optional dotenv file and then the environment.
// A missing dotenv file is not an error.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func Validate(cfg *Config) error {
	if cfg.Alpha < 0 || math.IsNaN(cfg.Alpha) || math.IsInf(cfg.Alpha, 0) {
		return ErrInvalidAlpha
	}
	if cfg.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}
