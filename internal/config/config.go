package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr        string
	LogLevel        slog.Level
	Location        *time.Location
	CacheMaxEntries int
	TickerInterval  time.Duration
	TickerBasePrice decimal.Decimal
}

// rawConfig is the environment as read, before validation.
type rawConfig struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Timezone        string        `env:"TIMEZONE" envDefault:"Local"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"4096"`
	TickerInterval  time.Duration `env:"TICKER_INTERVAL" envDefault:"30s"`
	TickerBasePrice string        `env:"TICKER_BASE_PRICE" envDefault:"45000"`
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom parses the given variables only. Used by tests and tools.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	raw, err := env.ParseAsWithOptions[rawConfig](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	level, err := parseLogLevel(raw.LogLevel)
	if err != nil {
		return Config{}, err
	}

	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE %q: %w", raw.Timezone, err)
	}

	price, err := decimal.NewFromString(raw.TickerBasePrice)
	if err != nil || !price.IsPositive() {
		return Config{}, fmt.Errorf("invalid TICKER_BASE_PRICE %q", raw.TickerBasePrice)
	}

	if raw.CacheMaxEntries <= 0 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be positive, got %d", raw.CacheMaxEntries)
	}
	if raw.TickerInterval <= 0 {
		return Config{}, fmt.Errorf("TICKER_INTERVAL must be positive, got %s", raw.TickerInterval)
	}

	return Config{
		HTTPAddr:        raw.HTTPAddr,
		LogLevel:        level,
		Location:        loc,
		CacheMaxEntries: raw.CacheMaxEntries,
		TickerInterval:  raw.TickerInterval,
		TickerBasePrice: price,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
