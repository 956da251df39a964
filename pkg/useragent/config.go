package useragent

import (
	"errors"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven detector settings.
type Config struct {
	ExtensionsFile   string        `env:"UA_EXTENSIONS_FILE"`
	PatternCacheSize int           `env:"UA_PATTERN_CACHE_SIZE" envDefault:"512"`
	MatchTimeout     time.Duration `env:"UA_MATCH_TIMEOUT" envDefault:"100ms"`
	LogLevel         string        `env:"UA_LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"UA_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment. The given .env files are
// loaded first; without arguments an optional ./.env is loaded if present.
// Variables already set in the environment take precedence over .env files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// the default .env file is optional
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a Detector from cfg. opts are applied after the
// settings derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Detector, error) {
	base := []Option{
		WithCacheSize(cfg.PatternCacheSize),
		WithTimeout(cfg.MatchTimeout),
	}

	if cfg.ExtensionsFile != "" {
		ext, err := LoadExtensions(cfg.ExtensionsFile)
		if err != nil {
			return nil, err
		}
		base = append(base, WithExtraExtensions(ext))
	}

	return New(append(base, opts...)...)
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("extensions_file", c.ExtensionsFile),
		slog.Int("pattern_cache_size", c.PatternCacheSize),
		slog.Duration("match_timeout", c.MatchTimeout),
		slog.String("log_level", c.LogLevel),
		slog.String("log_format", c.LogFormat),
	)
}
