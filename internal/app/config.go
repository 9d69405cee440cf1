package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrparsing/suggerimento-canti/internal/adapters/openai"
	"github.com/mrparsing/suggerimento-canti/internal/domain/mass"
)

// DefaultConfigFile is the config file looked for when none is given.
const DefaultConfigFile = "canti.yaml"

// EmbeddingConfig selects the embeddings endpoint and model.
type EmbeddingConfig struct {
	BaseURL string `yaml:"base_url"` // empty keeps the client default
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// ReadingsConfig selects the daily readings source.
type ReadingsConfig struct {
	BaseURL        string `yaml:"base_url"` // empty uses the CEI site
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Config is the full application configuration: YAML file with environment
// overrides. Every field has a usable default; a missing config file is not
// an error.
type Config struct {
	Repertoire string          `yaml:"repertoire"`
	CacheDB    string          `yaml:"cache_db"`
	OutputDir  string          `yaml:"output_dir"`
	Color      string          `yaml:"color"`
	LogLevel   string          `yaml:"log_level"`
	Embedding  EmbeddingConfig `yaml:"embedding"`
	Readings   ReadingsConfig  `yaml:"readings"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Repertoire: "canti.json",
		CacheDB:    ".canti/cache.db",
		OutputDir:  ".",
		Color:      mass.DefaultColor,
		LogLevel:   "info",
		Embedding: EmbeddingConfig{
			Model: openai.DefaultModel,
		},
		Readings: ReadingsConfig{
			TimeoutSeconds: 10,
		},
	}
}

// LoadConfig loads path (or DefaultConfigFile when path is empty) on top of
// the defaults, then applies environment overrides. Only an explicitly named
// file is required to exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults only
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv maps CANTI_* variables onto the config. The embedding key also
// falls back to OPENAI_API_KEY, the name most embedding servers expect.
func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	set(&c.Repertoire, "CANTI_REPERTOIRE")
	set(&c.CacheDB, "CANTI_CACHE_DB")
	set(&c.OutputDir, "CANTI_OUTPUT_DIR")
	set(&c.Color, "CANTI_COLOR")
	set(&c.LogLevel, "CANTI_LOG_LEVEL")
	set(&c.Embedding.BaseURL, "CANTI_EMBED_BASE_URL")
	set(&c.Embedding.Model, "CANTI_EMBED_MODEL")
	set(&c.Embedding.APIKey, "CANTI_EMBED_API_KEY")
	if c.Embedding.APIKey == "" {
		c.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	set(&c.Readings.BaseURL, "CANTI_READINGS_BASE_URL")
}

// SlogLevel translates the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
