// Package config loads the formlang runtime configuration.
//
// Sources are merged in precedence order: built-in defaults, the YAML file,
// then FORMLANG_* environment variables. Command-line flags are applied on top
// by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "formlang.yaml"

// EnvPrefix prefixes environment overrides, e.g. FORMLANG_CACHE_REDIS_ADDR.
const EnvPrefix = "FORMLANG"

// Cache backends.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the complete runtime configuration.
type Config struct {
	MaxPower int         `mapstructure:"max_power" yaml:"max_power"`
	MaxWords int         `mapstructure:"max_words" yaml:"max_words"`
	LogLevel string      `mapstructure:"log_level" yaml:"log_level"`
	HTTP     HTTPConfig  `mapstructure:"http" yaml:"http"`
	Cache    CacheConfig `mapstructure:"cache" yaml:"cache"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr    string `mapstructure:"addr" yaml:"addr"`
	Metrics bool   `mapstructure:"metrics" yaml:"metrics"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string      `mapstructure:"backend" yaml:"backend"`
	Redis   RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// Defaults returns the built-in configuration as a nested map.
func Defaults() map[string]any {
	return map[string]any{
		"max_power": domain.DefaultMaxPower,
		"max_words": 100000,
		"log_level": "info",
		"http": map[string]any{
			"addr":    ":8080",
			"metrics": true,
		},
		"cache": map[string]any{
			"backend": BackendMemory,
			"redis": map[string]any{
				"addr":     "localhost:6379",
				"password": "",
				"db":       0,
				"prefix":   "formlang:cache:",
				"ttl":      "1h",
			},
		},
	}
}

// Load reads path (a missing file is treated as empty) and the environment.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment lookup, for tests.
func LoadWith(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	merged := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No file: defaults and environment only.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			var file map[string]any
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			merge(merged, file)
		}
	}

	applyEnv(merged, EnvPrefix, lookupEnv)

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and the cache backend.
func (c *Config) Validate() error {
	if c.MaxPower < 0 {
		return domain.NegativeExponent("max_power", c.MaxPower)
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("max_words must be non-negative, got %d", c.MaxWords)
	}
	switch c.Cache.Backend {
	case BackendNone, BackendMemory:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q (want none, memory or redis)", c.Cache.Backend)
	}
	return nil
}

func decode(raw map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// applyEnv overrides every known leaf key from PREFIX_PATH_TO_KEY.
func applyEnv(m map[string]any, prefix string, lookupEnv func(string) (string, bool)) {
	for k, v := range m {
		name := prefix + "_" + strings.ToUpper(k)
		if sub, ok := v.(map[string]any); ok {
			applyEnv(sub, name, lookupEnv)
			continue
		}
		if val, ok := lookupEnv(name); ok {
			m[k] = val
		}
	}
}
