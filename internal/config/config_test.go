package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMaxPower, cfg.MaxPower)
	assert.Equal(t, 100000, cfg.MaxWords)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.Metrics)
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.Redis.TTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formlang.yaml")
	content := `
max_power: 5
cache:
  backend: redis
  redis:
    addr: cache:6379
    ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	env := map[string]string{
		"FORMLANG_MAX_POWER":      "7",
		"FORMLANG_HTTP_METRICS":   "false",
		"FORMLANG_CACHE_REDIS_DB": "2",
	}
	cfg, err := LoadWith(path, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxPower, "env wins over file")
	assert.False(t, cfg.HTTP.Metrics)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Cache.Redis.TTL)
	assert.Equal(t, "formlang:cache:", cfg.Cache.Redis.Prefix, "untouched defaults survive the merge")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"negative max power", "max_power: -1\n"},
		{"unknown backend", "cache:\n  backend: etcd\n"},
		{"unknown key", "maxpower: 3\n"},
		{"malformed yaml", "max_power: [\n"},
		{"redis without addr", "cache:\n  backend: redis\n  redis:\n    addr: \"\"\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadWith(path, noEnv)
			assert.Error(t, err)
		})
	}
}

func TestValidate_NegativeMaxPowerIsInvalidArgument(t *testing.T) {
	cfg := Config{MaxPower: -2, Cache: CacheConfig{Backend: BackendNone}}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidArgument)
}
