package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/internal/config"
	"github.com/aretw0/formlang/pkg/adapters/memory"
	"github.com/aretw0/formlang/pkg/adapters/redis"
	"github.com/aretw0/formlang/pkg/observability"
	"github.com/aretw0/formlang/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime bundles the engine with the resources created for it.
type Runtime struct {
	Engine   *formlang.Engine
	Logger   *slog.Logger
	Registry *prometheus.Registry

	closers []func() error
}

// Close releases cache connections.
func (r *Runtime) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewRuntime initializes an engine with standard CLI conventions:
// the configured cache backend and Prometheus metrics on a private registry.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	// 1. Metrics & Hooks
	metrics, err := observability.NewMetrics(rt.Registry)
	if err != nil {
		return nil, err
	}

	engineOpts := []formlang.Option{
		formlang.WithLogger(logger),
		formlang.WithLifecycleHooks(metrics.Hooks()),
		formlang.WithMaxPower(cfg.MaxPower),
		formlang.WithMaxWords(cfg.MaxWords),
	}

	// 2. Cache
	cache, err := rt.createCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		engineOpts = append(engineOpts, formlang.WithCache(cache))
	}

	// 3. Initialize
	rt.Engine, err = formlang.New(engineOpts...)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return rt, nil
}

func (rt *Runtime) createCache(ctx context.Context, cfg config.CacheConfig) (ports.ResultCache, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewCache(), nil
	case config.BackendRedis:
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, fmt.Errorf("redis cache at %s unreachable: %w", cfg.Redis.Addr, err)
		}
		rt.closers = append(rt.closers, cache.Close)
		rt.Logger.Info("Using redis result cache", "addr", cfg.Redis.Addr)
		return cache, nil
	}
	return nil, nil
}
