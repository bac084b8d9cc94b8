package formlang

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/aretw0/formlang/internal/logging"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/aretw0/formlang/pkg/ports"
	"github.com/cockroachdb/errors"
)

// Engine is the high-level entry point of the library.
// It holds configuration only and is safe for concurrent use.
type Engine struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	cache    ports.ResultCache
	maxPower int
	maxWords int
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		maxPower: domain.DefaultMaxPower,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.maxPower < 0 {
		return nil, domain.NegativeExponent("default maxPower", eng.maxPower)
	}
	if eng.maxWords < 0 {
		return nil, errors.Wrapf(domain.ErrInvalidArgument, "maxWords must be non-negative, got %d", eng.maxWords)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng, nil
}

// MaxPower returns the default closure truncation depth.
func (e *Engine) MaxPower() int {
	return e.maxPower
}

// MaxWords returns the result-size budget, 0 when unlimited.
func (e *Engine) MaxWords() int {
	return e.maxWords
}

// observe reports a finished operation to the logger and the hooks.
func (e *Engine) observe(ctx context.Context, op string, start time.Time, hit bool, err error) {
	evt := &domain.OperationEvent{
		Timestamp: start,
		Operation: op,
		Duration:  time.Since(start),
		CacheHit:  hit,
		Err:       err,
	}
	if err != nil {
		e.logger.Debug("operation failed", "op", op, "err", err)
	} else {
		e.logger.Debug("operation", "op", op, "duration", evt.Duration, "cache_hit", hit)
	}
	if e.hooks.OnOperation != nil {
		e.hooks.OnOperation(ctx, evt)
	}
}

// run wraps an uncached operation with the context check and observation.
func run[T any](ctx context.Context, e *Engine, op string, compute func() (T, error)) (T, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		var zero T
		e.observe(ctx, op, start, false, err)
		return zero, err
	}
	res, err := compute()
	e.observe(ctx, op, start, false, err)
	return res, err
}

// cached behaves like run but consults the result cache first.
// Cache failures are logged and otherwise ignored.
func cached[T any](ctx context.Context, e *Engine, op string, input any, compute func() (T, error)) (T, error) {
	if e.cache == nil {
		return run(ctx, e, op, compute)
	}

	start := time.Now()
	var zero T
	if err := ctx.Err(); err != nil {
		e.observe(ctx, op, start, false, err)
		return zero, err
	}

	key, err := Fingerprint(op, input)
	if err != nil {
		e.logger.Warn("cache key", "op", op, "err", err)
		return run(ctx, e, op, compute)
	}

	if data, err := e.cache.Get(ctx, key); err == nil {
		var res T
		if err := json.Unmarshal(data, &res); err == nil {
			e.observe(ctx, op, start, true, nil)
			return res, nil
		}
		e.logger.Warn("discarding undecodable cache entry", "op", op, "key", key)
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		e.logger.Warn("cache get failed", "op", op, "err", err)
	}

	res, err := compute()
	if err == nil {
		if data, mErr := json.Marshal(res); mErr == nil {
			if sErr := e.cache.Set(ctx, key, data); sErr != nil {
				e.logger.Warn("cache set failed", "op", op, "err", sErr)
			}
		}
	}
	e.observe(ctx, op, start, false, err)
	return res, err
}

// Fingerprint derives the cache key of an operation from its canonical JSON input.
// Languages encode as sorted arrays, so equal sets share a key.
func Fingerprint(op string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode %s input", op)
	}
	sum := sha256.Sum256(data)
	return op + ":" + hex.EncodeToString(sum[:]), nil
}

// checkBudget fails with ErrTooLarge when size exceeds the configured budget.
func (e *Engine) checkBudget(op string, size int) error {
	if e.maxWords == 0 || size <= e.maxWords {
		return nil
	}
	err := errors.Wrapf(domain.ErrTooLarge, "%s could produce %d words, limit is %d", op, size, e.maxWords)
	return errors.WithHint(err, "lower the exponent or shrink the input languages")
}

// checkLength fails with ErrTooLarge when a word of length symbols repeated n
// times would exceed the budget. Without a budget it only rejects lengths that
// overflow int.
func (e *Engine) checkLength(op string, length, n int) error {
	limit := e.maxWords
	if limit == 0 {
		limit = math.MaxInt
	}
	if length == 0 || n <= limit/length {
		return nil
	}
	err := errors.Wrapf(domain.ErrTooLarge, "%s could produce a word of %d×%d symbols, limit is %d", op, length, n, limit)
	return errors.WithHint(err, "lower the exponent or shorten the input words")
}
