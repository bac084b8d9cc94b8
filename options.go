package formlang

import (
	"log/slog"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/aretw0/formlang/pkg/ports"
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithCache memoises automata, powers and closures in the given cache.
func WithCache(cache ports.ResultCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithMaxPower sets the closure truncation depth returned by MaxPower (default 3).
func WithMaxPower(n int) Option {
	return func(e *Engine) {
		e.maxPower = n
	}
}

// WithMaxWords rejects operations whose result could exceed n words.
// Zero disables the check.
func WithMaxWords(n int) Option {
	return func(e *Engine) {
		e.maxWords = n
	}
}
