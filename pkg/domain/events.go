package domain

import (
	"context"
	"time"
)

// OperationEvent describes one completed facade operation.
type OperationEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Operation string        `json:"operation"`
	Duration  time.Duration `json:"duration"`
	CacheHit  bool          `json:"cache_hit,omitempty"`
	Err       error         `json:"-"`
}

// Failed reports whether the operation returned an error.
func (e *OperationEvent) Failed() bool {
	return e.Err != nil
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnOperation func(context.Context, *OperationEvent)
}
