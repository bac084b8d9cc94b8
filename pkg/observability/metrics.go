package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics records per-operation counters and latencies.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cacheHits  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formlang_operations_total",
				Help: "Total number of engine operations by outcome",
			},
			[]string{"op", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formlang_operation_duration_seconds",
				Help:    "Duration of engine operations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"op"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formlang_cache_hits_total",
				Help: "Operations answered from the result cache",
			},
			[]string{"op"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration, m.cacheHits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Observe records one operation event.
func (m *Metrics) Observe(e *domain.OperationEvent) {
	status := StatusOK
	if e.Failed() {
		status = StatusError
	}
	m.operations.WithLabelValues(e.Operation, status).Inc()
	m.duration.WithLabelValues(e.Operation).Observe(e.Duration.Seconds())
	if e.CacheHit {
		m.cacheHits.WithLabelValues(e.Operation).Inc()
	}
}

// Hooks returns lifecycle hooks that feed m. Pass them to formlang.WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(_ context.Context, e *domain.OperationEvent) {
			m.Observe(e)
		},
	}
}

// Chain combines several hooks into one.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			for _, h := range hooks {
				if h.OnOperation != nil {
					h.OnOperation(ctx, e)
				}
			}
		},
	}
}
