package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()
	hooks.OnOperation(ctx, &domain.OperationEvent{Operation: "synthesize", Duration: time.Millisecond})
	hooks.OnOperation(ctx, &domain.OperationEvent{Operation: "synthesize", CacheHit: true})
	hooks.OnOperation(ctx, &domain.OperationEvent{Operation: "language_power", Err: errors.New("boom")})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("synthesize", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("language_power", StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("synthesize")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	var calls []string
	h1 := domain.LifecycleHooks{OnOperation: func(context.Context, *domain.OperationEvent) { calls = append(calls, "one") }}
	h2 := domain.LifecycleHooks{}
	h3 := domain.LifecycleHooks{OnOperation: func(context.Context, *domain.OperationEvent) { calls = append(calls, "three") }}

	Chain(h1, h2, h3).OnOperation(context.Background(), &domain.OperationEvent{})
	assert.Equal(t, []string{"one", "three"}, calls)
}
