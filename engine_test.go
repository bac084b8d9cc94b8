package formlang

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/aretw0/formlang/pkg/adapters/memory"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects operation events.
type recorder struct {
	mu     sync.Mutex
	events []domain.OperationEvent
}

func (r *recorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, *e)
		},
	}
}

func (r *recorder) last() *domain.OperationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	evt := r.events[len(r.events)-1]
	return &evt
}

// brokenCache fails every call.
type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenCache) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("connection refused")
}

func (brokenCache) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestNew(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxPower, eng.MaxPower())
	assert.Zero(t, eng.MaxWords())

	eng, err = New(WithMaxPower(5), WithMaxWords(10))
	require.NoError(t, err)
	assert.Equal(t, 5, eng.MaxPower())
	assert.Equal(t, 10, eng.MaxWords())

	_, err = New(WithMaxPower(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = New(WithMaxWords(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestEngine_StringOperations(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	s, err := eng.Concat(ctx, "ab", "cd")
	require.NoError(t, err)
	assert.Equal(t, "abcd", s)

	p, err := eng.PowerPair(ctx, "ab", 3, "x", 0)
	require.NoError(t, err)
	assert.Equal(t, Pair[string]{W: "ababab", X: ""}, p)

	_, err = eng.PowerPair(ctx, "ab", 1, "x", -2)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	r, err := eng.ReversePair(ctx, "añb", "")
	require.NoError(t, err)
	assert.Equal(t, Pair[string]{W: "bña", X: ""}, r)

	n, err := eng.LenPair(ctx, "añb", "")
	require.NoError(t, err)
	assert.Equal(t, Pair[int]{W: 3, X: 0}, n)

	eq, err := eng.Equal(ctx, "a", "a")
	require.NoError(t, err)
	assert.True(t, eq)

	a, err := eng.AffixesPair(ctx, "ab", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "ab"}, a.W.Prefixes)
	assert.Equal(t, []string{"ab", "b", ""}, a.W.Suffixes)
	assert.Equal(t, []string{""}, a.X.Prefixes)

	syms, err := eng.AlphabetUnion(ctx, "ab", "bc")
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{"a", "b", "c"}, syms)

	c, err := eng.ClosurePair(ctx, "ab", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ab", "abab"}, c.W.Words.Words())
	assert.False(t, c.W.Exact)
	assert.True(t, c.X.Exact)

	pc, err := eng.PositiveClosurePair(ctx, "a", "", 0)
	require.NoError(t, err)
	assert.True(t, pc.W.Words.IsEmpty())
	assert.False(t, pc.X.Exact)
}

func TestEngine_LanguageOperations(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	ctx := context.Background()
	l1 := domain.NewLanguage("a", "b")
	l2 := domain.NewLanguage("b", "c")

	got, err := eng.LanguageConcat(ctx, l1, l2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ac", "bb", "bc"}, got.Words())

	got, err = eng.Union(ctx, l1, l2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Words())

	got, err = eng.Intersect(ctx, l1, l2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Words())

	d, err := eng.Difference(ctx, l1, l2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, d.LeftOnly.Words())
	assert.Equal(t, []string{"c"}, d.RightOnly.Words())

	got, err = eng.LanguageReverse(ctx, domain.NewLanguage("ab", "ba"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ba"}, got.Words())

	got, err = eng.Power(ctx, domain.NewLanguage(), 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(domain.Epsilon()))

	got, err = eng.Power(ctx, domain.NewLanguage(), 2)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	k, err := eng.KleeneClosure(ctx, domain.NewLanguage(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, k.Words.Words())
	assert.True(t, k.Exact)
}

func TestEngine_Budget(t *testing.T) {
	eng, err := New(WithMaxWords(3))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = eng.LanguageConcat(ctx, domain.NewLanguage("a", "b"), domain.NewLanguage("c", "d"))
	require.ErrorIs(t, err, domain.ErrTooLarge)
	assert.NotEmpty(t, domain.Hint(err))

	_, err = eng.Power(ctx, domain.NewLanguage("a", "b"), 2)
	assert.ErrorIs(t, err, domain.ErrTooLarge)

	_, err = eng.KleeneClosure(ctx, domain.NewLanguage("a", "b"), 2)
	assert.ErrorIs(t, err, domain.ErrTooLarge)

	// {a}* up to a² has three words.
	c, err := eng.KleeneClosure(ctx, domain.NewLanguage("a"), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Words.Len())

	_, err = eng.PowerPair(ctx, "ab", 2, "", 0)
	assert.ErrorIs(t, err, domain.ErrTooLarge)

	_, err = eng.ClosurePair(ctx, "ab", "", 2)
	assert.ErrorIs(t, err, domain.ErrTooLarge)
}

func TestEngine_BudgetHugeExponents(t *testing.T) {
	ctx := context.Background()

	t.Run("With budget", func(t *testing.T) {
		eng, err := New(WithMaxWords(100000))
		require.NoError(t, err)

		_, err = eng.PowerPair(ctx, "abcd", 1<<62, "", 0)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		_, err = eng.PowerPair(ctx, "", 0, "x", math.MaxInt)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		// A singleton never grows in words, only in symbols.
		_, err = eng.Power(ctx, domain.NewLanguage("a"), 1<<40)
		require.ErrorIs(t, err, domain.ErrTooLarge)
		assert.NotEmpty(t, domain.Hint(err))

		_, err = eng.KleeneClosure(ctx, domain.NewLanguage("a"), 1<<40)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		_, err = eng.ClosurePair(ctx, "ab", "", 1<<40)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		// ∅ and {ε} stay small for any exponent.
		p, err := eng.Power(ctx, domain.NewLanguage(""), 1<<40)
		require.NoError(t, err)
		assert.True(t, p.Equal(domain.Epsilon()))

		c, err := eng.PositiveClosure(ctx, domain.NewLanguage(), 1<<40)
		require.NoError(t, err)
		assert.True(t, c.Words.IsEmpty())
	})

	t.Run("Without budget", func(t *testing.T) {
		eng, err := New()
		require.NoError(t, err)

		_, err = eng.PowerPair(ctx, "abcd", 1<<62, "", 0)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		_, err = eng.ClosurePair(ctx, "abcd", "", 1<<62)
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		_, err = eng.Power(ctx, domain.NewLanguage("ab", "c"), math.MaxInt)
		assert.ErrorIs(t, err, domain.ErrTooLarge)
	})
}

func TestEngine_Cache(t *testing.T) {
	rec := &recorder{}
	cache := memory.NewCache()
	eng, err := New(WithCache(cache), WithLifecycleHooks(rec.hooks()))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := eng.Synthesize(ctx, []string{"ab", "a", "b"})
	require.NoError(t, err)
	assert.False(t, rec.last().CacheHit)
	assert.Equal(t, 1, cache.Len())

	second, err := eng.Synthesize(ctx, []string{"ab", "a", "b"})
	require.NoError(t, err)
	assert.True(t, rec.last().CacheHit)
	assert.Equal(t, OpSynthesize, rec.last().Operation)
	assert.Equal(t, first, second)

	// Equal languages share an entry regardless of construction order.
	_, err = eng.Power(ctx, domain.NewLanguage("b", "a"), 2)
	require.NoError(t, err)
	p, err := eng.Power(ctx, domain.NewLanguage("a", "b", "a"), 2)
	require.NoError(t, err)
	assert.True(t, rec.last().CacheHit)
	assert.Equal(t, 4, p.Len())

	c, err := eng.KleeneClosure(ctx, domain.NewLanguage("a"), 2)
	require.NoError(t, err)
	cc, err := eng.KleeneClosure(ctx, domain.NewLanguage("a"), 2)
	require.NoError(t, err)
	assert.True(t, rec.last().CacheHit)
	assert.Equal(t, c, cc)
}

func TestEngine_CacheFailuresAreIgnored(t *testing.T) {
	eng, err := New(WithCache(brokenCache{}))
	require.NoError(t, err)

	a, err := eng.Synthesize(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, a.Accepts("a"))
}

func TestEngine_CorruptCacheEntry(t *testing.T) {
	cache := memory.NewCache()
	eng, err := New(WithCache(cache))
	require.NoError(t, err)
	ctx := context.Background()

	key, err := Fingerprint(OpLanguagePower, powerInput{L: domain.NewLanguage("a"), N: 2})
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, key, []byte("{not json")))

	p, err := eng.Power(ctx, domain.NewLanguage("a"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa"}, p.Words())
}

func TestEngine_CanceledContext(t *testing.T) {
	rec := &recorder{}
	eng, err := New(WithLifecycleHooks(rec.hooks()), WithCache(memory.NewCache()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Concat(ctx, "a", "b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, rec.last().Failed())

	_, err = eng.Synthesize(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, rec.last().Failed())
}

func TestFingerprint(t *testing.T) {
	k1, err := Fingerprint("op", domain.NewLanguage("b", "a"))
	require.NoError(t, err)
	k2, err := Fingerprint("op", domain.NewLanguage("a", "b"))
	require.NoError(t, err)
	k3, err := Fingerprint("other", domain.NewLanguage("a", "b"))
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "op:")
}
