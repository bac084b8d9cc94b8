package ports

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache
// implementation adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		key := prefix + "-set"
		err := cache.Set(ctx, key, []byte(`["a","b"]`))
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, []byte(`["a","b"]`), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "-overwrite"
		require.NoError(t, cache.Set(ctx, key, []byte("1")))
		require.NoError(t, cache.Set(ctx, key, []byte("2")))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, prefix+"-missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		key := prefix + "-delete"
		require.NoError(t, cache.Set(ctx, key, []byte("x")))

		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice is not an error")
	})

	t.Run("Isolation", func(t *testing.T) {
		key := prefix + "-isolation"
		value := []byte("abc")
		require.NoError(t, cache.Set(ctx, key, value))
		value[0] = 'z'

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got, "stored value must not alias the caller's slice")
		got[1] = 'z'

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again, "returned value must not alias the stored one")
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("%s-concurrent-%d", prefix, i%4)
				assert.NoError(t, cache.Set(ctx, key, []byte(key)))
				got, err := cache.Get(ctx, key)
				if assert.NoError(t, err) {
					assert.Equal(t, key, string(got))
				}
			}(i)
		}
		wg.Wait()
	})
}
