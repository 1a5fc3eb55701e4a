package redis_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categoryd/pkg/redis"
)

func newStore(t *testing.T) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	opts, err := redis.ParseURL("redis://" + mr.Addr())
	require.NoError(t, err)
	store := redis.NewStore(goredis.NewClient(opts))
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStoreGet(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()
		store, mr := newStore(t)
		require.NoError(t, mr.Set("https://example.com/", "news"))

		val, err := store.Get(context.Background(), "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, "news", val)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t)

		val, err := store.Get(context.Background(), "absent")
		assert.ErrorIs(t, err, redis.ErrNotFound)
		assert.Empty(t, val)
	})

	t.Run("empty key is an ordinary key", func(t *testing.T) {
		t.Parallel()
		store, mr := newStore(t)

		_, err := store.Get(context.Background(), "")
		assert.ErrorIs(t, err, redis.ErrNotFound)

		mr.SetError("ERR boom")
		_, err = store.Get(context.Background(), "")
		assert.ErrorIs(t, err, redis.ErrUnavailable)
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		t.Parallel()
		store, mr := newStore(t)
		mr.SetError("ERR boom")

		_, err := store.Get(context.Background(), "k")
		assert.ErrorIs(t, err, redis.ErrUnavailable)
		assert.NotErrorIs(t, err, redis.ErrNotFound)
	})

	t.Run("closed server is unavailable", func(t *testing.T) {
		t.Parallel()
		store, mr := newStore(t)
		mr.Close()

		_, err := store.Get(context.Background(), "k")
		assert.ErrorIs(t, err, redis.ErrUnavailable)
	})
}

func TestStoreConcurrentGet(t *testing.T) {
	t.Parallel()
	store, mr := newStore(t)

	const n = 64
	for i := range n {
		require.NoError(t, mr.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i)))
	}

	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Get(context.Background(), fmt.Sprintf("key-%d", i))
		}(i)
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("value-%d", i), results[i])
	}
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()
	store, mr := newStore(t)
	check := redis.Healthcheck(store)

	require.NoError(t, check(context.Background()))

	mr.SetError("ERR down")
	assert.ErrorIs(t, check(context.Background()), redis.ErrHealthcheckFailed)
}
