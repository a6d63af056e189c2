//go:build integration

package dropdown_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forgeui/pkg/dropdown"
	"github.com/dmitrymomot/forgeui/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing widget", func(t *testing.T) {
		t.Parallel()

		store := dropdown.NewRedisStore(newTestRedisClient(t), dropdown.WithRedisPrefix("test-dd-miss"))
		_, err := store.Load(ctx, "missing")
		require.ErrorIs(t, err, dropdown.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		client := newTestRedisClient(t)
		store := dropdown.NewRedisStore(client, dropdown.WithRedisPrefix("test-dd-rt"))
		t.Cleanup(func() { _ = store.Delete(ctx, "dd") })

		s, err := dropdown.New([]dropdown.SelectOption{
			{Value: 1, Label: "One"},
			{Value: "two", Label: "Two"},
		}, dropdown.WithID("dd"), dropdown.WithValue(1))
		require.NoError(t, err)
		s.Open()
		require.NoError(t, store.Save(ctx, "dd", s.Snapshot()))

		ttl, err := client.TTL(ctx, "test-dd-rt:dd").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)

		snap, err := store.Load(ctx, "dd")
		require.NoError(t, err)
		assert.True(t, snap.Open)
		assert.Equal(t, 0, snap.Selected)
		assert.Equal(t, float64(1), snap.Options[0].Value, "JSON numbers decode as float64")

		restored, err := dropdown.Restore(snap)
		require.NoError(t, err)
		assert.True(t, restored.IsOpen())
		assert.Equal(t, 0, restored.Highlighted())
	})

	t.Run("expiration", func(t *testing.T) {
		t.Parallel()

		store := dropdown.NewRedisStore(newTestRedisClient(t),
			dropdown.WithRedisPrefix("test-dd-exp"),
			dropdown.WithRedisTTL(100*time.Millisecond),
		)
		require.NoError(t, store.Save(ctx, "dd", snapshot(t, "dd")))

		assert.Eventually(t, func() bool {
			_, err := store.Load(ctx, "dd")
			return err != nil
		}, 2*time.Second, 50*time.Millisecond)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		store := dropdown.NewRedisStore(newTestRedisClient(t), dropdown.WithRedisPrefix("test-dd-del"))
		require.NoError(t, store.Save(ctx, "dd", snapshot(t, "dd")))
		require.NoError(t, store.Delete(ctx, "dd"))

		_, err := store.Load(ctx, "dd")
		require.ErrorIs(t, err, dropdown.ErrNotFound)
	})

	t.Run("concurrent loads", func(t *testing.T) {
		t.Parallel()

		store := dropdown.NewRedisStore(newTestRedisClient(t), dropdown.WithRedisPrefix("test-dd-sf"))
		t.Cleanup(func() { _ = store.Delete(ctx, "dd") })
		require.NoError(t, store.Save(ctx, "dd", snapshot(t, "dd")))

		var wg sync.WaitGroup
		for range 20 {
			wg.Go(func() {
				snap, err := store.Load(ctx, "dd")
				assert.NoError(t, err)
				assert.Equal(t, "dd", snap.ID)
			})
		}
		wg.Wait()
	})
}
