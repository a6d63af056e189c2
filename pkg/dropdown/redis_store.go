package dropdown

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*redisStoreOptions)

type redisStoreOptions struct {
	prefix string
	ttl    time.Duration
}

// WithRedisPrefix sets the key prefix. Keys are stored as "{prefix}:{id}".
// Default: "dropdown".
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(o *redisStoreOptions) {
		o.prefix = prefix
	}
}

// WithRedisTTL sets how long an untouched widget is kept.
// Zero or negative keeps widgets until Redis evicts them.
// Default: 1 hour.
func WithRedisTTL(d time.Duration) RedisStoreOption {
	return func(o *redisStoreOptions) {
		o.ttl = d
	}
}

// RedisStore is a Store backed by Redis. Snapshots are stored as JSON.
// Concurrent loads of the same widget are coalesced into one round trip.
type RedisStore struct {
	client redis.UniversalClient
	group  singleflight.Group
	opts   redisStoreOptions
}

// NewRedisStore creates a RedisStore. The client lifecycle stays with the caller.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	o := redisStoreOptions{
		prefix: "dropdown",
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &RedisStore{client: client, opts: o}
}

// Load returns the snapshot for id or ErrNotFound.
func (r *RedisStore) Load(ctx context.Context, id string) (Snapshot, error) {
	key := r.key(id)

	v, err, _ := r.group.Do(key, func() (any, error) {
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	return unmarshalSnapshot(v.([]byte))
}

// Save stores snap under id and restarts its expiration.
func (r *RedisStore) Save(ctx context.Context, id string, snap Snapshot) error {
	data, err := marshalSnapshot(snap)
	if err != nil {
		return err
	}
	// Redis interprets 0 as no expiration.
	return r.client.Set(ctx, r.key(id), data, max(r.opts.ttl, 0)).Err()
}

// Delete removes the snapshot for id.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *RedisStore) key(id string) string {
	if r.opts.prefix == "" {
		return id
	}
	return r.opts.prefix + ":" + id
}

var _ Store = (*RedisStore)(nil)
