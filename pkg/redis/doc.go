// Package redis opens go-redis clients for the Redis widget store.
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := dropdown.NewRedisStore(client)
//
// Open pings the server and retries with linear backoff before giving up.
// Healthcheck adapts a client to a func(context.Context) error health check.
package redis
