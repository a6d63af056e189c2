// Package health serves liveness and readiness endpoints for the demo server.
//
// Liveness always answers 200. Readiness runs the registered checks in
// parallel under a shared timeout and answers 503 when any of them fails:
//
//	r.Get("/healthz", health.Live())
//	r.Get("/readyz", health.Ready(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}, health.WithLogger(log)))
//
// Responses are plain text unless the client asks for JSON with an
// Accept: application/json header or a format=json query parameter.
package health
