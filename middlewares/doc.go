// Package middlewares provides net/http middleware for the demo server and
// any chi router serving dropdown widgets.
//
// # Request ID
//
// RequestID assigns a unique ID to each request. An ID already present in
// one of the configured headers is reused, otherwise a UUID is generated.
// The ID is stored in the request context and echoed in the response.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// Use RequestIDExtractor with logger.WithExtractors to add request_id to
// every log entry:
//
//	log := logger.New(logger.WithExtractors(middlewares.RequestIDExtractor()))
//
// # Recover
//
// Recover catches panics, logs them with a stack trace and answers
// 500 Internal Server Error.
//
//	r.Use(middlewares.Recover(log))
//
// # Access log
//
// AccessLog logs one entry per request with method, path, status, size
// and duration.
//
//	r.Use(middlewares.AccessLog(log))
package middlewares
