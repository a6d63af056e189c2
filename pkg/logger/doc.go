// Package logger builds log/slog loggers for the demo server and widget
// handlers.
//
// New returns a JSON or text logger that enriches every record with
// attributes carried by the context: those added with ContextWithAttrs and
// those pulled out by ContextExtractor functions, such as the request id set
// by the middlewares package:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(middlewares.RequestIDExtractor()),
//	)
//	ctx = logger.ContextWithAttrs(ctx, slog.String("dropdown_id", id))
//	log.InfoContext(ctx, "dropdown value changed")
//	// time=... level=INFO msg="dropdown value changed" dropdown_id=... request_id=...
//
// NewNope returns a logger that discards everything; library types use it
// when no logger is configured.
package logger
