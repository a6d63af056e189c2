package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type options struct {
	out        io.Writer
	format     Format
	extractors []ContextExtractor
	level      slog.Level
}

// Option configures New.
type Option func(*options)

// WithOutput sets the destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithFormat sets the output encoding. Default: FormatJSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a logger.
func New(opts ...Option) *slog.Logger {
	o := &options{
		out:    os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.format == FormatText {
		h = slog.NewTextHandler(o.out, hopts)
	} else {
		h = slog.NewJSONHandler(o.out, hopts)
	}

	return slog.New(NewContextHandler(h, o.extractors...))
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: invalid level %q: %w", s, err)
	}
	return l, nil
}

// ParseFormat converts "json" or "text" to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return FormatJSON, fmt.Errorf("logger: invalid format %q", s)
	}
}
