package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/forgeui/middlewares"
	"github.com/dmitrymomot/forgeui/pkg/dom"
	"github.com/dmitrymomot/forgeui/pkg/dropdown"
	"github.com/dmitrymomot/forgeui/pkg/health"
	"github.com/dmitrymomot/forgeui/pkg/redis"
)

// server wires the widget handler, the demo page and the health endpoints.
type server struct {
	log      *slog.Logger
	widgets  *dropdown.Handler
	checks   health.Checks
	closers  []func() error
	settings []WidgetConfig
}

// newServer opens the configured widget store.
func newServer(ctx context.Context, cfg Config, log *slog.Logger) (*server, error) {
	s := &server{
		log:      log,
		checks:   health.Checks{},
		settings: cfg.Widgets,
	}

	var store dropdown.Store
	switch cfg.Store.Driver {
	case "redis":
		client, err := redis.Open(ctx, cfg.Store.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open widget store: %w", err)
		}
		s.closers = append(s.closers, client.Close)
		s.checks["redis"] = redis.Healthcheck(client)
		store = dropdown.NewRedisStore(client,
			dropdown.WithRedisPrefix(cfg.Store.Prefix),
			dropdown.WithRedisTTL(cfg.Store.TTL),
		)
	default:
		mem := dropdown.NewMemoryStore(
			dropdown.WithMemoryTTL(cfg.Store.TTL),
			dropdown.WithMemoryMaxEntries(cfg.Store.MaxEntries),
		)
		s.closers = append(s.closers, mem.Close)
		store = mem
	}

	s.widgets = dropdown.NewHandler(store, dropdown.WithLogger(log))
	return s, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(s.log),
		middlewares.AccessLog(s.log),
	)

	r.Get("/healthz", health.Live())
	r.Get("/readyz", health.Ready(s.checks, health.WithLogger(s.log)))

	r.Get("/", s.index)
	r.Post("/submit", s.submit)
	s.widgets.Routes(r)

	return r
}

// index registers a fresh set of widgets for every visit, so each visitor
// gets independent widget state.
func (s *server) index(w http.ResponseWriter, r *http.Request) {
	fields := make([]field, 0, len(s.settings))
	for _, wc := range s.settings {
		sel, err := newWidget(wc)
		if err == nil {
			err = s.widgets.Register(r.Context(), sel)
		}
		if err != nil {
			s.log.ErrorContext(r.Context(), "widget setup failed",
				slog.String("widget", wc.ID),
				slog.Any("error", err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		fields = append(fields, field{label: wc.Label, widget: sel})
	}

	s.renderPage(w, r, formPage(fields))
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	values := make([]submitted, 0, len(s.settings))
	for _, wc := range s.settings {
		values = append(values, submitted{label: wc.Label, value: labelFor(wc, r.PostForm.Get(wc.ID))})
	}

	s.renderPage(w, r, resultPage(values))
}

func (s *server) renderPage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		s.log.ErrorContext(r.Context(), "page render failed", slog.Any("error", err))
	}
}

func (s *server) close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newWidget builds a select from its configuration. The form field is
// named after the widget id; the element id is unique per page view.
func newWidget(wc WidgetConfig) (*dropdown.Select, error) {
	opts := make([]dropdown.SelectOption, len(wc.Options))
	for i, o := range wc.Options {
		opts[i] = dropdown.SelectOption{Value: o.Value, Label: o.Label, Disabled: o.Disabled}
	}

	selectOpts := []dropdown.Option{
		dropdown.WithID(wc.ID + "-" + dom.GenerateHTMLID()),
		dropdown.WithName(wc.ID),
		dropdown.WithPlaceholder(wc.Placeholder),
		dropdown.WithDisabled(wc.Disabled),
	}
	if wc.Direction != "" {
		selectOpts = append(selectOpts, dropdown.WithDirection(dropdown.Direction(wc.Direction)))
	}
	if wc.Value != "" {
		selectOpts = append(selectOpts, dropdown.WithValue(wc.Value))
	}
	if wc.Wrap {
		selectOpts = append(selectOpts, dropdown.WithBoundary(dropdown.Wrap))
	}
	if wc.Search {
		selectOpts = append(selectOpts, dropdown.WithSearch())
	}
	if wc.RichLabels {
		selectOpts = append(selectOpts, dropdown.WithRichLabels())
	}

	return dropdown.New(opts, selectOpts...)
}

// labelFor maps a submitted value back to its option label.
func labelFor(wc WidgetConfig, value string) string {
	for _, o := range wc.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// run serves until ctx is canceled, then shuts down within the configured timeout.
func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	srv, err := newServer(ctx, cfg, log)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return errors.Join(err, srv.close())
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Join(err, srv.close())
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := srv.close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		log.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}
	log.Info("shutdown completed")
	return nil
}
