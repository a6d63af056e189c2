package dropdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/forgeui/pkg/htmx"
	"github.com/dmitrymomot/forgeui/pkg/logger"
)

// ChangeEvent is the client-side event fired when a selection is committed.
const ChangeEvent = "dropdown:change"

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler logger. Default: a no-op logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithPrefix sets the URL prefix the handler is mounted under.
// Default: "/dropdowns".
func WithPrefix(prefix string) HandlerOption {
	return func(h *Handler) {
		h.prefix = prefix
	}
}

// Handler serves the htmx round trips of registered widgets: each request
// loads the widget snapshot, applies one event and re-renders the widget.
type Handler struct {
	store  Store
	logger *slog.Logger
	prefix string
}

// NewHandler creates a Handler over store.
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:  store,
		logger: logger.NewNope(),
		prefix: "/dropdowns",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the widget endpoints on r under the handler prefix.
func (h *Handler) Routes(r chi.Router) {
	r.Route(h.prefix, func(r chi.Router) {
		r.Get("/{id}", h.show)
		r.Post("/{id}/toggle", h.event(toggle))
		r.Post("/{id}/key", h.event(key))
		r.Post("/{id}/choose/{index}", h.event(choose))
		r.Post("/{id}/blur", h.event(blur))
		r.Post("/{id}/search", h.event(search))
	})
}

// Register points the widget's markup at the handler and stores it.
func (h *Handler) Register(ctx context.Context, s *Select) error {
	s.cfg.endpoint = h.prefix + "/" + s.ID()
	if err := h.store.Save(ctx, s.ID(), s.Snapshot()); err != nil {
		return fmt.Errorf("dropdown: register %s: %w", s.ID(), err)
	}
	return nil
}

// Load returns the stored widget with the given id.
func (h *Handler) Load(ctx context.Context, id string) (*Select, error) {
	snap, err := h.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return Restore(snap)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r = r.WithContext(logger.ContextWithAttrs(r.Context(), slog.String("dropdown_id", id)))

	s, err := h.Load(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, s)
}

// eventFunc applies one request to a widget.
type eventFunc func(s *Select, r *http.Request) error

func toggle(s *Select, r *http.Request) error {
	if s.state == Closed {
		s.SetAnchor(parseAnchor(r))
	}
	s.Toggle()
	return nil
}

func key(s *Select, r *http.Request) error {
	s.HandleKey(r.FormValue("key"))
	return nil
}

func choose(s *Select, r *http.Request) error {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return ErrOutOfRange
	}
	return s.Choose(i)
}

func blur(s *Select, _ *http.Request) error {
	s.Blur()
	return nil
}

func search(s *Select, r *http.Request) error {
	return s.SetQuery(r.FormValue("q"))
}

func (h *Handler) event(fn eventFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ctx := logger.ContextWithAttrs(r.Context(), slog.String("dropdown_id", id))
		r = r.WithContext(ctx)

		s, err := h.Load(ctx, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		before := s.SelectedIndex()
		if err := fn(s, r); err != nil {
			h.fail(w, r, err)
			return
		}

		if err := h.store.Save(ctx, id, s.Snapshot()); err != nil {
			h.fail(w, r, err)
			return
		}

		if !htmx.IsHTMX(r) {
			htmx.RedirectBack(w, r, "/")
			return
		}

		if after := s.SelectedIndex(); after != before {
			opt, _ := s.Selected()
			h.logger.InfoContext(ctx, "dropdown value changed",
				slog.Int("index", after),
				slog.String("label", opt.Label),
			)
			err := htmx.Trigger(w, htmx.Event{
				Name:   ChangeEvent,
				Detail: map[string]any{"id": id, "index": after, "value": opt.Value, "label": opt.Label},
			})
			if err != nil {
				h.logger.WarnContext(ctx, "dropdown change event not sent", slog.Any("error", err))
			}
		}

		h.render(w, r, s)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, s *Select) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", htmx.HeaderHXRequest)
	if err := s.Component().Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "dropdown render failed", slog.Any("error", err))
	}
}

// fail maps widget errors to HTTP status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, ErrOptionDisabled), errors.Is(err, ErrOptionHidden):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.ErrorContext(r.Context(), "dropdown request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	if htmx.IsHTMX(r) {
		htmx.Reswap(w, htmx.SwapNone)
	}
	http.Error(w, http.StatusText(status), status)
}

// parseAnchor reads the trigger geometry posted by the toggle request.
// Missing or malformed values yield nil.
func parseAnchor(r *http.Request) *Anchor {
	var vals [3]float64
	for i, name := range []string{"trigger_top", "trigger_height", "viewport_height"} {
		v, err := strconv.ParseFloat(r.FormValue(name), 64)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	return &Anchor{TriggerTop: vals[0], TriggerHeight: vals[1], ViewportHeight: vals[2]}
}
