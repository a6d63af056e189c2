package dropdown_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forgeui/pkg/dropdown"
	"github.com/dmitrymomot/forgeui/pkg/logger"
)

func newServer(t *testing.T, opts []dropdown.SelectOption, selectOpts ...dropdown.Option) (http.Handler, *dropdown.Handler) {
	t.Helper()

	store := dropdown.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	h := dropdown.NewHandler(store)
	s, err := dropdown.New(opts, append([]dropdown.Option{dropdown.WithID("dd")}, selectOpts...)...)
	require.NoError(t, err)
	require.NoError(t, h.Register(context.Background(), s))

	r := chi.NewRouter()
	h.Routes(r)
	return r, h
}

func post(t *testing.T, srv http.Handler, path string, form url.Values, hx bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandler_SelectFlow(t *testing.T) {
	t.Parallel()

	srv, h := newServer(t, []dropdown.SelectOption{
		{Value: "O1", Label: "Option 1"},
		{Value: "O2", Label: "Option 2"},
	})

	rec := post(t, srv, "/dropdowns/dd/toggle", url.Values{
		"trigger_top":     {"100"},
		"trigger_height":  {"32"},
		"viewport_height": {"800"},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := htmlquery.Parse(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{"Option 1", "Option 2"}, optionLabels(doc))
	list := htmlquery.FindOne(doc, `//ul[@role='listbox']`)
	assert.Contains(t, htmlquery.SelectAttr(list, "style"), "top: 32px;")

	rec = post(t, srv, "/dropdowns/dd/choose/1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"dropdown:change":{"id":"dd","index":1,"value":"O2","label":"Option 2"}}`,
		rec.Header().Get("HX-Trigger"),
	)

	doc, err = htmlquery.Parse(rec.Body)
	require.NoError(t, err)
	assert.Empty(t, optionLabels(doc))
	assert.Equal(t, "Option 2", htmlquery.InnerText(htmlquery.FindOne(doc, `//span[@class='dropdown-value']`)))

	s, err := h.Load(context.Background(), "dd")
	require.NoError(t, err)
	assert.False(t, s.IsOpen())
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestHandler_Keyboard(t *testing.T) {
	t.Parallel()

	srv, h := newServer(t, letters("A", "B", "C"))

	for _, k := range []string{dropdown.KeyArrowDown, dropdown.KeyArrowDown, dropdown.KeyEnter} {
		rec := post(t, srv, "/dropdowns/dd/key", url.Values{"key": {k}}, true)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	s, err := h.Load(context.Background(), "dd")
	require.NoError(t, err)
	assert.Equal(t, 1, s.SelectedIndex())
	assert.False(t, s.IsOpen())
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, letters("Apple", "Banana", "Cherry"), dropdown.WithSearch())

	post(t, srv, "/dropdowns/dd/toggle", nil, true)
	rec := post(t, srv, "/dropdowns/dd/search", url.Values{"q": {"an"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := htmlquery.Parse(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{"Banana"}, optionLabels(doc))
}

func TestHandler_Blur(t *testing.T) {
	t.Parallel()

	srv, h := newServer(t, letters("A"))

	post(t, srv, "/dropdowns/dd/toggle", nil, true)
	rec := post(t, srv, "/dropdowns/dd/blur", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))

	s, err := h.Load(context.Background(), "dd")
	require.NoError(t, err)
	assert.False(t, s.IsOpen())
}

func TestHandler_Show(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, letters("A"))

	req := httptest.NewRequest(http.MethodGet, "/dropdowns/dd", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Values("Vary"), "HX-Request")
	doc, err := htmlquery.Parse(rec.Body)
	require.NoError(t, err)
	assert.NotNil(t, htmlquery.FindOne(doc, `//div[@id='dd']`))
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	opts := letters("A", "B")
	opts[1].Disabled = true
	srv, _ := newServer(t, opts)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "unknown widget", path: "/dropdowns/missing/toggle", wantStatus: http.StatusNotFound},
		{name: "malformed index", path: "/dropdowns/dd/choose/abc", wantStatus: http.StatusBadRequest},
		{name: "index out of range", path: "/dropdowns/dd/choose/9", wantStatus: http.StatusBadRequest},
		{name: "disabled option", path: "/dropdowns/dd/choose/1", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := post(t, srv, tt.path, nil, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
		})
	}
}

func TestHandler_NonHTMXRedirects(t *testing.T) {
	t.Parallel()

	srv, h := newServer(t, letters("A", "B"))

	req := httptest.NewRequest(http.MethodPost, "/dropdowns/dd/choose/1", nil)
	req.Header.Set("Referer", "/settings")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/settings", rec.Header().Get("Location"))

	s, err := h.Load(context.Background(), "dd")
	require.NoError(t, err)
	assert.Equal(t, 1, s.SelectedIndex(), "the event is applied before redirecting")
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	store := dropdown.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	h := dropdown.NewHandler(store, dropdown.WithPrefix("/ui/select"))
	s, err := dropdown.New(letters("A"), dropdown.WithID("dd"))
	require.NoError(t, err)
	require.NoError(t, h.Register(context.Background(), s))

	snap, err := store.Load(context.Background(), "dd")
	require.NoError(t, err)
	assert.Equal(t, "/ui/select/dd", snap.Endpoint)

	doc := render(t, s)
	trigger := htmlquery.FindOne(doc, `//button`)
	assert.Equal(t, "/ui/select/dd/toggle", htmlquery.SelectAttr(trigger, "hx-post"))
}

func TestHandler_LogsWidgetID(t *testing.T) {
	t.Parallel()

	store := dropdown.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	var buf bytes.Buffer
	h := dropdown.NewHandler(store, dropdown.WithLogger(logger.New(logger.WithOutput(&buf))))
	s, err := dropdown.New(letters("A", "B"), dropdown.WithID("dd"))
	require.NoError(t, err)
	require.NoError(t, h.Register(context.Background(), s))

	r := chi.NewRouter()
	h.Routes(r)

	rec := post(t, r, "/dropdowns/dd/choose/1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dropdown value changed", entry["msg"])
	assert.Equal(t, "dd", entry["dropdown_id"])
	assert.Equal(t, "B", entry["label"])
}
