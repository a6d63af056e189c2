package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Live returns a liveness handler that always answers 200.
func Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, r, http.StatusOK, Report{Status: StatusHealthy})
	}
}

// Ready returns a readiness handler answering 200 when all checks pass and
// 503 otherwise.
func Ready(checks Checks, opts ...Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := Run(r.Context(), checks, opts...)

		status := http.StatusOK
		if !report.Healthy() {
			status = http.StatusServiceUnavailable
		}
		write(w, r, status, report)
	}
}

func write(w http.ResponseWriter, r *http.Request, status int, report Report) {
	if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}
