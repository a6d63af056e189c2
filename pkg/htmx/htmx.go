package htmx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Request headers.
const (
	HeaderHXRequest     = "HX-Request"
	HeaderHXTarget      = "HX-Target"
	HeaderHXTrigger     = "HX-Trigger"
	HeaderHXCurrentURL  = "HX-Current-URL"
	HeaderHXTriggerName = "HX-Trigger-Name"
)

// Response headers.
const (
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXRedirect = "HX-Redirect"
)

// SwapStrategy defines how HTMX swaps content into the target element.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML" // Replace the inner html of the target element
	SwapOuterHTML SwapStrategy = "outerHTML" // Replace the entire target element with the response
	SwapNone      SwapStrategy = "none"      // Do not swap content
)

// Event is a client-side event fired through the HX-Trigger header.
type Event struct {
	Detail any
	Name   string
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// Trigger sets the HX-Trigger response header. Events with a nil detail
// are sent with a null payload. It must be called before WriteHeader.
func Trigger(w http.ResponseWriter, events ...Event) error {
	if len(events) == 0 {
		return nil
	}

	payload := make(map[string]any, len(events))
	for _, e := range events {
		payload[e.Name] = e.Detail
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("htmx: encode trigger: %w", err)
	}
	w.Header().Set(HeaderHXTrigger, string(data))
	return nil
}

// Reswap sets the HX-Reswap header to override the swap strategy.
func Reswap(w http.ResponseWriter, strategy SwapStrategy) {
	w.Header().Set(HeaderHXReswap, string(strategy))
}

// RedirectBack redirects to the page the request came from, or fallback.
// HTMX requests get an HX-Redirect header; others a 303 See Other.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.Header.Get(HeaderHXCurrentURL)
	if target == "" {
		target = r.Referer()
	}
	if target == "" {
		target = fallback
	}

	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, target)
		// HTMX requires 200 status; actual redirect happens client-side via header
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
