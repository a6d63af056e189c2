// Package htmx provides the small part of the HTMX protocol the widget
// handlers speak: request detection, event triggers and swap strategies.
//
// Detect HTMX requests and answer non-HTMX form posts with a redirect:
//
//	if !htmx.IsHTMX(r) {
//		htmx.RedirectBack(w, r, "/")
//		return
//	}
//
// Fire client-side events with a JSON detail payload:
//
//	err := htmx.Trigger(w, htmx.Event{
//		Name:   "dropdown:change",
//		Detail: map[string]any{"id": "fruit", "value": "apple"},
//	})
package htmx
