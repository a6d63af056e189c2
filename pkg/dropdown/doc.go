// Package dropdown implements a server-rendered, accessible select widget.
//
// A Select owns the widget state: whether the option list is open, which
// option is selected and which one is highlighted for keyboard selection.
// It renders itself as a templ.Component: a trigger button
// (data-testid="selector") and, while open, a listbox of option elements.
// Class attributes are computed with classnames.Merge from static classes,
// pass-through classes and state flags (open, selected, highlighted,
// disabled, up/down).
//
// Basic usage:
//
//	sel, err := dropdown.New([]dropdown.SelectOption{
//		{Label: "Apple", Value: "apple"},
//		{Label: "Banana", Value: "banana"},
//		{Label: "Cherry", Value: "cherry", Disabled: true},
//	},
//		dropdown.WithName("fruit"),
//		dropdown.WithPlaceholder("Pick a fruit"),
//		dropdown.WithBoundary(dropdown.Wrap),
//	)
//
//	sel.Open()                 // highlights Apple
//	sel.HandleKey("ArrowDown") // highlights Banana
//	sel.HandleKey("Enter")     // selects Banana and closes
//
// # Keyboard navigation
//
// Arrow keys move the highlight over enabled options. At the ends of the
// list the Boundary policy applies: Clamp (default) stays put, Wrap jumps to
// the other end. Every highlight move scrolls the modelled list so the
// highlighted option is fully visible; the resulting offset is rendered in
// data-scroll-top for the client to apply.
//
// # Serving widgets
//
// Handler serves the htmx round trips. Register a widget, render it into a
// page and mount the routes:
//
//	store := dropdown.NewMemoryStore()
//	h := dropdown.NewHandler(store, dropdown.WithLogger(log))
//	h.Routes(router)
//
//	if err := h.Register(ctx, sel); err != nil {
//		return err
//	}
//	sel.Component().Render(ctx, w)
//
// Every click, key press, search input or focus loss posts to the handler,
// which loads the widget from the Store, applies the event, saves it and
// returns the re-rendered widget for an outerHTML swap. Committed changes
// fire a "dropdown:change" client event through HX-Trigger.
//
// MemoryStore keeps widgets in process; RedisStore shares them across
// instances.
package dropdown
