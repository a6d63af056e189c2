package dropdown

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/forgeui/pkg/classnames"
	"github.com/dmitrymomot/forgeui/pkg/htmx"
	"github.com/dmitrymomot/forgeui/pkg/markup"
)

// keyFilter limits keyboard round trips to the keys HandleKey consumes.
var keyFilter = buildKeyFilter(KeyArrowDown, KeyArrowUp, KeyHome, KeyEnd, KeyEnter, KeySpace, KeyEscape, KeyTab)

const preventScrollKeys = "if(['Enter',' ','ArrowDown','ArrowUp','Home','End'].includes(event.key)) event.preventDefault()"

// Component renders the widget in its current state.
//
// The trigger button carries data-testid="selector". While open, the list
// is rendered as a listbox with one option element per visible option in
// source order.
func (s *Select) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.NewWriter(ctx, w)
		s.render(mw)
		return mw.Err()
	})
}

func (s *Select) render(w *markup.Writer) {
	id := s.cfg.id
	open := s.state == Open
	dir, pos := s.Placement()
	selected, hasSelection := s.Selected()

	root := templ.OrderedAttributes{
		{Key: "id", Value: id},
		{Key: "class", Value: classnames.Merge(
			classnames.Class("dropdown"),
			s.cfg.classes,
			classnames.Flags{
				"dropdown-open":     open,
				"dropdown-disabled": s.cfg.disabled,
				"dropdown-up":       dir == DirectionUp,
				"dropdown-down":     dir == DirectionDown,
			},
		)},
		{Key: "data-dropdown", Value: true},
		{Key: "data-state", Value: s.state.String()},
	}
	if open {
		root = append(root, s.hx("/blur", "focusout[!this.contains(event.relatedTarget)]", "")...)
	}
	w.Open("div", root)

	control := templ.OrderedAttributes{{Key: "class", Value: "dropdown-control"}}
	if !s.cfg.disabled {
		control = append(control, s.hx("/key", keyFilter, "js:{key: event.key}")...)
		control = append(control, templ.KeyValue[string, any]{
			Key:   "hx-on:keydown",
			Value: templ.KV(preventScrollKeys, s.cfg.endpoint != ""),
		})
	}
	w.Open("div", control)

	activeDescendant := ""
	if open && s.highlighted >= 0 {
		activeDescendant = s.optionID(s.highlighted)
	}
	trigger := templ.OrderedAttributes{
		{Key: "type", Value: "button"},
		{Key: "id", Value: id + "-trigger"},
		{Key: "class", Value: classnames.Merge(
			classnames.Class("dropdown-trigger"),
			classnames.If(!hasSelection, "dropdown-placeholder"),
		)},
		{Key: "data-testid", Value: "selector"},
		{Key: "aria-haspopup", Value: "listbox"},
		{Key: "aria-expanded", Value: strconv.FormatBool(open)},
		{Key: "aria-controls", Value: id + "-listbox"},
		{Key: "aria-activedescendant", Value: templ.KV(activeDescendant, activeDescendant != "")},
		{Key: "disabled", Value: s.cfg.disabled},
	}
	if !s.cfg.disabled {
		trigger = append(trigger, s.hx("/toggle", "click",
			"js:{trigger_top: this.getBoundingClientRect().top, trigger_height: this.offsetHeight, viewport_height: window.innerHeight}")...)
	}
	w.Open("button", trigger)
	w.Open("span", templ.OrderedAttributes{{Key: "class", Value: "dropdown-value"}})
	if hasSelection {
		w.Raw(s.labelHTML(selected.Label))
	} else {
		w.Text(s.cfg.placeholder)
	}
	w.Close("span")
	w.Close("button")
	w.Close("div")

	if open {
		s.renderList(w, pos)
	}

	if s.cfg.name != "" {
		value := ""
		if hasSelection {
			value = fmt.Sprint(selected.Value)
		}
		w.Open("input", templ.OrderedAttributes{
			{Key: "type", Value: "hidden"},
			{Key: "name", Value: s.cfg.name},
			{Key: "value", Value: value},
		})
	}

	w.Close("div")
}

func (s *Select) renderList(w *markup.Writer, pos Position) {
	id := s.cfg.id

	if s.cfg.searchable {
		search := templ.OrderedAttributes{
			{Key: "type", Value: "search"},
			{Key: "class", Value: "dropdown-search"},
			{Key: "name", Value: "q"},
			{Key: "value", Value: s.query},
			{Key: "autocomplete", Value: "off"},
			{Key: "aria-controls", Value: id + "-listbox"},
			{Key: "autofocus", Value: true},
		}
		w.Open("input", append(search, s.hx("/search", "input changed delay:200ms", "")...))
	}

	// maxHeight is a border-box value; the style pins the box model it assumes.
	style := "box-sizing: border-box; max-height: " + formatPx(s.layout.maxHeight) + ";"
	if pos.Top != nil {
		style += " top: " + formatPx(*pos.Top) + ";"
	}
	if pos.Bottom != nil {
		style += " bottom: " + formatPx(*pos.Bottom) + ";"
	}
	if pos.Left != nil {
		style += " left: " + formatPx(*pos.Left) + ";"
	}

	w.Open("ul", templ.OrderedAttributes{
		{Key: "id", Value: id + "-listbox"},
		{Key: "role", Value: "listbox"},
		{Key: "class", Value: classnames.Merge(
			classnames.Class("dropdown-list"),
			classnames.If(len(s.visible) == 0, "dropdown-empty"),
		)},
		{Key: "style", Value: style},
		{Key: "aria-labelledby", Value: id + "-trigger"},
		{Key: "tabindex", Value: "-1"},
		{Key: "data-scroll-top", Value: strconv.FormatFloat(s.layout.scrollTop(), 'f', -1, 64)},
	})

	if len(s.visible) == 0 {
		w.Element("li", templ.OrderedAttributes{
			{Key: "class", Value: "dropdown-no-results"},
			{Key: "role", Value: "presentation"},
		}, "No results")
	}

	for _, i := range s.visible {
		opt := s.options[i]
		item := templ.OrderedAttributes{
			{Key: "id", Value: s.optionID(i)},
			{Key: "role", Value: "option"},
			{Key: "class", Value: classnames.Merge(
				classnames.Class("dropdown-option"),
				classnames.Flags{
					"selected":    i == s.selected,
					"highlighted": i == s.highlighted,
					"disabled":    opt.Disabled,
				},
			)},
			{Key: "aria-selected", Value: strconv.FormatBool(i == s.selected)},
			{Key: "aria-disabled", Value: templ.KV("true", opt.Disabled)},
			{Key: "tabindex", Value: "-1"},
			{Key: "data-index", Value: i},
		}
		if !opt.Disabled {
			item = append(item, s.hx("/choose/"+strconv.Itoa(i), "click", "")...)
		}
		w.Open("li", item)
		w.Raw(s.labelHTML(opt.Label))
		w.Close("li")
	}

	w.Close("ul")
}

func (s *Select) optionID(i int) string {
	return s.cfg.id + "-option-" + strconv.Itoa(i)
}

// hx returns htmx attributes posting to the widget endpoint, or nothing
// without an endpoint.
func (s *Select) hx(action, trigger, vals string) templ.OrderedAttributes {
	if s.cfg.endpoint == "" {
		return nil
	}
	return templ.OrderedAttributes{
		{Key: "hx-post", Value: s.cfg.endpoint + action},
		{Key: "hx-trigger", Value: trigger},
		{Key: "hx-target", Value: "closest [data-dropdown]"},
		{Key: "hx-swap", Value: string(htmx.SwapOuterHTML)},
		{Key: "hx-vals", Value: templ.KV(vals, vals != "")},
	}
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func buildKeyFilter(keys ...string) string {
	conds := make([]string, len(keys))
	for i, k := range keys {
		conds[i] = "key=='" + k + "'"
	}
	return "keydown[" + strings.Join(conds, "||") + "]"
}
