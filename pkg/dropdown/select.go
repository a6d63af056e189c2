package dropdown

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/forgeui/pkg/dom"
	"github.com/dmitrymomot/forgeui/pkg/strutil"
)

// Select is a single-choice dropdown. It owns the open/closed state, the
// committed selection and the keyboard highlight, and models its option
// list to keep the highlight scrolled into view.
//
// A Select is not safe for concurrent use.
type Select struct {
	cfg     *config
	options []SelectOption
	layout  *layout
	anchor  *Anchor
	visible []int // option indexes matching the query, in source order
	query   string

	state       State
	selected    int
	highlighted int
}

// New creates a closed Select over options.
// It fails when a configured length cannot be converted to pixels or the
// initial value is not among the options.
func New(options []SelectOption, opts ...Option) (*Select, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = dom.GenerateHTMLID()
	}

	s := &Select{
		cfg:         cfg,
		options:     slices.Clone(options),
		selected:    -1,
		highlighted: -1,
	}
	if err := s.filter(0); err != nil {
		return nil, err
	}

	if cfg.hasValue {
		if err := s.SetValue(cfg.value); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ID returns the root element id.
func (s *Select) ID() string { return s.cfg.id }

// Options returns the option list.
func (s *Select) Options() []SelectOption { return s.options }

// State returns the open/closed state.
func (s *Select) State() State { return s.state }

// IsOpen reports whether the option list is shown.
func (s *Select) IsOpen() bool { return s.state == Open }

// Disabled reports whether the widget ignores input.
func (s *Select) Disabled() bool { return s.cfg.disabled }

// SelectedIndex returns the index of the chosen option, or -1.
func (s *Select) SelectedIndex() int { return s.selected }

// Highlighted returns the index of the highlighted option, or -1.
func (s *Select) Highlighted() int { return s.highlighted }

// Query returns the current search query.
func (s *Select) Query() string { return s.query }

// ScrollTop returns the modelled scroll offset of the option list.
func (s *Select) ScrollTop() float64 { return s.layout.scrollTop() }

// Visible returns the indexes of options matching the search query.
func (s *Select) Visible() []int { return slices.Clone(s.visible) }

// Selected returns the chosen option.
func (s *Select) Selected() (SelectOption, bool) {
	if s.selected < 0 {
		return SelectOption{}, false
	}
	return s.options[s.selected], true
}

// Value returns the chosen option's value.
func (s *Select) Value() (any, bool) {
	opt, ok := s.Selected()
	return opt.Value, ok
}

// SetValue selects the first option whose value deep-equals v without
// opening or closing the list. A nil v clears the selection.
func (s *Select) SetValue(v any) error {
	if v == nil {
		s.selected = -1
		return nil
	}
	for i, opt := range s.options {
		if reflect.DeepEqual(opt.Value, v) {
			s.selected = i
			return nil
		}
	}
	return ErrValueNotFound
}

// SetDisabled enables or disables the widget. Disabling closes the list.
func (s *Select) SetDisabled(disabled bool) {
	s.cfg.disabled = disabled
	if disabled {
		s.Close()
	}
}

// SetAnchor records the trigger geometry used to place the list.
func (s *Select) SetAnchor(a *Anchor) {
	s.anchor = a
}

// Toggle opens a closed list and closes an open one.
func (s *Select) Toggle() {
	if s.state == Open {
		s.Close()
		return
	}
	s.Open()
}

// Open shows the option list, highlights the selected option (or the first
// enabled one) and scrolls it into view. Disabled widgets stay closed.
func (s *Select) Open() {
	if s.cfg.disabled || s.state == Open {
		return
	}
	s.state = Open

	s.highlighted = -1
	if s.navigable(s.selected) {
		s.highlighted = s.selected
	} else if nav := s.navigation(); len(nav) > 0 {
		s.highlighted = nav[0]
	}
	s.scrollTo(s.highlighted, true)
}

// Close hides the option list and clears the highlight and search query.
func (s *Select) Close() {
	if s.state == Closed {
		return
	}
	s.state = Closed
	s.highlighted = -1
	if s.query != "" {
		s.query = ""
		_ = s.filter(0)
	}
}

// Blur handles focus leaving the widget.
func (s *Select) Blur() {
	s.Close()
}

// Next moves the highlight to the next enabled option.
func (s *Select) Next() { s.move(1) }

// Prev moves the highlight to the previous enabled option.
func (s *Select) Prev() { s.move(-1) }

// First highlights the first enabled option.
func (s *Select) First() {
	if nav := s.navigation(); s.state == Open && len(nav) > 0 {
		s.highlighted = nav[0]
		s.scrollTo(s.highlighted, true)
	}
}

// Last highlights the last enabled option.
func (s *Select) Last() {
	if nav := s.navigation(); s.state == Open && len(nav) > 0 {
		s.highlighted = nav[len(nav)-1]
		s.scrollTo(s.highlighted, false)
	}
}

// Highlight moves the highlight to option i.
func (s *Select) Highlight(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	prev := s.highlighted
	s.highlighted = i
	if s.state == Open {
		s.scrollTo(i, prev < 0 || i < prev)
	}
	return nil
}

// Choose commits option i as the selected value and closes the list.
func (s *Select) Choose(i int) error {
	if s.cfg.disabled {
		return nil
	}
	if err := s.check(i); err != nil {
		return err
	}
	s.selected = i
	s.Close()
	return nil
}

// ChooseHighlighted commits the highlighted option, if any, and closes the list.
func (s *Select) ChooseHighlighted() {
	if s.highlighted >= 0 && s.navigable(s.highlighted) {
		s.selected = s.highlighted
	}
	s.Close()
}

// SetQuery filters the options by an accent- and case-insensitive label
// search. While open, the highlight moves to the first match if the
// current one was filtered out.
func (s *Select) SetQuery(q string) error {
	s.query = q
	if err := s.filter(0); err != nil {
		return err
	}
	if s.state != Open {
		return nil
	}
	if !s.navigable(s.highlighted) {
		s.highlighted = -1
		if nav := s.navigation(); len(nav) > 0 {
			s.highlighted = nav[0]
		}
	}
	s.scrollTo(s.highlighted, true)
	return nil
}

// Placement returns the effective direction and list offsets for the
// recorded anchor.
func (s *Select) Placement() (Direction, Position) {
	return place(s.cfg.direction, s.anchor, s.layout.height)
}

func (s *Select) move(delta int) {
	if s.state != Open {
		return
	}
	nav := s.navigation()
	if len(nav) == 0 {
		return
	}

	pos := slices.Index(nav, s.highlighted)
	switch {
	case pos < 0 && delta > 0:
		pos = 0
	case pos < 0:
		pos = len(nav) - 1
	case s.cfg.boundary == Wrap:
		pos = ((pos+delta)%len(nav) + len(nav)) % len(nav)
	default:
		pos = min(max(pos+delta, 0), len(nav)-1)
	}

	s.highlighted = nav[pos]
	s.scrollTo(s.highlighted, delta < 0)
}

// navigation returns the indexes keyboard navigation may land on.
func (s *Select) navigation() []int {
	nav := make([]int, 0, len(s.visible))
	for _, i := range s.visible {
		if !s.options[i].Disabled {
			nav = append(nav, i)
		}
	}
	return nav
}

func (s *Select) navigable(i int) bool {
	return i >= 0 && i < len(s.options) && !s.options[i].Disabled && slices.Contains(s.visible, i)
}

func (s *Select) check(i int) error {
	switch {
	case i < 0 || i >= len(s.options):
		return ErrOutOfRange
	case s.options[i].Disabled:
		return ErrOptionDisabled
	case !slices.Contains(s.visible, i):
		return ErrOptionHidden
	}
	return nil
}

func (s *Select) scrollTo(i int, alignToTop bool) {
	s.layout.scrollTo(slices.Index(s.visible, i), alignToTop)
}

// filter recomputes the visible options and rebuilds the list model.
func (s *Select) filter(scrollTop float64) error {
	m := strutil.NewMatcher(s.query)
	s.visible = s.visible[:0]
	for i, opt := range s.options {
		if m.Match(opt.Label) {
			s.visible = append(s.visible, i)
		}
	}

	l, err := newLayout(s.cfg.itemHeight, s.cfg.maxHeight, len(s.visible), scrollTop)
	if err != nil {
		return err
	}
	s.layout = l
	return nil
}
