package dropdown

import "github.com/dmitrymomot/forgeui/pkg/classnames"

// Snapshot is the serializable state of a Select, kept by a Store between
// requests. Option values survive a JSON round trip only as JSON types
// (numbers come back as float64).
type Snapshot struct {
	Anchor      *Anchor          `json:"anchor,omitempty"`
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Endpoint    string           `json:"endpoint,omitempty"`
	Classes     classnames.Flags `json:"classes,omitempty"`
	Direction   Direction        `json:"direction"`
	ItemHeight  string           `json:"item_height"`
	MaxHeight   string           `json:"max_height"`
	Query       string           `json:"query,omitempty"`
	Options     []SelectOption   `json:"options"`
	Boundary    Boundary         `json:"boundary"`
	Selected    int              `json:"selected"`
	Highlighted int              `json:"highlighted"`
	ScrollTop   float64          `json:"scroll_top"`
	Open        bool             `json:"open"`
	Disabled    bool             `json:"disabled,omitempty"`
	RichLabels  bool             `json:"rich_labels,omitempty"`
	Searchable  bool             `json:"searchable,omitempty"`
}

// Snapshot captures the widget state.
func (s *Select) Snapshot() Snapshot {
	return Snapshot{
		Anchor:      s.anchor,
		ID:          s.cfg.id,
		Name:        s.cfg.name,
		Placeholder: s.cfg.placeholder,
		Endpoint:    s.cfg.endpoint,
		Classes:     classnames.Resolve(s.cfg.classes),
		Direction:   s.cfg.direction,
		ItemHeight:  s.cfg.itemHeight,
		MaxHeight:   s.cfg.maxHeight,
		Query:       s.query,
		Options:     s.options,
		Boundary:    s.cfg.boundary,
		Selected:    s.selected,
		Highlighted: s.highlighted,
		ScrollTop:   s.layout.scrollTop(),
		Open:        s.state == Open,
		Disabled:    s.cfg.disabled,
		RichLabels:  s.cfg.richLabels,
		Searchable:  s.cfg.searchable,
	}
}

// Restore rebuilds a Select from a snapshot. Out-of-range indexes are
// dropped rather than rejected.
func Restore(snap Snapshot) (*Select, error) {
	s, err := New(snap.Options,
		WithID(snap.ID),
		WithName(snap.Name),
		WithPlaceholder(snap.Placeholder),
		WithEndpoint(snap.Endpoint),
		WithClass(snap.Classes),
		WithDirection(snap.Direction),
		WithBoundary(snap.Boundary),
		WithItemHeight(snap.ItemHeight),
		WithMaxHeight(snap.MaxHeight),
		WithDisabled(snap.Disabled),
	)
	if err != nil {
		return nil, err
	}
	s.cfg.richLabels = snap.RichLabels
	s.cfg.searchable = snap.Searchable
	s.anchor = snap.Anchor

	s.query = snap.Query
	if err := s.filter(snap.ScrollTop); err != nil {
		return nil, err
	}

	if snap.Selected >= 0 && snap.Selected < len(s.options) {
		s.selected = snap.Selected
	}
	if snap.Open && !snap.Disabled {
		s.state = Open
		if s.navigable(snap.Highlighted) {
			s.highlighted = snap.Highlighted
		}
	}

	return s, nil
}
