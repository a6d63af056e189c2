package dropdown

// SelectOption is one entry of the option list. Options are treated as
// immutable once passed to New. Values are matched with deep equality.
type SelectOption struct {
	Value    any    `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// State is the open/closed state of the option list.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Direction governs where the option list is placed relative to the trigger.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionAuto Direction = "auto"
)

// Boundary decides what keyboard navigation does at the first and last option.
type Boundary int

const (
	// Clamp keeps the highlight on the boundary option.
	Clamp Boundary = iota
	// Wrap moves the highlight to the opposite end of the list.
	Wrap
)

// Position holds pixel offsets of the option list relative to its trigger.
// Nil fields are left to the stylesheet.
type Position struct {
	Top    *float64 `json:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
}

// Anchor describes the trigger's measured viewport geometry, as reported by
// the browser when the list is opened.
type Anchor struct {
	TriggerTop     float64 `json:"trigger_top"`
	TriggerHeight  float64 `json:"trigger_height"`
	ViewportHeight float64 `json:"viewport_height"`
}
