package dropdown

import "github.com/dmitrymomot/forgeui/pkg/classnames"

// Defaults for the modelled list geometry.
const (
	DefaultItemHeight = "2.25rem"
	DefaultMaxHeight  = "15rem"
)

type config struct {
	classes     classnames.ClassNames
	value       any
	id          string
	name        string
	placeholder string
	endpoint    string
	itemHeight  string
	maxHeight   string
	direction   Direction
	boundary    Boundary
	hasValue    bool
	disabled    bool
	richLabels  bool
	searchable  bool
}

func defaultConfig() *config {
	return &config{
		direction:  DirectionAuto,
		boundary:   Clamp,
		itemHeight: DefaultItemHeight,
		maxHeight:  DefaultMaxHeight,
	}
}

// Option configures a Select.
type Option func(*config)

// WithID sets the root element id. Default: a generated id.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithName sets the form field name of the hidden value input.
// Without a name no hidden input is rendered.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithValue preselects the option carrying v.
func WithValue(v any) Option {
	return func(c *config) {
		c.value = v
		c.hasValue = true
	}
}

// WithPlaceholder sets the trigger text shown while nothing is selected.
func WithPlaceholder(s string) Option {
	return func(c *config) {
		c.placeholder = s
	}
}

// WithDisabled disables the widget. A disabled widget ignores all input.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithDirection sets the list placement policy.
// Default: DirectionAuto.
func WithDirection(d Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}

// WithBoundary sets the keyboard navigation policy at the list ends.
// Default: Clamp.
func WithBoundary(b Boundary) Option {
	return func(c *config) {
		c.boundary = b
	}
}

// WithClass adds pass-through classes to the root element.
func WithClass(classes ...classnames.ClassNames) Option {
	return func(c *config) {
		c.classes = classnames.List{c.classes, classnames.List(classes)}
	}
}

// WithItemHeight sets the height of one option row as a CSS length
// (px, em or rem). Default: 2.25rem.
func WithItemHeight(length string) Option {
	return func(c *config) {
		c.itemHeight = length
	}
}

// WithMaxHeight sets the content-box max height of the option list as a
// CSS length. Default: 15rem.
func WithMaxHeight(length string) Option {
	return func(c *config) {
		c.maxHeight = length
	}
}

// WithRichLabels renders option labels as sanitized HTML instead of text.
func WithRichLabels() Option {
	return func(c *config) {
		c.richLabels = true
	}
}

// WithSearch renders a search box inside the open list that filters options.
func WithSearch() Option {
	return func(c *config) {
		c.searchable = true
	}
}

// WithEndpoint sets the URL prefix the rendered markup posts events to.
// Handler.Register sets it automatically.
func WithEndpoint(url string) Option {
	return func(c *config) {
		c.endpoint = url
	}
}
