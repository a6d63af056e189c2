package dom

// Element is the subset of an HTML element's layout state the geometry
// helpers read and write. Lengths are in CSS pixels.
type Element interface {
	// Parent returns the parent element, or nil for a root.
	Parent() Element
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool

	ScrollTop() float64
	SetScrollTop(v float64)
	ClientHeight() float64
	OffsetTop() float64
	OffsetHeight() float64

	// ComputedStyle returns the element's resolved CSS properties.
	ComputedStyle() Style
}

// Style holds computed CSS property values keyed by property name
// ("font-size", "padding-top", ...).
type Style map[string]string

// Get returns the value of prop, or an empty string when unset.
func (s Style) Get(prop string) string {
	if s == nil {
		return ""
	}
	return s[prop]
}

// Node is an in-memory Element with explicit measurements.
type Node struct {
	parent       *Node
	children     []*Node
	style        Style
	offsetTop    float64
	offsetHeight float64
	clientHeight float64
	scrollTop    float64
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithOffsetTop sets the distance from the parent's content top.
func WithOffsetTop(v float64) NodeOption {
	return func(n *Node) { n.offsetTop = v }
}

// WithOffsetHeight sets the element's layout height including borders.
func WithOffsetHeight(v float64) NodeOption {
	return func(n *Node) { n.offsetHeight = v }
}

// WithClientHeight sets the element's inner height (visible scroll band).
func WithClientHeight(v float64) NodeOption {
	return func(n *Node) { n.clientHeight = v }
}

// WithScrollTop sets the initial vertical scroll offset.
func WithScrollTop(v float64) NodeOption {
	return func(n *Node) { n.scrollTop = v }
}

// WithStyle sets a computed style property.
func WithStyle(prop, value string) NodeOption {
	return func(n *Node) {
		if n.style == nil {
			n.style = make(Style)
		}
		n.style[prop] = value
	}
}

// NewNode creates a detached node.
func NewNode(opts ...NodeOption) *Node {
	n := &Node{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AppendChild attaches child to n, detaching it from any previous parent.
// Returns child for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent element or nil.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other Element) bool {
	for e := other; e != nil; e = e.Parent() {
		if e == Element(n) {
			return true
		}
	}
	return false
}

func (n *Node) ScrollTop() float64 { return n.scrollTop }
func (n *Node) SetScrollTop(v float64) { n.scrollTop = v }
func (n *Node) ClientHeight() float64 { return n.clientHeight }
func (n *Node) OffsetTop() float64 { return n.offsetTop }
func (n *Node) OffsetHeight() float64 { return n.offsetHeight }
func (n *Node) ComputedStyle() Style { return n.style }

// Measure applies measurement options to an existing node.
func (n *Node) Measure(opts ...NodeOption) {
	for _, opt := range opts {
		opt(n)
	}
}

// SetStyle sets a computed style property.
func (n *Node) SetStyle(prop, value string) {
	WithStyle(prop, value)(n)
}

// Root returns the topmost ancestor of e, or e itself when it has no parent.
// Returns nil for a nil element.
func Root(e Element) Element {
	if isNil(e) {
		return nil
	}
	for p := e.Parent(); p != nil; p = e.Parent() {
		e = p
	}
	return e
}

var _ Element = (*Node)(nil)
