package dom

// Visibility selects how much of an element must lie inside its parent's
// visible scroll band to count as in view.
type Visibility int

const (
	// Full requires the whole element height inside the visible band.
	Full Visibility = iota
	// Partial accepts any overlap with the visible band.
	Partial
)

// IsInScrollView reports whether element is visible inside parent's scroll
// band. It returns false when parent does not contain element.
func IsInScrollView(element, parent Element, mode Visibility) bool {
	if isNil(element) || isNil(parent) || !parent.Contains(element) {
		return false
	}

	top := element.OffsetTop()

	if mode == Partial {
		lower := parent.ScrollTop() + parent.ClientHeight()
		upper := parent.ScrollTop() - element.ClientHeight()
		return top <= lower && top >= upper
	}

	lower := parent.ScrollTop() + parent.ClientHeight() - element.ClientHeight()
	upper := parent.ScrollTop()
	return top <= lower && top >= upper
}

// ScrollToItem scrolls parent so that item is fully visible. It does nothing
// when item is nil or already fully in view. With alignToTop the item's top
// edge is aligned with the top of the visible band, otherwise its bottom
// edge is aligned with the bottom of the band.
func ScrollToItem(item, parent Element, alignToTop bool) {
	if isNil(item) || isNil(parent) || IsInScrollView(item, parent, Full) {
		return
	}

	if alignToTop {
		parent.SetScrollTop(item.OffsetTop())
		return
	}
	parent.SetScrollTop(item.OffsetTop() + item.OffsetHeight() - parent.ClientHeight())
}

func isNil(e Element) bool {
	if e == nil {
		return true
	}
	n, ok := e.(*Node)
	return ok && n == nil
}
