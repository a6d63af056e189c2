package dropdown

import (
	"fmt"

	"github.com/dmitrymomot/forgeui/pkg/dom"
)

// Box model of the rendered list, mirrored by the default stylesheet.
const (
	rootFontSize    = "16px"
	listBorderWidth = 1.0
	listPadding     = 4.0
)

// layout models the rendered option list so scroll offsets and placement
// can be computed without a browser.
type layout struct {
	list      *dom.Node
	items     []*dom.Node // one per visible option, in display order
	rowHeight float64
	maxHeight float64 // border-box max height of the list
	height    float64 // border-box height the list actually takes
	maxScroll float64
}

func newLayout(itemHeight, maxHeight string, rows int, scrollTop float64) (*layout, error) {
	document := dom.NewNode(dom.WithStyle("font-size", rootFontSize))
	control := document.AppendChild(dom.NewNode(dom.WithStyle("font-size", rootFontSize)))
	list := control.AppendChild(dom.NewNode(
		dom.WithStyle("font-size", rootFontSize),
		dom.WithStyle("border-top-width", formatPx(listBorderWidth)),
		dom.WithStyle("border-bottom-width", formatPx(listBorderWidth)),
		dom.WithStyle("padding-top", formatPx(listPadding)),
		dom.WithStyle("padding-bottom", formatPx(listPadding)),
	))

	row, err := dom.ConvertLengthToPx(itemHeight, list)
	if err != nil {
		return nil, fmt.Errorf("item height: %w", err)
	}
	maxContent, err := dom.ConvertLengthToPx(maxHeight, list)
	if err != nil {
		return nil, fmt.Errorf("max height: %w", err)
	}

	content := min(maxContent, row*float64(rows))
	scrollHeight := row*float64(rows) + 2*listPadding
	clientHeight := content + 2*listPadding
	maxScroll := max(scrollHeight-clientHeight, 0)
	list.Measure(
		dom.WithClientHeight(clientHeight),
		dom.WithScrollTop(clampFloat(scrollTop, 0, maxScroll)),
	)

	l := &layout{
		list:      list,
		items:     make([]*dom.Node, rows),
		rowHeight: row,
		maxHeight: dom.ContentBoxHeightToBorderBoxHeight(list, maxContent),
		height:    dom.ContentBoxHeightToBorderBoxHeight(list, content),
		maxScroll: maxScroll,
	}
	for i := range l.items {
		l.items[i] = list.AppendChild(dom.NewNode(
			dom.WithOffsetTop(listPadding+float64(i)*row),
			dom.WithOffsetHeight(row),
			dom.WithClientHeight(row),
		))
	}

	return l, nil
}

// scrollTo keeps the item at display position p visible. Like a browser,
// the offset never passes the end of the list.
func (l *layout) scrollTo(p int, alignToTop bool) {
	if p < 0 || p >= len(l.items) {
		return
	}
	dom.ScrollToItem(l.items[p], l.list, alignToTop)
	l.list.SetScrollTop(clampFloat(l.list.ScrollTop(), 0, l.maxScroll))
}

func (l *layout) scrollTop() float64 {
	return l.list.ScrollTop()
}

// place resolves the effective direction and the list offsets.
// Without an anchor only the direction is resolved (auto becomes down).
func place(dir Direction, a *Anchor, listHeight float64) (Direction, Position) {
	if dir != DirectionUp && dir != DirectionDown {
		dir = DirectionDown
		if a != nil {
			below := a.ViewportHeight - a.TriggerTop - a.TriggerHeight
			above := a.TriggerTop
			if below < listHeight && above > below {
				dir = DirectionUp
			}
		}
	}

	if a == nil {
		return dir, Position{}
	}

	offset := a.TriggerHeight
	left := 0.0
	if dir == DirectionUp {
		return dir, Position{Bottom: &offset, Left: &left}
	}
	return dir, Position{Top: &offset, Left: &left}
}

func clampFloat(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
