// Package dom provides geometry helpers for laying out and scrolling
// rendered elements.
//
// The helpers work against the Element interface rather than a live
// browser DOM. Node is a measured, in-memory Element: callers describe the
// element tree with the offsets, heights and computed styles they know
// about (from a theme, a previous client measurement, or fixed row
// heights) and the helpers compute what a browser would.
//
// # Scrolling
//
// ScrollToItem keeps an item visible inside a scrollable parent:
//
//	list := dom.NewNode(dom.WithClientHeight(100))
//	item := dom.NewNode(dom.WithOffsetTop(150), dom.WithOffsetHeight(30))
//	list.AppendChild(item)
//
//	dom.ScrollToItem(item, list, false)
//	// list.ScrollTop() == 80: the item's bottom edge is aligned with the
//	// list's visible bottom edge.
//
// # Lengths
//
// ConvertLengthToPx turns CSS lengths into pixels. rem uses the root font
// size of the element's tree, em uses the font size of the element's parent:
//
//	px, err := dom.ConvertLengthToPx("2.5rem", node)
//
// # Ids
//
// GenerateHTMLID returns a short, probably unique id for element attributes.
package dom
