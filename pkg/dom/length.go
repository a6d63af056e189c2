package dom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultFontSize is the font size in pixels assumed when an element has no
// usable computed font-size.
const DefaultFontSize = 16.0

var (
	lengthPattern = regexp.MustCompile(`^(-?[0-9.]+)([a-zA-Z%]*)$`)
	numberPrefix  = regexp.MustCompile(`^\s*[-+]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][-+]?[0-9]+)?`)
)

// ConvertLengthToPx converts a CSS length ("12px", "1.5rem", "2em") to
// pixels. An empty length yields 0.
//
// rem lengths use the font size of the root of el's tree (DefaultFontSize
// when el is nil or the root has none). em lengths use the font size of
// el's parent element and fail with ErrNoElement or ErrNoParentElement when
// there is none to resolve against.
func ConvertLengthToPx(length string, el Element) (float64, error) {
	if length == "" {
		return 0, nil
	}

	m := lengthPattern.FindStringSubmatch(length)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, length)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, length)
	}

	switch unit := m[2]; unit {
	case "px":
		return value, nil
	case "rem":
		return value * fontSize(Root(el)), nil
	case "em":
		if isNil(el) {
			return 0, ErrNoElement
		}
		parent := el.Parent()
		if parent == nil {
			return 0, ErrNoParentElement
		}
		return value * fontSize(parent), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}

// ContentBoxHeightToBorderBoxHeight adds el's vertical borders and padding
// to a content-box height. Missing computed values count as zero.
func ContentBoxHeightToBorderBoxHeight(el Element, contentBoxHeight float64) float64 {
	if isNil(el) {
		return contentBoxHeight
	}
	style := el.ComputedStyle()
	return contentBoxHeight +
		parseCSSNumber(style.Get("border-top-width")) +
		parseCSSNumber(style.Get("border-bottom-width")) +
		parseCSSNumber(style.Get("padding-top")) +
		parseCSSNumber(style.Get("padding-bottom"))
}

func fontSize(e Element) float64 {
	if isNil(e) {
		return DefaultFontSize
	}
	if size := parseCSSNumber(e.ComputedStyle().Get("font-size")); size > 0 {
		return size
	}
	return DefaultFontSize
}

// parseCSSNumber reads the leading number of a computed value ("12.5px"),
// returning 0 when there is none.
func parseCSSNumber(s string) float64 {
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0
	}
	return v
}
