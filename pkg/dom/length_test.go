package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forgeui/pkg/dom"
)

func TestConvertLengthToPx(t *testing.T) {
	t.Parallel()

	// document (20px) > section (10px) > target
	document := dom.NewNode(dom.WithStyle("font-size", "20px"))
	section := document.AppendChild(dom.NewNode(dom.WithStyle("font-size", "10px")))
	target := section.AppendChild(dom.NewNode(dom.WithStyle("font-size", "99px")))

	tests := []struct {
		name     string
		length   string
		el       dom.Element
		expected float64
		err      error
	}{
		{name: "empty", length: "", expected: 0},
		{name: "pixels", length: "10px", expected: 10},
		{name: "negative pixels", length: "-4px", expected: -4},
		{name: "fractional pixels", length: "2.5px", expected: 2.5},
		{name: "rem without element uses default", length: "2rem", expected: 32},
		{name: "rem uses root font size", length: "2rem", el: target, expected: 40},
		{name: "em uses parent font size", length: "1.5em", el: target, expected: 15},
		{name: "em on section uses document", length: "1em", el: section, expected: 20},
		{name: "em without element", length: "1em", err: dom.ErrNoElement},
		{name: "em without parent element", length: "1em", el: document, err: dom.ErrNoParentElement},
		{name: "unknown unit", length: "10xx", err: dom.ErrInvalidUnit},
		{name: "missing unit", length: "10", err: dom.ErrInvalidUnit},
		{name: "garbage", length: "abc", err: dom.ErrInvalidLength},
		{name: "malformed number", length: "1.2.3px", err: dom.ErrInvalidLength},
		{name: "inner whitespace", length: "10 px", err: dom.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dom.ConvertLengthToPx(tt.length, tt.el)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestConvertLengthToPx_FontSizeFallback(t *testing.T) {
	t.Parallel()

	root := dom.NewNode(dom.WithStyle("font-size", "medium"))
	child := root.AppendChild(dom.NewNode())

	got, err := dom.ConvertLengthToPx("1rem", child)
	require.NoError(t, err)
	assert.InDelta(t, dom.DefaultFontSize, got, 1e-9)

	got, err = dom.ConvertLengthToPx("2em", child)
	require.NoError(t, err)
	assert.InDelta(t, 2*dom.DefaultFontSize, got, 1e-9)
}

func TestContentBoxHeightToBorderBoxHeight(t *testing.T) {
	t.Parallel()

	t.Run("adds borders and padding", func(t *testing.T) {
		t.Parallel()

		el := dom.NewNode(
			dom.WithStyle("border-top-width", "1px"),
			dom.WithStyle("border-bottom-width", "2px"),
			dom.WithStyle("padding-top", "4.5px"),
			dom.WithStyle("padding-bottom", "8px"),
		)
		assert.InDelta(t, 115.5, dom.ContentBoxHeightToBorderBoxHeight(el, 100), 1e-9)
	})

	t.Run("missing values count as zero", func(t *testing.T) {
		t.Parallel()

		el := dom.NewNode(dom.WithStyle("padding-top", "6px"))
		assert.InDelta(t, 56.0, dom.ContentBoxHeightToBorderBoxHeight(el, 50), 1e-9)
	})

	t.Run("unparseable values count as zero", func(t *testing.T) {
		t.Parallel()

		el := dom.NewNode(dom.WithStyle("border-top-width", "thin"))
		assert.InDelta(t, 50.0, dom.ContentBoxHeightToBorderBoxHeight(el, 50), 1e-9)
	})

	t.Run("nil element", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 50.0, dom.ContentBoxHeightToBorderBoxHeight(nil, 50), 1e-9)
	})
}

func TestGenerateHTMLID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := dom.GenerateHTMLID()
		require.NotEmpty(t, id)
		assert.Regexp(t, `^[0-9a-z]+$`, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
