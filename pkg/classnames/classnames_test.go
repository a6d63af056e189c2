package classnames_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/forgeui/pkg/classnames"
)

type (
	class = classnames.Class
	list  = classnames.List
	flags = classnames.Flags
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []classnames.ClassNames
		expected string
	}{
		{
			name:     "empty input",
			input:    nil,
			expected: "",
		},
		{
			name:     "strings",
			input:    []classnames.ClassNames{class("class-1"), class("class-2"), class("class-3")},
			expected: "class-1 class-2 class-3",
		},
		{
			name:     "space separated strings with nil values",
			input:    []classnames.ClassNames{class("class-1"), class("class-2 class-3"), nil, nil},
			expected: "class-1 class-2 class-3",
		},
		{
			name:     "sorted output",
			input:    []classnames.ClassNames{class("b"), class("a")},
			expected: "a b",
		},
		{
			name:     "duplicate whitespace collapses",
			input:    []classnames.ClassNames{class("  a \t b\n\nc  ")},
			expected: "a b c",
		},
		{
			name: "nested lists",
			input: []classnames.ClassNames{
				list{class("class-1"), class("class-2")},
				list{class("class-1"), class("class-3 class-4")},
			},
			expected: "class-1 class-2 class-3 class-4",
		},
		{
			name: "nested lists with nil values",
			input: []classnames.ClassNames{
				list{class("class-1"), nil},
				list{nil, class("class-3")},
			},
			expected: "class-1 class-3",
		},
		{
			name: "deeply nested lists",
			input: []classnames.ClassNames{
				list{list{list{class("deep")}}, class("shallow")},
			},
			expected: "deep shallow",
		},
		{
			name: "flags",
			input: []classnames.ClassNames{
				flags{"class-1": true},
				flags{"class-2": true},
				flags{"class-1": false, "class-3": true},
			},
			expected: "class-2 class-3",
		},
		{
			name: "mixture",
			input: []classnames.ClassNames{
				class("class-1 class-6"),
				nil,
				list{class("class-2"), class("class-3"), nil},
				flags{"class-4": true, "class-2": false},
				class("class-5"),
			},
			expected: "class-1 class-3 class-4 class-5 class-6",
		},
		{
			name:     "false flag after string wins",
			input:    []classnames.ClassNames{class("a"), flags{"a": false}},
			expected: "",
		},
		{
			name:     "string after false flag wins",
			input:    []classnames.ClassNames{flags{"a": false}, class("a")},
			expected: "a",
		},
		{
			name:     "all false",
			input:    []classnames.ClassNames{flags{"a": false, "b": false}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classnames.Merge(tt.input...))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]classnames.ClassNames{
		{class("z y x"), flags{"y": false}},
		{list{class("b"), list{class("a c")}}, class("a")},
		{flags{"one": true, "two": true}, class("three")},
		{},
	}

	for _, in := range inputs {
		once := classnames.Merge(in...)
		assert.Equal(t, once, classnames.Merge(class(once)))
	}
}

func TestIf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "base open", classnames.Merge(class("base"), classnames.If(true, "open")))
	assert.Equal(t, "base", classnames.Merge(class("base"), classnames.If(false, "open")))
	assert.Equal(t, "base", classnames.Merge(class("base open"), classnames.If(false, "open")))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", classnames.Merge(classnames.Strings("c", "a b")))
}

func TestFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "string", input: "b a", expected: "a b"},
		{name: "string slice", input: []string{"b", "a"}, expected: "a b"},
		{name: "map", input: map[string]bool{"a": true, "b": false}, expected: "a"},
		{
			name:     "mixed slice",
			input:    []any{"a", nil, []string{"b"}, map[string]bool{"a": false, "c": true}},
			expected: "b c",
		},
		{name: "unsupported value", input: 42, expected: ""},
		{name: "already typed", input: class("x"), expected: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classnames.Merge(classnames.From(tt.input)))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	items := []classnames.ClassNames{class("dropdown mine"), flags{"dropdown": false, "dark": true}}
	got := classnames.Resolve(items...)
	assert.Equal(t, flags{"dropdown": false, "mine": true, "dark": true}, got)

	// Resolved flags override earlier inputs exactly like the originals.
	base := class("dropdown dropdown-down")
	assert.Equal(t, "dark dropdown-down mine", classnames.Merge(base, got))
	assert.Equal(t, classnames.Merge(append([]classnames.ClassNames{base}, items...)...), classnames.Merge(base, got))
	assert.Empty(t, classnames.Resolve())
}
