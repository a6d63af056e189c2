package dropdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forgeui/pkg/dropdown"
)

func TestSelect_HandleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		open            bool
		keys            []string
		wantConsumed    bool
		wantOpen        bool
		wantHighlighted int
		wantSelected    int
	}{
		{name: "arrow down opens", keys: []string{dropdown.KeyArrowDown}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "arrow up opens", keys: []string{dropdown.KeyArrowUp}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "enter opens", keys: []string{dropdown.KeyEnter}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "space opens", keys: []string{dropdown.KeySpace}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "arrow down moves", open: true, keys: []string{dropdown.KeyArrowDown}, wantConsumed: true, wantOpen: true, wantHighlighted: 1, wantSelected: -1},
		{name: "arrow up clamps", open: true, keys: []string{dropdown.KeyArrowUp}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "end", open: true, keys: []string{dropdown.KeyEnd}, wantConsumed: true, wantOpen: true, wantHighlighted: 2, wantSelected: -1},
		{name: "home", open: true, keys: []string{dropdown.KeyEnd, dropdown.KeyHome}, wantConsumed: true, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
		{name: "enter chooses", open: true, keys: []string{dropdown.KeyArrowDown, dropdown.KeyEnter}, wantConsumed: true, wantHighlighted: -1, wantSelected: 1},
		{name: "space chooses", open: true, keys: []string{dropdown.KeyEnd, dropdown.KeySpace}, wantConsumed: true, wantHighlighted: -1, wantSelected: 2},
		{name: "escape closes", open: true, keys: []string{dropdown.KeyArrowDown, dropdown.KeyEscape}, wantConsumed: true, wantHighlighted: -1, wantSelected: -1},
		{name: "tab closes", open: true, keys: []string{dropdown.KeyTab}, wantConsumed: true, wantHighlighted: -1, wantSelected: -1},
		{name: "escape while closed", keys: []string{dropdown.KeyEscape}, wantHighlighted: -1, wantSelected: -1},
		{name: "home while closed", keys: []string{dropdown.KeyHome}, wantHighlighted: -1, wantSelected: -1},
		{name: "unknown key", open: true, keys: []string{"a"}, wantOpen: true, wantHighlighted: 0, wantSelected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := dropdown.New(letters("A", "B", "C"))
			require.NoError(t, err)
			if tt.open {
				s.Open()
			}

			var consumed bool
			for _, k := range tt.keys {
				consumed = s.HandleKey(k)
			}

			assert.Equal(t, tt.wantConsumed, consumed)
			assert.Equal(t, tt.wantOpen, s.IsOpen())
			assert.Equal(t, tt.wantHighlighted, s.Highlighted())
			assert.Equal(t, tt.wantSelected, s.SelectedIndex())
		})
	}
}

func TestSelect_HandleKey_Disabled(t *testing.T) {
	t.Parallel()

	s, err := dropdown.New(letters("A", "B"), dropdown.WithDisabled(true))
	require.NoError(t, err)

	for _, k := range []string{dropdown.KeyArrowDown, dropdown.KeyEnter, dropdown.KeySpace} {
		assert.False(t, s.HandleKey(k), k)
	}
	assert.False(t, s.IsOpen())
}

func TestSelect_HandleKey_Wrap(t *testing.T) {
	t.Parallel()

	s, err := dropdown.New(letters("A", "B", "C"), dropdown.WithBoundary(dropdown.Wrap))
	require.NoError(t, err)

	s.HandleKey(dropdown.KeyArrowDown)
	s.HandleKey(dropdown.KeyArrowUp)
	assert.Equal(t, 2, s.Highlighted())

	s.HandleKey(dropdown.KeyArrowDown)
	assert.Equal(t, 0, s.Highlighted())
}
