package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankFrame(width, height int) string {
	line := strings.Repeat(".", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestOverlaySplicesAtPosition(t *testing.T) {
	out := OverlayAt(blankFrame(10, 4), "AB\nCD", 3, 1, 10, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "...AB.....", lines[1])
	assert.Equal(t, "...CD.....", lines[2])
	assert.Equal(t, "..........", lines[3])
}

func TestOverlayClipsBelowFrame(t *testing.T) {
	out := OverlayAt(blankFrame(6, 2), "XX\nYY\nZZ", 0, 1, 6, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "......", lines[0])
	assert.Equal(t, "XX....", lines[1])
}

func TestOverlayHiddenMenuReturnsFrame(t *testing.T) {
	frame := blankFrame(8, 3)
	m := New([]Item{{ID: "a", Label: "A"}})
	assert.Equal(t, frame, Overlay(frame, m, 8, 3))
	assert.Equal(t, frame, Overlay(frame, nil, 8, 3))
}

func TestOverlayVisibleMenuChangesFrame(t *testing.T) {
	frame := blankFrame(40, 12)
	m := New([]Item{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}})
	m.ShowAt(2, 2, Viewport{Width: 40, Height: 12}, 1)

	out := Overlay(frame, m, 40, 12)
	assert.NotEqual(t, frame, out)
	assert.Contains(t, out, "Alpha")
	assert.Len(t, strings.Split(out, "\n"), 12)
}
