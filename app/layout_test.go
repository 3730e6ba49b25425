package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(120, 40)

	// 40 rows minus title, tab strip, and status leaves 37 content rows,
	// split 2/3 terminal and 1/3 files.
	assert.Equal(t, 37, l.sidebar.H)
	assert.Equal(t, 24, l.terminal.H)
	assert.Equal(t, 13, l.files.H)
	assert.Equal(t, 120-sidebarWidth, l.terminal.W)
	assert.Equal(t, l.terminal.Y+l.terminal.H, l.files.Y)
}

func TestPaneAt(t *testing.T) {
	l := computeLayout(120, 40)

	tests := []struct {
		name string
		x, y int
		want pane
	}{
		{"title bar", 60, 0, paneTitleBar},
		{"tab strip", 60, 1, paneTabStrip},
		{"sidebar", 5, 10, paneSidebar},
		{"terminal", 60, 10, paneTerminal},
		{"files", 60, 30, paneFiles},
		{"status row", 60, 39, paneNone},
		{"off grid", 200, 10, paneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.paneAt(tt.x, tt.y))
		})
	}
}

func TestTinyViewportDoesNotUnderflow(t *testing.T) {
	l := computeLayout(10, 2)
	assert.Zero(t, l.sidebar.H)
	assert.Zero(t, l.terminal.H)
	assert.GreaterOrEqual(t, l.files.H, 0)
}
