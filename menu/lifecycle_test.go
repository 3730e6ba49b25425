package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shownMenu(t *testing.T) *Menu {
	t.Helper()
	m := New([]Item{{ID: "x", Label: "X"}})
	m.ShowAt(0, 0, Viewport{Width: 80, Height: 24}, 1)
	return m
}

func TestLifecycleSingleVisibility(t *testing.T) {
	life := NewLifecycle()
	assert.False(t, life.IsAnyVisible())

	first := shownMenu(t)
	life.Show("terminal", first)
	assert.True(t, life.IsAnyVisible())

	// Showing from another domain destroys the first menu.
	second := shownMenu(t)
	life.Show("sidebar", second)
	assert.False(t, first.Visible())
	assert.True(t, second.Visible())

	active, owner := life.Active()
	assert.Same(t, second, active)
	assert.Equal(t, "sidebar", owner)
}

func TestLifecycleLastShowWins(t *testing.T) {
	life := NewLifecycle()
	domains := []string{"terminal", "sidebar", "tab", "file", "sidebar"}

	var last *Menu
	for _, d := range domains {
		last = shownMenu(t)
		life.Show(d, last)
	}

	active, owner := life.Active()
	assert.Same(t, last, active)
	assert.Equal(t, "sidebar", owner)
	assert.True(t, life.IsAnyVisible())
}

func TestHideAll(t *testing.T) {
	life := NewLifecycle()
	m := shownMenu(t)
	life.Show("file", m)

	life.HideAll()
	assert.False(t, life.IsAnyVisible())
	assert.False(t, m.Visible())

	active, owner := life.Active()
	assert.Nil(t, active)
	assert.Empty(t, owner)

	// Hiding with nothing visible is a no-op.
	life.HideAll()
	assert.False(t, life.IsAnyVisible())
}

func TestOnHideReportsOwner(t *testing.T) {
	life := NewLifecycle()
	var hidden []string
	life.OnHide(func(owner string) { hidden = append(hidden, owner) })

	life.Show("terminal", shownMenu(t))
	life.Show("tab", shownMenu(t)) // hides terminal's menu
	life.HideAll()                 // hides tab's menu

	require.Equal(t, []string{"terminal", "tab"}, hidden)
}
