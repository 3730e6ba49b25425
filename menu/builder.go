package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// maxLabelWidth caps a single entry's rendered label. Longer labels are
// truncated with an ellipsis rather than widening the menu unboundedly.
const maxLabelWidth = 42

var (
	menuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	menuItemHoverStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("255"))

	menuDividerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// Menu is the transient rendering state of one shown context menu: the
// visible entries after enablement filtering, a screen position, and a
// visibility flag. Menus are created fresh on every show and discarded on
// hide; they are never pooled or reused.
type Menu struct {
	items    []Item
	x, y     int
	width    int // content width, borders excluded
	visible  bool
	attached bool
	hover    int
}

// New builds a menu surface from filtered display items. Redundant
// separators are collapsed here: leading, trailing, and consecutive
// separators are dropped so the rendered menu never shows a dangling rule.
// The menu is not yet attached; call ShowAt.
func New(items []Item) *Menu {
	m := &Menu{hover: -1}
	for _, it := range items {
		if it.Separator {
			if len(m.items) == 0 || m.items[len(m.items)-1].Separator {
				continue
			}
			m.items = append(m.items, it)
			continue
		}
		m.items = append(m.items, it)
	}
	for len(m.items) > 0 && m.items[len(m.items)-1].Separator {
		m.items = m.items[:len(m.items)-1]
	}
	m.measure()
	return m
}

func (m *Menu) measure() {
	w := 0
	for _, it := range m.items {
		if it.Separator {
			continue
		}
		lw := runewidth.StringWidth(m.line(it))
		if lw > w {
			w = lw
		}
	}
	if w > maxLabelWidth {
		w = maxLabelWidth
	}
	m.width = w
}

func (m *Menu) line(it Item) string {
	if it.Icon == "" {
		return it.Label
	}
	return it.Icon + " " + it.Label
}

// Empty reports whether filtering left nothing to show.
func (m *Menu) Empty() bool { return len(m.items) == 0 }

// Items returns the visible entries in display order.
func (m *Menu) Items() []Item { return m.items }

// Width returns the full rendered width, border and padding included.
func (m *Menu) Width() int { return m.width + 4 }

// Height returns the full rendered height, border included.
func (m *Menu) Height() int { return len(m.items) + 2 }

// Pos returns the current top-left cell.
func (m *Menu) Pos() (int, int) { return m.x, m.y }

// Visible reports whether the menu is currently shown.
func (m *Menu) Visible() bool { return m.visible }

// ShowAt attaches the menu, measures its rendered footprint, runs the
// positioning algorithm against vp, and marks the menu visible.
func (m *Menu) ShowAt(x, y int, vp Viewport, margin int) {
	m.ShowAtThreshold(x, y, vp, margin, FlipThreshold)
}

// ShowAtThreshold is ShowAt with an explicit flip threshold.
func (m *Menu) ShowAtThreshold(x, y int, vp Viewport, margin int, threshold float64) {
	m.attached = true
	m.x, m.y = PlaceThreshold(x, y, m.Width(), m.Height(), vp, margin, threshold)
	m.visible = true
}

// Destroy detaches and discards the menu surface. Idempotent.
func (m *Menu) Destroy() {
	m.visible = false
	m.attached = false
	m.items = nil
}

// SetHover highlights the entry under the pointer; index -1 clears it.
func (m *Menu) SetHover(idx int) {
	if idx < -1 || idx >= len(m.items) {
		idx = -1
	}
	m.hover = idx
}

// Contains reports whether the cell (x, y) falls inside the rendered menu,
// border included.
func (m *Menu) Contains(x, y int) bool {
	if !m.visible {
		return false
	}
	return x >= m.x && x < m.x+m.Width() &&
		y >= m.y && y < m.y+m.Height()
}

// HitTest resolves the cell (x, y) to the entry index under it. It returns
// (-1, Item{}) when the cell is outside the menu, on the border, or over a
// separator.
func (m *Menu) HitTest(x, y int) (int, Item) {
	if !m.Contains(x, y) {
		return -1, Item{}
	}
	idx := y - m.y - 1 // top border
	if idx < 0 || idx >= len(m.items) {
		return -1, Item{}
	}
	if x <= m.x || x >= m.x+m.Width()-1 {
		return -1, Item{}
	}
	it := m.items[idx]
	if it.Separator {
		return -1, Item{}
	}
	return idx, it
}

// Render draws the menu as a bordered lipgloss block. Returns "" when the
// menu is hidden or empty.
func (m *Menu) Render() string {
	if !m.visible || len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.items))
	for i, it := range m.items {
		if it.Separator {
			lines = append(lines, menuDividerStyle.Render(strings.Repeat("─", m.width)))
			continue
		}
		text := truncate.StringWithTail(m.line(it), uint(m.width), "…")
		pad := m.width - runewidth.StringWidth(text)
		if pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		if i == m.hover {
			lines = append(lines, menuItemHoverStyle.Render(text))
		} else {
			lines = append(lines, menuItemStyle.Render(text))
		}
	}
	return menuBorderStyle.Render(strings.Join(lines, "\n"))
}
