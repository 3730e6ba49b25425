package menu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites the visible menu over a rendered frame at the menu's
// placed position. The frame is treated as a width x height cell grid;
// styled (ANSI-colored) content in both layers survives the splice. Returns
// the frame unchanged when the menu is hidden.
func Overlay(frame string, m *Menu, width, height int) string {
	if m == nil || !m.Visible() || width <= 0 || height <= 0 {
		return frame
	}
	return OverlayAt(frame, m.Render(), m.x, m.y, width, height)
}

// OverlayAt splices an arbitrary block over a frame at (x, y). The menu and
// the app's modal surfaces share it.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base, height)
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)

		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
