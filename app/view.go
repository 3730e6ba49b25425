package app

import (
	"fmt"
	"strings"

	"portside/domains"
	"portside/menu"
	"portside/session"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// tabCellWidth is the fixed width of one tab on the strip, used both for
// rendering and for click hit-testing.
const tabCellWidth = 22

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("25"))

	paneBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238"))

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2)

	modalChoiceStyle = lipgloss.NewStyle().
				Padding(0, 1)

	modalSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func (h *home) View() string {
	if h.quitting {
		return ""
	}
	if h.lay.width == 0 || h.lay.height == 0 {
		return "loading..."
	}

	frame := h.renderFrame()

	// Modal and panel overlays sit above the panes; the context menu always
	// composites last so it is never covered.
	if h.confirm != nil {
		frame = overlayCentered(frame, h.renderConfirm(), h.lay.width, h.lay.height)
	} else if h.panel != nil {
		frame = overlayCentered(frame, h.renderPanel(), h.lay.width, h.lay.height)
	}

	if active, _ := h.coord.ActiveMenu(); active != nil {
		frame = menu.Overlay(frame, active, h.lay.width, h.lay.height)
	}
	return frame
}

func (h *home) renderFrame() string {
	var b strings.Builder
	b.WriteString(h.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(h.renderTabStrip())
	b.WriteString("\n")

	sidebar := h.renderSidebar()
	right := h.renderTerminal() + "\n" + h.renderFiles()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right))
	b.WriteString("\n")
	b.WriteString(h.renderStatus())
	return b.String()
}

func (h *home) renderTitleBar() string {
	title := " Portside"
	return titleStyle.Width(h.lay.width).Render(title)
}

func (h *home) renderTabStrip() string {
	tabs := h.tabs.Tabs()
	active := h.tabs.ActiveID()

	var cells []string
	used := 0
	for _, t := range tabs {
		if used+tabCellWidth > h.lay.width {
			break
		}
		label := t.Title
		switch t.Status {
		case session.Connecting:
			label = h.spinner.View() + " " + label
		case session.Disconnected:
			label = "✗ " + label
		}
		label = " " + truncate.StringWithTail(label, tabCellWidth-2, "…") + " "
		style := tabStyle
		if t.ID == active {
			style = activeTabStyle
		}
		cells = append(cells, style.Width(tabCellWidth).Render(label))
		used += tabCellWidth
	}
	strip := strings.Join(cells, "")
	if pad := h.lay.width - used; pad > 0 {
		strip += tabStyle.Width(pad).Render("")
	}
	return strip
}

func (h *home) renderSidebar() string {
	lines := make([]string, 0, h.lay.sidebar.H)
	for i, row := range h.rows {
		if len(lines) >= h.lay.sidebar.H {
			break
		}
		icon := "⚲"
		if row.kind == domains.SidebarFolder {
			icon = "▸"
		}
		fav := ""
		if row.favorite {
			fav = " ★"
		}
		text := strings.Repeat("  ", row.depth) + icon + " " + row.name + fav
		text = truncate.StringWithTail(text, sidebarWidth, "…")
		if i == h.sidebarSel && h.focus == paneSidebar {
			text = selectedRowStyle.Width(sidebarWidth).Render(text)
		}
		lines = append(lines, text)
	}
	for len(lines) < h.lay.sidebar.H {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (h *home) renderTerminal() string {
	lines := h.shell.Output()
	height := h.lay.terminal.H
	width := h.lay.terminal.W

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	out := make([]string, 0, height)
	for _, line := range lines {
		out = append(out, truncate.String(line, uint(width-1)))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return paneBorder.Width(width).Render(strings.Join(out, "\n"))
}

func (h *home) renderFiles() string {
	height := h.lay.files.H
	width := h.lay.files.W
	if height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)
	lines = append(lines, dirStyle.Render(truncate.StringWithTail(h.browser.CurrentPath(), uint(width-1), "…")))
	for i, e := range h.browser.Entries() {
		if len(lines) >= height {
			break
		}
		name := e.Name
		if e.Dir {
			name = dirStyle.Render(name + "/")
		} else {
			name = fmt.Sprintf("%s  %d", name, e.Size)
		}
		text := truncate.StringWithTail(name, uint(width-1), "…")
		if i == h.fileSel && h.focus == paneFiles {
			text = selectedRowStyle.Width(width - 1).Render(text)
		}
		lines = append(lines, text)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return paneBorder.Width(width).Render(strings.Join(lines, "\n"))
}

func (h *home) renderStatus() string {
	if h.status == "" {
		hint := "right-click for menu  ·  esc dismisses  ·  ^q quits"
		return statusStyle.Width(h.lay.width).Render(" " + hint)
	}
	style := statusStyle
	if h.statusIsErr {
		style = statusErrStyle
	}
	return style.Width(h.lay.width).Render(" " + h.status)
}

func (h *home) renderConfirm() string {
	c := h.confirm
	var choices []string
	for i, choice := range c.choices {
		style := modalChoiceStyle
		if i == c.selected {
			style = modalSelectedStyle
		}
		choices = append(choices, style.Render(choice))
	}
	body := c.title + "\n\n" + c.message + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, choices...)
	return modalStyle.Render(body)
}

func (h *home) renderPanel() string {
	p := h.panel
	body := p.title + "\n\n"
	if p.hasInput {
		body += p.input.View()
	} else {
		body += p.body
	}
	return panelStyle.Render(body)
}

// overlayCentered composites a block at the center of the frame using the
// same ANSI-aware splice the menu overlay uses.
func overlayCentered(frame, block string, width, height int) string {
	blockLines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)
	x := (width - blockWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(blockLines)) / 2
	if y < 0 {
		y = 0
	}
	return menu.OverlayAt(frame, block, x, y, width, height)
}
