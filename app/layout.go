package app

import "portside/domains"

// Fixed chrome sizes, in cells.
const (
	titleBarHeight = 1
	tabStripHeight = 1
	statusHeight   = 1
	sidebarWidth   = 28
)

// pane identifies which surface a cell belongs to.
type pane int

const (
	paneNone pane = iota
	paneTitleBar
	paneTabStrip
	paneSidebar
	paneTerminal
	paneFiles
)

// layout carves the terminal grid into the workspace's surfaces. The right
// side splits horizontally: terminal on top, file browser below.
type layout struct {
	width, height int

	titleBar domains.Region
	tabStrip domains.Region
	sidebar  domains.Region
	terminal domains.Region
	files    domains.Region
}

func computeLayout(width, height int) layout {
	l := layout{width: width, height: height}

	contentTop := titleBarHeight + tabStripHeight
	contentHeight := height - contentTop - statusHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	rightX := sidebarWidth
	rightWidth := width - sidebarWidth
	if rightWidth < 0 {
		rightWidth = 0
	}
	termHeight := contentHeight * 2 / 3

	l.titleBar = domains.Region{X: 0, Y: 0, W: width, H: titleBarHeight, Name: "title-bar"}
	l.tabStrip = domains.Region{X: 0, Y: titleBarHeight, W: width, H: tabStripHeight, Name: "tab-strip"}
	l.sidebar = domains.Region{X: 0, Y: contentTop, W: sidebarWidth, H: contentHeight, Name: "sidebar"}
	l.terminal = domains.Region{X: rightX, Y: contentTop, W: rightWidth, H: termHeight, Name: "terminal"}
	l.files = domains.Region{X: rightX, Y: contentTop + termHeight, W: rightWidth, H: contentHeight - termHeight, Name: "files"}
	return l
}

// paneAt resolves a cell to the surface under it.
func (l layout) paneAt(x, y int) pane {
	switch {
	case l.titleBar.Contains(x, y):
		return paneTitleBar
	case l.tabStrip.Contains(x, y):
		return paneTabStrip
	case l.sidebar.Contains(x, y):
		return paneSidebar
	case l.terminal.Contains(x, y):
		return paneTerminal
	case l.files.Contains(x, y):
		return paneFiles
	}
	return paneNone
}
