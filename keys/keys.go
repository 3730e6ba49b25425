package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyQuit KeyName = iota
	KeyEsc

	// Pane focus
	KeyFocusNext // Tab cycles focus between the sidebar, terminal, and file panes.

	// Menu invocation without a pointer
	KeyMenu // Opens the focused surface's context menu at the cursor cell.

	// Tab strip
	KeyNewTab
	KeyCloseTab
	KeyNextTab
	KeyPrevTab

	// Sidebar
	KeySearch

	// File browser
	KeyRefresh

	KeyHelp
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"ctrl+q":     KeyQuit,
	"esc":        KeyEsc,
	"tab":        KeyFocusNext,
	"ctrl+m":     KeyMenu,
	"ctrl+t":     KeyNewTab,
	"ctrl+w":     KeyCloseTab,
	"ctrl+right": KeyNextTab,
	"ctrl+left":  KeyPrevTab,
	"ctrl+f":     KeySearch,
	"ctrl+r":     KeyRefresh,
	"ctrl+h":     KeyHelp,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyQuit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("^q", "quit"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss menu"),
	),
	KeyFocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	KeyMenu: key.NewBinding(
		key.WithKeys("ctrl+m"),
		key.WithHelp("^m", "context menu"),
	),
	KeyNewTab: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("^t", "new tab"),
	),
	KeyCloseTab: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("^w", "close tab"),
	),
	KeyNextTab: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("^→", "next tab"),
	),
	KeyPrevTab: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("^←", "previous tab"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("^f", "search profiles"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("^r", "refresh files"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("^h", "help"),
	),
}
