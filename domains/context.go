// Package domains wires the four workspace surfaces (terminal pane, sidebar
// profile tree, tab strip, remote file browser) to the menu engine. Each
// domain has its own context type, command registry, and menu manager; the
// Coordinator is the single entry point external callers use.
package domains

import "portside/menu"

// TerminalContext describes a menu invocation over the terminal pane.
type TerminalContext struct {
	// Selection is the currently selected terminal text, empty when nothing
	// is selected.
	Selection string

	// ClipboardHasText is sampled when the context is built so the Paste
	// predicate stays pure.
	ClipboardHasText bool

	// At is the originating pointer cell, nil for programmatic invocations.
	At *menu.Point
}

// SidebarKind classifies the target of a sidebar menu invocation.
type SidebarKind string

const (
	SidebarProfile SidebarKind = "profile"
	SidebarFolder  SidebarKind = "folder"
	SidebarRoot    SidebarKind = "root"
)

// SidebarContext describes a menu invocation over the profile tree. For the
// root empty space, Kind is SidebarRoot and ID is empty.
type SidebarContext struct {
	Kind     SidebarKind
	ID       string
	Name     string
	Favorite bool
	At       *menu.Point
}

// ParentID returns the folder new items should be created under: the target
// itself for folders, the root otherwise.
func (c SidebarContext) ParentID() string {
	if c.Kind == SidebarFolder {
		return c.ID
	}
	return ""
}

// TabStatus is a tab's connection state as seen by enablement predicates.
type TabStatus string

const (
	TabConnected    TabStatus = "connected"
	TabDisconnected TabStatus = "disconnected"
	TabConnecting   TabStatus = "connecting"
)

// TabContext describes a menu invocation over one tab in the strip.
type TabContext struct {
	TabID    string
	Title    string
	Status   TabStatus
	TabCount int
	At       *menu.Point
}

// FileEntry is one item in the remote file browser.
type FileEntry struct {
	Name string
	Path string
	Dir  bool
	Size int64
}

// FileContext describes a menu invocation over the file browser. A nil Entry
// means the empty space of the current directory was targeted; Selected
// carries multi-selected peers and always includes Entry when non-nil.
type FileContext struct {
	Entry    *FileEntry
	Path     string
	Selected []FileEntry
	At       *menu.Point
}

// Targets returns the entries an action should apply to: the multi-selection
// when one exists, otherwise the single target entry.
func (c FileContext) Targets() []FileEntry {
	if len(c.Selected) > 0 {
		return c.Selected
	}
	if c.Entry != nil {
		return []FileEntry{*c.Entry}
	}
	return nil
}

// TargetPath returns the path actions like Copy Path operate on: the entry's
// path, or the current directory for empty-space invocations.
func (c FileContext) TargetPath() string {
	if c.Entry != nil {
		return c.Entry.Path
	}
	return c.Path
}

func (c FileContext) isDir() bool   { return c.Entry != nil && c.Entry.Dir }
func (c FileContext) isFile() bool  { return c.Entry != nil && !c.Entry.Dir }
func (c FileContext) isEmpty() bool { return c.Entry == nil }
