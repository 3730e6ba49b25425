package domains

// TerminalHost is the terminal pane collaborator invoked by terminal
// commands. The engine never touches the pty directly.
type TerminalHost interface {
	SelectedText() string
	Paste(text string) error
	Clear() error
	SelectAll() error
	RestartShell() error
}

// SidebarStore is the profile tree collaborator. Data operations hit the
// profile store; the panel and search methods open UI surfaces owned by the
// app layer.
type SidebarStore interface {
	OpenProfile(id string) error
	OpenProfileInNewTab(id string) error
	EditProfile(id string) error
	DuplicateProfile(id string) error
	DeleteProfile(id string) error
	EditFolder(id string) error
	// DeleteFolder removes a folder; moveContents relocates children to the
	// folder's parent instead of deleting them.
	DeleteFolder(id string, moveContents bool) error
	OpenProfilePanel(mode, kind, parentID string) error
	ShowSearchPanel() error
}

// TabsHost is the tab strip collaborator.
type TabsHost interface {
	Reconnect(id string) error
	ForceDisconnect(id string) error
	NewTab() error
	DuplicateTab(id string) error
	CloseTab(id string) error
	CloseOtherTabs(id string) error
	TabCount() int
}

// FileHost is the remote file browser collaborator. Dialog-opening methods
// (rename, preview, properties) hand off to UI owned elsewhere; the engine
// only dispatches.
type FileHost interface {
	Navigate(path string) error
	ShowFilePreview(entry FileEntry) error
	Download(entries []FileEntry) error
	Upload(dir string) error
	ShowRenameDialog(entry FileEntry) error
	Delete(entries []FileEntry) error
	ShowFileProperties(entry FileEntry) error
	ShowDirectoryProperties(path string) error
	NewFolder(dir string) error
	Refresh() error
	CurrentPath() string
}

// Clipboarder abstracts the system clipboard so tests can fake it.
type Clipboarder interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Notifier renders transient success/failure feedback. The engine never
// draws its own error UI.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Confirmer presents a modal choice for destructive or ambiguous operations
// and returns the index of the chosen option, or an error when dismissed.
type Confirmer interface {
	Confirm(title, message string, choices []string) (int, error)
}
