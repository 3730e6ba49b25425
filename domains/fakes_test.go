package domains

import "errors"

// The fakes record the last call so tests can assert which host method a
// command reached. Each returns err when set.

type fakeTerminal struct {
	calls  []string
	pasted string
	err    error
}

func (f *fakeTerminal) SelectedText() string { return "" }
func (f *fakeTerminal) Paste(text string) error {
	f.calls = append(f.calls, "paste")
	f.pasted = text
	return f.err
}
func (f *fakeTerminal) Clear() error {
	f.calls = append(f.calls, "clear")
	return f.err
}
func (f *fakeTerminal) SelectAll() error {
	f.calls = append(f.calls, "select-all")
	return f.err
}
func (f *fakeTerminal) RestartShell() error {
	f.calls = append(f.calls, "restart-shell")
	return f.err
}

type fakeSidebar struct {
	calls        []string
	lastID       string
	moveContents bool
	panelMode    string
	panelKind    string
	panelParent  string
	err          error
}

func (f *fakeSidebar) record(call, id string) error {
	f.calls = append(f.calls, call)
	f.lastID = id
	return f.err
}

func (f *fakeSidebar) OpenProfile(id string) error         { return f.record("open", id) }
func (f *fakeSidebar) OpenProfileInNewTab(id string) error { return f.record("open-new-tab", id) }
func (f *fakeSidebar) EditProfile(id string) error         { return f.record("edit", id) }
func (f *fakeSidebar) DuplicateProfile(id string) error    { return f.record("duplicate", id) }
func (f *fakeSidebar) DeleteProfile(id string) error       { return f.record("delete-profile", id) }
func (f *fakeSidebar) EditFolder(id string) error          { return f.record("edit-folder", id) }
func (f *fakeSidebar) DeleteFolder(id string, moveContents bool) error {
	f.moveContents = moveContents
	return f.record("delete-folder", id)
}
func (f *fakeSidebar) OpenProfilePanel(mode, kind, parentID string) error {
	f.panelMode, f.panelKind, f.panelParent = mode, kind, parentID
	return f.record("panel", parentID)
}
func (f *fakeSidebar) ShowSearchPanel() error { return f.record("search", "") }

type fakeTabs struct {
	calls  []string
	lastID string
	count  int
	err    error
}

func (f *fakeTabs) record(call, id string) error {
	f.calls = append(f.calls, call)
	f.lastID = id
	return f.err
}

func (f *fakeTabs) Reconnect(id string) error       { return f.record("reconnect", id) }
func (f *fakeTabs) ForceDisconnect(id string) error { return f.record("force-disconnect", id) }
func (f *fakeTabs) NewTab() error                   { return f.record("new-tab", "") }
func (f *fakeTabs) DuplicateTab(id string) error    { return f.record("duplicate", id) }
func (f *fakeTabs) CloseTab(id string) error        { return f.record("close", id) }
func (f *fakeTabs) CloseOtherTabs(id string) error  { return f.record("close-others", id) }
func (f *fakeTabs) TabCount() int                   { return f.count }

type fakeFiles struct {
	calls     []string
	lastPath  string
	lastEntry FileEntry
	targets   []FileEntry
	err       error
}

func (f *fakeFiles) Navigate(path string) error {
	f.calls = append(f.calls, "navigate")
	f.lastPath = path
	return f.err
}
func (f *fakeFiles) ShowFilePreview(entry FileEntry) error {
	f.calls = append(f.calls, "preview")
	f.lastEntry = entry
	return f.err
}
func (f *fakeFiles) Download(entries []FileEntry) error {
	f.calls = append(f.calls, "download")
	f.targets = entries
	return f.err
}
func (f *fakeFiles) Upload(dir string) error {
	f.calls = append(f.calls, "upload")
	f.lastPath = dir
	return f.err
}
func (f *fakeFiles) ShowRenameDialog(entry FileEntry) error {
	f.calls = append(f.calls, "rename")
	f.lastEntry = entry
	return f.err
}
func (f *fakeFiles) Delete(entries []FileEntry) error {
	f.calls = append(f.calls, "delete")
	f.targets = entries
	return f.err
}
func (f *fakeFiles) ShowFileProperties(entry FileEntry) error {
	f.calls = append(f.calls, "file-properties")
	f.lastEntry = entry
	return f.err
}
func (f *fakeFiles) ShowDirectoryProperties(path string) error {
	f.calls = append(f.calls, "dir-properties")
	f.lastPath = path
	return f.err
}
func (f *fakeFiles) NewFolder(dir string) error {
	f.calls = append(f.calls, "new-folder")
	f.lastPath = dir
	return f.err
}
func (f *fakeFiles) Refresh() error {
	f.calls = append(f.calls, "refresh")
	return f.err
}
func (f *fakeFiles) CurrentPath() string { return f.lastPath }

type fakeClip struct {
	text    string
	written string
	readErr error
	err     error
}

func (f *fakeClip) ReadAll() (string, error) { return f.text, f.readErr }
func (f *fakeClip) WriteAll(text string) error {
	f.written = text
	return f.err
}

type fakeNotifier struct {
	infos  []string
	errors []string
}

func (f *fakeNotifier) Info(msg string)  { f.infos = append(f.infos, msg) }
func (f *fakeNotifier) Error(msg string) { f.errors = append(f.errors, msg) }

// fakeConfirmer answers every prompt with a preset choice. A negative choice
// simulates dismissal.
type fakeConfirmer struct {
	choice  int
	titles  []string
	choices [][]string
}

func (f *fakeConfirmer) Confirm(title, message string, choices []string) (int, error) {
	f.titles = append(f.titles, title)
	f.choices = append(f.choices, choices)
	if f.choice < 0 {
		return -1, errors.New("confirmation dismissed")
	}
	return f.choice, nil
}
