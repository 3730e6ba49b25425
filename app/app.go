// Package app hosts the bubbletea program: pane layout, mouse and keyboard
// routing into the menu coordinator, and the modal surfaces commands hand
// off to.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"portside/bus"
	"portside/config"
	"portside/domains"
	"portside/fuzzy"
	"portside/keys"
	"portside/log"
	"portside/menu"
	"portside/profile"
	"portside/remote"
	"portside/session"
	"portside/term"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type (
	shellOutputMsg struct{}
	menuHandledMsg struct{ handled bool }
	refreshTreeMsg struct{}
	propertiesMsg  struct{ text string }
	previewMsg     struct{ name, body string }
	statusClearMsg struct{ setAt time.Time }
	autoConnectMsg struct{ profileID string }
)

// Run wires the collaborators, builds the coordinator, and runs the UI
// until quit.
func Run(autoConnect string) error {
	lipgloss.SetColorProfile(termenv.ColorProfile())

	cfg := config.LoadConfig()
	log.InitializeWithConfig(cfg.LogConfig())
	defer log.Close()

	state := config.LoadState()
	defer state.Close()

	b := bus.New()
	notifier := &statusNotifier{}
	confirmer := newModalConfirmer(notifier)

	storePath, err := profile.DefaultPath()
	if err != nil {
		return err
	}
	store, err := profile.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open profile store: %w", err)
	}

	startPath := state.LastBrowsePath
	if startPath == "" {
		if startPath, err = os.UserHomeDir(); err != nil {
			startPath = "/"
		}
	}
	browser, err := remote.NewLocal(startPath, b, notifier)
	if err != nil {
		// Fall back to the root so a stale saved path can't break startup.
		if browser, err = remote.NewLocal("/", b, notifier); err != nil {
			return fmt.Errorf("failed to open file browser: %w", err)
		}
	}

	tabs := session.NewManager(nil)
	shell := term.NewShell(cfg.DefaultShell)

	coord := domains.NewCoordinator(domains.Deps{
		Terminal:  shell,
		Sidebar:   &sidebarHost{store: store, tabs: tabs, notifier: notifier},
		Tabs:      tabs,
		Files:     browser,
		Clipboard: domains.SystemClipboard{},
		Notifier:  notifier,
		Confirmer: confirmer,
		Bus:       b,
		Margin:    cfg.MenuMargin,
	})
	if cfg.MenuFlipThreshold != 0 {
		coord.SetFlipThreshold(cfg.MenuFlipThreshold)
	}

	stopWatch, err := store.Watch(b)
	if err != nil {
		log.WarningLog.Printf("profile watch disabled: %v", err)
	} else {
		defer stopWatch()
	}

	m := newHome(cfg, state, coord, shell, store, tabs, browser, notifier)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	notifier.bind(p.Send)
	shell.OnOutput(func([]byte) { p.Send(shellOutputMsg{}) })
	subscribeBusEvents(b, state, notifier)

	if err := shell.Start(); err != nil {
		log.WarningLog.Printf("failed to start shell: %v", err)
	}
	defer shell.Stop()

	if autoConnect == "" {
		autoConnect = cfg.AutoConnectProfile
	}
	if autoConnect != "" {
		go p.Send(autoConnectMsg{profileID: autoConnect})
	}

	_, err = p.Run()
	return err
}

// subscribeBusEvents reacts to events domain commands publish: favorite
// toggles persist to state, properties requests open the panel, store
// reloads refresh the tree.
func subscribeBusEvents(b *bus.Bus, state *config.State, notifier *statusNotifier) {
	b.Subscribe(domains.EventToggleFavorite, func(payload any) {
		ev, ok := payload.(domains.ProfileEvent)
		if !ok {
			return
		}
		fav, err := state.ToggleFavorite(ev.ProfileID)
		if err != nil {
			log.ErrorLog.Printf("failed to toggle favorite %s: %v", ev.ProfileID, err)
			notifier.Error("Failed to update favorites")
			return
		}
		if fav {
			notifier.Info(fmt.Sprintf("Added %q to favorites", ev.Name))
		} else {
			notifier.Info(fmt.Sprintf("Removed %q from favorites", ev.Name))
		}
		notifier.post(refreshTreeMsg{})
	})
	b.Subscribe(domains.EventShowProperties, func(payload any) {
		ev, ok := payload.(domains.ProfileEvent)
		if !ok {
			return
		}
		notifier.post(panelRequestMsg{mode: "view", kind: "profile", targetID: ev.ProfileID})
	})
	b.Subscribe(profile.ChangedEvent, func(any) {
		notifier.post(refreshTreeMsg{})
	})
	b.Subscribe(remote.EventProperties, func(payload any) {
		if text, ok := payload.(string); ok {
			notifier.post(propertiesMsg{text: text})
		}
	})
	b.Subscribe(remote.EventPreview, func(payload any) {
		entry, ok := payload.(domains.FileEntry)
		if !ok {
			return
		}
		notifier.post(previewMsg{name: entry.Name, body: readPreview(entry.Path)})
	})
	b.Subscribe(remote.EventRename, func(payload any) {
		entry, ok := payload.(domains.FileEntry)
		if !ok {
			return
		}
		notifier.post(panelRequestMsg{mode: "rename", kind: "file", targetID: entry.Path})
	})
	b.Subscribe(remote.EventUploadRequest, func(payload any) {
		if dir, ok := payload.(string); ok {
			notifier.post(panelRequestMsg{mode: "upload", kind: "file", parentID: dir})
		}
	})
	b.Subscribe(remote.EventRefreshed, func(any) {
		notifier.post(refreshTreeMsg{})
	})
}

const previewLimit = 4 * 1024

func readPreview(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("cannot open: %v", err)
	}
	defer f.Close()
	buf := make([]byte, previewLimit)
	n, _ := f.Read(buf)
	return string(buf[:n])
}

// confirmState is an active modal choice.
type confirmState struct {
	title    string
	message  string
	choices  []string
	selected int
	resp     chan int
}

// panelState is an active side panel: an input prompt (search, rename,
// upload, create) or a read-only body (properties, preview).
type panelState struct {
	kind     string // "search", "rename", "upload", "create", "view"
	title    string
	input    textinput.Model
	hasInput bool
	body     string
	targetID string
	parentID string
	itemKind string // "profile" or "folder" for create panels
}

// sidebarRow is one rendered line of the profile tree.
type sidebarRow struct {
	kind     domains.SidebarKind
	id       string
	name     string
	depth    int
	favorite bool
}

// home is the root model.
type home struct {
	cfg      *config.Config
	state    *config.State
	coord    *domains.Coordinator
	shell    *term.Shell
	store    *profile.Store
	tabs     *session.Manager
	browser  *remote.Local
	notifier *statusNotifier

	lay     layout
	focus   pane
	spinner spinner.Model

	rows       []sidebarRow
	sidebarSel int
	fileSel    int

	status      string
	statusIsErr bool
	statusAt    time.Time

	confirm *confirmState
	panel   *panelState

	quitting bool
}

func newHome(cfg *config.Config, state *config.State, coord *domains.Coordinator,
	shell *term.Shell, store *profile.Store, tabs *session.Manager,
	browser *remote.Local, notifier *statusNotifier) *home {

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	h := &home{
		cfg:      cfg,
		state:    state,
		coord:    coord,
		shell:    shell,
		store:    store,
		tabs:     tabs,
		browser:  browser,
		notifier: notifier,
		focus:    paneTerminal,
		spinner:  sp,
	}
	h.rebuildTree()
	return h
}

func (h *home) Init() tea.Cmd {
	return h.spinner.Tick
}

// rebuildTree flattens the profile store into display rows: folders first
// with their children indented, root profiles after.
func (h *home) rebuildTree() {
	h.rows = h.rows[:0]
	folders := h.store.Folders()
	profiles := h.store.Profiles()

	var walk func(parentID string, depth int)
	walk = func(parentID string, depth int) {
		for _, f := range folders {
			if f.ParentID != parentID {
				continue
			}
			h.rows = append(h.rows, sidebarRow{kind: domains.SidebarFolder, id: f.ID, name: f.Name, depth: depth})
			walk(f.ID, depth+1)
			for _, p := range profiles {
				if p.ParentID == f.ID {
					h.rows = append(h.rows, sidebarRow{
						kind: domains.SidebarProfile, id: p.ID, name: p.Name,
						depth: depth + 1, favorite: h.state.IsFavorite(p.ID),
					})
				}
			}
		}
	}
	walk("", 0)
	for _, p := range profiles {
		if p.ParentID == "" {
			h.rows = append(h.rows, sidebarRow{
				kind: domains.SidebarProfile, id: p.ID, name: p.Name,
				favorite: h.state.IsFavorite(p.ID),
			})
		}
	}
	if h.sidebarSel >= len(h.rows) {
		h.sidebarSel = len(h.rows) - 1
	}
	if h.sidebarSel < 0 {
		h.sidebarSel = 0
	}
}

func (h *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return h.handleResize(msg)
	case tea.KeyMsg:
		return h.handleKey(msg)
	case tea.MouseMsg:
		return h.handleMouse(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd
	case statusMsg:
		h.status, h.statusIsErr = msg.text, msg.isErr
		h.statusAt = time.Now()
		setAt := h.statusAt
		return h, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return statusClearMsg{setAt: setAt}
		})
	case statusClearMsg:
		if msg.setAt.Equal(h.statusAt) {
			h.status = ""
		}
		return h, nil
	case confirmRequestMsg:
		h.confirm = &confirmState{
			title: msg.title, message: msg.message,
			choices: msg.choices, resp: msg.resp,
		}
		return h, nil
	case panelRequestMsg:
		h.openPanel(msg)
		return h, nil
	case propertiesMsg:
		h.panel = &panelState{kind: "view", title: "Properties", body: msg.text}
		return h, nil
	case previewMsg:
		h.panel = &panelState{kind: "view", title: "Preview: " + msg.name, body: msg.body}
		return h, nil
	case refreshTreeMsg:
		h.rebuildTree()
		if h.fileSel >= len(h.browser.Entries()) {
			h.fileSel = 0
		}
		return h, nil
	case shellOutputMsg:
		return h, nil
	case menuHandledMsg:
		return h, nil
	case autoConnectMsg:
		ctx := domains.SidebarContext{Kind: domains.SidebarProfile, ID: msg.profileID}
		return h, func() tea.Msg {
			if err := h.coord.ExecuteSidebarCommand("connect", ctx); err != nil {
				log.WarningLog.Printf("autoconnect failed: %v", err)
			}
			return menuHandledMsg{}
		}
	}
	return h, nil
}

func (h *home) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h.lay = computeLayout(msg.Width, msg.Height)
	h.coord.SetViewport(menu.Viewport{Width: msg.Width, Height: msg.Height})
	if h.cfg.ProtectChrome {
		h.coord.SetProtectedRegions([]domains.Region{h.lay.titleBar})
	}
	if err := h.shell.Resize(h.lay.terminal.W, h.lay.terminal.H); err != nil {
		log.WarningLog.Printf("failed to resize shell: %v", err)
	}
	return h, nil
}

func (h *home) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if h.confirm != nil {
		return h.handleConfirmKey(msg)
	}
	if h.panel != nil {
		return h.handlePanelKey(msg)
	}

	switch msg.String() {
	case "ctrl+q":
		h.quitting = true
		h.coord.HideAllMenus()
		if active := h.tabs.ActiveID(); active != "" {
			if err := h.state.SetLastActiveTab(active); err != nil {
				log.WarningLog.Printf("failed to save last active tab: %v", err)
			}
		}
		return h, tea.Quit
	case "esc":
		h.coord.EscapePressed()
		return h, nil
	case "tab":
		h.cycleFocus()
		return h, nil
	case "ctrl+m":
		return h.showMenuForFocus()
	case "ctrl+t":
		return h, h.runTabCommand("new-tab")
	case "ctrl+w":
		if active := h.tabs.ActiveID(); active != "" {
			return h, h.runTabCommand("close-tab")
		}
		return h, nil
	case "ctrl+right":
		h.cycleTab(1)
		return h, nil
	case "ctrl+left":
		h.cycleTab(-1)
		return h, nil
	case "ctrl+f":
		h.openPanel(panelRequestMsg{kind: "search"})
		return h, nil
	case "ctrl+h":
		h.panel = &panelState{kind: "view", title: "Keys", body: helpText()}
		return h, nil
	case "ctrl+r":
		return h, func() tea.Msg {
			if err := h.browser.Refresh(); err != nil {
				h.notifier.Error(err.Error())
			}
			return menuHandledMsg{}
		}
	case "up", "k":
		h.moveSelection(-1)
		return h, nil
	case "down", "j":
		h.moveSelection(1)
		return h, nil
	case "enter":
		return h.activateSelection()
	}
	return h, nil
}

func (h *home) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := h.confirm
	switch msg.String() {
	case "left", "h":
		if c.selected > 0 {
			c.selected--
		}
	case "right", "l", "tab":
		if c.selected < len(c.choices)-1 {
			c.selected++
		}
	case "enter":
		c.resp <- c.selected
		h.confirm = nil
	case "esc":
		c.resp <- -1
		h.confirm = nil
	}
	return h, nil
}

func (h *home) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := h.panel
	switch msg.String() {
	case "esc":
		h.panel = nil
		return h, nil
	case "enter":
		if p.hasInput {
			return h.submitPanel()
		}
		h.panel = nil
		return h, nil
	}
	if p.hasInput {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *home) cycleFocus() {
	switch h.focus {
	case paneSidebar:
		h.focus = paneTerminal
	case paneTerminal:
		h.focus = paneFiles
	default:
		h.focus = paneSidebar
	}
}

// cycleTab moves tab focus by delta, wrapping at the strip's ends.
func (h *home) cycleTab(delta int) {
	tabs := h.tabs.Tabs()
	if len(tabs) == 0 {
		return
	}
	cur := 0
	for i, t := range tabs {
		if t.ID == h.tabs.ActiveID() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(tabs)) % len(tabs)
	if err := h.tabs.SetActive(tabs[next].ID); err != nil {
		log.WarningLog.Printf("failed to focus tab: %v", err)
	}
}

func (h *home) moveSelection(delta int) {
	switch h.focus {
	case paneSidebar:
		h.sidebarSel = clampIndex(h.sidebarSel+delta, len(h.rows))
	case paneFiles:
		h.fileSel = clampIndex(h.fileSel+delta, len(h.browser.Entries()))
	}
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (h *home) activateSelection() (tea.Model, tea.Cmd) {
	switch h.focus {
	case paneSidebar:
		if h.sidebarSel < len(h.rows) {
			row := h.rows[h.sidebarSel]
			if row.kind == domains.SidebarProfile {
				ctx := h.sidebarContextFor(row)
				return h, func() tea.Msg {
					_ = h.coord.ExecuteSidebarCommand("connect-new-tab", ctx)
					return refreshTreeMsg{}
				}
			}
		}
	case paneFiles:
		entries := h.browser.Entries()
		if h.fileSel < len(entries) && entries[h.fileSel].Dir {
			entry := entries[h.fileSel]
			return h, func() tea.Msg {
				if err := h.browser.Navigate(entry.Path); err != nil {
					h.notifier.Error(err.Error())
				} else if err := h.state.SetLastBrowsePath(entry.Path); err != nil {
					log.WarningLog.Printf("failed to save browse path: %v", err)
				}
				return refreshTreeMsg{}
			}
		}
	}
	return h, nil
}

// showMenuForFocus opens the focused surface's menu programmatically, with
// no pointer origin.
func (h *home) showMenuForFocus() (tea.Model, tea.Cmd) {
	switch h.focus {
	case paneTerminal:
		h.coord.ShowTerminalContextMenu(nil, h.terminalContext())
	case paneSidebar:
		ctx := domains.SidebarContext{Kind: domains.SidebarRoot}
		if h.sidebarSel < len(h.rows) {
			ctx = h.sidebarContextFor(h.rows[h.sidebarSel])
		}
		h.coord.ShowSidebarContextMenu(nil, ctx)
	case paneFiles:
		entries := h.browser.Entries()
		if h.fileSel < len(entries) {
			h.coord.ShowFileItemContextMenu(nil, entries[h.fileSel], nil, h.browser.CurrentPath())
		} else {
			h.coord.ShowFileDirectoryContextMenu(nil, h.browser.CurrentPath())
		}
	}
	return h, nil
}

func (h *home) terminalContext() domains.TerminalContext {
	clip := domains.SystemClipboard{}
	text, err := clip.ReadAll()
	return domains.TerminalContext{
		Selection:        h.shell.SelectedText(),
		ClipboardHasText: err == nil && text != "",
	}
}

func (h *home) sidebarContextFor(row sidebarRow) domains.SidebarContext {
	return domains.SidebarContext{
		Kind:     row.kind,
		ID:       row.id,
		Name:     row.name,
		Favorite: row.favorite,
	}
}

func (h *home) tabContextFor(tab session.Tab) domains.TabContext {
	return domains.TabContext{
		TabID:    tab.ID,
		Title:    tab.Title,
		Status:   domains.TabStatus(tab.Status),
		TabCount: h.tabs.TabCount(),
	}
}

// runTabCommand dispatches a tab command against the active tab.
func (h *home) runTabCommand(id string) tea.Cmd {
	active, ok := h.tabs.Get(h.tabs.ActiveID())
	if !ok && id != "new-tab" {
		return nil
	}
	ctx := h.tabContextFor(active)
	return func() tea.Msg {
		_ = h.coord.ExecuteTabCommand(id, ctx)
		return refreshTreeMsg{}
	}
}

func (h *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		h.coord.HoverAt(msg.X, msg.Y)
		return h, nil
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonRight:
			return h.handleRightClick(msg.X, msg.Y)
		case tea.MouseButtonLeft:
			return h.handleLeftClick(msg.X, msg.Y)
		}
	}
	return h, nil
}

func (h *home) handleRightClick(x, y int) (tea.Model, tea.Cmd) {
	origin := &menu.Point{X: x, Y: y}

	switch h.lay.paneAt(x, y) {
	case paneTerminal:
		h.focus = paneTerminal
		h.coord.ShowTerminalContextMenu(origin, h.terminalContext())
	case paneSidebar:
		h.focus = paneSidebar
		ctx := domains.SidebarContext{Kind: domains.SidebarRoot}
		if row, ok := h.sidebarRowAt(y); ok {
			ctx = h.sidebarContextFor(row)
		}
		h.coord.ShowSidebarContextMenu(origin, ctx)
	case paneTabStrip:
		if tab, ok := h.tabAt(x); ok {
			h.coord.ShowTabContextMenu(origin, h.tabContextFor(tab))
		} else {
			// Strip chrome between tabs is protected: swallow the click.
			h.coord.HideAllMenus()
		}
	case paneFiles:
		h.focus = paneFiles
		if entry, ok := h.fileEntryAt(y); ok {
			h.coord.ShowFileItemContextMenu(origin, entry, nil, h.browser.CurrentPath())
		} else {
			h.coord.ShowFileDirectoryContextMenu(origin, h.browser.CurrentPath())
		}
	default:
		if h.coord.InProtectedRegion(x, y) {
			return h, nil
		}
		h.coord.HideAllMenus()
	}
	return h, nil
}

func (h *home) handleLeftClick(x, y int) (tea.Model, tea.Cmd) {
	if h.coord.IsAnyMenuVisible() {
		// Dispatch runs off the update loop so blocking collaborators
		// (confirmation modals) can't deadlock the UI.
		return h, func() tea.Msg {
			return menuHandledMsg{handled: h.coord.ClickAt(x, y)}
		}
	}

	switch h.lay.paneAt(x, y) {
	case paneSidebar:
		h.focus = paneSidebar
		if idx := y - h.lay.sidebar.Y; idx >= 0 && idx < len(h.rows) {
			h.sidebarSel = idx
		}
	case paneTerminal:
		h.focus = paneTerminal
	case paneFiles:
		h.focus = paneFiles
		if idx := y - h.lay.files.Y - 1; idx >= 0 && idx < len(h.browser.Entries()) {
			h.fileSel = idx
		}
	case paneTabStrip:
		if tab, ok := h.tabAt(x); ok {
			if err := h.tabs.SetActive(tab.ID); err != nil {
				log.WarningLog.Printf("failed to focus tab: %v", err)
			}
		}
	}
	return h, nil
}

func (h *home) sidebarRowAt(y int) (sidebarRow, bool) {
	idx := y - h.lay.sidebar.Y
	if idx < 0 || idx >= len(h.rows) {
		return sidebarRow{}, false
	}
	return h.rows[idx], true
}

// fileEntryAt maps a cell row to a listing entry; the pane's first line is
// the path header.
func (h *home) fileEntryAt(y int) (domains.FileEntry, bool) {
	idx := y - h.lay.files.Y - 1
	entries := h.browser.Entries()
	if idx < 0 || idx >= len(entries) {
		return domains.FileEntry{}, false
	}
	return entries[idx], true
}

// tabAt maps a cell column on the strip to a tab.
func (h *home) tabAt(x int) (session.Tab, bool) {
	tabs := h.tabs.Tabs()
	if len(tabs) == 0 {
		return session.Tab{}, false
	}
	idx := x / tabCellWidth
	if idx < 0 || idx >= len(tabs) {
		return session.Tab{}, false
	}
	return tabs[idx], true
}

// openPanel builds the panel state for a request.
func (h *home) openPanel(msg panelRequestMsg) {
	switch {
	case msg.kind == "search":
		ti := textinput.New()
		ti.Placeholder = "profile name"
		ti.Focus()
		h.panel = &panelState{kind: "search", title: "Search Profiles", input: ti, hasInput: true}
	case msg.mode == "rename":
		ti := textinput.New()
		ti.Placeholder = "new name"
		ti.Focus()
		h.panel = &panelState{kind: "rename", title: "Rename", input: ti, hasInput: true, targetID: msg.targetID}
	case msg.mode == "upload":
		ti := textinput.New()
		ti.Placeholder = "path of file to upload"
		ti.Focus()
		h.panel = &panelState{kind: "upload", title: "Upload to " + msg.parentID, input: ti, hasInput: true, parentID: msg.parentID}
	case msg.mode == "create":
		ti := textinput.New()
		ti.Placeholder = msg.kind + " name"
		ti.Focus()
		h.panel = &panelState{
			kind: "create", title: "New " + msg.kind, input: ti, hasInput: true,
			parentID: msg.parentID, itemKind: msg.kind,
		}
	case msg.mode == "edit", msg.mode == "view":
		h.panel = &panelState{kind: "view", title: "Details", body: h.describeTarget(msg)}
	}
}

func (h *home) describeTarget(msg panelRequestMsg) string {
	if msg.kind == "folder" {
		if f, ok := h.store.GetFolder(msg.targetID); ok {
			return fmt.Sprintf("Folder: %s", f.Name)
		}
		return "folder not found"
	}
	if p, ok := h.store.Get(msg.targetID); ok {
		fav := ""
		if h.state.IsFavorite(p.ID) {
			fav = "  ★ favorite"
		}
		return fmt.Sprintf("%s\n%s@%s:%d%s", p.Name, p.User, p.Host, p.Port, fav)
	}
	return "profile not found"
}

// submitPanel applies an input panel's value.
func (h *home) submitPanel() (tea.Model, tea.Cmd) {
	p := h.panel
	value := strings.TrimSpace(p.input.Value())
	h.panel = nil
	if value == "" {
		return h, nil
	}

	switch p.kind {
	case "search":
		names := make([]string, len(h.rows))
		for i, row := range h.rows {
			if row.kind == domains.SidebarProfile {
				names[i] = row.name
			}
		}
		if ranked := fuzzy.Rank(value, names, 0.3); len(ranked) > 0 {
			h.sidebarSel = ranked[0].Index
			h.focus = paneSidebar
			return h, nil
		}
		h.notifier.Info(fmt.Sprintf("No profile matching %q", value))
	case "rename":
		target := p.targetID
		return h, func() tea.Msg {
			entry := domains.FileEntry{Path: target, Name: target}
			if err := h.browser.Rename(entry, value); err != nil {
				h.notifier.Error(err.Error())
			}
			return refreshTreeMsg{}
		}
	case "upload":
		dir := p.parentID
		return h, func() tea.Msg {
			if err := uploadFile(value, dir); err != nil {
				h.notifier.Error(err.Error())
			} else {
				h.notifier.Info("Uploaded " + value)
				if err := h.browser.Refresh(); err != nil {
					log.WarningLog.Printf("refresh after upload failed: %v", err)
				}
			}
			return refreshTreeMsg{}
		}
	case "create":
		itemKind, parentID := p.itemKind, p.parentID
		return h, func() tea.Msg {
			var err error
			if itemKind == "folder" {
				_, err = h.store.AddFolder(profile.Folder{Name: value, ParentID: parentID})
			} else {
				_, err = h.store.Add(profile.Profile{Name: value, Host: value, Port: 22, ParentID: parentID})
			}
			if err != nil {
				h.notifier.Error(err.Error())
			}
			return refreshTreeMsg{}
		}
	}
	return h, nil
}

// helpText renders the keymap grouped by category.
func helpText() string {
	categories := keys.GetAllCategories()
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var b strings.Builder
	for _, cat := range categories {
		names := keys.GetKeysInCategory(cat)
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
		b.WriteString(string(cat) + "\n")
		for _, name := range names {
			binding := keys.GlobalkeyBindings[name]
			b.WriteString(fmt.Sprintf("  %-6s %s\n", binding.Help().Key, keys.GetKeyHelp(name).Description))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func uploadFile(src, dir string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	dst := filepath.Join(dir, filepath.Base(src))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
