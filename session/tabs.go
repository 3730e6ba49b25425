// Package session tracks the workspace's open tabs and their connection
// state. It backs the tab strip and the tab menu's enablement predicates.
package session

import (
	"fmt"
	"sync"

	"portside/log"

	"github.com/google/uuid"
)

// Status is a tab's connection state.
type Status string

const (
	Connected    Status = "connected"
	Disconnected Status = "disconnected"
	Connecting   Status = "connecting"
)

// Tab is one open workspace tab.
type Tab struct {
	ID        string
	Title     string
	ProfileID string
	Status    Status
}

// Connector establishes or tears down a tab's underlying connection. The
// default implementation only flips status; the app wires a real one.
type Connector interface {
	Connect(tab *Tab) error
	Disconnect(tab *Tab) error
}

type noopConnector struct{}

func (noopConnector) Connect(tab *Tab) error    { tab.Status = Connected; return nil }
func (noopConnector) Disconnect(tab *Tab) error { tab.Status = Disconnected; return nil }

// Manager owns the ordered tab list. All methods are safe for concurrent
// use.
type Manager struct {
	mu        sync.Mutex
	tabs      []*Tab
	activeID  string
	connector Connector
}

// NewManager returns a manager with no tabs.
func NewManager(connector Connector) *Manager {
	if connector == nil {
		connector = noopConnector{}
	}
	return &Manager{connector: connector}
}

// Tabs returns a snapshot of the tab list in strip order.
func (m *Manager) Tabs() []Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Tab, len(m.tabs))
	for i, t := range m.tabs {
		out[i] = *t
	}
	return out
}

// TabCount returns the number of open tabs.
func (m *Manager) TabCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tabs)
}

// Get returns a snapshot of one tab.
func (m *Manager) Get(id string) (Tab, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.find(id); t != nil {
		return *t, true
	}
	return Tab{}, false
}

// ActiveID returns the focused tab's id, empty when no tabs are open.
func (m *Manager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// SetActive focuses the given tab.
func (m *Manager) SetActive(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.find(id) == nil {
		return fmt.Errorf("tab %q not found", id)
	}
	m.activeID = id
	return nil
}

// find returns the tab with the given id. Callers must hold m.mu.
func (m *Manager) find(id string) *Tab {
	for _, t := range m.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Open appends a new tab and focuses it.
func (m *Manager) Open(title, profileID string) (Tab, error) {
	tab := &Tab{
		ID:        uuid.NewString(),
		Title:     title,
		ProfileID: profileID,
		Status:    Connecting,
	}
	if err := m.connector.Connect(tab); err != nil {
		tab.Status = Disconnected
		log.WarningLog.Printf("tab %q failed to connect: %v", title, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs = append(m.tabs, tab)
	m.activeID = tab.ID
	return *tab, nil
}

// NewTab opens an untitled local tab.
func (m *Manager) NewTab() error {
	_, err := m.Open("Local", "")
	return err
}

// DuplicateTab opens a new tab with the source's title and profile.
func (m *Manager) DuplicateTab(id string) error {
	m.mu.Lock()
	src := m.find(id)
	if src == nil {
		m.mu.Unlock()
		return fmt.Errorf("tab %q not found", id)
	}
	title, profileID := src.Title, src.ProfileID
	m.mu.Unlock()

	_, err := m.Open(title, profileID)
	return err
}

// Reconnect re-establishes a disconnected tab's connection.
func (m *Manager) Reconnect(id string) error {
	m.mu.Lock()
	tab := m.find(id)
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("tab %q not found", id)
	}
	tab.Status = Connecting
	m.mu.Unlock()

	if err := m.connector.Connect(tab); err != nil {
		m.mu.Lock()
		tab.Status = Disconnected
		m.mu.Unlock()
		return fmt.Errorf("failed to reconnect tab %q: %w", id, err)
	}
	return nil
}

// ForceDisconnect tears down a connected tab's connection, keeping the tab.
func (m *Manager) ForceDisconnect(id string) error {
	m.mu.Lock()
	tab := m.find(id)
	m.mu.Unlock()
	if tab == nil {
		return fmt.Errorf("tab %q not found", id)
	}
	if err := m.connector.Disconnect(tab); err != nil {
		return fmt.Errorf("failed to disconnect tab %q: %w", id, err)
	}
	return nil
}

// CloseTab disconnects and removes a tab. Focus moves to the previous tab
// when the focused one closes.
func (m *Manager) CloseTab(id string) error {
	m.mu.Lock()
	idx := -1
	for i, t := range m.tabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("tab %q not found", id)
	}
	tab := m.tabs[idx]
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if m.activeID == id {
		m.activeID = ""
		if len(m.tabs) > 0 {
			if idx > 0 {
				m.activeID = m.tabs[idx-1].ID
			} else {
				m.activeID = m.tabs[0].ID
			}
		}
	}
	m.mu.Unlock()

	if tab.Status == Connected {
		if err := m.connector.Disconnect(tab); err != nil {
			log.WarningLog.Printf("failed to disconnect closing tab %q: %v", id, err)
		}
	}
	return nil
}

// CloseOtherTabs closes every tab except the given one.
func (m *Manager) CloseOtherTabs(id string) error {
	m.mu.Lock()
	if m.find(id) == nil {
		m.mu.Unlock()
		return fmt.Errorf("tab %q not found", id)
	}
	var others []string
	for _, t := range m.tabs {
		if t.ID != id {
			others = append(others, t.ID)
		}
	}
	m.mu.Unlock()

	for _, other := range others {
		if err := m.CloseTab(other); err != nil {
			return err
		}
	}
	return m.SetActive(id)
}
