package app

import (
	"fmt"

	"portside/profile"
	"portside/session"
)

// panelRequestMsg asks the model to open a side panel (profile editor,
// folder editor, search). Mode is "create" or "edit".
type panelRequestMsg struct {
	mode     string
	kind     string // "profile", "folder" or "search"
	targetID string
	parentID string
}

// sidebarHost satisfies domains.SidebarStore: data operations go to the
// profile store, connect operations to the tab manager, and panel requests
// into the program as messages.
type sidebarHost struct {
	store    *profile.Store
	tabs     *session.Manager
	notifier *statusNotifier
}

func (h *sidebarHost) OpenProfile(id string) error {
	p, ok := h.store.Get(id)
	if !ok {
		return fmt.Errorf("profile %q not found", id)
	}
	// Connecting in place replaces the focused tab.
	if active := h.tabs.ActiveID(); active != "" {
		if err := h.tabs.CloseTab(active); err != nil {
			return err
		}
	}
	_, err := h.tabs.Open(p.Name, p.ID)
	return err
}

func (h *sidebarHost) OpenProfileInNewTab(id string) error {
	p, ok := h.store.Get(id)
	if !ok {
		return fmt.Errorf("profile %q not found", id)
	}
	_, err := h.tabs.Open(p.Name, p.ID)
	return err
}

func (h *sidebarHost) EditProfile(id string) error {
	h.notifier.post(panelRequestMsg{mode: "edit", kind: "profile", targetID: id})
	return nil
}

func (h *sidebarHost) DuplicateProfile(id string) error {
	dup, err := h.store.Duplicate(id)
	if err != nil {
		return err
	}
	h.notifier.Info(fmt.Sprintf("Created %q", dup.Name))
	return nil
}

func (h *sidebarHost) DeleteProfile(id string) error {
	return h.store.Delete(id)
}

func (h *sidebarHost) EditFolder(id string) error {
	h.notifier.post(panelRequestMsg{mode: "edit", kind: "folder", targetID: id})
	return nil
}

func (h *sidebarHost) DeleteFolder(id string, moveContents bool) error {
	return h.store.DeleteFolder(id, moveContents)
}

func (h *sidebarHost) OpenProfilePanel(mode, kind, parentID string) error {
	h.notifier.post(panelRequestMsg{mode: mode, kind: kind, parentID: parentID})
	return nil
}

func (h *sidebarHost) ShowSearchPanel() error {
	h.notifier.post(panelRequestMsg{kind: "search"})
	return nil
}
