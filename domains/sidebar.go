package domains

import (
	"fmt"

	"portside/bus"
	"portside/menu"
)

// Bus events published by sidebar commands. External code subscribes to
// these without holding a reference to the registry.
const (
	EventToggleFavorite = "profile:toggle-favorite"
	EventShowProperties = "profile:show-properties"
	EventProfilesChange = "profiles:changed"
)

// ProfileEvent is the payload for profile-scoped bus events.
type ProfileEvent struct {
	ProfileID string
	Name      string
}

// NewSidebarRegistry builds the profile tree's command set. Enablement keys
// off the target kind: profile, folder, or the root empty space.
func NewSidebarRegistry(store SidebarStore, b *bus.Bus, confirm Confirmer, notifier Notifier) *menu.Registry[SidebarContext] {
	reg := menu.NewRegistry[SidebarContext]("sidebar")

	isProfile := func(ctx SidebarContext) bool { return ctx.Kind == SidebarProfile }
	isFolder := func(ctx SidebarContext) bool { return ctx.Kind == SidebarFolder }
	canContain := func(ctx SidebarContext) bool {
		return ctx.Kind == SidebarFolder || ctx.Kind == SidebarRoot
	}

	reg.Register(menu.Command[SidebarContext]{
		ID:      "connect",
		Name:    "Connect",
		Icon:    "→",
		Enabled: isProfile,
		Run:     func(ctx SidebarContext) error { return store.OpenProfile(ctx.ID) },
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "connect-new-tab",
		Name:    "Connect in New Tab",
		Icon:    "⇗",
		Enabled: isProfile,
		Run:     func(ctx SidebarContext) error { return store.OpenProfileInNewTab(ctx.ID) },
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "edit",
		Name:    "Edit",
		Icon:    "✎",
		Enabled: isProfile,
		Run:     func(ctx SidebarContext) error { return store.EditProfile(ctx.ID) },
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "duplicate",
		Name:    "Duplicate",
		Icon:    "⊕",
		Enabled: isProfile,
		Run:     func(ctx SidebarContext) error { return store.DuplicateProfile(ctx.ID) },
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "toggle-favorite",
		Name:    "Add to Favorites",
		Icon:    "★",
		Enabled: isProfile,
		Run: func(ctx SidebarContext) error {
			b.Publish(EventToggleFavorite, ProfileEvent{ProfileID: ctx.ID, Name: ctx.Name})
			return nil
		},
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "properties",
		Name:    "Properties",
		Icon:    "ⓘ",
		Enabled: isProfile,
		Run: func(ctx SidebarContext) error {
			b.Publish(EventShowProperties, ProfileEvent{ProfileID: ctx.ID, Name: ctx.Name})
			return nil
		},
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[SidebarContext]{
		ID:      "new-profile",
		Name:    "New Profile",
		Icon:    "+",
		Enabled: canContain,
		Run: func(ctx SidebarContext) error {
			return store.OpenProfilePanel("create", "profile", ctx.ParentID())
		},
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "new-folder",
		Name:    "New Folder",
		Icon:    "📁",
		Enabled: canContain,
		Run: func(ctx SidebarContext) error {
			return store.OpenProfilePanel("create", "folder", ctx.ParentID())
		},
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "edit-folder",
		Name:    "Edit Folder",
		Icon:    "✎",
		Enabled: isFolder,
		Run:     func(ctx SidebarContext) error { return store.EditFolder(ctx.ID) },
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "delete-folder",
		Name:    "Delete Folder",
		Icon:    "✕",
		Enabled: isFolder,
		Run: func(ctx SidebarContext) error {
			choice, err := confirm.Confirm(
				"Delete Folder",
				fmt.Sprintf("Delete folder %q?", ctx.Name),
				[]string{"Move contents up", "Delete everything", "Cancel"},
			)
			if err != nil || choice == 2 {
				return err
			}
			if err := store.DeleteFolder(ctx.ID, choice == 0); err != nil {
				return fmt.Errorf("failed to delete folder: %w", err)
			}
			if notifier != nil {
				notifier.Info(fmt.Sprintf("Deleted folder %q", ctx.Name))
			}
			return nil
		},
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[SidebarContext]{
		ID:      "delete-profile",
		Name:    "Delete Profile",
		Icon:    "✕",
		Enabled: isProfile,
		Run: func(ctx SidebarContext) error {
			choice, err := confirm.Confirm(
				"Delete Profile",
				fmt.Sprintf("Delete profile %q?", ctx.Name),
				[]string{"Delete", "Cancel"},
			)
			if err != nil || choice != 0 {
				return err
			}
			if err := store.DeleteProfile(ctx.ID); err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}
			if notifier != nil {
				notifier.Info(fmt.Sprintf("Deleted profile %q", ctx.Name))
			}
			return nil
		},
	})
	reg.Register(menu.Command[SidebarContext]{
		ID:      "search",
		Name:    "Search",
		Icon:    "⌕",
		Enabled: func(ctx SidebarContext) bool { return ctx.Kind == SidebarRoot },
		Run:     func(SidebarContext) error { return store.ShowSearchPanel() },
	})

	return reg
}

// syncFavoriteLabel flips the favorite command's label to match the target's
// current state before the menu is built.
func syncFavoriteLabel(reg *menu.Registry[SidebarContext], ctx SidebarContext) {
	if ctx.Kind != SidebarProfile {
		return
	}
	name := "Add to Favorites"
	if ctx.Favorite {
		name = "Remove from Favorites"
	}
	reg.UpdateName("toggle-favorite", name)
}
