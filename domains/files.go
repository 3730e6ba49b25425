package domains

import (
	"fmt"

	"portside/menu"
)

// NewFileRegistry builds the file browser's command set. Enablement splits
// three ways: directory entries, file entries, and the empty space of the
// current directory (nil entry), which restricts to directory-scope actions
// against the current path.
func NewFileRegistry(host FileHost, clip Clipboarder, confirm Confirmer, notifier Notifier) *menu.Registry[FileContext] {
	reg := menu.NewRegistry[FileContext]("file")

	hasEntry := func(ctx FileContext) bool { return ctx.Entry != nil }
	dirScope := func(ctx FileContext) bool { return ctx.isDir() || ctx.isEmpty() }

	reg.Register(menu.Command[FileContext]{
		ID:      "open",
		Name:    "Open",
		Icon:    "▸",
		Enabled: FileContext.isDir,
		Run:     func(ctx FileContext) error { return host.Navigate(ctx.Entry.Path) },
	})
	reg.Register(menu.Command[FileContext]{
		ID:      "preview",
		Name:    "Preview",
		Icon:    "👁",
		Enabled: FileContext.isFile,
		Run:     func(ctx FileContext) error { return host.ShowFilePreview(*ctx.Entry) },
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[FileContext]{
		ID:      "download",
		Name:    "Download",
		Icon:    "↓",
		Enabled: hasEntry,
		Run:     func(ctx FileContext) error { return host.Download(ctx.Targets()) },
	})
	reg.Register(menu.Command[FileContext]{
		ID:      "upload-here",
		Name:    "Upload Files Here",
		Icon:    "↑",
		Enabled: dirScope,
		Run:     func(ctx FileContext) error { return host.Upload(ctx.uploadDir()) },
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[FileContext]{
		ID:      "rename",
		Name:    "Rename",
		Icon:    "✎",
		Enabled: hasEntry,
		Run:     func(ctx FileContext) error { return host.ShowRenameDialog(*ctx.Entry) },
	})
	reg.Register(menu.Command[FileContext]{
		ID:      "delete",
		Name:    "Delete",
		Icon:    "✕",
		Enabled: hasEntry,
		Run: func(ctx FileContext) error {
			targets := ctx.Targets()
			msg := fmt.Sprintf("Delete %q?", targets[0].Name)
			if len(targets) > 1 {
				msg = fmt.Sprintf("Delete %d items?", len(targets))
			}
			choice, err := confirm.Confirm("Delete", msg, []string{"Delete", "Cancel"})
			if err != nil || choice != 0 {
				return err
			}
			if err := host.Delete(targets); err != nil {
				return fmt.Errorf("failed to delete: %w", err)
			}
			if notifier != nil {
				notifier.Info(fmt.Sprintf("Deleted %d item(s)", len(targets)))
			}
			return nil
		},
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[FileContext]{
		ID:   "copy-path",
		Name: "Copy Path",
		Icon: "⧉",
		Run: func(ctx FileContext) error {
			if err := clip.WriteAll(ctx.TargetPath()); err != nil {
				return fmt.Errorf("failed to copy path: %w", err)
			}
			if notifier != nil {
				notifier.Info("Path copied")
			}
			return nil
		},
	})
	reg.Register(menu.Command[FileContext]{
		ID:   "properties",
		Name: "Properties",
		Icon: "ⓘ",
		Run: func(ctx FileContext) error {
			if ctx.Entry != nil && !ctx.Entry.Dir {
				return host.ShowFileProperties(*ctx.Entry)
			}
			return host.ShowDirectoryProperties(ctx.TargetPath())
		},
	})
	reg.Register(menu.Command[FileContext]{
		ID:      "new-folder",
		Name:    "New Folder",
		Icon:    "📁",
		Enabled: FileContext.isEmpty,
		Run:     func(ctx FileContext) error { return host.NewFolder(ctx.Path) },
	})
	reg.Register(menu.Command[FileContext]{
		ID:      "refresh",
		Name:    "Refresh",
		Icon:    "⟳",
		Enabled: dirScope,
		Run:     func(FileContext) error { return host.Refresh() },
	})

	return reg
}

// uploadDir resolves where Upload Files Here should land: the targeted
// directory entry, or the current directory for empty-space invocations.
func (c FileContext) uploadDir() string {
	if c.isDir() {
		return c.Entry.Path
	}
	return c.Path
}
