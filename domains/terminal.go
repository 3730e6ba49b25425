package domains

import (
	"fmt"

	"portside/menu"
)

// NewTerminalRegistry builds the terminal pane's command set. Copy and Paste
// enablement reads only the context, which snapshots the selection and
// clipboard state at menu-build time.
func NewTerminalRegistry(host TerminalHost, clip Clipboarder, notifier Notifier) *menu.Registry[TerminalContext] {
	reg := menu.NewRegistry[TerminalContext]("terminal")

	reg.Register(menu.Command[TerminalContext]{
		ID:      "copy",
		Name:    "Copy",
		Icon:    "⧉",
		Enabled: func(ctx TerminalContext) bool { return ctx.Selection != "" },
		Run: func(ctx TerminalContext) error {
			if err := clip.WriteAll(ctx.Selection); err != nil {
				return fmt.Errorf("failed to copy selection: %w", err)
			}
			return nil
		},
	})
	reg.Register(menu.Command[TerminalContext]{
		ID:      "paste",
		Name:    "Paste",
		Icon:    "⎘",
		Enabled: func(ctx TerminalContext) bool { return ctx.ClipboardHasText },
		Run: func(ctx TerminalContext) error {
			text, err := clip.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
			return host.Paste(text)
		},
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[TerminalContext]{
		ID:   "clear",
		Name: "Clear",
		Icon: "⌫",
		Run:  func(TerminalContext) error { return host.Clear() },
	})
	reg.Register(menu.Command[TerminalContext]{
		ID:   "select-all",
		Name: "Select All",
		Icon: "⬚",
		Run:  func(TerminalContext) error { return host.SelectAll() },
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[TerminalContext]{
		ID:   "restart-shell",
		Name: "Restart Shell",
		Icon: "↻",
		Run: func(TerminalContext) error {
			if err := host.RestartShell(); err != nil {
				return err
			}
			if notifier != nil {
				notifier.Info("Shell restarted")
			}
			return nil
		},
	})

	return reg
}
