package domains

import "portside/menu"

// NewTabRegistry builds the tab strip's command set. Connection-state
// commands read the status snapshotted into the context; Close Other Tabs
// needs the live tab count, also snapshotted at build time.
func NewTabRegistry(host TabsHost) *menu.Registry[TabContext] {
	reg := menu.NewRegistry[TabContext]("tab")

	reg.Register(menu.Command[TabContext]{
		ID:      "reconnect",
		Name:    "Reconnect",
		Icon:    "↻",
		Enabled: func(ctx TabContext) bool { return ctx.Status == TabDisconnected },
		Run:     func(ctx TabContext) error { return host.Reconnect(ctx.TabID) },
	})
	reg.Register(menu.Command[TabContext]{
		ID:      "force-disconnect",
		Name:    "Force Disconnect",
		Icon:    "⏻",
		Enabled: func(ctx TabContext) bool { return ctx.Status == TabConnected },
		Run:     func(ctx TabContext) error { return host.ForceDisconnect(ctx.TabID) },
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[TabContext]{
		ID:   "new-tab",
		Name: "New Tab",
		Icon: "+",
		Run:  func(TabContext) error { return host.NewTab() },
	})
	reg.Register(menu.Command[TabContext]{
		ID:   "duplicate-tab",
		Name: "Duplicate Tab",
		Icon: "⊕",
		Run:  func(ctx TabContext) error { return host.DuplicateTab(ctx.TabID) },
	})
	reg.RegisterSeparator()
	reg.Register(menu.Command[TabContext]{
		ID:   "close-tab",
		Name: "Close Tab",
		Icon: "✕",
		Run:  func(ctx TabContext) error { return host.CloseTab(ctx.TabID) },
	})
	reg.Register(menu.Command[TabContext]{
		ID:      "close-others",
		Name:    "Close Other Tabs",
		Icon:    "⊗",
		Enabled: func(ctx TabContext) bool { return ctx.TabCount > 1 },
		Run:     func(ctx TabContext) error { return host.CloseOtherTabs(ctx.TabID) },
	})

	return reg
}
