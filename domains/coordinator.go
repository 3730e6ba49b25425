package domains

import (
	"sync"

	"portside/bus"
	"portside/menu"
)

// Region is a rectangle of terminal cells, used for protected chrome where
// the default right-click behavior is suppressed.
type Region struct {
	X, Y, W, H int
	Name       string
}

// Contains reports whether the cell (x, y) falls inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Deps bundles the collaborators the coordinator wires into the domain
// registries. Bus and Notifier may be nil-free fakes in tests.
type Deps struct {
	Terminal  TerminalHost
	Sidebar   SidebarStore
	Tabs      TabsHost
	Files     FileHost
	Clipboard Clipboarder
	Notifier  Notifier
	Confirmer Confirmer
	Bus       *bus.Bus

	// Margin is the edge margin in cells; zero means the default of 1.
	Margin int
}

// Coordinator is the single public surface of the menu engine. It owns one
// manager per domain, the shared lifecycle enforcing the single-visibility
// rule, and the protected-region list. External callers never address a
// domain manager directly.
type Coordinator struct {
	geom *Geometry
	life *menu.Lifecycle
	bus  *bus.Bus

	terminal *manager[TerminalContext]
	sidebar  *manager[SidebarContext]
	tabs     *manager[TabContext]
	files    *manager[FileContext]

	sidebarReg *menu.Registry[SidebarContext]

	mu      sync.Mutex
	regions []Region
}

// NewCoordinator builds the engine: four registries populated from deps,
// four managers sharing one lifecycle and one geometry.
func NewCoordinator(deps Deps) *Coordinator {
	margin := deps.Margin
	if margin <= 0 {
		margin = 1
	}
	geom := NewGeometry(margin)
	life := menu.NewLifecycle()
	b := deps.Bus
	if b == nil {
		b = bus.New()
	}

	sidebarReg := NewSidebarRegistry(deps.Sidebar, b, deps.Confirmer, deps.Notifier)

	c := &Coordinator{
		geom:       geom,
		life:       life,
		bus:        b,
		sidebarReg: sidebarReg,
	}
	c.terminal = newManager("terminal", NewTerminalRegistry(deps.Terminal, deps.Clipboard, deps.Notifier), life, geom, deps.Notifier)
	c.sidebar = newManager("sidebar", sidebarReg, life, geom, deps.Notifier)
	c.tabs = newManager("tab", NewTabRegistry(deps.Tabs), life, geom, deps.Notifier)
	c.files = newManager("file", NewFileRegistry(deps.Files, deps.Clipboard, deps.Confirmer, deps.Notifier), life, geom, deps.Notifier)
	return c
}

// Bus returns the event bus domain commands publish on.
func (c *Coordinator) Bus() *bus.Bus { return c.bus }

// SetViewport records the terminal size used for menu placement.
func (c *Coordinator) SetViewport(vp menu.Viewport) { c.geom.SetViewport(vp) }

// SetFlipThreshold overrides the placement flip threshold (clamped).
func (c *Coordinator) SetFlipThreshold(t float64) { c.geom.SetThreshold(t) }

// Show entry points. Each hides any visible menu first; the most recent
// request always wins.

func (c *Coordinator) ShowTerminalContextMenu(origin *menu.Point, ctx TerminalContext) bool {
	ctx.At = origin
	return c.terminal.Show(ctx, origin)
}

func (c *Coordinator) ShowSidebarContextMenu(origin *menu.Point, ctx SidebarContext) bool {
	ctx.At = origin
	syncFavoriteLabel(c.sidebarReg, ctx)
	return c.sidebar.Show(ctx, origin)
}

func (c *Coordinator) ShowTabContextMenu(origin *menu.Point, ctx TabContext) bool {
	ctx.At = origin
	return c.tabs.Show(ctx, origin)
}

func (c *Coordinator) ShowFileItemContextMenu(origin *menu.Point, entry FileEntry, selected []FileEntry, path string) bool {
	ctx := FileContext{Entry: &entry, Selected: selected, Path: path, At: origin}
	return c.files.Show(ctx, origin)
}

// ShowFileDirectoryContextMenu opens the empty-space menu for path.
func (c *Coordinator) ShowFileDirectoryContextMenu(origin *menu.Point, path string) bool {
	ctx := FileContext{Path: path, At: origin}
	return c.files.Show(ctx, origin)
}

// Execute entry points, for callers that dispatch without a visible menu
// (keyboard shortcuts, command palettes).

func (c *Coordinator) ExecuteTerminalCommand(id string, ctx TerminalContext) error {
	return c.terminal.Execute(id, ctx)
}

func (c *Coordinator) ExecuteSidebarCommand(id string, ctx SidebarContext) error {
	return c.sidebar.Execute(id, ctx)
}

func (c *Coordinator) ExecuteTabCommand(id string, ctx TabContext) error {
	return c.tabs.Execute(id, ctx)
}

func (c *Coordinator) ExecuteFileCommand(id string, ctx FileContext) error {
	return c.files.Execute(id, ctx)
}

// HideAllMenus dismisses whatever menu is visible, in any domain.
func (c *Coordinator) HideAllMenus() { c.life.HideAll() }

// EscapePressed is the keyboard dismissal gesture.
func (c *Coordinator) EscapePressed() { c.life.HideAll() }

// IsAnyMenuVisible reports whether any domain currently shows a menu.
func (c *Coordinator) IsAnyMenuVisible() bool { return c.life.IsAnyVisible() }

// ActiveMenu returns the visible menu and its owning domain, or (nil, "").
func (c *Coordinator) ActiveMenu() (*menu.Menu, string) { return c.life.Active() }

// ClickAt routes a pointer press. A click inside the visible menu is
// consumed by its owning manager (possibly dispatching a command); a click
// anywhere else dismisses the menu and returns false so the host surface can
// handle the press itself.
func (c *Coordinator) ClickAt(x, y int) bool {
	_, owner := c.life.Active()
	if owner == "" {
		return false
	}

	handled := false
	switch owner {
	case "terminal":
		handled = c.terminal.ClickAt(x, y)
	case "sidebar":
		handled = c.sidebar.ClickAt(x, y)
	case "tab":
		handled = c.tabs.ClickAt(x, y)
	case "file":
		handled = c.files.ClickAt(x, y)
	}
	if !handled {
		c.life.HideAll()
	}
	return handled
}

// HoverAt updates the highlighted entry of the visible menu.
func (c *Coordinator) HoverAt(x, y int) {
	_, owner := c.life.Active()
	switch owner {
	case "terminal":
		c.terminal.HoverAt(x, y)
	case "sidebar":
		c.sidebar.HoverAt(x, y)
	case "tab":
		c.tabs.HoverAt(x, y)
	case "file":
		c.files.HoverAt(x, y)
	}
}

// AddProtectedRegion registers chrome where the default right-click behavior
// is suppressed. Individual interactive elements inside a region still open
// their menus through the explicit Show entry points.
func (c *Coordinator) AddProtectedRegion(r Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions = append(c.regions, r)
}

// SetProtectedRegions replaces the protected-region list, for layout
// changes on resize.
func (c *Coordinator) SetProtectedRegions(rs []Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions = append(c.regions[:0:0], rs...)
}

// InProtectedRegion reports whether the cell lies in any protected region.
func (c *Coordinator) InProtectedRegion(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.regions {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
