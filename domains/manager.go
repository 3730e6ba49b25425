package domains

import (
	"sync"

	"portside/log"
	"portside/menu"
)

// Geometry is the shared placement state all managers read: the current
// viewport, the edge margin, and the flip threshold. The app updates the
// viewport on every resize.
type Geometry struct {
	mu        sync.Mutex
	vp        menu.Viewport
	margin    int
	threshold float64
}

// NewGeometry returns placement state with the given margin and the default
// flip threshold.
func NewGeometry(margin int) *Geometry {
	return &Geometry{margin: margin, threshold: menu.FlipThreshold}
}

// SetViewport records the current terminal size.
func (g *Geometry) SetViewport(vp menu.Viewport) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vp = vp
}

// SetThreshold overrides the flip threshold, clamped to [0.5, 0.95].
func (g *Geometry) SetThreshold(t float64) {
	if t < 0.5 {
		t = 0.5
	}
	if t > 0.95 {
		t = 0.95
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.threshold = t
}

func (g *Geometry) snapshot() (menu.Viewport, int, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.vp, g.margin, g.threshold
}

// manager runs one domain's show/execute state machine: build the context
// (done by the caller), filter the registry, place and show the menu, then
// dispatch the clicked command against the context captured at show time.
// All four domains share this shape; only the context type and registry
// contents differ.
type manager[C any] struct {
	domain   string
	registry *menu.Registry[C]
	life     *menu.Lifecycle
	geom     *Geometry
	notifier Notifier

	mu      sync.Mutex
	menu    *menu.Menu
	pending *C
}

func newManager[C any](domain string, reg *menu.Registry[C], life *menu.Lifecycle, geom *Geometry, notifier Notifier) *manager[C] {
	m := &manager[C]{
		domain:   domain,
		registry: reg,
		life:     life,
		geom:     geom,
		notifier: notifier,
	}
	life.OnHide(func(owner string) {
		if owner == domain {
			m.clear()
		}
	})
	return m
}

// Show hides whatever menu is visible anywhere, filters the registry against
// ctx, and shows the result at the invocation point. Returns false when
// filtering leaves nothing to show; in that case the previous menu is still
// hidden, matching a click that opened an empty menu.
func (m *manager[C]) Show(ctx C, at *menu.Point) bool {
	m.life.HideAll()

	surface := menu.New(m.registry.Items(ctx))
	if surface.Empty() {
		return false
	}

	vp, margin, threshold := m.geom.snapshot()
	x, y := margin, margin
	if at != nil {
		x, y = at.X, at.Y
	}
	surface.ShowAtThreshold(x, y, vp, margin, threshold)

	m.life.Show(m.domain, surface)
	m.mu.Lock()
	m.menu = surface
	c := ctx
	m.pending = &c
	m.mu.Unlock()
	return true
}

// ClickAt handles a pointer press while this domain's menu is visible. It
// returns true when the click landed inside the menu (consumed), false when
// the click is outside and the coordinator should dismiss. A hit on an entry
// hides the menu first, then dispatches against the context captured at show
// time.
func (m *manager[C]) ClickAt(x, y int) bool {
	m.mu.Lock()
	surface := m.menu
	pending := m.pending
	m.mu.Unlock()

	if surface == nil || !surface.Contains(x, y) {
		return false
	}

	_, item := surface.HitTest(x, y)
	if item.ID == "" {
		// Border or separator; swallow the click, keep the menu up.
		return true
	}

	m.life.HideAll()
	if pending != nil {
		m.dispatch(item.ID, *pending)
	}
	return true
}

// HoverAt updates the highlighted entry while the menu is visible.
func (m *manager[C]) HoverAt(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.menu == nil {
		return
	}
	idx, _ := m.menu.HitTest(x, y)
	m.menu.SetHover(idx)
}

// Execute runs a command programmatically, without a visible menu. Any
// visible menu anywhere is hidden first; the error is logged and surfaced to
// the notifier as well as returned.
func (m *manager[C]) Execute(id string, ctx C) error {
	m.life.HideAll()
	return m.dispatch(id, ctx)
}

// dispatch is the error-isolation boundary: every registry error is logged
// and reported to the notifier here, and the menu is already hidden whatever
// the outcome. Failures are not retried.
func (m *manager[C]) dispatch(id string, ctx C) error {
	if err := m.registry.Execute(id, ctx); err != nil {
		log.ErrorLog.Printf("%s command %q: %v", m.domain, id, err)
		if m.notifier != nil {
			m.notifier.Error(err.Error())
		}
		return err
	}
	return nil
}

func (m *manager[C]) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menu = nil
	m.pending = nil
}
