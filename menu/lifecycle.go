package menu

import "sync"

// Lifecycle enforces the single-visible-menu rule across every domain. All
// show paths go through it: showing a menu first hides whichever menu is
// currently visible, whatever domain owns it. Hide callbacks let owners
// clear per-show state (pending contexts, hover) without the lifecycle
// knowing about domains.
type Lifecycle struct {
	mu     sync.Mutex
	active *Menu
	owner  string
	onHide []func(owner string)
}

// NewLifecycle returns an empty lifecycle with no visible menu.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// OnHide registers a callback invoked with the owning domain's name every
// time a menu is hidden. Callbacks run in registration order while the
// lifecycle lock is held; they must not call back into the lifecycle.
func (l *Lifecycle) OnHide(fn func(owner string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onHide = append(l.onHide, fn)
}

// Show makes m the single visible menu, owned by the named domain. Any
// previously visible menu is destroyed first, including one owned by the
// same domain.
func (l *Lifecycle) Show(owner string, m *Menu) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.hideLocked()
	l.active = m
	l.owner = owner
}

// HideAll destroys the visible menu, if any. Safe to call when nothing is
// shown; global dismissal gestures call it unconditionally.
func (l *Lifecycle) HideAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hideLocked()
}

func (l *Lifecycle) hideLocked() {
	if l.active == nil {
		return
	}
	owner := l.owner
	l.active.Destroy()
	l.active = nil
	l.owner = ""
	for _, fn := range l.onHide {
		fn(owner)
	}
}

// IsAnyVisible reports whether any domain currently shows a menu.
func (l *Lifecycle) IsAnyVisible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active != nil
}

// Active returns the visible menu and its owning domain, or (nil, "").
func (l *Lifecycle) Active() (*Menu, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active, l.owner
}
