package menu

import "sync"

// Registry is an ordered collection of commands and separators for one
// domain. Insertion order defines display order. Registries are created once
// at startup and live for the process lifetime; the only mutation after that
// is cosmetic label updates.
type Registry[C any] struct {
	mu      sync.RWMutex
	domain  string
	entries []entry[C]
	byID    map[string]*Command[C]
}

// NewRegistry creates an empty registry for the named domain.
func NewRegistry[C any](domain string) *Registry[C] {
	return &Registry[C]{
		domain: domain,
		byID:   make(map[string]*Command[C]),
	}
}

// Domain returns the domain name the registry was created with.
func (r *Registry[C]) Domain() string { return r.domain }

// Register appends a command. Registering a duplicate id panics: registries
// are populated once at startup, so a duplicate is a programming error.
func (r *Registry[C]) Register(cmd Command[C]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.ID == "" {
		panic("menu: command ID cannot be empty")
	}
	if cmd.Run == nil {
		panic("menu: command Run cannot be nil")
	}
	if _, exists := r.byID[cmd.ID]; exists {
		panic("menu: duplicate command ID " + cmd.ID + " in registry " + r.domain)
	}

	c := cmd
	r.entries = append(r.entries, entry[C]{cmd: &c})
	r.byID[cmd.ID] = &c
}

// RegisterSeparator appends a separator. Separators are rendering hints
// between command groups; they are never enabled and never executable.
func (r *Registry[C]) RegisterSeparator() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry[C]{})
}

// Items returns the display entries for ctx, in registration order.
// Commands whose predicate rejects ctx are omitted entirely (there is no
// disabled-but-visible state). Separators are always included; collapsing
// redundant ones is the menu builder's job.
func (r *Registry[C]) Items(ctx C) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0, len(r.entries))
	for _, e := range r.entries {
		if e.isSeparator() {
			items = append(items, Item{Separator: true})
			continue
		}
		if !e.cmd.enabled(ctx) {
			continue
		}
		items = append(items, Item{ID: e.cmd.ID, Label: e.cmd.Name, Icon: e.cmd.Icon})
	}
	return items
}

// Execute looks up id and runs it against ctx. It returns *NotFoundError if
// the id is absent, *DisabledError if the predicate rejects ctx at execution
// time, and *ExecutionError wrapping the command's own error otherwise.
// Error isolation (log-and-hide) is the caller's responsibility.
func (r *Registry[C]) Execute(id string, ctx C) error {
	r.mu.RLock()
	cmd, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return &NotFoundError{ID: id}
	}
	if !cmd.enabled(ctx) {
		return &DisabledError{ID: id}
	}
	if err := cmd.Run(ctx); err != nil {
		return &ExecutionError{ID: id, Err: err}
	}
	return nil
}

// UpdateName changes a command's display label in place. Used for
// state-dependent labels; identity and enablement are unaffected. Returns
// false if the id is not registered.
func (r *Registry[C]) UpdateName(id, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, ok := r.byID[id]
	if !ok {
		return false
	}
	cmd.Name = name
	return true
}

// Len returns the number of entries, separators included.
func (r *Registry[C]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
