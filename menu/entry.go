package menu

// Command is a named, identified unit of behavior scoped to one registry.
// Enabled decides whether the command is offered for a given context; Run
// executes it. Both receive the same per-invocation context value. Commands
// are immutable after registration except for cosmetic label updates via
// Registry.UpdateName.
type Command[C any] struct {
	// ID is unique within the owning registry. IDs may repeat across
	// registries; execution is always scoped to the registry that produced
	// the visible menu.
	ID string

	// Name is the display label. It can change over the command's lifetime
	// (e.g. "Add to Favorites" vs "Remove from Favorites").
	Name string

	// Icon is a token rendered before the label. Purely cosmetic.
	Icon string

	// Enabled reports whether the command is offered for ctx. It must be
	// pure: filtering calls it once per menu build and relies on it having
	// no side effects. A nil Enabled means always enabled.
	Enabled func(ctx C) bool

	// Run executes the command against ctx. It may block on collaborator
	// calls; the menu is already hidden by the time Run is invoked.
	Run func(ctx C) error
}

func (c *Command[C]) enabled(ctx C) bool {
	if c.Enabled == nil {
		return true
	}
	return c.Enabled(ctx)
}

// entry is one slot in a registry's ordered list: a command or a separator.
// Separators have a nil command.
type entry[C any] struct {
	cmd *Command[C]
}

func (e entry[C]) isSeparator() bool { return e.cmd == nil }

// Item is a display entry produced by filtering a registry against a
// context. Separator items carry no ID or label.
type Item struct {
	ID        string
	Label     string
	Icon      string
	Separator bool
}
