package config

// Model is the unified, format-agnostic representation of a fully loaded
// taskfile, regardless of which on-disk format it came from.
type Model struct {
	// DefaultTarget names the task to run when the caller does not select
	// one. Empty means "first declared task".
	DefaultTarget string

	// Tasks holds every task definition in declaration order. Declaration
	// order is what makes traversal deterministic, so loaders must
	// preserve it.
	Tasks []*Task
}

// Task is the format-agnostic representation of a single task block.
// A Task is defined once at load time and never mutated afterwards.
type Task struct {
	Name        string
	Description string

	// DependsOn lists prerequisite task names in declared order. Every
	// name must resolve to a task in the same Model.
	DependsOn []string

	// Commands is the task's recipe: opaque command strings handed
	// verbatim to the process launcher, in declared order.
	Commands []string

	// Always marks a task that should re-run even when a future staleness
	// check would consider it up to date. With no staleness tracking in
	// the executor it has no behavioral effect yet, but the option must
	// survive loading so taskfiles can already declare it.
	Always bool
}

// DefaultTask resolves the task to run when no target was named: the
// configured default target if set, otherwise the first declared task.
// Returns empty string for an empty model.
func (m *Model) DefaultTask() string {
	if m.DefaultTarget != "" {
		return m.DefaultTarget
	}
	if len(m.Tasks) > 0 {
		return m.Tasks[0].Name
	}
	return ""
}
