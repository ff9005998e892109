package config

import "context"

// Loader is the interface for a format-specific taskfile loader.
type Loader interface {
	// Load reads a taskfile from the given path and translates it into
	// the format-agnostic model. Declaration order of tasks, dependencies
	// and commands must be preserved.
	Load(ctx context.Context, path string) (*Model, error)
}
