// Package tomlfile implements the config.Loader interface for TOML
// taskfiles.
package tomlfile

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
)

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML taskfile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the full taskfile document.
type fileRoot struct {
	Default string              `toml:"default"`
	Tasks   map[string]taskSpec `toml:"tasks"`
}

type taskSpec struct {
	Description string   `toml:"description"`
	DependsOn   []string `toml:"deps"`
	Commands    []string `toml:"commands"`
	Always      bool     `toml:"always"`
}

// Load parses a TOML taskfile and translates it into the format-agnostic
// model. TOML decodes tables into an unordered map, so declaration order is
// recovered from toml.MetaData, which records keys in file order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taskfile %s: %w", path, err)
	}

	var root fileRoot
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taskfile %s: %w", path, err)
	}

	model := &config.Model{DefaultTarget: root.Default}

	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		// Each [tasks.<name>] table appears as the two-element key
		// {"tasks", <name>}; deeper keys are the table's own fields.
		if len(key) != 2 || key[0] != "tasks" {
			continue
		}
		name := key[1]
		if seen[name] {
			continue
		}
		seen[name] = true

		spec := root.Tasks[name]
		model.Tasks = append(model.Tasks, &config.Task{
			Name:        name,
			Description: spec.Description,
			DependsOn:   spec.DependsOn,
			Commands:    spec.Commands,
			Always:      spec.Always,
		})
	}

	logger.Debug("TOML loading complete.", "tasks", len(model.Tasks))
	return model, nil
}
