// Package yamlfile implements the config.Loader interface for YAML
// taskfiles.
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML taskfile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// taskSpec mirrors one entry of the `tasks` mapping.
type taskSpec struct {
	Description string   `yaml:"description"`
	DependsOn   []string `yaml:"deps"`
	Commands    []string `yaml:"commands"`
	Always      bool     `yaml:"always"`
}

// Load parses a YAML taskfile and translates it into the format-agnostic
// model. Decoding goes through yaml.Node rather than a plain map so the
// declaration order of the `tasks` mapping is preserved.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taskfile %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taskfile %s: %w", path, err)
	}

	model := &config.Model{}
	if len(doc.Content) == 0 {
		return model, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("taskfile %s: top level must be a mapping", path)
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "default":
			if err := value.Decode(&model.DefaultTarget); err != nil {
				return nil, fmt.Errorf("taskfile %s: default: %w", path, err)
			}
		case "tasks":
			tasks, err := decodeTasks(value)
			if err != nil {
				return nil, fmt.Errorf("taskfile %s: %w", path, err)
			}
			model.Tasks = tasks
		default:
			return nil, fmt.Errorf("taskfile %s: unknown top-level key %q", path, key.Value)
		}
	}

	logger.Debug("YAML loading complete.", "tasks", len(model.Tasks))
	return model, nil
}

func decodeTasks(node *yaml.Node) ([]*config.Task, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("tasks must be a mapping of task name to definition")
	}

	var tasks []*config.Task
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var spec taskSpec
		if err := value.Decode(&spec); err != nil {
			return nil, fmt.Errorf("task %q: %w", key.Value, err)
		}
		tasks = append(tasks, &config.Task{
			Name:        key.Value,
			Description: spec.Description,
			DependsOn:   spec.DependsOn,
			Commands:    spec.Commands,
			Always:      spec.Always,
		})
	}
	return tasks, nil
}
