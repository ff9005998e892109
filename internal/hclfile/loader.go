// Package hclfile implements the config.Loader interface for HCL taskfiles,
// the primary taskfile format.
package hclfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL taskfile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the struct used to decode all top-level blocks of a taskfile.
type fileRoot struct {
	Settings *settingsBlock `hcl:"settings,block"`
	Vars     *varsBlock     `hcl:"vars,block"`
	Tasks    []*taskBlock   `hcl:"task,block"`
}

type settingsBlock struct {
	Default string `hcl:"default,optional"`
}

// varsBlock captures the raw body of the vars block; its attributes become
// the `vars.*` variables available to command expressions.
type varsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type taskBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	DependsOn   []string       `hcl:"deps,optional"`
	Commands    hcl.Expression `hcl:"commands,optional"`
	Always      bool           `hcl:"always,optional"`
}

// Load parses an HCL taskfile and translates it into the format-agnostic
// model. Block order in the file is the declaration order of the model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse taskfile %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode taskfile %s: %w", path, diags)
	}

	evalCtx, err := buildEvalContext(root.Vars)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate vars in %s: %w", path, err)
	}

	model := &config.Model{}
	if root.Settings != nil {
		model.DefaultTarget = root.Settings.Default
	}

	for _, block := range root.Tasks {
		task, err := l.translateTask(block, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("task %q in %s: %w", block.Name, path, err)
		}
		model.Tasks = append(model.Tasks, task)
	}

	logger.Debug("HCL loading complete.", "tasks", len(model.Tasks))
	return model, nil
}

// translateTask converts a decoded task block into the agnostic model,
// evaluating the commands expression against the vars scope.
func (l *Loader) translateTask(block *taskBlock, evalCtx *hcl.EvalContext) (*config.Task, error) {
	task := &config.Task{
		Name:        block.Name,
		Description: block.Description,
		DependsOn:   block.DependsOn,
		Always:      block.Always,
	}

	if block.Commands == nil {
		return task, nil
	}

	val, diags := block.Commands.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating commands: %w", diags)
	}
	if val.IsNull() {
		return task, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("commands must be a list of strings: %w", err)
	}
	for it := listVal.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		task.Commands = append(task.Commands, elem.AsString())
	}
	return task, nil
}

// buildEvalContext turns the vars block into the evaluation scope for
// command expressions, exposing each attribute under `vars.`.
func buildEvalContext(vars *varsBlock) (*hcl.EvalContext, error) {
	values := make(map[string]cty.Value)

	if vars != nil {
		attrs, diags := vars.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			// Vars are plain values; they cannot reference each other.
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			values[name] = val
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"vars": cty.ObjectVal(values),
		},
	}, nil
}
