package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/dag"
	"github.com/vk/taskmill/internal/executor"
)

// Run executes the main application logic: build the task graph, resolve
// the target, and run it. With ListTasks set it prints the task table
// instead.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	graph, err := dag.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("invalid taskfile %s: %w", a.taskfile, err)
	}
	a.logger.Debug("Task graph built.", "task_count", graph.Len())

	if a.config.ListTasks {
		return a.listTasks(graph)
	}

	target := a.config.Target
	if target == "" {
		target = a.model.DefaultTask()
	}
	if target == "" {
		return fmt.Errorf("taskfile %s defines no tasks", a.taskfile)
	}

	a.logger.Info("Starting run.", "target", target)
	exec := executor.New(graph, a.runner)
	result, err := exec.Run(ctx, target)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	a.logger.Info("Run finished.", "target", target, "tasks_run", len(result.TaskOrder), "commands_run", len(result.CommandOrder))
	return nil
}

// listTasks prints every task with its description in declaration order.
func (a *App) listTasks(graph *dag.Graph) error {
	fmt.Fprintf(a.outW, "Tasks in %s:\n", a.taskfile)

	w := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	defaultTask := a.model.DefaultTask()
	for _, name := range graph.TaskNames() {
		node, _ := graph.Node(name)
		marker := ""
		if name == defaultTask {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\t%s\n", name, marker, node.Task.Description)
	}
	return w.Flush()
}
