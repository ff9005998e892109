package executor

import (
	"context"

	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/dag"
)

// CommandRunner launches a single recipe command and reports its exit
// status. The command string is opaque to the executor: the exit status
// (0 = success) is the only signal it interprets. A non-nil error means the
// command could not be launched or observed at all.
type CommandRunner interface {
	Run(ctx context.Context, command string) (int, error)
}

// Executor walks a validated task graph serially and runs recipes through a
// CommandRunner. One Executor may serve many invocations; all run-scoped
// state lives in the invocation itself.
type Executor struct {
	graph  *dag.Graph
	runner CommandRunner
}

// New creates an executor over the given graph and command runner.
func New(graph *dag.Graph, runner CommandRunner) *Executor {
	return &Executor{graph: graph, runner: runner}
}

// invocation holds the state of one Run call: the execution record plus the
// ordered log. It is created empty per invocation and discarded afterwards,
// so two Runs of the same target are two independent full runs.
type invocation struct {
	executed map[string]bool
	result   *Result
}

// Run executes the target task and all its transitive prerequisites exactly
// once each, prerequisites strictly before dependents, halting at the first
// command that exits non-zero. The returned Result is valid even on failure
// and logs everything that ran before the halt; the error is a
// *UnknownTargetError or a *CommandError.
func (e *Executor) Run(ctx context.Context, target string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	root, ok := e.graph.Node(target)
	if !ok {
		return nil, &UnknownTargetError{Target: target}
	}

	inv := &invocation{
		executed: make(map[string]bool),
		result:   &Result{},
	}
	logger.Debug("Executor starting run.", "target", target)
	if err := e.visit(ctx, root, inv); err != nil {
		return inv.result, err
	}
	logger.Debug("Executor run finished.", "target", target, "tasks_run", len(inv.result.TaskOrder))
	return inv.result, nil
}

// visit performs the depth-first postorder walk: all prerequisites of a task
// complete before its own recipe starts. A task already in the execution
// record is skipped, which is what makes a diamond-shaped dependency run the
// shared prerequisite exactly once.
func (e *Executor) visit(ctx context.Context, node *dag.Node, inv *invocation) error {
	name := node.Name()
	if inv.executed[name] {
		return nil
	}

	for _, dep := range node.Dependencies() {
		if err := e.visit(ctx, dep, inv); err != nil {
			return err
		}
	}

	logger := ctxlog.FromContext(ctx).With("task", name)
	for _, command := range node.Task.Commands {
		logger.Info("Running command.", "command", command)
		inv.result.CommandOrder = append(inv.result.CommandOrder, command)

		status, err := e.runner.Run(ctx, command)
		if err != nil {
			return &CommandError{Task: name, Command: command, ExitStatus: -1, Err: err}
		}
		if status != 0 {
			logger.Error("Command failed.", "command", command, "status", status)
			return &CommandError{Task: name, Command: command, ExitStatus: status}
		}
	}

	inv.executed[name] = true
	inv.result.TaskOrder = append(inv.result.TaskOrder, name)
	logger.Debug("Task complete.")
	return nil
}
