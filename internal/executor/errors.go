package executor

import "fmt"

// UnknownTargetError reports a requested target task that does not exist in
// the graph. It is detected before any traversal begins.
type UnknownTargetError struct {
	Target string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target task: %q", e.Target)
}

// CommandError reports the first recipe command that failed. Execution halts
// at this command: the rest of its recipe and every still-pending task never
// run.
type CommandError struct {
	// Task is the name of the task whose recipe failed.
	Task string
	// Command is the exact command string that failed.
	Command string
	// ExitStatus is the command's exit status. It is -1 when the command
	// could not be launched at all, in which case Err carries the cause.
	ExitStatus int
	// Err is the underlying launcher error, if any.
	Err error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %q: command %q: %v", e.Task, e.Command, e.Err)
	}
	return fmt.Sprintf("task %q: command %q exited with status %d", e.Task, e.Command, e.ExitStatus)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
