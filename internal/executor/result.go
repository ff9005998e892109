package executor

// Result is the ordered log of one invocation. On success it covers every
// task reachable from the target; on failure it covers everything that
// completed before the halt.
type Result struct {
	// TaskOrder lists completed task names in execution order.
	TaskOrder []string
	// CommandOrder lists every executed command string in execution order,
	// including the failing command on a failed run.
	CommandOrder []string
}
