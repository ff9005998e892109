package dag

import (
	"fmt"
	"strings"
)

// DuplicateTaskError reports two task definitions sharing one name.
type DuplicateTaskError struct {
	Name string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task definition: %q", e.Name)
}

// UnknownDependencyError reports a task declaring a prerequisite that does
// not exist in the graph.
type UnknownDependencyError struct {
	// Task is the referrer, Dependency the missing prerequisite name.
	Task       string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("task %q depends on unknown task %q", e.Task, e.Dependency)
}

// CycleError reports a dependency cycle. Path lists the task names forming
// the cycle, starting and ending with the same task.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}
