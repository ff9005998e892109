package dag

import "github.com/vk/taskmill/internal/config"

// Graph is the validated task graph: every node's prerequisites resolve and
// no dependency cycle exists. A Graph is immutable after Build returns it.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by task name.
	nodes map[string]*Node
	// order records task names in declaration order, for deterministic
	// iteration and tie-breaking.
	order []string
}

// Node is a single task vertex together with its resolved prerequisites.
type Node struct {
	// Task is the immutable task definition from the config model.
	Task *config.Task
	// deps holds the prerequisite nodes in declared order.
	deps []*Node
}

// Name returns the task name identifying this node.
func (n *Node) Name() string {
	return n.Task.Name
}

// Dependencies returns the prerequisite nodes in declared order. The
// returned slice must not be mutated.
func (n *Node) Dependencies() []*Node {
	return n.deps
}

// Node retrieves a node by task name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Len reports the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// TaskNames returns all task names in declaration order.
func (g *Graph) TaskNames() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}
