package dag

import (
	"context"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
)

// Build constructs a complete, validated task graph from a config model.
// All configuration errors (duplicate names, unresolved prerequisite
// references, dependency cycles) are detected here, before any recipe
// command can run.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")
	graph := &Graph{nodes: make(map[string]*Node, len(model.Tasks))}

	// First pass: create all nodes.
	for _, t := range model.Tasks {
		if _, exists := graph.nodes[t.Name]; exists {
			return nil, &DuplicateTaskError{Name: t.Name}
		}
		graph.nodes[t.Name] = &Node{Task: t}
		graph.order = append(graph.order, t.Name)
	}
	logger.Debug("Build: node creation complete.", "node_count", len(graph.nodes))

	// Second pass: link prerequisites, in declared order.
	for _, name := range graph.order {
		node := graph.nodes[name]
		for _, depName := range node.Task.DependsOn {
			dep, ok := graph.nodes[depName]
			if !ok {
				return nil, &UnknownDependencyError{Task: name, Dependency: depName}
			}
			node.deps = append(node.deps, dep)
		}
	}
	logger.Debug("Build: node linking complete.")

	if err := graph.detectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Build: cycle detection passed.")

	return graph, nil
}

// detectCycles checks the graph for dependency cycles. It returns a
// *CycleError naming the offending path if one is found.
func (g *Graph) detectCycles() error {
	// Classic depth-first search with three sets of nodes:
	// permanent: nodes fully visited and known cycle-free.
	// temporary: nodes on the current recursion path.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)
	var path []string

	var visit func(n *Node) error
	visit = func(n *Node) error {
		name := n.Name()
		if permanent[name] {
			return nil
		}
		if temporary[name] {
			// The node is already on our recursion path: a cycle.
			// Trim the path to the segment forming the loop.
			start := 0
			for i, p := range path {
				if p == name {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, path[start:]...), name)
			return &CycleError{Path: cycle}
		}

		temporary[name] = true
		path = append(path, name)

		for _, dep := range n.deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		delete(temporary, name)
		permanent[name] = true
		return nil
	}

	for _, name := range g.order {
		if !permanent[name] {
			if err := visit(g.nodes[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
