// SPDX-License-Identifier: MPL-2.0

// Package dag provides the directed-graph operations behind recipe
// dependency resolution: cycle detection at catalog load and post-order
// traversal when building an execution plan.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError indicates that the graph contains a dependency cycle.
	CycleError struct {
		// Cycle is the closed path that forms the cycle, starting and
		// ending at the same node.
		Cycle []string
	}

	// Graph is a directed dependency graph. Nodes are identified by string
	// keys. An edge from A to B means "A depends on B": B must complete
	// before A starts.
	Graph struct {
		// adjacency maps each node to its dependencies, in declaration order.
		adjacency map[string][]string
		// nodes tracks all nodes in insertion order for deterministic traversal.
		nodes []string
		// nodeSet provides O(1) lookup for node existence.
		nodeSet map[string]bool
	}

	// frame is one level of the explicit DFS stack: a node plus the index
	// of the next dependency to visit. The explicit stack avoids recursion
	// depth limits on pathologically deep dependency chains.
	frame struct {
		node string
		next int
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph) AddNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge records that "from" depends on "to". Both nodes are implicitly
// added if they don't exist.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// DFS colors for cycle detection. A back-edge to a node still being
// visited (on the current DFS path) signals a cycle.
const (
	unvisited = iota
	visiting
	visited
)

// FindCycle searches the whole graph for a dependency cycle and returns it,
// or nil when the graph is acyclic. Starting nodes are tried in insertion
// order, so the reported cycle is deterministic for a given catalog.
func (g *Graph) FindCycle() *CycleError {
	state := make(map[string]int, len(g.nodes))

	for _, start := range g.nodes {
		if state[start] != unvisited {
			continue
		}

		stack := []frame{{node: start}}
		state[start] = visiting

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			deps := g.adjacency[f.node]

			if f.next < len(deps) {
				dep := deps[f.next]
				f.next++

				switch state[dep] {
				case visiting:
					return &CycleError{Cycle: extractCycle(stack, dep)}
				case unvisited:
					state[dep] = visiting
					stack = append(stack, frame{node: dep})
				}
				continue
			}

			state[f.node] = visited
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

// extractCycle rebuilds the closed path for a back-edge to target: the
// stack segment from target's frame to the top, plus target again.
func extractCycle(stack []frame, target string) []string {
	start := 0
	for i := range stack {
		if stack[i].node == target {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.node)
	}
	return append(cycle, target)
}

// PostOrder returns the nodes reachable from root in post-order: every
// dependency appears before each node that depends on it, each node
// appears exactly once even when reachable via several paths, and root is
// last. Sibling dependencies keep their declaration order.
//
// The graph must be acyclic; run FindCycle first. On a cyclic graph the
// traversal would revisit nodes indefinitely.
func (g *Graph) PostOrder(root string) []string {
	if !g.nodeSet[root] {
		return nil
	}

	done := make(map[string]bool, len(g.nodes))
	// onPath guards against re-pushing a node already on the DFS stack.
	onPath := map[string]bool{root: true}
	var order []string
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		deps := g.adjacency[f.node]

		if f.next < len(deps) {
			dep := deps[f.next]
			f.next++
			if !done[dep] && !onPath[dep] {
				onPath[dep] = true
				stack = append(stack, frame{node: dep})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		delete(onPath, f.node)
		if !done[f.node] {
			done[f.node] = true
			order = append(order, f.node)
		}
	}
	return order
}
