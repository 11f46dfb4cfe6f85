package nav

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a name cannot be resolved or no path exists
// between two resolved nodes. Always recoverable; callers surface it as a
// user-facing message.
var ErrNotFound = errors.New("not found")

// ErrSameLocation is returned when origin and destination resolve from the
// same input. Callers reject this before search runs.
var ErrSameLocation = errors.New("origin and destination are the same")

// FindPath runs breadth-first search from one node id to another and
// returns the node sequence of a shortest path by edge count, endpoints
// inclusive. Every edge costs one hop; physical distance does not
// influence the result.
func (g *Graph) FindPath(fromID, toID string) ([]Node, error) {
	if !g.HasNode(fromID) {
		return nil, fmt.Errorf("origin node %q: %w", fromID, ErrNotFound)
	}
	if !g.HasNode(toID) {
		return nil, fmt.Errorf("destination node %q: %w", toID, ErrNotFound)
	}

	visited := map[string]bool{fromID: true}
	queue := [][]string{{fromID}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		last := path[len(path)-1]

		if last == toID {
			return g.nodePath(path), nil
		}

		for _, next := range g.adjacent[last] {
			if visited[next] {
				continue
			}
			visited[next] = true
			extended := make([]string, len(path), len(path)+1)
			copy(extended, path)
			queue = append(queue, append(extended, next))
		}
	}

	return nil, fmt.Errorf("no path from %q to %q: %w", fromID, toID, ErrNotFound)
}

// FindRoute resolves both names and finds a shortest path between them.
func FindRoute(g *Graph, r *Resolver, fromName, toName string) ([]Node, error) {
	fromID, ok := r.Resolve(fromName)
	if !ok {
		return nil, fmt.Errorf("location %q: %w", fromName, ErrNotFound)
	}
	toID, ok := r.Resolve(toName)
	if !ok {
		return nil, fmt.Errorf("location %q: %w", toName, ErrNotFound)
	}
	if fromID == toID {
		return nil, ErrSameLocation
	}
	return g.FindPath(fromID, toID)
}

// nodePath converts an id sequence to the node records.
func (g *Graph) nodePath(ids []string) []Node {
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}
