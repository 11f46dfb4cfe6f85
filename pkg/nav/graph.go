package nav

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
)

// transitFloor is the wire-format sentinel for nodes inside a vertical
// transition (elevator shaft). It is decoded into FloorRef.Transit and
// never leaks past this package's boundary.
const transitFloor = -1

// FloorRef identifies the floor a graph node belongs to. Transit nodes sit
// inside an elevator shaft and are not tied to any visible floor.
type FloorRef struct {
	Level   int
	Transit bool
}

// Concrete returns a FloorRef for a visible floor.
func Concrete(level int) FloorRef {
	return FloorRef{Level: level}
}

// Transit is the FloorRef for elevator-shaft nodes.
var Transit = FloorRef{Transit: true}

// UnmarshalJSON decodes the integer floor index, mapping the -1 sentinel
// to a transit reference.
func (f *FloorRef) UnmarshalJSON(data []byte) error {
	var level int
	if err := json.Unmarshal(data, &level); err != nil {
		return fmt.Errorf("parsing floor: %w", err)
	}
	if level == transitFloor {
		*f = Transit
		return nil
	}
	*f = FloorRef{Level: level}
	return nil
}

// MarshalJSON encodes back to the integer wire format.
func (f FloorRef) MarshalJSON() ([]byte, error) {
	if f.Transit {
		return json.Marshal(transitFloor)
	}
	return json.Marshal(f.Level)
}

// Node is a single walkable point in the navigation graph.
type Node struct {
	ID    string     `json:"-"`
	Coord geo.LngLat `json:"coords"`
	Floor FloorRef   `json:"floor"`
}

// Graph is the undirected walkable-node graph used for routing, distinct
// from the visual room polygons.
type Graph struct {
	nodes    map[string]Node
	adjacent map[string][]string
}

// graphFile is the on-disk navgraph.json layout.
type graphFile struct {
	Nodes map[string]Node `json:"nodes"`
	Edges [][2]string     `json:"edges"`
}

// ParseGraph decodes a navigation graph from its JSON representation.
// Edges referencing unknown nodes are rejected; every edge is inserted in
// both directions.
func ParseGraph(data []byte) (*Graph, error) {
	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing nav graph: %w", err)
	}

	g := &Graph{
		nodes:    make(map[string]Node, len(file.Nodes)),
		adjacent: make(map[string][]string),
	}
	for id, n := range file.Nodes {
		n.ID = id
		g.nodes[id] = n
	}
	for _, e := range file.Edges {
		if _, ok := g.nodes[e[0]]; !ok {
			return nil, fmt.Errorf("edge references unknown node %q", e[0])
		}
		if _, ok := g.nodes[e[1]]; !ok {
			return nil, fmt.Errorf("edge references unknown node %q", e[1])
		}
		g.adjacent[e[0]] = append(g.adjacent[e[0]], e[1])
		g.adjacent[e[1]] = append(g.adjacent[e[1]], e[0])
	}
	return g, nil
}

// NewGraph builds a graph from nodes and undirected edges. Intended for
// tests and programmatic construction.
func NewGraph(nodes []Node, edges [][2]string) *Graph {
	g := &Graph{
		nodes:    make(map[string]Node, len(nodes)),
		adjacent: make(map[string][]string),
	}
	for _, n := range nodes {
		g.nodes[n.ID] = n
	}
	for _, e := range edges {
		g.adjacent[e[0]] = append(g.adjacent[e[0]], e[1])
		g.adjacent[e[1]] = append(g.adjacent[e[1]], e[0])
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Neighbors returns the ids directly connected to id.
func (g *Graph) Neighbors(id string) []string {
	return g.adjacent[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, adj := range g.adjacent {
		total += len(adj)
	}
	return total / 2
}

// NodeIDs returns all node ids in sorted order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b string) bool {
	for _, n := range g.adjacent[a] {
		if n == b {
			return true
		}
	}
	return false
}
