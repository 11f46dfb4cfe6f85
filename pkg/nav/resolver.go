package nav

import (
	"fmt"
	"regexp"
	"strings"
)

// Place is a named feature the resolver can fall back to when no graph
// node matches a query directly.
type Place struct {
	Name  string
	Floor FloorRef
}

// Resolver maps free-text location names to navigation-graph node ids.
// Location labels are human-curated and rarely match node ids exactly, so
// matching is layered: substring over raw ids, substring over
// prefix-stripped ids, then an exact feature-name fallback to the floor's
// walkway-center node.
type Resolver struct {
	graph  *Graph
	places []Place
}

// NewResolver creates a resolver over the graph and the venue's named
// features.
func NewResolver(graph *Graph, places []Place) *Resolver {
	return &Resolver{graph: graph, places: places}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases a name and strips all non-alphanumeric characters.
func Normalize(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

var floorPrefix = regexp.MustCompile(`^(g|f\d*)_`)

// StripFloorPrefix removes a leading g_, f_ or f<N>_ segment from a node
// id, where N may run past floor 9. Returns the id unchanged when no
// prefix is present.
func StripFloorPrefix(id string) string {
	return floorPrefix.ReplaceAllString(id, "")
}

// eitherContains reports whether either normalized string contains the
// other. Matching runs in both directions because labels can be longer or
// shorter than the ids they refer to.
func eitherContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// WalkwayCenterNode returns the id of the walkway-center fallback node for
// a floor: g_walkway_center on the ground floor, f<N>_walkway_center above.
func WalkwayCenterNode(floor int) string {
	if floor == 0 {
		return "g_walkway_center"
	}
	return fmt.Sprintf("f%d_walkway_center", floor)
}

// Resolve maps a location name to a graph node id. The second return value
// is false when the name cannot be resolved.
//
// Node iteration order is not stable, so when several ids match the same
// name any of them may win. This mirrors the curated data, where names are
// expected to be unambiguous.
func (r *Resolver) Resolve(name string) (string, bool) {
	query := Normalize(name)
	if query == "" {
		return "", false
	}

	for id := range r.graph.nodes {
		if eitherContains(Normalize(id), query) {
			return id, true
		}
	}

	// Second pass: match against ids with their floor prefix removed.
	// The length guard keeps trivial fragments like "f1" from matching.
	for id := range r.graph.nodes {
		stripped := StripFloorPrefix(id)
		if len(stripped) < 3 {
			continue
		}
		if eitherContains(Normalize(stripped), query) {
			return id, true
		}
	}

	// Fallback: an exactly-named feature routes to its floor's walkway
	// center.
	for _, p := range r.places {
		if p.Name == "" || p.Name != name || p.Floor.Transit {
			continue
		}
		center := WalkwayCenterNode(p.Floor.Level)
		if r.graph.HasNode(center) {
			return center, true
		}
	}

	return "", false
}
