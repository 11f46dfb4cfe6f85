// Package scene assembles the renderer-facing scene graph: extruded room
// polygons, outline lines, label markers and route overlays, grouped for
// fast visibility filtering.
package scene

import (
	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

// EntityType identifies the kind of drawable entity.
type EntityType string

const (
	EntityExtrusion EntityType = "extrusion"
	EntityOutline   EntityType = "outline"
	EntityMarker    EntityType = "marker"
	EntityRouteLine EntityType = "route_line"
	EntityShaft     EntityType = "shaft"
)

// Entity is a single drawable element. Polygons carry rings plus the base
// and height of the extrusion; lines carry an ordered coordinate list;
// markers carry an anchor point.
type Entity struct {
	ID        string         `json:"id"`
	FeatureID int            `json:"feature_id,omitempty"`
	Type      EntityType     `json:"type"`
	Floor     int            `json:"floor"`
	Category  venue.Category `json:"category,omitempty"`
	Name      string         `json:"name,omitempty"`
	Color     string         `json:"color,omitempty"`
	Base      float64        `json:"base"`
	Height    float64        `json:"height"`
	Rings     []geo.Ring     `json:"rings,omitempty"`
	Line      []geo.LngLat   `json:"line,omitempty"`
	Anchor    geo.LngLat     `json:"anchor"`
}

// Groups organizes entity ids by filtering axes so the renderer can apply
// the visibility filter without scanning every entity.
type Groups struct {
	Floors      map[int][]string            `json:"floors"`
	Categories  map[venue.Category][]string `json:"categories"`
	EntityTypes map[EntityType][]string     `json:"entity_types"`
}

// Metadata holds scene-level information.
type Metadata struct {
	VenueName   string     `json:"venue_name"`
	GeneratedAt string     `json:"generated_at"`
	FloorCount  int        `json:"floor_count"`
	BoundsMin   geo.LngLat `json:"bounds_min"`
	BoundsMax   geo.LngLat `json:"bounds_max"`
}

// Graph is the complete scene output consumed by the renderer.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Floors:      make(map[int][]string),
			Categories:  make(map[venue.Category][]string),
			EntityTypes: make(map[EntityType][]string),
		},
	}
}

func (g *Graph) add(e Entity) {
	g.Entities = append(g.Entities, e)
	g.Groups.Floors[e.Floor] = append(g.Groups.Floors[e.Floor], e.ID)
	if e.Category != "" {
		g.Groups.Categories[e.Category] = append(g.Groups.Categories[e.Category], e.ID)
	}
	g.Groups.EntityTypes[e.Type] = append(g.Groups.EntityTypes[e.Type], e.ID)
}
