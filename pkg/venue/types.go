package venue

import (
	"encoding/json"
	"fmt"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/nav"
)

// StructuralLevel marks features spanning all floors (the building shell,
// elevator shafts, perimeter walls).
const StructuralLevel = -1

// Category classifies a building feature for styling and filtering.
type Category string

const (
	CategoryEntrance      Category = "entrance"
	CategoryParking       Category = "parking"
	CategoryElevator      Category = "elevator"
	CategorySecurity      Category = "security"
	CategoryATM           Category = "atm"
	CategoryStore         Category = "store"
	CategoryCorridor      Category = "corridor"
	CategoryWashroom      Category = "washroom"
	CategoryInfo          Category = "info"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategorySeating       Category = "seating"
	CategoryCommon        Category = "common"
	CategoryBuilding      Category = "building"
	CategoryWall          Category = "wall"
)

// KnownCategories lists every category the renderer styles.
var KnownCategories = []Category{
	CategoryEntrance, CategoryParking, CategoryElevator, CategorySecurity,
	CategoryATM, CategoryStore, CategoryCorridor, CategoryWashroom,
	CategoryInfo, CategoryFood, CategoryEntertainment, CategorySeating,
	CategoryCommon, CategoryBuilding, CategoryWall,
}

// IsKnown reports whether c is one of the styled categories.
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Geometry holds the decoded shape of a feature: polygon rings or a
// linestring.
type Geometry struct {
	Type  string
	Rings []geo.Ring
	Line  []geo.LngLat
}

// geometryFile mirrors the GeoJSON geometry object.
type geometryFile struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// UnmarshalJSON decodes Polygon and LineString geometries. Other types are
// kept with empty coordinates so the preprocessor can pass them through.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var file geometryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing geometry: %w", err)
	}
	g.Type = file.Type

	switch file.Type {
	case "Polygon":
		if err := json.Unmarshal(file.Coordinates, &g.Rings); err != nil {
			return fmt.Errorf("parsing polygon coordinates: %w", err)
		}
	case "LineString":
		if err := json.Unmarshal(file.Coordinates, &g.Line); err != nil {
			return fmt.Errorf("parsing linestring coordinates: %w", err)
		}
	}
	return nil
}

// MarshalJSON re-encodes in GeoJSON form.
func (g Geometry) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": g.Type}
	switch g.Type {
	case "Polygon":
		out["coordinates"] = g.Rings
	case "LineString":
		out["coordinates"] = g.Line
	}
	return json.Marshal(out)
}

// Anchor returns a representative coordinate for the feature: the centroid
// of the outer polygon ring, or the middle of a linestring.
func (g Geometry) Anchor() geo.LngLat {
	if len(g.Rings) > 0 {
		return g.Rings[0].Centroid()
	}
	if len(g.Line) > 0 {
		return g.Line[len(g.Line)/2]
	}
	return geo.LngLat{}
}

// Feature is one building element after preprocessing: every numeric
// property is resolved and the id matches the feature's position in the
// collection.
type Feature struct {
	ID         int      `json:"id"`
	Name       string   `json:"name,omitempty"`
	Category   Category `json:"category"`
	Level      int      `json:"level"`
	Height     float64  `json:"height"`
	BaseHeight float64  `json:"base_height"`
	Color      string   `json:"color,omitempty"`
	IsOutline  bool     `json:"isOutline"`
	Geometry   Geometry `json:"geometry"`
}

// RawFeature is a feature as loaded from disk, before defaulting.
// Properties are loosely typed; surveyed data leaves many of them out or
// stores numbers as strings.
type RawFeature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is the GeoJSON-like container for raw features.
type FeatureCollection struct {
	Type     string       `json:"type"`
	Features []RawFeature `json:"features"`
}

// Manifest is the venue.yaml project manifest. Every field has a working
// default so a bare manifest is valid.
type Manifest struct {
	Name             string   `yaml:"name" json:"name"`
	Floors           []string `yaml:"floors" json:"floors"`
	WalkingSpeedMPS  float64  `yaml:"walking_speed_mps" json:"walking_speed_mps"`
	FloorPenaltyS    float64  `yaml:"floor_penalty_s" json:"floor_penalty_s"`
	AnimationPeriodS float64  `yaml:"animation_period_s" json:"animation_period_s"`
}

// Venue is a fully loaded project: preprocessed features plus the
// navigation graph.
type Venue struct {
	Manifest Manifest
	Features []Feature
	Graph    *nav.Graph
}

// FloorName returns the display label for a floor index.
func (m Manifest) FloorName(level int) string {
	if level >= 0 && level < len(m.Floors) {
		return m.Floors[level]
	}
	return fmt.Sprintf("Floor %d", level)
}

// Places returns the named features as resolver fallback entries.
func (v *Venue) Places() []nav.Place {
	places := make([]nav.Place, 0, len(v.Features))
	for _, f := range v.Features {
		if f.Name == "" || f.IsOutline {
			continue
		}
		places = append(places, nav.Place{Name: f.Name, Floor: nav.Concrete(f.Level)})
	}
	return places
}

// FeatureByName returns the first non-outline feature with the given name.
func (v *Venue) FeatureByName(name string) (Feature, bool) {
	for _, f := range v.Features {
		if !f.IsOutline && f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
