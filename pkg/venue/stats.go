package venue

import (
	"math"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
)

// Stats is the resolved summary of a loaded venue, consumed by the scene
// metadata, the validate command and the API.
type Stats struct {
	Name          string           `json:"name"`
	FloorCount    int              `json:"floor_count"`
	FeatureCount  int              `json:"feature_count"`
	NamedFeatures int              `json:"named_features"`
	Categories    map[Category]int `json:"categories"`
	GraphNodes    int              `json:"graph_nodes"`
	GraphEdges    int              `json:"graph_edges"`
	BoundsMin     geo.LngLat       `json:"bounds_min"`
	BoundsMax     geo.LngLat       `json:"bounds_max"`
}

// Summarize computes venue statistics. The floor count is derived from the
// highest concrete level seen across features, or from the manifest's
// floor labels when those cover more.
func (v *Venue) Summarize() Stats {
	stats := Stats{
		Name:       v.Manifest.Name,
		Categories: make(map[Category]int),
		BoundsMin:  geo.LL(math.MaxFloat64, math.MaxFloat64),
		BoundsMax:  geo.LL(-math.MaxFloat64, -math.MaxFloat64),
	}
	// A venue can exist without a nav graph, e.g. when only the visual
	// layers are being assembled.
	if v.Graph != nil {
		stats.GraphNodes = v.Graph.NodeCount()
		stats.GraphEdges = v.Graph.EdgeCount()
	}

	maxLevel := -1
	for _, f := range v.Features {
		stats.FeatureCount++
		stats.Categories[f.Category]++
		if f.Name != "" && !f.IsOutline {
			stats.NamedFeatures++
		}
		if f.Level > maxLevel {
			maxLevel = f.Level
		}
		for _, ring := range f.Geometry.Rings {
			stats.BoundsMin, stats.BoundsMax = ring.ExpandBounds(stats.BoundsMin, stats.BoundsMax)
		}
		stats.BoundsMin, stats.BoundsMax = geo.Ring(f.Geometry.Line).ExpandBounds(stats.BoundsMin, stats.BoundsMax)
	}

	stats.FloorCount = maxLevel + 1
	if len(v.Manifest.Floors) > stats.FloorCount {
		stats.FloorCount = len(v.Manifest.Floors)
	}
	if stats.FeatureCount == 0 {
		stats.BoundsMin, stats.BoundsMax = geo.LngLat{}, geo.LngLat{}
	}
	return stats
}
