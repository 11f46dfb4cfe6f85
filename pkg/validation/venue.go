package validation

import (
	"fmt"

	"github.com/Ashwin-A21/mallnav/pkg/nav"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

// ValidateVenue checks the preprocessed feature collection. Malformed
// property values were already defaulted by the preprocessor, so findings
// here are about geometry and category coverage.
func ValidateVenue(v *venue.Venue) *Report {
	report := NewReport()
	stats := v.Summarize()
	declaredFloors := len(v.Manifest.Floors)

	for _, f := range v.Features {
		if len(f.Geometry.Rings) == 0 && len(f.Geometry.Line) == 0 {
			report.AddWarning(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("feature %d (%s) has no usable geometry", f.ID, f.Name),
				Subject: fmt.Sprintf("features[%d]", f.ID),
			})
		}
		if !f.Category.IsKnown() {
			report.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("feature %d has unknown category %q", f.ID, f.Category),
				Subject:     fmt.Sprintf("features[%d].category", f.ID),
				ActualValue: string(f.Category),
			})
		}
		// The floor count derived by Summarize grows with the features, so
		// the bound has to come from the manifest's declared floor labels.
		if declaredFloors > 0 && f.Level != venue.StructuralLevel && f.Level >= declaredFloors {
			report.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("feature %d on level %d exceeds declared floor count %d", f.ID, f.Level, declaredFloors),
				Subject:     fmt.Sprintf("features[%d].level", f.ID),
				ActualValue: f.Level,
				Expected:    fmt.Sprintf("level < %d or %d (structural)", declaredFloors, venue.StructuralLevel),
			})
		}
	}

	report.AddInfo(Result{
		Level: LevelSchema,
		Message: fmt.Sprintf("%d features across %d floors, %d named",
			stats.FeatureCount, stats.FloorCount, stats.NamedFeatures),
	})

	report.Merge(ValidateGraph(v))
	return report
}

// ValidateGraph checks the navigation graph: connectivity and the
// walkway-center fallback nodes the resolver depends on.
func ValidateGraph(v *venue.Venue) *Report {
	report := NewReport()
	g := v.Graph
	ids := g.NodeIDs()

	if len(ids) == 0 {
		report.AddError(Result{
			Level:   LevelGraph,
			Message: "navigation graph has no nodes",
		})
		return report
	}

	// Flood from an arbitrary node; in a healthy venue every walkable node
	// is reachable from every other.
	reached := map[string]bool{ids[0]: true}
	queue := []string{ids[0]}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(id) {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(reached) < len(ids) {
		unreachable := len(ids) - len(reached)
		report.AddWarning(Result{
			Level:       LevelGraph,
			Message:     fmt.Sprintf("%d of %d graph nodes unreachable from %q", unreachable, len(ids), ids[0]),
			ActualValue: unreachable,
			Suggestions: []string{"check navgraph.json edges for missing connections"},
		})
	}

	stats := v.Summarize()
	for level := 0; level < stats.FloorCount; level++ {
		center := nav.WalkwayCenterNode(level)
		if !g.HasNode(center) {
			report.AddWarning(Result{
				Level:    LevelGraph,
				Message:  fmt.Sprintf("missing walkway-center fallback node for floor %d", level),
				Subject:  center,
				Expected: center,
			})
		}
	}

	report.AddInfo(Result{
		Level:   LevelGraph,
		Message: fmt.Sprintf("%d nodes, %d edges", g.NodeCount(), g.EdgeCount()),
	})
	return report
}
