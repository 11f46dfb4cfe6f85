package scene

import (
	"fmt"
	"time"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/route"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

// Route overlay drawing constants: the line hovers slightly above the
// floor slab so it never z-fights with room extrusions.
const (
	routeLineBase   = 0.3
	routeLineColor  = "#4264fb"
	shaftMarkHeight = 0.5
)

// Assemble converts a loaded venue into the scene graph handed to the
// renderer.
func Assemble(v *venue.Venue) *Graph {
	g := NewGraph()

	for _, f := range v.Features {
		assembleFeature(g, f)
	}

	stats := v.Summarize()
	g.Metadata = Metadata{
		VenueName:   v.Manifest.Name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		FloorCount:  stats.FloorCount,
		BoundsMin:   stats.BoundsMin,
		BoundsMax:   stats.BoundsMax,
	}
	return g
}

func assembleFeature(g *Graph, f venue.Feature) {
	anchor := f.Geometry.Anchor()

	if f.IsOutline {
		// The building perimeter renders as a line and takes no part in
		// room interaction.
		g.add(Entity{
			ID:        fmt.Sprintf("outline_%d", f.ID),
			FeatureID: f.ID,
			Type:      EntityOutline,
			Floor:     f.Level,
			Category:  f.Category,
			Color:     f.Color,
			Line:      outlineCoords(f),
			Anchor:    anchor,
		})
		return
	}

	if len(f.Geometry.Rings) > 0 {
		g.add(Entity{
			ID:        fmt.Sprintf("feature_%d", f.ID),
			FeatureID: f.ID,
			Type:      EntityExtrusion,
			Floor:     f.Level,
			Category:  f.Category,
			Name:      f.Name,
			Color:     f.Color,
			Base:      f.BaseHeight,
			Height:    f.Height,
			Rings:     f.Geometry.Rings,
			Anchor:    anchor,
		})
	} else if len(f.Geometry.Line) > 0 {
		g.add(Entity{
			ID:        fmt.Sprintf("feature_%d", f.ID),
			FeatureID: f.ID,
			Type:      EntityOutline,
			Floor:     f.Level,
			Category:  f.Category,
			Name:      f.Name,
			Color:     f.Color,
			Line:      f.Geometry.Line,
			Anchor:    anchor,
		})
	}

	if f.Name != "" {
		g.add(Entity{
			ID:        fmt.Sprintf("marker_%d", f.ID),
			FeatureID: f.ID,
			Type:      EntityMarker,
			Floor:     f.Level,
			Category:  f.Category,
			Name:      f.Name,
			Base:      f.BaseHeight + f.Height,
			Anchor:    anchor,
		})
	}
}

// outlineCoords returns the perimeter polyline: the linestring when the
// outline is drawn as one, otherwise the outer polygon ring.
func outlineCoords(f venue.Feature) []geo.LngLat {
	if len(f.Geometry.Line) > 0 {
		return f.Geometry.Line
	}
	if len(f.Geometry.Rings) > 0 {
		return f.Geometry.Rings[0]
	}
	return nil
}

// AddRoute overlays a planned route onto the scene: one line entity per
// floor segment and a shaft marker per vertical transition.
func AddRoute(g *Graph, r route.Route) {
	for i, seg := range r.Segments {
		if len(seg.Coords) < 2 {
			continue
		}
		g.add(Entity{
			ID:     fmt.Sprintf("route_seg_%d", i),
			Type:   EntityRouteLine,
			Floor:  seg.Floor,
			Color:  routeLineColor,
			Base:   routeLineBase,
			Line:   seg.Coords,
			Anchor: seg.Coords[0],
		})
	}
	for i, tr := range r.Transitions {
		g.add(Entity{
			ID:     fmt.Sprintf("route_shaft_%d", i),
			Type:   EntityShaft,
			Floor:  tr.FromFloor,
			Height: shaftMarkHeight,
			Anchor: tr.ShaftCoord,
		})
	}
}
