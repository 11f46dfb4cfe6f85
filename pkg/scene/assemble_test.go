package scene

import (
	"testing"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/route"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

func squareRing(lng, lat, size float64) geo.Ring {
	return geo.Ring{
		geo.LL(lng, lat),
		geo.LL(lng+size, lat),
		geo.LL(lng+size, lat+size),
		geo.LL(lng, lat+size),
		geo.LL(lng, lat),
	}
}

func testVenue() *venue.Venue {
	return &venue.Venue{
		Manifest: venue.Manifest{Name: "Test Mall", Floors: []string{"Ground"}},
		Features: []venue.Feature{
			{
				ID:       0,
				Name:     "Bookstore",
				Category: venue.CategoryStore,
				Level:    0,
				Height:   3,
				Geometry: venue.Geometry{Type: "Polygon", Rings: []geo.Ring{squareRing(0, 0, 0.0001)}},
			},
			{
				ID:       1,
				Category: venue.CategoryCorridor,
				Level:    0,
				Geometry: venue.Geometry{Type: "Polygon", Rings: []geo.Ring{squareRing(0.0002, 0, 0.0001)}},
			},
			{
				ID:        2,
				Category:  venue.CategoryBuilding,
				Level:     venue.StructuralLevel,
				IsOutline: true,
				Geometry:  venue.Geometry{Type: "LineString", Line: []geo.LngLat{geo.LL(0, 0), geo.LL(0.001, 0.001)}},
			},
		},
	}
}

func entitiesOfType(g *Graph, t EntityType) []Entity {
	var out []Entity
	for _, e := range g.Entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestAssembleEntityKinds(t *testing.T) {
	g := Assemble(testVenue())

	// Two polygon features extrude; only the named one gets a marker; the
	// outline renders as a line.
	if n := len(entitiesOfType(g, EntityExtrusion)); n != 2 {
		t.Errorf("expected 2 extrusions, got %d", n)
	}
	if n := len(entitiesOfType(g, EntityMarker)); n != 1 {
		t.Errorf("expected 1 marker, got %d", n)
	}
	if n := len(entitiesOfType(g, EntityOutline)); n != 1 {
		t.Errorf("expected 1 outline, got %d", n)
	}
}

func TestAssembleMarkerSitsOnRoof(t *testing.T) {
	g := Assemble(testVenue())
	markers := entitiesOfType(g, EntityMarker)
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	m := markers[0]
	if m.Name != "Bookstore" {
		t.Errorf("unexpected marker name %q", m.Name)
	}
	if m.Base != 3 {
		t.Errorf("marker must anchor at base+height, got base %v", m.Base)
	}
}

func TestAssembleGroups(t *testing.T) {
	g := Assemble(testVenue())

	if len(g.Groups.Floors[0]) != 3 {
		t.Errorf("expected 3 ground-floor entities, got %d", len(g.Groups.Floors[0]))
	}
	if len(g.Groups.Floors[venue.StructuralLevel]) != 1 {
		t.Errorf("expected 1 structural entity, got %d", len(g.Groups.Floors[venue.StructuralLevel]))
	}
	if len(g.Groups.Categories[venue.CategoryStore]) != 2 {
		t.Errorf("expected extrusion and marker under store, got %d",
			len(g.Groups.Categories[venue.CategoryStore]))
	}
	if len(g.Groups.EntityTypes[EntityExtrusion]) != 2 {
		t.Errorf("expected 2 extrusion ids in the type group, got %d",
			len(g.Groups.EntityTypes[EntityExtrusion]))
	}
}

func TestAssembleMetadata(t *testing.T) {
	g := Assemble(testVenue())

	if g.Metadata.VenueName != "Test Mall" {
		t.Errorf("unexpected venue name %q", g.Metadata.VenueName)
	}
	if g.Metadata.FloorCount != 1 {
		t.Errorf("expected 1 floor, got %d", g.Metadata.FloorCount)
	}
	if g.Metadata.GeneratedAt == "" {
		t.Error("expected a generation timestamp")
	}
}

func TestAddRoute(t *testing.T) {
	g := NewGraph()
	AddRoute(g, route.Route{
		Segments: []route.Segment{
			{Floor: 0, Coords: []geo.LngLat{geo.LL(0, 0), geo.LL(0, 0.0001)}},
			{Floor: 1, Coords: []geo.LngLat{geo.LL(0, 0.0001)}}, // single point, skipped
		},
		Transitions: []route.Transition{
			{ShaftCoord: geo.LL(0, 0.0001), FromFloor: 0, ToFloor: 1},
		},
	})

	lines := entitiesOfType(g, EntityRouteLine)
	if len(lines) != 1 {
		t.Fatalf("expected 1 route line, got %d", len(lines))
	}
	if lines[0].Floor != 0 || len(lines[0].Line) != 2 {
		t.Errorf("unexpected route line: %+v", lines[0])
	}
	if lines[0].Base != routeLineBase || lines[0].Color != routeLineColor {
		t.Errorf("route line must use the overlay drawing constants: %+v", lines[0])
	}

	shafts := entitiesOfType(g, EntityShaft)
	if len(shafts) != 1 {
		t.Fatalf("expected 1 shaft marker, got %d", len(shafts))
	}
	if shafts[0].Floor != 0 || shafts[0].Anchor != geo.LL(0, 0.0001) {
		t.Errorf("unexpected shaft marker: %+v", shafts[0])
	}
}
