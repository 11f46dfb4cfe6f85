package venue

import (
	"os"
	"path/filepath"
	"testing"
)

const testManifestYAML = `name: Test Mall
floors: ["Ground", "Level 1"]
walking_speed_mps: 1.2
`

const testFeaturesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0.0001,0],[0.0001,0.0001],[0,0.0001],[0,0]]]},
      "properties": {"name": "Bookstore", "category": "store", "level": 1, "height": 4}
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[0,0],[0.0002,0.0002]]},
      "properties": {"isOutline": true, "level": -1, "category": "building"}
    }
  ]
}`

const testNavGraphJSON = `{
  "nodes": {
    "g_walkway_center":  {"coords": [0, 0],       "floor": 0},
    "f1_walkway_center": {"coords": [0, 0.0001],  "floor": 1},
    "elev":              {"coords": [0, 0.00005], "floor": -1}
  },
  "edges": [
    ["g_walkway_center", "elev"],
    ["elev", "f1_walkway_center"]
  ]
}`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		ManifestFile: testManifestYAML,
		FeaturesFile: testFeaturesJSON,
		GraphFile:    testNavGraphJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	v, err := LoadProject(writeProject(t))
	if err != nil {
		t.Fatalf("load project: %v", err)
	}

	if v.Manifest.Name != "Test Mall" {
		t.Errorf("expected name Test Mall, got %q", v.Manifest.Name)
	}
	if v.Manifest.WalkingSpeedMPS != 1.2 {
		t.Errorf("expected walking speed 1.2, got %v", v.Manifest.WalkingSpeedMPS)
	}
	if v.Manifest.FloorPenaltyS != DefaultFloorPenaltyS {
		t.Errorf("expected default floor penalty, got %v", v.Manifest.FloorPenaltyS)
	}
	if len(v.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(v.Features))
	}
	if v.Graph.NodeCount() != 3 {
		t.Errorf("expected 3 graph nodes, got %d", v.Graph.NodeCount())
	}
}

func TestLoadProjectMissingWallsIsFine(t *testing.T) {
	dir := writeProject(t)
	if _, err := os.Stat(filepath.Join(dir, WallsFile)); !os.IsNotExist(err) {
		t.Fatal("test precondition: walls.json must be absent")
	}
	if _, err := LoadProject(dir); err != nil {
		t.Errorf("missing walls.json must not fail the load: %v", err)
	}
}

func TestLoadProjectMissingManifest(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Error("expected error for empty project directory")
	}
}

func TestGeometryDecoding(t *testing.T) {
	v, err := LoadProject(writeProject(t))
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	store := v.Features[0]
	if store.Geometry.Type != "Polygon" || len(store.Geometry.Rings) != 1 {
		t.Errorf("polygon geometry not decoded: %+v", store.Geometry)
	}
	if len(store.Geometry.Rings[0]) != 5 {
		t.Errorf("expected 5 ring vertices, got %d", len(store.Geometry.Rings[0]))
	}
	outline := v.Features[1]
	if outline.Geometry.Type != "LineString" || len(outline.Geometry.Line) != 2 {
		t.Errorf("linestring geometry not decoded: %+v", outline.Geometry)
	}
	if !outline.IsOutline || outline.Level != StructuralLevel {
		t.Errorf("outline properties not decoded: %+v", outline)
	}
}

func TestFloorName(t *testing.T) {
	m := Manifest{Floors: []string{"Ground", "Level 1"}}
	if got := m.FloorName(0); got != "Ground" {
		t.Errorf("expected Ground, got %q", got)
	}
	if got := m.FloorName(5); got != "Floor 5" {
		t.Errorf("expected fallback label, got %q", got)
	}
}

func TestPlacesSkipsOutlinesAndUnnamed(t *testing.T) {
	v, err := LoadProject(writeProject(t))
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	places := v.Places()
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
	if places[0].Name != "Bookstore" || places[0].Floor.Level != 1 {
		t.Errorf("unexpected place: %+v", places[0])
	}
}

func TestSummarize(t *testing.T) {
	v, err := LoadProject(writeProject(t))
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	stats := v.Summarize()
	if stats.FeatureCount != 2 {
		t.Errorf("expected 2 features, got %d", stats.FeatureCount)
	}
	if stats.FloorCount != 2 {
		t.Errorf("expected 2 floors, got %d", stats.FloorCount)
	}
	if stats.NamedFeatures != 1 {
		t.Errorf("expected 1 named feature, got %d", stats.NamedFeatures)
	}
	if stats.Categories[CategoryStore] != 1 {
		t.Errorf("expected 1 store, got %d", stats.Categories[CategoryStore])
	}
	if stats.GraphNodes != 3 || stats.GraphEdges != 2 {
		t.Errorf("unexpected graph stats: %d nodes, %d edges", stats.GraphNodes, stats.GraphEdges)
	}
}

func TestSummarizeWithoutGraph(t *testing.T) {
	v := &Venue{
		Manifest: Manifest{Name: "No Graph", Floors: []string{"Ground"}},
		Features: []Feature{
			{ID: 0, Name: "Kiosk", Category: CategoryInfo, Level: 0},
		},
	}
	stats := v.Summarize()
	if stats.GraphNodes != 0 || stats.GraphEdges != 0 {
		t.Errorf("graph-less venue must report zero graph stats, got %d nodes, %d edges",
			stats.GraphNodes, stats.GraphEdges)
	}
	if stats.FeatureCount != 1 || stats.FloorCount != 1 {
		t.Errorf("unexpected stats without graph: %+v", stats)
	}
}
