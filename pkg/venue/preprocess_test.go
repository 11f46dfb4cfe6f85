package venue

import "testing"

func rawFeature(props map[string]any) RawFeature {
	return RawFeature{Type: "Feature", Properties: props}
}

func TestPreprocessSequentialIDs(t *testing.T) {
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{"name": "A"}),
		rawFeature(map[string]any{"name": "B"}),
		rawFeature(map[string]any{"name": "C"}),
	}}
	features := Preprocess(fc, nil)
	for i, f := range features {
		if f.ID != i {
			t.Errorf("feature %d: expected id %d, got %d", i, i, f.ID)
		}
	}
}

func TestPreprocessDefaults(t *testing.T) {
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{}),
	}}
	f := Preprocess(fc, nil)[0]

	if f.Height != DefaultHeight {
		t.Errorf("expected height %v, got %v", DefaultHeight, f.Height)
	}
	if f.BaseHeight != DefaultBaseHeight {
		t.Errorf("expected base_height %v, got %v", DefaultBaseHeight, f.BaseHeight)
	}
	if f.Level != DefaultLevel {
		t.Errorf("expected level %v, got %v", DefaultLevel, f.Level)
	}
	if f.Category != CategoryCommon {
		t.Errorf("expected category common, got %v", f.Category)
	}
	if f.IsOutline {
		t.Error("expected isOutline false")
	}
}

func TestPreprocessInvalidNumbersFallBack(t *testing.T) {
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{
			"height":      "not a number",
			"base_height": map[string]any{"nested": true},
			"level":       nil,
		}),
	}}
	f := Preprocess(fc, nil)[0]
	if f.Height != DefaultHeight || f.BaseHeight != DefaultBaseHeight || f.Level != DefaultLevel {
		t.Errorf("invalid values must default, got height=%v base=%v level=%v",
			f.Height, f.BaseHeight, f.Level)
	}
}

func TestPreprocessNumericStrings(t *testing.T) {
	// Surveyed exports sometimes store numbers as strings; those are
	// still usable values, not malformed input.
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{"height": "4.5", "level": "2"}),
	}}
	f := Preprocess(fc, nil)[0]
	if f.Height != 4.5 {
		t.Errorf("expected height 4.5 from string, got %v", f.Height)
	}
	if f.Level != 2 {
		t.Errorf("expected level 2 from string, got %v", f.Level)
	}
}

func TestPreprocessMergesWalls(t *testing.T) {
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{"name": "Atrium"}),
	}}
	walls := []RawFeature{
		rawFeature(map[string]any{"category": "wall", "level": float64(-1)}),
	}
	features := Preprocess(fc, walls)
	if len(features) != 2 {
		t.Fatalf("expected 2 features after wall merge, got %d", len(features))
	}
	wall := features[1]
	if wall.ID != 1 {
		t.Errorf("merged wall should share the id space, got id %d", wall.ID)
	}
	if wall.Category != CategoryWall || wall.Level != StructuralLevel {
		t.Errorf("wall properties lost in merge: %+v", wall)
	}
}

func TestPreprocessKeepsExplicitValues(t *testing.T) {
	fc := FeatureCollection{Features: []RawFeature{
		rawFeature(map[string]any{
			"name":        "Food Court",
			"category":    "food",
			"level":       float64(2),
			"height":      6.0,
			"base_height": 1.5,
			"color":       "#aabbcc",
			"isOutline":   false,
		}),
	}}
	f := Preprocess(fc, nil)[0]
	if f.Name != "Food Court" || f.Category != CategoryFood || f.Level != 2 ||
		f.Height != 6.0 || f.BaseHeight != 1.5 || f.Color != "#aabbcc" {
		t.Errorf("explicit values must survive preprocessing: %+v", f)
	}
}
