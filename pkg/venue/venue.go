package venue

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Ashwin-A21/mallnav/pkg/nav"
)

// Project file names inside a venue directory. walls.json is optional.
const (
	ManifestFile = "venue.yaml"
	FeaturesFile = "features.json"
	WallsFile    = "walls.json"
	GraphFile    = "navgraph.json"
)

// Manifest defaults.
const (
	DefaultWalkingSpeedMPS  = 1.4
	DefaultFloorPenaltyS    = 45.0
	DefaultAnimationPeriodS = 9.0
)

// LoadManifest reads and defaults a venue manifest.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	m.applyDefaults()
	return m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Name == "" {
		m.Name = "venue"
	}
	if m.WalkingSpeedMPS <= 0 {
		m.WalkingSpeedMPS = DefaultWalkingSpeedMPS
	}
	if m.FloorPenaltyS <= 0 {
		m.FloorPenaltyS = DefaultFloorPenaltyS
	}
	if m.AnimationPeriodS <= 0 {
		m.AnimationPeriodS = DefaultAnimationPeriodS
	}
}

// LoadProject loads a complete venue from a project directory containing
// venue.yaml, features.json, navgraph.json and optionally walls.json.
func LoadProject(dir string) (*Venue, error) {
	manifest, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	fc, err := loadFeatures(filepath.Join(dir, FeaturesFile))
	if err != nil {
		return nil, err
	}

	walls, err := loadWalls(filepath.Join(dir, WallsFile))
	if err != nil {
		return nil, err
	}

	graphData, err := os.ReadFile(filepath.Join(dir, GraphFile))
	if err != nil {
		return nil, fmt.Errorf("reading nav graph: %w", err)
	}
	graph, err := nav.ParseGraph(graphData)
	if err != nil {
		return nil, err
	}

	return &Venue{
		Manifest: manifest,
		Features: Preprocess(fc, walls),
		Graph:    graph,
	}, nil
}

func loadFeatures(path string) (FeatureCollection, error) {
	var fc FeatureCollection
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading features: %w", err)
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing features: %w", err)
	}
	return fc, nil
}

// loadWalls reads the optional auxiliary wall collection. A missing file
// is not an error.
func loadWalls(path string) ([]RawFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading walls: %w", err)
	}
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing walls: %w", err)
	}
	return fc.Features, nil
}
