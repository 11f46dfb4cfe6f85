// Package route turns a found navigation path into everything the UI
// needs: per-floor coordinate runs for rendering, elevator transitions,
// distance and time estimates, and turn-by-turn instructions.
package route

import (
	"math"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/nav"
)

// VerticalLegMeters is the synthetic distance charged per floor crossed,
// used only to pace the avatar animation through elevator segments. The
// displayed time estimate uses FloorPenaltyS instead.
const VerticalLegMeters = 4.0

// Segment is the portion of a path confined to one floor. Transit nodes
// inherit the last concrete floor so elevator lobbies render as part of
// the floor the traveler was last standing on.
type Segment struct {
	Floor  int          `json:"floor"`
	Coords []geo.LngLat `json:"coords"`
}

// Transition is a detected floor change through a vertical shaft.
type Transition struct {
	ShaftCoord geo.LngLat `json:"shaft_coord"`
	FromFloor  int        `json:"from_floor"`
	ToFloor    int        `json:"to_floor"`
}

// Instruction is one turn-by-turn entry.
type Instruction struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Route is the complete plan for one navigation request.
type Route struct {
	Segments       []Segment     `json:"segments"`
	Transitions    []Transition  `json:"transitions"`
	Instructions   []Instruction `json:"instructions"`
	DistanceMeters float64       `json:"distance_meters"`
	ETASeconds     int           `json:"eta_seconds"`
	OriginFloor    int           `json:"origin_floor"`
	DestFloor      int           `json:"dest_floor"`
}

// Options control metric constants and instruction labeling.
type Options struct {
	WalkingSpeedMPS float64
	FloorPenaltyS   float64
	FromLabel       string
	ToLabel         string
	FloorName       func(level int) string
}

func (o *Options) applyDefaults() {
	if o.WalkingSpeedMPS <= 0 {
		o.WalkingSpeedMPS = 1.4
	}
	if o.FloorPenaltyS <= 0 {
		o.FloorPenaltyS = 45
	}
	if o.FloorName == nil {
		o.FloorName = defaultFloorName
	}
}

// Plan segments a path, detects transitions and computes metrics. The path
// must be non-empty and contain at least one concrete-floor node.
func Plan(path []nav.Node, opts Options) Route {
	opts.applyDefaults()

	var r Route
	if len(path) == 0 {
		return r
	}

	r.Segments, r.Transitions = segment(path)
	r.OriginFloor = firstConcreteFloor(path)
	r.DestFloor = lastConcreteFloor(path)

	coords := make([]geo.LngLat, len(path))
	for i, n := range path {
		coords[i] = n.Coord
	}
	r.DistanceMeters = geo.PathLength(coords)

	floorsCrossed := math.Abs(float64(r.DestFloor - r.OriginFloor))
	r.ETASeconds = int(math.Ceil(r.DistanceMeters/opts.WalkingSpeedMPS + floorsCrossed*opts.FloorPenaltyS))

	r.Instructions = buildInstructions(r, path, opts)
	return r
}

// segment splits the path into per-floor runs and emits a transition
// whenever the next concrete floor differs from the last tracked one.
func segment(path []nav.Node) ([]Segment, []Transition) {
	var segments []Segment
	var transitions []Transition

	current := Segment{Floor: firstConcreteFloor(path)}
	lastShaft := geo.LngLat{}
	inShaft := false

	for i, n := range path {
		if n.Floor.Transit {
			// Shaft nodes render on the floor the traveler came from.
			current.Coords = append(current.Coords, n.Coord)
			lastShaft = n.Coord
			inShaft = true
			continue
		}

		if n.Floor.Level != current.Floor {
			shaft := lastShaft
			if !inShaft {
				// Direct floor change with no shaft node between; use
				// the midpoint of the two endpoints as the shaft location.
				shaft = geo.MidPoint(path[i-1].Coord, n.Coord)
			}
			transitions = append(transitions, Transition{
				ShaftCoord: shaft,
				FromFloor:  current.Floor,
				ToFloor:    n.Floor.Level,
			})
			segments = append(segments, current)
			current = Segment{Floor: n.Floor.Level}
		}

		current.Coords = append(current.Coords, n.Coord)
		inShaft = false
	}

	segments = append(segments, current)
	return segments, transitions
}

// firstConcreteFloor returns the floor of the first non-transit node,
// or 0 when the path is all shaft nodes.
func firstConcreteFloor(path []nav.Node) int {
	for _, n := range path {
		if !n.Floor.Transit {
			return n.Floor.Level
		}
	}
	return 0
}

func lastConcreteFloor(path []nav.Node) int {
	for i := len(path) - 1; i >= 0; i-- {
		if !path[i].Floor.Transit {
			return path[i].Floor.Level
		}
	}
	return 0
}
