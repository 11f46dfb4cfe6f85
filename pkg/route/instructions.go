package route

import (
	"fmt"
	"math"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/nav"
)

// Instruction icons understood by the UI.
const (
	IconStart    = "start"
	IconElevator = "elevator"
	IconArrive   = "arrive"
	IconSummary  = "summary"
)

func defaultFloorName(level int) string {
	return fmt.Sprintf("Floor %d", level)
}

// buildInstructions derives the turn-by-turn list: start, one entry per
// floor transition, arrival, then the distance/time summary.
func buildInstructions(r Route, path []nav.Node, opts Options) []Instruction {
	from := opts.FromLabel
	if from == "" {
		from = path[0].ID
	}
	to := opts.ToLabel
	if to == "" {
		to = path[len(path)-1].ID
	}

	start := fmt.Sprintf("Start at %s on %s", from, opts.FloorName(r.OriginFloor))
	if len(path) > 1 {
		heading := path[0].Coord.Bearing(path[1].Coord)
		start += fmt.Sprintf(", heading %s", geo.CompassName(heading))
	}

	instructions := []Instruction{{Text: start, Icon: IconStart}}

	for _, tr := range r.Transitions {
		instructions = append(instructions, Instruction{
			Text: fmt.Sprintf("Take the elevator from %s to %s",
				opts.FloorName(tr.FromFloor), opts.FloorName(tr.ToFloor)),
			Icon: IconElevator,
		})
	}

	instructions = append(instructions,
		Instruction{
			Text: fmt.Sprintf("Arrive at %s on %s", to, opts.FloorName(r.DestFloor)),
			Icon: IconArrive,
		},
		Instruction{
			Text: fmt.Sprintf("%s, about %s", formatDistance(r.DistanceMeters), formatDuration(r.ETASeconds)),
			Icon: IconSummary,
		},
	)
	return instructions
}

func formatDistance(meters float64) string {
	if meters >= 1000 {
		// math.Round rather than %.1f, which rounds half to even.
		return fmt.Sprintf("%.1f km", math.Round(meters/100)/10)
	}
	return fmt.Sprintf("%.0f m", math.Round(meters))
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d sec", seconds)
	}
	mins := (seconds + 30) / 60
	return fmt.Sprintf("%d min", mins)
}
