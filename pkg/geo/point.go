package geo

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Earth radii used for great-circle math.
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// LngLat is a WGS84 coordinate in [longitude, latitude] order, matching the
// GeoJSON axis convention used by the venue data. It marshals to and from a
// two-element JSON array.
type LngLat struct {
	Lng float64
	Lat float64
}

// UnmarshalJSON decodes a [lng, lat] array.
func (p *LngLat) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("parsing coordinate: %w", err)
	}
	if len(arr) < 2 {
		return fmt.Errorf("coordinate needs 2 elements, got %d", len(arr))
	}
	p.Lng, p.Lat = arr[0], arr[1]
	return nil
}

// MarshalJSON encodes a [lng, lat] array.
func (p LngLat) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lng, p.Lat})
}

// LL is a shorthand constructor for LngLat.
func LL(lng, lat float64) LngLat {
	return LngLat{Lng: lng, Lat: lat}
}

// latLng converts to the s2 representation.
func (p LngLat) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Distance returns the great-circle distance from p to q in meters.
func (p LngLat) Distance(q LngLat) float64 {
	return p.latLng().Distance(q.latLng()).Radians() * EarthRadiusMeters
}

// Bearing returns the initial bearing from p to q in degrees,
// where 0 is north and 90 is east.
func (p LngLat) Bearing(q LngLat) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := q.Lat * math.Pi / 180
	lonDiff := (q.Lng - p.Lng) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Lerp returns the point at fraction t in [0,1] along the great circle
// from p to q.
func (p LngLat) Lerp(q LngLat, t float64) LngLat {
	mid := s2.Interpolate(t, s2.PointFromLatLng(p.latLng()), s2.PointFromLatLng(q.latLng()))
	ll := s2.LatLngFromPoint(mid)
	return LngLat{Lng: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
}

// MidPoint returns the midpoint of the great circle between p and q.
func MidPoint(p, q LngLat) LngLat {
	return p.Lerp(q, 0.5)
}

// compassNames in 45-degree sectors clockwise from north.
var compassNames = []string{
	"north", "north-east", "east", "south-east",
	"south", "south-west", "west", "north-west",
}

// CompassName returns the human-readable compass direction for a bearing
// in degrees.
func CompassName(bearing float64) string {
	b := math.Mod(bearing+360, 360)
	idx := int(math.Floor(b/45+0.5)) % 8
	return compassNames[idx]
}

// PathLength returns the sum of great-circle distances over consecutive
// coordinates, in meters.
func PathLength(coords []LngLat) float64 {
	total := 0.0
	for i := 1; i < len(coords); i++ {
		total += coords[i-1].Distance(coords[i])
	}
	return total
}
