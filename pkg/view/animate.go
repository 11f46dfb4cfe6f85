package view

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Ashwin-A21/mallnav/pkg/geo"
	"github.com/Ashwin-A21/mallnav/pkg/route"
)

// Sample is an interpolated avatar position: a coordinate plus a
// fractional floor so the avatar can ride between floors.
type Sample struct {
	Coord geo.LngLat `json:"coord"`
	Floor float64    `json:"floor"`
}

// trackPoint is one vertex of the flattened animation track.
type trackPoint struct {
	coord geo.LngLat
	floor float64
}

// Track is a route flattened into a sequence of legs with cumulative
// distances, ready for constant-speed sampling. Elevator legs are charged
// route.VerticalLegMeters per floor crossed so the avatar pauses
// proportionally during simulated transit.
type Track struct {
	points []trackPoint
	cum    []float64 // cumulative distance up to points[i]
	total  float64
}

// NewTrack flattens a planned route into an animation track.
func NewTrack(r route.Route) *Track {
	t := &Track{}

	for si, seg := range r.Segments {
		for _, c := range seg.Coords {
			t.appendPoint(trackPoint{coord: c, floor: float64(seg.Floor)}, 0)
		}
		if si+1 < len(r.Segments) {
			next := r.Segments[si+1]
			if len(next.Coords) == 0 || len(t.points) == 0 {
				continue
			}
			last := t.points[len(t.points)-1]
			vertical := route.VerticalLegMeters * math.Abs(float64(next.Floor)-last.floor)
			horizontal := last.coord.Distance(next.Coords[0])
			t.appendPoint(trackPoint{coord: next.Coords[0], floor: float64(next.Floor)}, vertical+horizontal)
		}
	}
	return t
}

// appendPoint adds a point; extra is added on top of the horizontal
// distance from the previous point (zero for same-floor legs, the vertical
// cost for elevator legs, where it replaces the horizontal measure).
func (t *Track) appendPoint(p trackPoint, extra float64) {
	if len(t.points) == 0 {
		t.points = append(t.points, p)
		t.cum = append(t.cum, 0)
		return
	}
	prev := t.points[len(t.points)-1]
	leg := extra
	if extra == 0 {
		leg = prev.coord.Distance(p.coord)
	}
	t.total += leg
	t.points = append(t.points, p)
	t.cum = append(t.cum, t.total)
}

// Total returns the track length in animation meters.
func (t *Track) Total() float64 {
	return t.total
}

// Sample returns the interpolated position at progress fraction frac.
// The fraction wraps modulo 1, so 1.0 and 0.0 produce the same point and
// the loop is continuous.
func (t *Track) Sample(frac float64) Sample {
	if len(t.points) == 0 {
		return Sample{}
	}
	first := t.points[0]
	if t.total <= 0 || len(t.points) == 1 {
		return Sample{Coord: first.coord, Floor: first.floor}
	}

	frac = frac - math.Floor(frac)
	target := frac * t.total

	for i := 1; i < len(t.points); i++ {
		if t.cum[i] < target {
			continue
		}
		leg := t.cum[i] - t.cum[i-1]
		if leg <= 0 {
			return Sample{Coord: t.points[i].coord, Floor: t.points[i].floor}
		}
		u := (target - t.cum[i-1]) / leg
		a, b := t.points[i-1], t.points[i]
		return Sample{
			Coord: a.coord.Lerp(b.coord, u),
			Floor: a.floor + (b.floor-a.floor)*u,
		}
	}

	last := t.points[len(t.points)-1]
	return Sample{Coord: last.coord, Floor: last.floor}
}

// DefaultFrameInterval paces the animation loop at roughly 30 samples per
// second.
const DefaultFrameInterval = 33 * time.Millisecond

// Handle cancels a running animation.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the animation loop and waits for it to exit. Safe to call
// more than once.
func (h *Handle) Cancel() {
	h.cancel()
	<-h.done
}

// Done exposes loop completion for callers that select on it.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Animator runs at most one path animation loop at a time. Starting a new
// loop cancels the previous one so two loops never fight over the shared
// rendered layers.
type Animator struct {
	FrameInterval time.Duration

	mu     sync.Mutex
	active *Handle
}

// NewAnimator creates an animator with the default frame interval.
func NewAnimator() *Animator {
	return &Animator{FrameInterval: DefaultFrameInterval}
}

// Start begins looping over the track with the given simulated period,
// invoking fn with each sample. The returned handle cancels the loop; any
// previously active loop is cancelled first.
func (a *Animator) Start(ctx context.Context, track *Track, period time.Duration, fn func(Sample)) *Handle {
	a.mu.Lock()
	prev := a.active
	a.mu.Unlock()
	if prev != nil {
		prev.Cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	a.mu.Lock()
	a.active = h
	a.mu.Unlock()

	interval := a.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if period <= 0 {
		period = 9 * time.Second
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				frac := math.Mod(now.Sub(start).Seconds()/period.Seconds(), 1)
				fn(track.Sample(frac))
			}
		}
	}()

	return h
}

// Stop cancels the active animation, if any.
func (a *Animator) Stop() {
	a.mu.Lock()
	h := a.active
	a.active = nil
	a.mu.Unlock()
	if h != nil {
		h.Cancel()
	}
}
