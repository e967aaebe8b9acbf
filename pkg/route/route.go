// pkg/route/route.go
package route

import (
	"math"

	"neon-defense/internal/config"
	"neon-defense/internal/utils"
)

// Point is a position on the play field.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Field describes the play field the route is generated in.
type Field struct {
	Width  float64
	Height float64
	Margin float64 // вертикальный отступ для случайных точек
}

// RandomSource supplies uniform values in [0,1).
type RandomSource interface {
	Float64() float64
}

// Path is a polyline from the spawn (first waypoint) to the core (last waypoint).
type Path struct {
	Waypoints []Point
}

// SegmentsForLevel returns min(3 + floor(level/2.5), 15).
func SegmentsForLevel(level int) int {
	s := config.PathBaseSegments + int(math.Floor(float64(level)/config.PathSegmentDivisor))
	if s > config.PathMaxSegments {
		s = config.PathMaxSegments
	}
	if s < 1 {
		s = 1
	}
	return s
}

// Generate builds a fresh random route for the level. Waypoints sit on evenly
// spaced columns across the field; all but the last get a random height inside
// the margin band, the last one is pinned to mid-height (the core).
func Generate(level int, field Field, rng RandomSource) *Path {
	segments := SegmentsForLevel(level)
	band := field.Height - 2*field.Margin
	if band < 0 {
		band = 0
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		x := field.Width * float64(i) / float64(segments)
		y := field.Height / 2
		if i < segments {
			y = field.Margin + rng.Float64()*band
		}
		points = append(points, Point{X: x, Y: y})
	}
	return &Path{Waypoints: points}
}

// New wraps explicit waypoints; mostly useful for fixed layouts and tests.
func New(points ...Point) *Path {
	return &Path{Waypoints: append([]Point(nil), points...)}
}

// Segments returns the number of polyline segments.
func (p *Path) Segments() int {
	if len(p.Waypoints) < 2 {
		return 0
	}
	return len(p.Waypoints) - 1
}

// Start is the spawn point.
func (p *Path) Start() Point { return p.PointAt(0) }

// End is the core.
func (p *Path) End() Point { return p.PointAt(1) }

// PointAt interpolates along the polyline. Each segment owns an equal share of
// t regardless of its length, so speed along the route is not uniform.
func (p *Path) PointAt(t float64) Point {
	n := p.Segments()
	if n == 0 {
		if len(p.Waypoints) == 1 {
			return p.Waypoints[0]
		}
		return Point{}
	}
	if t <= 0 {
		return p.Waypoints[0]
	}
	if t >= 1 {
		return p.Waypoints[n]
	}

	scaled := t * float64(n)
	i := int(math.Floor(scaled))
	if i >= n {
		return p.Waypoints[n]
	}
	frac := scaled - float64(i)
	a, b := p.Waypoints[i], p.Waypoints[i+1]
	return Point{
		X: utils.Lerp(a.X, b.X, frac),
		Y: utils.Lerp(a.Y, b.Y, frac),
	}
}

// IsNear samples the route every 0.005 of t and reports whether any sample lies
// closer than threshold to pt.
func (p *Path) IsNear(pt Point, threshold float64) bool {
	if p.Segments() == 0 {
		return false
	}
	steps := int(math.Round(1 / config.PathSampleStep))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if Distance(p.PointAt(t), pt) < threshold {
			return true
		}
	}
	return false
}
