// pkg/render/path.go
package render

import "math"

// Point is a 2D point in surface coordinates.
type Point struct {
	X, Y float64
}

// Polyline is a flattened path: a list of subpaths, each a run of connected points.
// Backends without native path support stroke it segment by segment.
type Polyline struct {
	Subpaths [][]Point
}

// arcSegmentLength is the approximate chord length used to flatten arcs.
const arcSegmentLength = 4.0

// Reset drops all subpaths, keeping allocated storage.
func (p *Polyline) Reset() {
	p.Subpaths = p.Subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Polyline) MoveTo(x, y float64) {
	p.Subpaths = append(p.Subpaths, []Point{{x, y}})
}

// LineTo extends the current subpath, starting one if none exists.
func (p *Polyline) LineTo(x, y float64) {
	if len(p.Subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.Subpaths) - 1
	p.Subpaths[last] = append(p.Subpaths[last], Point{x, y})
}

// Arc appends a flattened circular arc. As on a canvas, the arc's first point is
// connected to the current subpath by a straight line.
func (p *Polyline) Arc(cx, cy, radius, startAngle, endAngle float64) {
	if radius < 0 || math.IsNaN(radius) {
		return
	}
	sweep := endAngle - startAngle
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	n := int(math.Ceil(math.Abs(sweep) * radius / arcSegmentLength))
	if n < 8 {
		n = 8
	}
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		p.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
}

// Bounds returns the axis-aligned bounding box of all points.
// ok is false for an empty polyline.
func (p *Polyline) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, sp := range p.Subpaths {
		for _, pt := range sp {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}
