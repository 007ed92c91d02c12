// pkg/render/surface.go
package render

import "image/color"

// BlendMode selects how subsequent drawing is composited onto the surface.
type BlendMode int

const (
	// BlendNormal is plain source-over compositing.
	BlendNormal BlendMode = iota
	// BlendErase removes destination coverage by the source alpha (destination-out).
	BlendErase
	// BlendAdditive adds source color to the destination (lighter).
	BlendAdditive
)

func (m BlendMode) String() string {
	switch m {
	case BlendErase:
		return "destination-out"
	case BlendAdditive:
		return "lighter"
	default:
		return "source-over"
	}
}

// Surface is an immediate-mode 2D drawing target modelled on a canvas context.
// Paths are built with BeginPath/MoveTo/LineTo/Arc and painted by Stroke using
// the current stroke color, line width and blend mode.
type Surface interface {
	Size() (width, height float64)
	SetBlendMode(mode BlendMode)
	SetStrokeColor(c color.Color)
	SetLineWidth(width float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc from startAngle to endAngle (radians, clockwise
	// in screen space). A full circle is Arc(cx, cy, r, 0, 2*math.Pi).
	Arc(cx, cy, radius, startAngle, endAngle float64)
	Stroke()
	// FillRect fills an axis-aligned rectangle with c using the current blend mode.
	FillRect(x, y, width, height float64, c color.Color)
}
