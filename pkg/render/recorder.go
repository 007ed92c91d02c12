// pkg/render/recorder.go
package render

import "image/color"

// Op is a single drawing call captured by Recorder.
type Op struct {
	Kind      string // "stroke" or "fill"
	Blend     BlendMode
	Color     color.Color
	LineWidth float64
	Path      [][]Point
	Rect      [4]float64
}

// Recorder is a Surface that paints nothing and remembers every stroke and fill.
// Tests use it to inspect what a frame drew.
type Recorder struct {
	Width, Height float64
	Ops           []Op

	blend     BlendMode
	stroke    color.Color
	lineWidth float64
	path      Polyline
}

// NewRecorder returns a recorder of the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, stroke: color.Black, lineWidth: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) SetBlendMode(mode BlendMode) { r.blend = mode }

func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }

func (r *Recorder) SetLineWidth(width float64) { r.lineWidth = width }

func (r *Recorder) BeginPath() { r.path.Reset() }

func (r *Recorder) MoveTo(x, y float64) { r.path.MoveTo(x, y) }

func (r *Recorder) LineTo(x, y float64) { r.path.LineTo(x, y) }

func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64) {
	r.path.Arc(cx, cy, radius, startAngle, endAngle)
}

func (r *Recorder) Stroke() {
	path := make([][]Point, len(r.path.Subpaths))
	for i, sp := range r.path.Subpaths {
		path[i] = append([]Point(nil), sp...)
	}
	r.Ops = append(r.Ops, Op{
		Kind:      "stroke",
		Blend:     r.blend,
		Color:     r.stroke,
		LineWidth: r.lineWidth,
		Path:      path,
	})
}

func (r *Recorder) FillRect(x, y, width, height float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:  "fill",
		Blend: r.blend,
		Color: c,
		Rect:  [4]float64{x, y, width, height},
	})
}

// BlendMode reports the blend mode currently in effect.
func (r *Recorder) BlendMode() BlendMode { return r.blend }

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
