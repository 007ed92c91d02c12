// pkg/render/ebitensurface/surface.go
package ebitensurface

import (
	"go-fireworks/pkg/render"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a render.Surface backed by a persistent offscreen ebiten image.
// The canvas is never cleared by the host, so partial erases accumulate into
// motion trails.
type Surface struct {
	canvas    *ebiten.Image
	blend     ebiten.Blend
	mode      render.BlendMode
	stroke    color.Color
	lineWidth float32
	path      vector.Path
	vertices  []ebiten.Vertex
	indices   []uint16
}

// New allocates a width x height canvas.
func New(width, height int) *Surface {
	return &Surface{
		canvas:    ebiten.NewImage(width, height),
		blend:     ebiten.BlendSourceOver,
		stroke:    color.White,
		lineWidth: 1,
	}
}

// Image returns the backing canvas so the host can present it.
func (s *Surface) Image() *ebiten.Image { return s.canvas }

func (s *Surface) Size() (float64, float64) {
	b := s.canvas.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) SetBlendMode(mode render.BlendMode) {
	s.mode = mode
	switch mode {
	case render.BlendErase:
		s.blend = ebiten.BlendDestinationOut
	case render.BlendAdditive:
		s.blend = ebiten.BlendLighter
	default:
		s.blend = ebiten.BlendSourceOver
	}
}

// BlendMode reports the blend mode currently in effect.
func (s *Surface) BlendMode() render.BlendMode { return s.mode }

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }

func (s *Surface) SetLineWidth(width float64) { s.lineWidth = float32(width) }

func (s *Surface) BeginPath() { s.path = vector.Path{} }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(float32(x), float32(y)) }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(float32(x), float32(y)) }

func (s *Surface) Arc(cx, cy, radius, startAngle, endAngle float64) {
	s.path.Arc(float32(cx), float32(cy), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (s *Surface) Stroke() {
	op := &vector.StrokeOptions{Width: s.lineWidth}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawVertices(s.stroke)
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	var p vector.Path
	p.MoveTo(float32(x), float32(y))
	p.LineTo(float32(x+width), float32(y))
	p.LineTo(float32(x+width), float32(y+height))
	p.LineTo(float32(x), float32(y+height))
	p.Close()
	s.vertices, s.indices = p.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawVertices(c)
}

// drawVertices paints the pending triangles with a flat premultiplied color.
func (s *Surface) drawVertices(c color.Color) {
	if len(s.indices) == 0 {
		return
	}
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	op.Blend = s.blend
	s.canvas.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}
