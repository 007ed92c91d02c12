// pkg/render/rlsurface/surface.go
package rlsurface

import (
	"go-fireworks/pkg/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is a render.Surface backed by a raylib render texture. Drawing calls
// are only valid between Begin and End; Present blits the texture to the window
// inside rl.BeginDrawing/rl.EndDrawing.
//
// Raylib has no destination-out blend preset, so the erase mode paints with
// plain alpha blending. On the opaque black texture this produces the same
// fade towards black.
type Surface struct {
	target        rl.RenderTexture2D
	width, height int32
	mode          render.BlendMode
	stroke        color.RGBA
	lineWidth     float32
	path          render.Polyline
}

// New loads a width x height render texture cleared to black.
func New(width, height int) *Surface {
	s := &Surface{
		target:    rl.LoadRenderTexture(int32(width), int32(height)),
		width:     int32(width),
		height:    int32(height),
		stroke:    rl.White,
		lineWidth: 1,
	}
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Black)
	rl.EndTextureMode()
	return s
}

// Begin redirects drawing to the texture.
func (s *Surface) Begin() {
	rl.BeginTextureMode(s.target)
	rl.BeginBlendMode(toRL(s.mode))
}

// End restores drawing to the window framebuffer.
func (s *Surface) End() {
	rl.EndBlendMode()
	rl.EndTextureMode()
}

// Present draws the texture to the window. Render textures are stored bottom-up,
// hence the negative source height.
func (s *Surface) Present() {
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload releases the GPU texture.
func (s *Surface) Unload() {
	rl.UnloadRenderTexture(s.target)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *Surface) SetBlendMode(mode render.BlendMode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	rl.EndBlendMode()
	rl.BeginBlendMode(toRL(mode))
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = toRGBA(c) }

func (s *Surface) SetLineWidth(width float64) { s.lineWidth = float32(width) }

func (s *Surface) BeginPath() { s.path.Reset() }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) Arc(cx, cy, radius, startAngle, endAngle float64) {
	s.path.Arc(cx, cy, radius, startAngle, endAngle)
}

func (s *Surface) Stroke() {
	for _, sp := range s.path.Subpaths {
		for i := 1; i < len(sp); i++ {
			rl.DrawLineEx(
				rl.NewVector2(float32(sp[i-1].X), float32(sp[i-1].Y)),
				rl.NewVector2(float32(sp[i].X), float32(sp[i].Y)),
				s.lineWidth, s.stroke,
			)
		}
	}
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toRGBA(c))
}

func toRL(mode render.BlendMode) rl.BlendMode {
	if mode == render.BlendAdditive {
		return rl.BlendAdditive
	}
	return rl.BlendAlpha
}

// toRGBA преобразует color.Color в неумноженный на альфу rl.Color
func toRGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
