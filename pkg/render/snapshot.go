// pkg/render/snapshot.go
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// SnapshotSurface rasterizes onto an in-memory RGBA image with gg, for headless
// rendering to PNG. gg only composites source-over, so the erase and additive
// modes are applied to the pixel buffer directly: erase scales every covered
// pixel by (1 - alpha), additive strokes are rendered onto a scratch layer and
// then added into the canvas with saturation.
type SnapshotSurface struct {
	dc        *gg.Context
	scratch   *gg.Context
	mode      BlendMode
	stroke    color.Color
	lineWidth float64
	path      Polyline
}

// NewSnapshotSurface creates a transparent width x height canvas.
func NewSnapshotSurface(width, height int) *SnapshotSurface {
	return &SnapshotSurface{
		dc:        gg.NewContext(width, height),
		scratch:   gg.NewContext(width, height),
		stroke:    color.White,
		lineWidth: 1,
	}
}

func (s *SnapshotSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *SnapshotSurface) SetBlendMode(mode BlendMode) { s.mode = mode }

func (s *SnapshotSurface) SetStrokeColor(c color.Color) { s.stroke = c }

func (s *SnapshotSurface) SetLineWidth(width float64) { s.lineWidth = width }

func (s *SnapshotSurface) BeginPath() { s.path.Reset() }

func (s *SnapshotSurface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *SnapshotSurface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *SnapshotSurface) Arc(cx, cy, radius, startAngle, endAngle float64) {
	s.path.Arc(cx, cy, radius, startAngle, endAngle)
}

func (s *SnapshotSurface) Stroke() {
	switch s.mode {
	case BlendAdditive:
		s.strokeOn(s.scratch)
		s.addScratch()
	case BlendErase:
		// Erasing with a stroke is not used by the simulation; treat it as a no-op.
	default:
		s.strokeOn(s.dc)
	}
}

func (s *SnapshotSurface) strokeOn(dc *gg.Context) {
	dc.SetColor(s.stroke)
	dc.SetLineWidth(s.lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.ClearPath()
	for _, sp := range s.path.Subpaths {
		if len(sp) == 0 {
			continue
		}
		dc.NewSubPath()
		dc.MoveTo(sp[0].X, sp[0].Y)
		for _, pt := range sp[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	dc.Stroke()
}

// addScratch adds the scratch layer into the canvas inside the stroke bounds and
// clears the scratch pixels it consumed.
func (s *SnapshotSurface) addScratch() {
	minX, minY, maxX, maxY, ok := s.path.Bounds()
	if !ok {
		return
	}
	pad := s.lineWidth + 2
	rect := image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
	dst := s.dc.Image().(*image.RGBA)
	src := s.scratch.Image().(*image.RGBA)
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			si := src.PixOffset(x, y)
			if src.Pix[si+3] == 0 {
				continue
			}
			di := dst.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				v := int(dst.Pix[di+c]) + int(src.Pix[si+c])
				if v > 255 {
					v = 255
				}
				dst.Pix[di+c] = uint8(v)
				src.Pix[si+c] = 0
			}
		}
	}
}

func (s *SnapshotSurface) FillRect(x, y, width, height float64, c color.Color) {
	if s.mode != BlendErase {
		s.dc.SetColor(c)
		s.dc.DrawRectangle(x, y, width, height)
		s.dc.Fill()
		return
	}
	_, _, _, a := c.RGBA()
	keep := 1 - float64(a)/0xffff
	img := s.dc.Image().(*image.RGBA)
	rect := image.Rect(int(x), int(y), int(math.Ceil(x+width)), int(math.Ceil(y+height))).Intersect(img.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		i := img.PixOffset(rect.Min.X, py)
		for px := rect.Min.X; px < rect.Max.X; px++ {
			for c := 0; c < 4; c++ {
				img.Pix[i+c] = uint8(float64(img.Pix[i+c]) * keep)
			}
			i += 4
		}
	}
}

// Image exposes the canvas pixels.
func (s *SnapshotSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the canvas over an opaque black background.
func (s *SnapshotSurface) SavePNG(path string) error {
	return gg.NewContextForImage(s.flatten()).SavePNG(path)
}

// EncodePNG writes the canvas over an opaque black background to w.
func (s *SnapshotSurface) EncodePNG(w io.Writer) error {
	return gg.NewContextForImage(s.flatten()).EncodePNG(w)
}

func (s *SnapshotSurface) flatten() image.Image {
	bg := gg.NewContext(s.dc.Width(), s.dc.Height())
	bg.SetColor(color.Black)
	bg.Clear()
	bg.DrawImage(s.dc.Image(), 0, 0)
	return bg.Image()
}
