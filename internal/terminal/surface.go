// internal/terminal/surface.go
package terminal

import (
	"image/color"
	"math"

	"go-fireworks/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// upperHalf рисует верхний пиксель ячейки цветом текста, нижний цветом фона.
const upperHalf = '▀'

// blackLevel — ниже этой яркости канал считается чёрным при выводе.
const blackLevel = 1.0 / 255

// Surface — render.Surface поверх сетки терминала. Каждая ячейка несёт два
// пикселя по вертикали. Логический холст масштабируется на сетку, поэтому
// симуляция видит те же размеры, что и в окне.
type Surface struct {
	width, height float64 // логический размер холста
	cols, rows    int
	pixels        [][3]float64 // cols x rows*2, линейный RGB в [0, 1]

	mode   render.BlendMode
	stroke color.Color
	path   render.Polyline
}

// NewSurface создаёт поверхность для логического холста width x height,
// выводимую в cols x rows ячеек.
func NewSurface(width, height float64, cols, rows int) *Surface {
	s := &Surface{width: width, height: height, stroke: color.White}
	s.Resize(cols, rows)
	return s
}

// Resize меняет сетку вывода. Содержимое сбрасывается.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.pixels = make([][3]float64, s.cols*s.rows*2)
}

// Grid возвращает размер сетки в ячейках.
func (s *Surface) Grid() (cols, rows int) { return s.cols, s.rows }

// CellToCanvas переводит ячейку терминала в логические координаты её центра.
func (s *Surface) CellToCanvas(col, row int) (float64, float64) {
	sx := s.width / float64(s.cols)
	sy := s.height / float64(s.rows*2)
	return (float64(col) + 0.5) * sx, (float64(row*2) + 1) * sy
}

func (s *Surface) Size() (float64, float64) { return s.width, s.height }

func (s *Surface) SetBlendMode(mode render.BlendMode) { s.mode = mode }

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }

// SetLineWidth игнорируется: линия всегда в один пиксель сетки.
func (s *Surface) SetLineWidth(float64) {}

func (s *Surface) BeginPath() { s.path.Reset() }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) Arc(cx, cy, radius, startAngle, endAngle float64) {
	s.path.Arc(cx, cy, radius, startAngle, endAngle)
}

func (s *Surface) Stroke() {
	r, g, b, a := render.Straight(s.stroke)
	if a <= 0 {
		return
	}
	for _, sp := range s.path.Subpaths {
		if len(sp) == 1 {
			x, y := s.toPixel(sp[0].X, sp[0].Y)
			s.plot(x, y, r, g, b, a)
			continue
		}
		for i := 1; i < len(sp); i++ {
			x0, y0 := s.toPixel(sp[i-1].X, sp[i-1].Y)
			x1, y1 := s.toPixel(sp[i].X, sp[i].Y)
			s.line(x0, y0, x1, y1, r, g, b, a)
		}
	}
}

// FillRect в режиме стирания гасит пиксели на долю альфы цвета,
// в остальных режимах закрашивает их.
func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	r, g, b, a := render.Straight(c)
	x0, y0 := s.toPixel(x, y)
	x1, y1 := s.toPixel(x+width, y+height)
	pw, ph := s.cols, s.rows*2
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, pw-1), min(y1, ph-1)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			p := &s.pixels[py*pw+px]
			if s.mode == render.BlendErase {
				p[0] *= 1 - a
				p[1] *= 1 - a
				p[2] *= 1 - a
				continue
			}
			s.plot(px, py, r, g, b, a)
		}
	}
}

// Pixel возвращает цвет пикселя сетки (px, py).
func (s *Surface) Pixel(px, py int) (r, g, b float64) {
	p := s.pixels[py*s.cols+px]
	return p[0], p[1], p[2]
}

// Flush переносит буфер на экран. Show вызывает вызывающий код.
func (s *Surface) Flush(screen tcell.Screen) {
	pw := s.cols
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[(row*2)*pw+col]
			bottom := s.pixels[(row*2+1)*pw+col]
			if isBlack(top) && isBlack(bottom) {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcell.ColorBlack))
				continue
			}
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

func (s *Surface) toPixel(x, y float64) (int, int) {
	px := int(math.Floor(x / s.width * float64(s.cols)))
	py := int(math.Floor(y / s.height * float64(s.rows*2)))
	return px, py
}

// line — отрезок по Брезенхэму.
func (s *Surface) line(x0, y0, x1, y1 int, r, g, b, a float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.plot(x0, y0, r, g, b, a)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *Surface) plot(px, py int, r, g, b, a float64) {
	if px < 0 || py < 0 || px >= s.cols || py >= s.rows*2 {
		return
	}
	p := &s.pixels[py*s.cols+px]
	switch s.mode {
	case render.BlendAdditive:
		p[0] = math.Min(1, p[0]+r*a)
		p[1] = math.Min(1, p[1]+g*a)
		p[2] = math.Min(1, p[2]+b*a)
	case render.BlendErase:
		p[0] *= 1 - a
		p[1] *= 1 - a
		p[2] *= 1 - a
	default:
		p[0] = p[0]*(1-a) + r*a
		p[1] = p[1]*(1-a) + g*a
		p[2] = p[2]*(1-a) + b*a
	}
}

func isBlack(p [3]float64) bool {
	return p[0] < blackLevel && p[1] < blackLevel && p[2] < blackLevel
}

func toColor(p [3]float64) tcell.Color {
	return tcell.NewRGBColor(int32(p[0]*255+0.5), int32(p[1]*255+0.5), int32(p[2]*255+0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
