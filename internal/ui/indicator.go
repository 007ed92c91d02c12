// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-fireworks/internal/app"
	"go-fireworks/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StateIndicator — HUD для окна ebiten: строки статистики и кружок состояния,
// который вспыхивает при смене режима.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	Visible    bool

	face       *text.GoXFace
	lineHeight float64
	lastState  color.RGBA
}

func NewStateIndicator(x, y, radius float32, face font.Face) *StateIndicator {
	return &StateIndicator{
		X:          x,
		Y:          y,
		Radius:     radius,
		face:       text.NewGoXFace(face),
		lineHeight: float64(face.Metrics().Height.Ceil()) + 2,
	}
}

// Toggle показывает или прячет HUD.
func (i *StateIndicator) Toggle() {
	i.Visible = !i.Visible
}

// StateColor выбирает цвет кружка по режиму симуляции.
func StateColor(s app.Stats) color.RGBA {
	switch {
	case s.Paused:
		return config.PausedTextColor
	case s.Exclusive:
		return color.RGBA{255, 80, 120, 255}
	default:
		return color.RGBA{80, 220, 120, 255}
	}
}

// Draw рисует HUD поверх кадра.
func (i *StateIndicator) Draw(screen *ebiten.Image, s app.Stats) {
	if !i.Visible {
		return
	}
	stateColor := StateColor(s)
	if stateColor != i.lastState {
		i.lastState = stateColor
		i.LastChange = time.Now()
	}

	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)

	x := float64(i.X + i.Radius*2)
	y := float64(i.Y - i.Radius)
	for _, line := range s.Lines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(config.HUDTextColor)
		text.Draw(screen, line, i.face, op)
		y += i.lineHeight
	}
}
