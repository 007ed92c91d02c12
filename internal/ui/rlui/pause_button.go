// internal/ui/rlui/pause_button.go
package rlui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton — круглая кнопка паузы в углу окна raylib.
// Пока курсор над кнопкой, клик не должен запускать снаряд.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Contains сообщает, попадает ли точка в круг кнопки.
func (b *PauseButton) Contains(x, y float32) bool {
	return math.Hypot(float64(x-b.X), float64(y-b.Y)) <= float64(b.Size)
}

func (b *PauseButton) Toggle(now time.Time) {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = now
}

// scale — короткий «отскок» после клика.
func (b *PauseButton) scale(now time.Time) float32 {
	elapsed := now.Sub(b.LastClickTime).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (b *PauseButton) Draw(now time.Time) {
	size := b.Size * 0.6 * b.scale(now)
	rl.DrawCircleLines(int32(b.X), int32(b.Y), b.Size, rl.Gray)

	if b.IsPaused {
		// Треугольник (play)
		p1 := rl.NewVector2(b.X-size*0.8, b.Y-size)
		p2 := rl.NewVector2(b.X-size*0.8, b.Y+size)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, toRL(b.PlayColor))
		return
	}

	// Две полосы (pause)
	c := toRL(b.PauseColor)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
}

func toRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
