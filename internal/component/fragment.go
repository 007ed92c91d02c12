// internal/component/fragment.go
package component

import (
	"go-fireworks/internal/config"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"
	"math"
)

// Fragment — искра после взрыва снаряда. Тормозится трением, падает под
// действием гравитации и постепенно гаснет.
type Fragment struct {
	X, Y       float64
	Trail      Trail
	Heading    float64
	Speed      float64
	Friction   float64
	Gravity    float64
	Hue        float64
	Brightness float64
	Alpha      float64
	Decay      float64
}

// NewFragment создаёт искру в (x, y); оттенок берётся рядом с текущим hue палитры.
func NewFragment(x, y, hue float64, rng Sampler) *Fragment {
	speed := rng.Range(config.FragmentSpeedMin, config.FragmentSpeedMax)
	// Синус случайного угла прижимает распределение скоростей к куполу над точкой взрыва
	speed *= math.Sin(rng.Float64()*math.Pi - math.Pi/2)
	return &Fragment{
		X:          x,
		Y:          y,
		Trail:      NewTrail(config.FragmentTrailLength, x, y),
		Heading:    rng.Range(0, 2*math.Pi),
		Speed:      speed,
		Friction:   config.FragmentFriction,
		Gravity:    config.FragmentGravity,
		Hue:        rng.Range(hue-config.FragmentHueSpread, hue+config.FragmentHueSpread),
		Brightness: rng.Range(config.FragmentBrightnessMin, config.FragmentBrightnessMax),
		Alpha:      1,
		Decay:      rng.Range(config.FragmentDecayMin, config.FragmentDecayMax),
	}
}

// Advance выполняет один шаг. Возвращает true, когда искра погасла:
// ещё один шаг опустил бы прозрачность до нуля.
func (f *Fragment) Advance() bool {
	f.Trail.Push(f.X, f.Y)
	f.Speed *= f.Friction
	f.X += math.Cos(f.Heading) * f.Speed
	f.Y += math.Sin(f.Heading)*f.Speed + f.Gravity
	f.Alpha -= f.Decay
	return f.Alpha <= f.Decay || !utils.IsFinite(f.X, f.Y)
}

// Render рисует хвост искры; прозрачность задаёт затухание. Общий hue не используется.
func (f *Fragment) Render(dst render.Surface, _ float64) {
	ox, oy := f.Trail.Oldest()
	dst.SetStrokeColor(render.HSLAColor(f.Hue, config.Saturation, f.Brightness, f.Alpha))
	dst.SetLineWidth(config.FragmentLineWidth)
	dst.BeginPath()
	dst.MoveTo(ox, oy)
	dst.LineTo(f.X, f.Y)
	dst.Stroke()
}
