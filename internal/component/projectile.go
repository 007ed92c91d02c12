// internal/component/projectile.go
package component

import (
	"go-fireworks/internal/config"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"
	"math"
)

// Projectile — взлетающий снаряд фейерверка: летит от точки запуска к цели
// с ускорением и взрывается, когда пройденный путь достигает дистанции до цели.
type Projectile struct {
	X, Y             float64
	StartX, StartY   float64
	TargetX, TargetY float64
	DistanceToTarget float64
	DistanceTraveled float64
	Trail            Trail
	Heading          float64
	Speed            float64
	Acceleration     float64
	Brightness       float64
	MarkerRadius     float64
}

// NewProjectile создаёт снаряд из (sx, sy) в (tx, ty).
// Нечисловая точка заменяется парной: цель точкой запуска, запуск целью.
// Такой снаряд взорвётся на первом тике. Если обе нечисловые, обе становятся (0, 0).
func NewProjectile(sx, sy, tx, ty float64, rng Sampler) *Projectile {
	startOK, targetOK := utils.IsFinite(sx, sy), utils.IsFinite(tx, ty)
	switch {
	case !startOK && !targetOK:
		sx, sy, tx, ty = 0, 0, 0, 0
	case !startOK:
		sx, sy = tx, ty
	case !targetOK:
		tx, ty = sx, sy
	}
	return &Projectile{
		X:                sx,
		Y:                sy,
		StartX:           sx,
		StartY:           sy,
		TargetX:          tx,
		TargetY:          ty,
		DistanceToTarget: utils.Distance(sx, sy, tx, ty),
		Trail:            NewTrail(config.ProjectileTrailLength, sx, sy),
		Heading:          math.Atan2(ty-sy, tx-sx),
		Speed:            config.ProjectileSpeed,
		Acceleration:     config.ProjectileAcceleration,
		Brightness:       rng.Range(config.ProjectileBrightnessMin, config.ProjectileBrightnessMax),
		MarkerRadius:     config.MarkerRadiusInitial,
	}
}

// Advance выполняет один шаг полёта. Возвращает true, если снаряд достиг цели:
// в этом случае позиция не меняется, а вызывающий код обязан устроить взрыв
// в точке цели и удалить снаряд.
func (p *Projectile) Advance() bool {
	p.Trail.Push(p.X, p.Y)

	// Пульсация маркера цели
	if p.MarkerRadius < config.MarkerRadiusMax {
		p.MarkerRadius += config.MarkerRadiusStep
	} else {
		p.MarkerRadius = config.MarkerRadiusMin
	}

	p.Speed *= p.Acceleration
	vx := math.Cos(p.Heading) * p.Speed
	vy := math.Sin(p.Heading) * p.Speed

	// Дистанция считается по следующей позиции, ещё не применённой
	p.DistanceTraveled = utils.Distance(p.StartX, p.StartY, p.X+vx, p.Y+vy)
	if p.DistanceTraveled >= p.DistanceToTarget {
		return true
	}
	p.X += vx
	p.Y += vy
	return false
}

// Render рисует хвост снаряда и пульсирующее кольцо вокруг цели.
func (p *Projectile) Render(dst render.Surface, hue float64) {
	dst.SetStrokeColor(render.HSL(hue, config.Saturation, p.Brightness))
	dst.SetLineWidth(config.ProjectileLineWidth)

	ox, oy := p.Trail.Oldest()
	dst.BeginPath()
	dst.MoveTo(ox, oy)
	dst.LineTo(p.X, p.Y)
	dst.Stroke()

	dst.BeginPath()
	dst.Arc(p.TargetX, p.TargetY, p.MarkerRadius, 0, 2*math.Pi)
	dst.Stroke()
}
