// internal/component/entity.go
package component

import "go-fireworks/pkg/render"

// Entity — общая возможность снаряда и осколка: шаг симуляции и отрисовка.
type Entity interface {
	// Advance продвигает состояние на один тик. true означает, что сущность
	// завершила жизнь и должна быть удалена из коллекции.
	Advance() bool
	// Render рисует сущность. hue — текущий общий оттенок палитры.
	Render(dst render.Surface, hue float64)
}

var (
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Fragment)(nil)
)

// Sampler — источник случайных чисел для разброса параметров при создании.
type Sampler interface {
	Float64() float64
	Range(min, max float64) float64
}
