// internal/system/launcher.go
package system

import (
	"go-fireworks/internal/component"
	"go-fireworks/internal/input"
	"go-fireworks/internal/interfaces"
)

// LaunchSystem управляет фоновыми запусками и запусками по зажатой кнопке.
// Оба счётчика считают кадры; Update вызывается только вне эксклюзивного режима,
// поэтому во время фигурного залпа счётчики заморожены и после него не
// наверстывают пропущенные запуски.
type LaunchSystem struct {
	rng component.Sampler

	AmbientTick  int
	AmbientEvery int
	PointerTick  int
	PointerEvery int
}

func NewLaunchSystem(rng component.Sampler, ambientEvery, pointerEvery int) *LaunchSystem {
	return &LaunchSystem{
		rng:          rng,
		AmbientEvery: ambientEvery,
		PointerEvery: pointerEvery,
	}
}

// Update продвигает оба счётчика на один кадр и запускает снаряды, когда пора.
func (s *LaunchSystem) Update(ctx interfaces.SkyContext, pointer *input.Pointer) {
	w, h := ctx.Size()
	held := pointer.Held()

	// Фон: случайная точка нижней середины холста -> случайная точка верхней половины
	if s.AmbientTick >= s.AmbientEvery {
		if !held {
			ctx.Launch(s.rng.Range(w/5, w/5*4), h, s.rng.Range(0, w), s.rng.Range(0, h/2))
			s.AmbientTick = 0
		}
	} else {
		s.AmbientTick++
	}

	// Ручной запуск: из центра нижнего края к курсору, пока кнопка зажата
	if s.PointerTick >= s.PointerEvery {
		if held {
			px, py := pointer.Position()
			ctx.Launch(w/2, h, px, py)
			s.PointerTick = 0
		}
	} else {
		s.PointerTick++
	}
}
