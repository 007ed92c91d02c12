// internal/app/sky.go
package app

import (
	"image/color"

	"go-fireworks/internal/component"
	"go-fireworks/internal/config"
	"go-fireworks/internal/event"
	"go-fireworks/internal/input"
	"go-fireworks/internal/interfaces"
	"go-fireworks/internal/system"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"

	"github.com/rs/zerolog"
)

var _ interfaces.SkyContext = (*Sky)(nil)

// Sky — контекст симуляции: коллекции снарядов и искр, общий оттенок,
// счётчики запусков, фигурные залпы и флаг эксклюзивного режима.
// Все изменения происходят в Tick из одной горутины.
type Sky struct {
	Projectiles []*component.Projectile
	Fragments   []*component.Fragment
	Hue         float64
	Frame       uint64
	Pointer     *input.Pointer

	LaunchSystem    *system.LaunchSystem
	BurstFactory    *system.BurstFactory
	Heart           *system.HeartShow
	Ring            *system.RingShow
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Clock           utils.Clock

	width, height float64
	fade          color.Color
	exclusive     bool
	logger        zerolog.Logger
}

// NewSky собирает симуляцию по настройкам. clock может быть nil, тогда
// используется системное время.
func NewSky(settings *config.Settings, clock utils.Clock, logger zerolog.Logger) *Sky {
	if clock == nil {
		clock = utils.WallClock{}
	}
	rng := utils.NewPRNGService(settings.Seed)
	eventDispatcher := event.NewDispatcher()
	s := &Sky{
		Hue:             config.HueStart,
		Pointer:         &input.Pointer{},
		LaunchSystem:    system.NewLaunchSystem(rng, settings.AmbientEvery, settings.PointerEvery),
		BurstFactory:    system.NewBurstFactory(rng),
		Heart:           system.NewHeartShow(settings.Heart, eventDispatcher, logger),
		Ring:            system.NewRingShow(settings.Ring, eventDispatcher, logger),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Clock:           clock,
		width:           float64(settings.Width),
		height:          float64(settings.Height),
		fade:            color.NRGBA{A: uint8(settings.FadeAlpha*255 + 0.5)},
		logger:          logger,
	}
	logger.Debug().Int64("seed", rng.Seed()).Msg("sky created")
	return s
}

// Tick выполняет один кадр: затухание, шаг всех сущностей, запуски и фигурные залпы.
func (s *Sky) Tick(dst render.Surface) {
	s.Frame++
	s.Hue = utils.NextHue(s.Hue, config.HueStep, config.HueCeiling, config.HueFloor)

	// Стираем прошлый кадр частично, чтобы оставались шлейфы
	dst.SetBlendMode(render.BlendErase)
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, s.fade)
	dst.SetBlendMode(render.BlendAdditive)

	s.updateProjectiles(dst)
	s.updateFragments(dst)

	if !s.exclusive {
		s.LaunchSystem.Update(s, s.Pointer)
	}

	now := s.Clock.Now()
	s.Heart.Update(s, now)
	s.Ring.Update(s, now)
}

func (s *Sky) updateProjectiles(dst render.Surface) {
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		p.Render(dst, s.Hue)
		if !p.Advance() {
			continue
		}
		s.Fragments = s.BurstFactory.Burst(s.Fragments, p.TargetX, p.TargetY, s.Hue)
		s.EventDispatcher.Dispatch(event.Event{
			Type: event.ShellBurst,
			Data: event.Burst{X: p.TargetX, Y: p.TargetY, Fragments: s.BurstFactory.Count()},
		})
		s.Projectiles = removeAt(s.Projectiles, i)
	}
}

func (s *Sky) updateFragments(dst render.Surface) {
	// Искры, рождённые в этом кадре, тоже делают первый шаг
	for i := len(s.Fragments) - 1; i >= 0; i-- {
		f := s.Fragments[i]
		f.Render(dst, s.Hue)
		if f.Advance() {
			s.Fragments = removeAt(s.Fragments, i)
		}
	}
}

// removeAt удаляет элемент i, переставляя на его место последний.
// Порядок не сохраняется; при обходе с конца это безопасно.
func removeAt[T any](items []*T, i int) []*T {
	last := len(items) - 1
	items[i] = items[last]
	items[last] = nil
	return items[:last]
}

// Launch добавляет снаряд в небо.
func (s *Sky) Launch(sx, sy, tx, ty float64) {
	s.Projectiles = append(s.Projectiles, component.NewProjectile(sx, sy, tx, ty, s.Rng))
}

func (s *Sky) SetExclusive(on bool) { s.exclusive = on }
func (s *Sky) Exclusive() bool      { return s.exclusive }

func (s *Sky) Size() (float64, float64) { return s.width, s.height }

// Stats возвращает снимок состояния для HUD.
func (s *Sky) Stats() Stats {
	return Stats{
		Projectiles: len(s.Projectiles),
		Fragments:   len(s.Fragments),
		Hue:         s.Hue,
		Frame:       s.Frame,
		Exclusive:   s.exclusive,
		Seed:        s.Rng.Seed(),
	}
}
