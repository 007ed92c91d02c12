// internal/system/choreography.go
package system

import (
	"math"
	"time"

	"go-fireworks/internal/config"
	"go-fireworks/internal/event"
	"go-fireworks/internal/interfaces"
	"go-fireworks/internal/utils"

	"github.com/rs/zerolog"
)

// Show — одноразовый фигурный залп, привязанный к календарному времени.
type Show interface {
	Name() string
	// Update проверяет срок и продвигает залп. Вызывается раз за кадр.
	Update(ctx interfaces.SkyContext, now time.Time)
	Fired() bool
}

var (
	_ Show = (*RingShow)(nil)
	_ Show = (*HeartShow)(nil)
)

// RingShow выпускает кольцо снарядов из центра холста одним кадром.
type RingShow struct {
	deadline        int64
	count           int
	radius          float64
	fired           bool
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewRingShow(s config.RingSettings, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *RingShow {
	return &RingShow{
		deadline:        s.Deadline,
		count:           s.Count,
		radius:          s.Radius,
		fired:           !s.Enabled,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("show", "ring").Logger(),
	}
}

func (s *RingShow) Name() string { return "ring" }
func (s *RingShow) Fired() bool  { return s.fired }

func (s *RingShow) Update(ctx interfaces.SkyContext, now time.Time) {
	if s.fired || utils.Stamp(now) < s.deadline {
		return
	}
	s.fired = true

	w, h := ctx.Size()
	cx, cy := w/2, h/2
	step := 2 * math.Pi / float64(s.count)
	for k := 0; k < s.count; k++ {
		angle := float64(k) * step
		ctx.Launch(cx, cy, cx+s.radius*math.Cos(angle), cy+s.radius*math.Sin(angle))
	}

	s.logger.Info().Int("projectiles", s.count).Msg("show fired")
	payload := event.Show{Name: s.Name(), Projectiles: s.count}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShowStarted, Data: payload})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShowFinished, Data: payload})
}

type heartPhase int

const (
	heartWaiting heartPhase = iota
	heartRunning
	heartDone
)

// HeartShow выпускает сердце парами снарядов с постоянным интервалом.
// Пока залп идёт, контекст находится в эксклюзивном режиме.
type HeartShow struct {
	deadline int64
	count    int
	size     float64
	steps    int
	interval time.Duration

	phase   heartPhase
	started time.Time
	emitted int // выпущено пар

	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewHeartShow(s config.HeartSettings, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *HeartShow {
	steps := s.Count / 2
	if steps < 1 {
		steps = 1
	}
	hs := &HeartShow{
		deadline:        s.Deadline,
		count:           steps * 2,
		size:            s.Size,
		steps:           steps,
		interval:        s.Duration / time.Duration(steps),
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("show", "heart").Logger(),
	}
	if !s.Enabled {
		hs.phase = heartDone
	}
	return hs
}

func (s *HeartShow) Name() string { return "heart" }

// Fired сообщает, что залп уже сработал (идёт или закончился).
func (s *HeartShow) Fired() bool { return s.phase != heartWaiting }

// Running сообщает, что залп ещё выпускает снаряды.
func (s *HeartShow) Running() bool { return s.phase == heartRunning }

// Steps возвращает число пар в залпе.
func (s *HeartShow) Steps() int { return s.steps }

// Interval возвращает паузу между парами.
func (s *HeartShow) Interval() time.Duration { return s.interval }

func (s *HeartShow) Update(ctx interfaces.SkyContext, now time.Time) {
	switch s.phase {
	case heartWaiting:
		if utils.Stamp(now) < s.deadline {
			return
		}
		s.phase = heartRunning
		s.started = now
		s.emitted = 0
		ctx.SetExclusive(true)
		s.logger.Info().Int("projectiles", s.count).Dur("interval", s.interval).Msg("show started")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ShowStarted,
			Data: event.Show{Name: s.Name(), Projectiles: s.count},
		})
	case heartRunning:
		// Если хост подвис, за один кадр выпускаются все просроченные пары
		for s.emitted < s.steps && !now.Before(s.started.Add(s.interval*time.Duration(s.emitted+1))) {
			s.emitPair(ctx, s.emitted)
			s.emitted++
		}
		if s.emitted >= s.steps {
			s.phase = heartDone
			ctx.SetExclusive(false)
			s.logger.Info().Msg("show finished")
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ShowFinished,
				Data: event.Show{Name: s.Name(), Projectiles: s.count},
			})
		}
	}
}

// emitPair выпускает два снаряда, симметричных относительно вертикальной оси сердца.
// Пара i целится в точки кривой с параметром ±i·π/steps, i от 0 до steps-1.
func (s *HeartShow) emitPair(ctx interfaces.SkyContext, i int) {
	w, h := ctx.Size()
	cx, cy := w/2, h/2
	angle := float64(i) * math.Pi / float64(s.steps)
	for _, t := range [2]float64{-angle, angle} {
		x, y := HeartPoint(t)
		ctx.Launch(w/2, h, cx+x*s.size, cy+y*s.size)
	}
}

// HeartPoint возвращает точку кривой сердца для параметра t в единичном масштабе.
// Ось y направлена вниз, как на экране.
func HeartPoint(t float64) (x, y float64) {
	sin := math.Sin(t)
	x = 16 * sin * sin * sin
	y = -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return x, y
}
