// internal/app/sky_test.go
package app

import (
	"math"
	"testing"
	"time"

	"go-fireworks/internal/component"
	"go-fireworks/internal/config"
	"go-fireworks/internal/event"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var beforeShows = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func testSettings() *config.Settings {
	return &config.Settings{
		Width: 1280, Height: 720, TPS: 60, Seed: 11, FadeAlpha: 0.5,
		AmbientEvery: 3, PointerEvery: 5,
		Ring:  config.RingSettings{Enabled: true, Deadline: config.DefaultShowDeadline, Count: 20, Radius: 200},
		Heart: config.HeartSettings{Enabled: true, Deadline: config.DefaultShowDeadline, Count: 80, Size: 25, Duration: 3 * time.Second},
	}
}

func newTestSky(t *testing.T, at time.Time) (*Sky, *utils.FixedClock, *render.Recorder) {
	t.Helper()
	clock := &utils.FixedClock{T: at}
	return NewSky(testSettings(), clock, zerolog.Nop()), clock, render.NewRecorder(1280, 720)
}

type burstCounter struct{ bursts []event.Burst }

func (b *burstCounter) OnEvent(e event.Event) { b.bursts = append(b.bursts, e.Data.(event.Burst)) }

func TestTickFadesThenDrawsAdditive(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	sky.Launch(100, 100, 100, 400)
	sky.Tick(rec)

	require.NotEmpty(t, rec.Ops)
	fade := rec.Ops[0]
	assert.Equal(t, "fill", fade.Kind)
	assert.Equal(t, render.BlendErase, fade.Blend)
	assert.Equal(t, [4]float64{0, 0, 1280, 720}, fade.Rect)
	_, _, _, a := render.Straight(fade.Color)
	assert.InDelta(t, 0.5, a, 0.01)

	for _, op := range rec.Ops[1:] {
		assert.Equal(t, render.BlendAdditive, op.Blend)
	}
	assert.Equal(t, render.BlendAdditive, rec.BlendMode())
}

func TestTickHueDrift(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	assert.Equal(t, config.HueStart, sky.Hue)
	sky.Tick(rec)
	assert.Equal(t, config.HueFloor, sky.Hue, "стартовый оттенок выше потолка")
	for i := 0; i < 79; i++ {
		sky.Tick(rec)
	}
	assert.Equal(t, 29.5, sky.Hue)
	sky.Tick(rec)
	assert.Equal(t, config.HueFloor, sky.Hue)
}

func TestZeroDistanceProjectileBurstsOnFirstTick(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	counter := &burstCounter{}
	sky.EventDispatcher.Subscribe(event.ShellBurst, counter)
	sky.LaunchSystem.AmbientEvery = math.MaxInt

	sky.Launch(300, 300, 300, 300)
	sky.Tick(rec)

	assert.Empty(t, sky.Projectiles)
	assert.Len(t, sky.Fragments, config.FragmentsPerBurst)
	require.Len(t, counter.bursts, 1)
	assert.Equal(t, event.Burst{X: 300, Y: 300, Fragments: 100}, counter.bursts[0])
}

func TestProjectileBurstsExactlyOnce(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	counter := &burstCounter{}
	sky.EventDispatcher.Subscribe(event.ShellBurst, counter)
	sky.LaunchSystem.AmbientEvery = math.MaxInt

	sky.Launch(640, 720, 640, 400)
	p := sky.Projectiles[0]
	ticks := 0
	for len(sky.Projectiles) > 0 {
		ticks++
		require.Less(t, ticks, 100)
		sky.Tick(rec)
		if len(sky.Projectiles) > 0 {
			assert.Empty(t, sky.Fragments)
		}
	}
	require.Len(t, counter.bursts, 1)
	assert.Equal(t, p.TargetX, counter.bursts[0].X)
	assert.Equal(t, p.TargetY, counter.bursts[0].Y)
	// искры уже сделали первый шаг в кадре взрыва
	assert.Len(t, sky.Fragments, config.FragmentsPerBurst)

	for i := 0; i < 200 && len(sky.Fragments) > 0; i++ {
		sky.Tick(rec)
	}
	assert.Empty(t, sky.Fragments, "все искры погасли")
	assert.Len(t, counter.bursts, 1)
}

func TestSwapRemoveKeepsSurvivors(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	sky.LaunchSystem.AmbientEvery = math.MaxInt
	sky.Launch(0, 0, 0, 0)
	sky.Launch(10, 700, 10, 100)
	sky.Launch(20, 20, 20, 20)
	sky.Launch(30, 700, 30, 100)
	keep := []*component.Projectile{sky.Projectiles[1], sky.Projectiles[3]}

	sky.Tick(rec)
	assert.ElementsMatch(t, keep, sky.Projectiles)
	assert.Len(t, sky.Fragments, 2*config.FragmentsPerBurst)
}

func TestAmbientLaunchCadence(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	for i := 0; i < 4; i++ {
		sky.Tick(rec)
	}
	assert.Len(t, sky.Projectiles, 1)
	p := sky.Projectiles[0]
	assert.Equal(t, 720.0, p.StartY)
	assert.GreaterOrEqual(t, p.StartX, 256.0)
	assert.Less(t, p.StartX, 1024.0)
	assert.Less(t, p.TargetY, 360.0)
}

func TestPointerLaunches(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	sky.Pointer.Press(900, 200)
	for i := 0; i < 6; i++ {
		sky.Tick(rec)
	}
	require.Len(t, sky.Projectiles, 1)
	p := sky.Projectiles[0]
	assert.Equal(t, 640.0, p.StartX)
	assert.Equal(t, 720.0, p.StartY)
	assert.Equal(t, 900.0, p.TargetX)
	assert.Equal(t, 200.0, p.TargetY)
}

func TestShowsAfterDeadline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	sky, clock, rec := newTestSky(t, start)
	shows := &struct{ started, finished []string }{}
	sky.EventDispatcher.Subscribe(event.ShowStarted, event.ListenerFunc(func(e event.Event) {
		shows.started = append(shows.started, e.Data.(event.Show).Name)
	}))
	sky.EventDispatcher.Subscribe(event.ShowFinished, event.ListenerFunc(func(e event.Event) {
		shows.finished = append(shows.finished, e.Data.(event.Show).Name)
	}))

	sky.Tick(rec)
	// в первом кадре сердце включило эксклюзивный режим, кольцо выпустило 20 снарядов
	assert.True(t, sky.Exclusive())
	assert.Len(t, sky.Projectiles, 20)
	w, h := sky.Size()
	for _, p := range sky.Projectiles {
		assert.Equal(t, w/2, p.StartX)
		assert.Equal(t, h/2, p.StartY)
		assert.InDelta(t, 200, utils.Distance(p.StartX, p.StartY, p.TargetX, p.TargetY), 1e-9)
	}
	assert.Equal(t, []string{"heart", "ring"}, shows.started)

	step := time.Second / 60
	frames := 0
	for sky.Exclusive() {
		frames++
		require.Less(t, frames, 400)
		clock.Advance(step)
		sky.Tick(rec)
		// пока идёт шоу, фоновых запусков из нижней части холста нет
		for _, p := range sky.Projectiles {
			if p.StartY == h && p.StartX != w/2 {
				t.Fatalf("ambient launch during exclusive mode at frame %d", frames)
			}
		}
	}
	assert.Equal(t, []string{"ring", "heart"}, shows.finished)
	assert.True(t, sky.Heart.Fired())
	assert.True(t, sky.Ring.Fired())

	// после шоу фоновые запуски возобновляются, шоу не повторяются
	for i := 0; i < 8; i++ {
		clock.Advance(step)
		sky.Tick(rec)
	}
	assert.False(t, sky.Exclusive())
	assert.Len(t, shows.started, 2)
}

func TestHeartLaunchesAll80(t *testing.T) {
	start := time.Date(2025, 2, 14, 20, 0, 0, 0, time.Local)
	settings := testSettings()
	settings.Ring.Enabled = false
	clock := &utils.FixedClock{T: start}
	sky := NewSky(settings, clock, zerolog.Nop())

	launched := 0
	sky.EventDispatcher.Subscribe(event.ShowFinished, event.ListenerFunc(func(e event.Event) {
		launched = e.Data.(event.Show).Projectiles
	}))

	rec := render.NewRecorder(1280, 720)
	total := 0
	seen := map[*component.Projectile]bool{}
	for i := 0; i < 400 && !(sky.Heart.Fired() && !sky.Heart.Running()); i++ {
		clock.Advance(time.Second / 60)
		sky.Tick(rec)
		for _, p := range sky.Projectiles {
			if !seen[p] {
				seen[p] = true
				if p.StartX == 640 && p.StartY == 720 {
					total++
				}
			}
		}
	}
	assert.Equal(t, 80, total)
	assert.Equal(t, 80, launched)
	assert.False(t, sky.Exclusive())
}

func TestCountersFrozenWhileExclusive(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	sky.SetExclusive(true)
	sky.Pointer.Press(100, 100)
	for i := 0; i < 30; i++ {
		sky.Tick(rec)
	}
	assert.Empty(t, sky.Projectiles)
	assert.Zero(t, sky.LaunchSystem.AmbientTick)
	assert.Zero(t, sky.LaunchSystem.PointerTick)

	sky.SetExclusive(false)
	sky.Tick(rec)
	assert.Equal(t, 1, sky.LaunchSystem.PointerTick)
}

func TestStats(t *testing.T) {
	sky, _, rec := newTestSky(t, beforeShows)
	sky.Launch(0, 0, 0, 0)
	sky.Tick(rec)
	s := sky.Stats()
	assert.Equal(t, len(sky.Projectiles), s.Projectiles)
	assert.Equal(t, config.FragmentsPerBurst, s.Fragments)
	assert.EqualValues(t, 1, s.Frame)
	assert.EqualValues(t, 11, s.Seed)
}
