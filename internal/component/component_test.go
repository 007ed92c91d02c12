// internal/component/component_test.go
package component

import (
	"math"
	"testing"

	"go-fireworks/internal/config"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSampler всегда возвращает одно и то же значение, чтобы параметры были предсказуемы.
type fixedSampler struct{ u float64 }

func (s fixedSampler) Float64() float64              { return s.u }
func (s fixedSampler) Range(min, max float64) float64 { return min + (max-min)*s.u }

func TestTrail(t *testing.T) {
	tr := NewTrail(3, 1, 2)
	assert.Equal(t, 3, tr.Len())
	x, y := tr.Oldest()
	assert.Equal(t, [2]float64{1, 2}, [2]float64{x, y})

	tr.Push(3, 4)
	tr.Push(5, 6)
	x, y = tr.Newest()
	assert.Equal(t, [2]float64{5, 6}, [2]float64{x, y})
	x, y = tr.Oldest()
	assert.Equal(t, [2]float64{1, 2}, [2]float64{x, y})

	tr.Push(7, 8)
	x, y = tr.Oldest()
	assert.Equal(t, [2]float64{3, 4}, [2]float64{x, y}, "самая старая точка вытеснена")
	assert.Equal(t, 3, tr.Len())
}

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(0, 100, 30, 60, fixedSampler{0.5})
	assert.InDelta(t, 50, p.DistanceToTarget, 1e-9)
	assert.InDelta(t, math.Atan2(-40, 30), p.Heading, 1e-12)
	assert.Equal(t, config.ProjectileSpeed, p.Speed)
	assert.Equal(t, 60.0, p.Brightness)
	assert.Equal(t, config.MarkerRadiusInitial, p.MarkerRadius)
	assert.Equal(t, config.ProjectileTrailLength, p.Trail.Len())
	x, y := p.Trail.Oldest()
	assert.Equal(t, [2]float64{0, 100}, [2]float64{x, y})
}

func TestProjectileBurstsWhenTargetReached(t *testing.T) {
	p := NewProjectile(0, 0, 100, 0, fixedSampler{0})
	prev := p.DistanceTraveled
	ticks := 0
	for !p.Advance() {
		ticks++
		require.Less(t, ticks, 100)
		assert.GreaterOrEqual(t, p.DistanceTraveled, prev, "пройденный путь не убывает")
		prev = p.DistanceTraveled
		assert.Less(t, p.X, 100.0)
	}
	// 10.5 + 11.025 + ... = 85.49 за семь шагов, восьмой перелетел бы цель
	assert.Equal(t, 7, ticks)
	assert.GreaterOrEqual(t, p.DistanceTraveled, p.DistanceToTarget)
	assert.Less(t, p.X, 100.0, "позиция не сдвигается в тике взрыва")
}

func TestProjectileZeroDistanceBurstsImmediately(t *testing.T) {
	p := NewProjectile(40, 40, 40, 40, fixedSampler{0.3})
	assert.True(t, p.Advance())
	assert.Equal(t, 40.0, p.X)
	assert.Equal(t, 40.0, p.Y)
}

func TestProjectileNaNIsSanitized(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name           string
		sx, sy, tx, ty float64
		want           [4]float64
	}{
		{"target", 10, 20, nan, 5, [4]float64{10, 20, 10, 20}},
		{"launch", nan, 20, 30, 40, [4]float64{30, 40, 30, 40}},
		{"both", nan, nan, 1, nan, [4]float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.sx, tt.sy, tt.tx, tt.ty, fixedSampler{0.3})
			assert.Equal(t, tt.want, [4]float64{p.StartX, p.StartY, p.TargetX, p.TargetY})
			assert.Zero(t, p.DistanceToTarget)
			assert.True(t, p.Advance())
			assert.True(t, utils.IsFinite(p.X, p.Y, p.DistanceTraveled))
		})
	}
}

func TestProjectileMarkerPulses(t *testing.T) {
	p := NewProjectile(0, 0, 1e6, 0, fixedSampler{0})
	// первый тик сбрасывает начальную вспышку
	p.Advance()
	assert.Equal(t, config.MarkerRadiusMin, p.MarkerRadius)
	seen := map[bool]bool{}
	for i := 0; i < 40; i++ {
		before := p.MarkerRadius
		p.Advance()
		if before < config.MarkerRadiusMax {
			assert.InDelta(t, before+config.MarkerRadiusStep, p.MarkerRadius, 1e-9)
			seen[true] = true
		} else {
			assert.Equal(t, config.MarkerRadiusMin, p.MarkerRadius)
			seen[false] = true
		}
	}
	assert.True(t, seen[true] && seen[false], "радиус и растёт, и сбрасывается")
}

func TestProjectileRender(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	p := NewProjectile(0, 50, 50, 50, fixedSampler{0})
	p.Advance()
	p.Render(rec, 12)

	require.Len(t, rec.Ops, 2)
	line := rec.Ops[0]
	assert.Equal(t, "stroke", line.Kind)
	assert.Equal(t, config.ProjectileLineWidth, line.LineWidth)
	assert.Equal(t, render.HSL(12, 100, 50), line.Color)
	require.Len(t, line.Path, 1)
	assert.Equal(t, render.Point{X: 0, Y: 50}, line.Path[0][0])
	assert.Equal(t, render.Point{X: p.X, Y: p.Y}, line.Path[0][1])

	marker := rec.Ops[1]
	minX, minY, maxX, maxY, ok := (&render.Polyline{Subpaths: marker.Path}).Bounds()
	require.True(t, ok)
	assert.InDelta(t, 50-p.MarkerRadius, minX, 1e-9)
	assert.InDelta(t, 50+p.MarkerRadius, maxX, 1e-9)
	assert.InDelta(t, 50-p.MarkerRadius, minY, 0.1)
	assert.InDelta(t, 50+p.MarkerRadius, maxY, 0.1)
}

func TestNewFragment(t *testing.T) {
	f := NewFragment(10, 20, 100, fixedSampler{0.5})
	assert.InDelta(t, math.Pi, f.Heading, 1e-12)
	// sin(0.5*pi - pi/2) = 0: искра без начальной скорости
	assert.InDelta(t, 0, f.Speed, 1e-12)
	assert.Equal(t, 100.0, f.Hue)
	assert.Equal(t, 65.0, f.Brightness)
	assert.Equal(t, 1.0, f.Alpha)
	assert.InDelta(t, 0.015, f.Decay, 1e-12)
	assert.Equal(t, config.FragmentTrailLength, f.Trail.Len())
}

func TestFragmentRanges(t *testing.T) {
	rng := utils.NewPRNGService(3)
	for i := 0; i < 500; i++ {
		f := NewFragment(0, 0, 0, rng)
		assert.GreaterOrEqual(t, f.Heading, 0.0)
		assert.Less(t, f.Heading, 2*math.Pi)
		assert.LessOrEqual(t, math.Abs(f.Speed), config.FragmentSpeedMax)
		assert.GreaterOrEqual(t, f.Hue, -config.FragmentHueSpread)
		assert.Less(t, f.Hue, config.FragmentHueSpread)
		assert.GreaterOrEqual(t, f.Decay, config.FragmentDecayMin)
		assert.Less(t, f.Decay, config.FragmentDecayMax)
	}
}

func TestFragmentFadesAndExpires(t *testing.T) {
	f := NewFragment(0, 0, 0, utils.NewPRNGService(5))
	prevAlpha := f.Alpha
	for i := 0; ; i++ {
		require.Less(t, i, 200)
		expired := f.Advance()
		assert.LessOrEqual(t, f.Alpha, prevAlpha)
		prevAlpha = f.Alpha
		if expired {
			assert.LessOrEqual(t, f.Alpha, f.Decay)
			break
		}
		assert.Greater(t, f.Alpha, f.Decay)
	}
}

func TestFragmentGravityAndFriction(t *testing.T) {
	f := NewFragment(0, 0, 0, fixedSampler{0.5}) // скорость 0, курс pi
	f.Advance()
	assert.InDelta(t, 0, f.X, 1e-12)
	assert.InDelta(t, config.FragmentGravity, f.Y, 1e-12)

	f.Speed = 10
	f.Heading = 0
	f.X, f.Y = 0, 0
	f.Advance()
	assert.InDelta(t, 10*config.FragmentFriction, f.X, 1e-12)
	assert.InDelta(t, config.FragmentGravity, f.Y, 1e-12)
}

func TestFragmentRender(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	f := NewFragment(10, 10, 200, fixedSampler{0.5})
	f.Alpha = 0.4
	f.Render(rec, 0)

	require.Len(t, rec.Ops, 1)
	op := rec.Ops[0]
	assert.Equal(t, config.FragmentLineWidth, op.LineWidth)
	assert.Equal(t, render.HSLAColor(200, 100, 65, 0.4), op.Color, "используется собственный оттенок искры")
}
