// internal/terminal/terminal_test.go
package terminal

import (
	"image/color"
	"testing"
	"time"

	"go-fireworks/internal/app"
	"go-fireworks/internal/config"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func testSettings() *config.Settings {
	return &config.Settings{
		Width: 800, Height: 400, TPS: 60, Seed: 1, FadeAlpha: 0.5,
		AmbientEvery: 3, PointerEvery: 5,
		Ring:  config.RingSettings{Enabled: false, Deadline: config.DefaultShowDeadline, Count: 20, Radius: 200},
		Heart: config.HeartSettings{Enabled: false, Deadline: config.DefaultShowDeadline, Count: 80, Size: 25, Duration: 3 * time.Second},
	}
}

func TestSurfaceAdditiveStrokeSaturates(t *testing.T) {
	s := NewSurface(100, 100, 10, 5) // пиксель сетки 10x10
	s.SetBlendMode(render.BlendAdditive)
	s.SetStrokeColor(color.NRGBA{R: 200, A: 255})

	for i := 0; i < 2; i++ {
		s.BeginPath()
		s.MoveTo(5, 5)
		s.LineTo(95, 5)
		s.Stroke()
	}
	for px := 0; px < 10; px++ {
		r, g, b := s.Pixel(px, 0)
		assert.InDelta(t, 1.0, r, 1e-9)
		assert.Zero(t, g)
		assert.Zero(t, b)
	}
	r, _, _ := s.Pixel(0, 1)
	assert.Zero(t, r, "соседняя строка не задета")
}

func TestSurfaceEraseFades(t *testing.T) {
	s := NewSurface(100, 100, 10, 5)
	s.SetBlendMode(render.BlendAdditive)
	s.SetStrokeColor(color.White)
	s.BeginPath()
	s.MoveTo(55, 55)
	s.LineTo(55, 55)
	s.Stroke()

	s.SetBlendMode(render.BlendErase)
	s.FillRect(0, 0, 100, 100, color.NRGBA{A: 128})
	r, g, b := s.Pixel(5, 5)
	want := 1 - 128.0/255
	assert.InDelta(t, want, r, 1e-9)
	assert.InDelta(t, want, g, 1e-9)
	assert.InDelta(t, want, b, 1e-9)
}

func TestSurfaceFlushUsesHalfBlocks(t *testing.T) {
	screen := newScreen(t, 4, 2)
	s := NewSurface(40, 40, 4, 2)
	s.SetBlendMode(render.BlendAdditive)
	s.SetStrokeColor(color.NRGBA{G: 255, A: 255})
	s.BeginPath()
	s.MoveTo(15, 5) // колонка 1, пиксель 0 => верхняя половина ячейки (1, 0)
	s.LineTo(15, 5)
	s.Stroke()

	s.Flush(screen)
	screen.Show()

	cells, w, _ := screen.GetContents()
	lit := cells[0*w+1]
	require.NotEmpty(t, lit.Runes)
	assert.Equal(t, upperHalf, lit.Runes[0])
	fg, bg, _ := lit.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	dark := cells[1*w+3]
	require.NotEmpty(t, dark.Runes)
	assert.Equal(t, ' ', dark.Runes[0])
}

func TestCellToCanvas(t *testing.T) {
	s := NewSurface(800, 400, 80, 20)
	x, y := s.CellToCanvas(0, 0)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
	x, y = s.CellToCanvas(79, 19)
	assert.InDelta(t, 795, x, 1e-9)
	assert.InDelta(t, 390, y, 1e-9)
}

func TestRunnerHandlesInput(t *testing.T) {
	screen := newScreen(t, 80, 20)
	sky := app.NewSky(testSettings(), &utils.FixedClock{T: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)}, zerolog.Nop())
	r := NewRunner(screen, sky, 60, false, zerolog.Nop())

	assert.True(t, r.HandleEvent(tcell.NewEventMouse(40, 10, tcell.Button1, tcell.ModNone)))
	assert.True(t, sky.Pointer.Held())
	x, y := sky.Pointer.Position()
	assert.InDelta(t, 405, x, 1e-9)
	assert.InDelta(t, 210, y, 1e-9)

	assert.True(t, r.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone)))
	assert.False(t, sky.Pointer.Held())

	assert.True(t, r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, r.Paused)
	assert.True(t, r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	assert.True(t, r.ShowHUD)

	assert.False(t, r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunnerFramePausedDoesNotTick(t *testing.T) {
	screen := newScreen(t, 80, 20)
	sky := app.NewSky(testSettings(), &utils.FixedClock{T: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)}, zerolog.Nop())
	r := NewRunner(screen, sky, 60, true, zerolog.Nop())

	r.Frame()
	assert.EqualValues(t, 1, sky.Frame)

	r.Paused = true
	r.Frame()
	assert.EqualValues(t, 1, sky.Frame)

	// HUD выводится в первой строке
	cells, _, _ := screen.GetContents()
	require.NotEmpty(t, cells[1].Runes)
	assert.Equal(t, 's', cells[1].Runes[0])
}

func TestRunnerResize(t *testing.T) {
	screen := newScreen(t, 80, 20)
	sky := app.NewSky(testSettings(), nil, zerolog.Nop())
	r := NewRunner(screen, sky, 60, false, zerolog.Nop())

	assert.True(t, r.HandleEvent(tcell.NewEventResize(100, 30)))
	cols, rows := r.Surface().Grid()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)
	w, h := r.Surface().Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 400.0, h)
}
