// internal/state/show_state.go
package state

import (
	"go-fireworks/internal/app"
	"go-fireworks/internal/config"
	"go-fireworks/internal/ui"
	"go-fireworks/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*ShowState)(nil)

// ShowState — основной режим: каждый Update выполняет один кадр симуляции.
type ShowState struct {
	sm        *StateMachine
	sky       *app.Sky
	surface   *ebitensurface.Surface
	indicator *ui.StateIndicator
}

func NewShowState(sm *StateMachine, sky *app.Sky, indicator *ui.StateIndicator) *ShowState {
	w, h := sky.Size()
	surface := ebitensurface.New(int(w), int(h))
	surface.Image().Fill(config.BackgroundColor)
	return &ShowState{
		sm:        sm,
		sky:       sky,
		surface:   surface,
		indicator: indicator,
	}
}

func (s *ShowState) Enter() {}

func (s *ShowState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.indicator != nil {
		s.indicator.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	// Ввод только обновляет указатель; сущности меняет Tick
	x, y := ebiten.CursorPosition()
	s.sky.Pointer.Set(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	s.sky.Tick(s.surface)
	return nil
}

func (s *ShowState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(s.surface.Image(), nil)
	s.drawHUD(screen, false)
}

func (s *ShowState) drawHUD(screen *ebiten.Image, paused bool) {
	if s.indicator == nil {
		return
	}
	stats := s.sky.Stats()
	stats.TPS = ebiten.ActualTPS()
	stats.Paused = paused
	s.indicator.Draw(screen, stats)
}

func (s *ShowState) Exit() {}
