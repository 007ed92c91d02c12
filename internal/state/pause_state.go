// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-fireworks/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и показывает последний кадр.
// Фигурные залпы сверяются с календарным временем, поэтому пропущенный
// срок сработает сразу после возобновления.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *ShowState
}

func NewPauseState(sm *StateMachine, prevState *ShowState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.previousState.indicator != nil {
		s.previousState.indicator.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(s.previousState.surface.Image(), nil)

	w, h := s.previousState.sky.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 96}, false)
	s.previousState.drawHUD(screen, true)
}

func (s *PauseState) Exit() {}
