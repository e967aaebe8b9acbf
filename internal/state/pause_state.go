// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-defense/internal/config"
	"neon-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает забег: game.Update не вызывается, симуляционное время стоит.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.hud.Pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.hud.Pause.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.FieldHeight, color.RGBA{0, 0, 0, 128}, false)
	fonts := s.previousState.env.Fonts
	ui.DrawCentered(screen, "PAUSED", fonts.Large, config.ScreenWidth/2, config.FieldHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, "P or Esc to resume", fonts.Regular, config.ScreenWidth/2, config.FieldHeight/2+40, config.TextDimColor)
}

func (s *PauseState) Exit() {}
