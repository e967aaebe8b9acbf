// internal/state/end_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-defense/internal/config"
	"neon-defense/internal/store"
	"neon-defense/internal/ui"
)

// EndState — GAMEOVER или WIN. Терминально до рестарта.
type EndState struct {
	sm       *StateMachine
	env      *Env
	previous *GameState
	run      *store.Run
	best     bool
}

func NewEndState(sm *StateMachine, env *Env, previous *GameState, run *store.Run) *EndState {
	return &EndState{sm: sm, env: env, previous: previous, run: run}
}

func (s *EndState) Enter() {
	top := s.env.topRuns()
	s.best = len(top) > 0 && top[0].ID == s.run.ID
}

func (s *EndState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.previous.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.env))
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 170}, false)

	fonts := s.env.Fonts
	cx := config.ScreenWidth / 2
	title, titleColor := "CORE BREACHED", config.RejectColor
	if s.run.Outcome == store.OutcomeWin {
		title, titleColor = "SECTOR SECURED", config.CoreColor
	}
	ui.DrawCentered(screen, title, fonts.Large, cx, 280, titleColor)

	duration := time.Duration(s.run.DurationMs) * time.Millisecond
	summary := fmt.Sprintf("Level %d   Score %d   Towers %d   %s", s.run.Level, s.run.Score, s.run.Towers, duration.Round(time.Second))
	ui.DrawCentered(screen, summary, fonts.Title, cx, 350, config.TextLightColor)
	if s.best {
		ui.DrawCentered(screen, "New best run!", fonts.Title, cx, 390, color.RGBA{255, 215, 0, 255})
	}
	ui.DrawCentered(screen, "R to restart   M for menu", fonts.Regular, cx, 460, config.TextDimColor)
}

func (s *EndState) Exit() {}
