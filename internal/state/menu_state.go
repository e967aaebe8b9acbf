// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"neon-defense/internal/config"
	"neon-defense/internal/store"
	"neon-defense/internal/ui"
)

// MenuState — стартовый экран с таблицей лучших забегов.
type MenuState struct {
	sm      *StateMachine
	env     *Env
	topRuns []store.Run
	elapsed float64
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{sm: sm, env: env}
}

func (m *MenuState) Enter() {
	m.topRuns = m.env.topRuns()
}

func (m *MenuState) Update(deltaTime float64) {
	m.elapsed += deltaTime
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.env))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := m.env.Fonts
	centerX := config.ScreenWidth / 2

	ui.DrawCentered(screen, "NEON DEFENSE", fonts.Large, centerX, 220, config.CoreColor)
	if int(m.elapsed*2)%2 == 0 {
		ui.DrawCentered(screen, "Press SPACE or click to start", fonts.Title, centerX, 300, config.TextLightColor)
	}

	if len(m.topRuns) == 0 {
		return
	}
	ui.DrawCentered(screen, "Best runs", fonts.Title, centerX, 400, config.TextDimColor)
	y := 440
	for i, run := range m.topRuns {
		line := fmt.Sprintf("%d. %-9s level %2d  score %7d", i+1, run.Outcome, run.Level, run.Score)
		text.Draw(screen, line, fonts.Regular, centerX-160, y, config.TextLightColor)
		y += 24
	}
}

func (m *MenuState) Exit() {}
