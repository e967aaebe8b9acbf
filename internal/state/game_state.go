// internal/state/game_state.go
package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neon-defense/internal/app"
	"neon-defense/internal/briefing"
	"neon-defense/internal/component"
	"neon-defense/internal/event"
	"neon-defense/internal/store"
	"neon-defense/internal/ui"
	"neon-defense/pkg/render"
)

var paletteKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — экран забега. Команды игрока применяются между тиками,
// до вызова game.Update.
type GameState struct {
	sm        *StateMachine
	env       *Env
	game      *app.Game
	renderer  *render.Renderer
	hud       *ui.HUD
	infoPanel *ui.InfoPanel

	briefings chan briefing.Briefing
	ctx       context.Context
	cancel    context.CancelFunc
	entered   bool
	finished  bool
	startedAt time.Time
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	gameLogic := app.NewGame(env.Towers, env.Settings)
	dispatcher := gameLogic.EventDispatcher

	gs := &GameState{
		sm:        sm,
		env:       env,
		game:      gameLogic,
		renderer:  render.NewRenderer(env.Fonts.Regular),
		hud:       ui.NewHUD(env.Fonts, gameLogic.Towers.All(), env.Settings.StartingLives),
		infoPanel: ui.NewInfoPanel(env.Fonts),
		briefings: make(chan briefing.Briefing, 4),
	}

	dispatcher.Subscribe(event.StatsUpdated, gs.hud)
	dispatcher.Subscribe(event.PlacementRejected, gs.hud)
	dispatcher.Subscribe(event.UpgradeRejected, gs.hud)
	dispatcher.Subscribe(event.TowerSelected, gs.infoPanel)
	for _, t := range []event.EventType{event.EnemyDamaged, event.EnemyKilled, event.LevelCompleted, event.GameOver, event.GameWon} {
		dispatcher.Subscribe(t, gs.renderer.Popups)
	}
	dispatcher.Subscribe(event.LevelCompleted, gs)
	dispatcher.Subscribe(event.GameOver, gs)
	dispatcher.Subscribe(event.GameWon, gs)

	gs.hud.OnEvent(event.Event{Type: event.StatsUpdated, Data: gameLogic.Stats()})
	return gs
}

// Enter вызывается и при возврате из паузы, поэтому забег стартует один раз.
func (g *GameState) Enter() {
	if g.entered {
		return
	}
	g.entered = true
	g.ctx, g.cancel = context.WithCancel(context.Background())
	g.startedAt = time.Now()
	g.requestBriefing(g.game.Stats().Level)
}

// OnEvent реализует интерфейс event.Listener.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelCompleted:
		if data, ok := e.Data.(event.LevelCompletedData); ok {
			g.requestBriefing(data.Level)
		}
	case event.GameOver, event.GameWon:
		g.finished = true
	}
}

// requestBriefing спрашивает провайдера в отдельной горутине; тик её не ждёт.
func (g *GameState) requestBriefing(level int) {
	ctx := g.ctx
	go func() {
		b := briefing.Resolve(ctx, g.env.Briefing, level, g.env.BriefingTimeout)
		select {
		case g.briefings <- b:
		default:
			slog.Debug("briefing dropped", "level", level)
		}
	}()
}

func (g *GameState) drainBriefings() {
	for {
		select {
		case b := <-g.briefings:
			g.hud.ShowBriefing(b)
		default:
			return
		}
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.hud.Pause.SetPaused(false)
	g.hud.Update(deltaTime)
	g.infoPanel.Update()
	g.renderer.Update(deltaTime)
	g.drainBriefings()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}

	g.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleClick(x, y) {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SetPlacementType("")
		g.game.Deselect()
	}

	g.game.Update(deltaTime * 1000)

	if g.finished {
		g.finish()
	}
}

func (g *GameState) handleKeys() {
	towers := g.game.Towers.All()
	for i, key := range paletteKeys {
		if i < len(towers) && inpututil.IsKeyJustPressed(key) {
			g.togglePlacement(towers[i].ID)
		}
	}

	selected := g.game.SelectedTower()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU) && selected != 0:
		g.game.BuyUpgrade(selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyT) && selected != 0:
		g.game.CycleTargetingPriority(selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.StartWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.game.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.SetPlacementType("")
		g.game.Deselect()
	}
}

func (g *GameState) togglePlacement(typeID string) {
	if g.game.PlacementType() == typeID {
		g.game.SetPlacementType("")
		return
	}
	g.game.SetPlacementType(typeID)
}

// handleClick разбирает клик по панели, HUD или полю. true, если состояние сменилось.
func (g *GameState) handleClick(x, y int) bool {
	if g.infoPanel.Contains(x, y) {
		selected := g.game.SelectedTower()
		switch g.infoPanel.HandleClick(x, y) {
		case ui.PanelUpgrade:
			g.game.BuyUpgrade(selected)
		case ui.PanelPriority:
			g.game.CycleTargetingPriority(selected)
		}
		return false
	}

	if g.hud.Contains(x, y) {
		action := g.hud.HandleClick(x, y)
		switch action.Kind {
		case ui.HUDPalette:
			g.togglePlacement(action.TowerTypeID)
		case ui.HUDStartWave:
			g.game.StartWave()
		case ui.HUDSpeed:
			g.game.CycleSpeed()
		case ui.HUDPause:
			g.pause()
			return true
		}
		return false
	}

	g.game.HandleFieldClick(float64(x), float64(y))
	return false
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) finish() {
	stats := g.game.Stats()
	outcome := store.OutcomeGameOver
	if g.game.State() == component.Won {
		outcome = store.OutcomeWin
	}
	run := &store.Run{
		Outcome:    outcome,
		Level:      stats.Level,
		Score:      stats.Score,
		Gold:       stats.Gold,
		Towers:     stats.TowerCount,
		DurationMs: time.Since(g.startedAt).Milliseconds(),
	}
	g.env.saveRun(run)
	slog.Info("run finished", "outcome", g.game.State(), "level", stats.Level, "sim_ms", g.game.SimTime())
	g.cancel()
	g.sm.SetState(NewEndState(g.sm, g.env, g, run))
}

// restart сбрасывает забег через Game.Reset и снова входит в экран игры.
func (g *GameState) restart() {
	g.game.Reset()
	g.finished = false
	g.entered = false
	g.ctx, g.cancel = nil, nil
	for len(g.briefings) > 0 {
		<-g.briefings
	}
	g.sm.SetState(g)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	g.renderer.Draw(screen, g.game, cx, cy)
	g.infoPanel.Draw(screen, g.game.Stats().Gold)
	g.hud.Draw(screen, g.game.PlacementType())
}

func (g *GameState) Exit() {}
