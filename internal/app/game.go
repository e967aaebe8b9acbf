// internal/app/game.go
package app

import (
	"log/slog"

	"neon-defense/internal/component"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/system"
	"neon-defense/internal/types"
	"neon-defense/internal/utils"
	"neon-defense/pkg/route"
)

// Settings — параметры нового забега.
type Settings struct {
	StartingGold  int
	StartingLives int
	Seed          int64 // 0: сид от текущего времени
}

// DefaultSettings returns the stock economy with a time-based seed.
func DefaultSettings() Settings {
	return Settings{
		StartingGold:  config.StartingGold,
		StartingLives: config.StartingLives,
	}
}

// Game holds the simulation core: registry, systems and the per-tick order.
// Хост (ebiten) только вызывает Update и команды и читает снимки.
type Game struct {
	ECS               *entity.ECS
	Towers            *defs.TowerLibrary
	Field             route.Field
	Clock             *system.Clock
	WaveSystem        *system.WaveSystem
	MovementSystem    *system.MovementSystem
	CombatSystem      *system.CombatSystem
	ProjectileSystem  *system.ProjectileSystem
	ProgressionSystem *system.ProgressionSystem
	DamageResolver    *system.DamageResolver
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService

	settings      Settings
	path          *route.Path
	placementType string
	selectedTower types.EntityID
	lastStats     component.Stats
	published     bool
}

// NewGame initializes a new run at level 1 with a freshly generated path.
func NewGame(towers *defs.TowerLibrary, settings Settings) *Game {
	if towers == nil {
		towers = defs.MustDefaultLibrary()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:    ecs,
		Towers: towers,
		Field: route.Field{
			Width:  config.FieldWidth,
			Height: config.FieldHeight,
			Margin: config.PathMargin,
		},
		Clock:           system.NewClock(),
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
		settings:        settings,
	}
	g.ProgressionSystem = system.NewProgressionSystem(ecs, g, eventDispatcher)
	g.DamageResolver = system.NewDamageResolver(ecs, g.ProgressionSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g, g.Rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g, g.ProgressionSystem, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.DamageResolver)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.GameWon, listener)
	eventDispatcher.Subscribe(event.LevelCompleted, listener)
	eventDispatcher.SubscribeAll(eventTrace{})

	g.resetRun()
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver, event.GameWon:
		l.game.placementType = ""
	case event.LevelCompleted:
		if data, ok := e.Data.(event.LevelCompletedData); ok {
			slog.Info("level completed", "level", data.Level, "bonus", data.Bonus, "waypoints", len(data.Path.Waypoints))
		}
	}
}

// eventTrace пишет каждое событие в лог на уровне Debug.
type eventTrace struct{}

func (eventTrace) OnEvent(e event.Event) {
	slog.Debug("event", "type", e.Type, "data", e.Data)
}

// Update progresses the simulation by one frame. The order is fixed:
// clock, spawns, enemy movement, tower fire, projectiles, wave completion,
// stats snapshot.
func (g *Game) Update(realDeltaMs float64) {
	if g.ECS.GameState != component.Running {
		return
	}

	simDelta := g.Clock.Advance(realDeltaMs)
	simTime := g.Clock.Now()
	g.ECS.GameTime = simTime

	g.WaveSystem.Update(simTime)
	g.MovementSystem.Update(simDelta)

	// Последняя жизнь могла уйти на шаге движения
	if g.ECS.GameState == component.Running {
		g.CombatSystem.Update(simTime)
		g.ProjectileSystem.Update(simDelta)
		g.WaveSystem.CheckCompletion()
	}

	g.publishStats()
}

// StartWave begins the enemy wave for the current level.
func (g *Game) StartWave() bool {
	started := g.WaveSystem.StartWave()
	g.publishStats()
	return started
}

// SetGameSpeed applies one of config.GameSpeeds; other values are ignored.
func (g *Game) SetGameSpeed(multiplier float64) bool {
	if !g.Clock.SetMultiplier(multiplier) {
		return false
	}
	g.ECS.Stats.GameSpeed = multiplier
	g.publishStats()
	return true
}

// CycleSpeed steps to the next speed in config.GameSpeeds, wrapping to x1.
func (g *Game) CycleSpeed() float64 {
	speeds := config.GameSpeeds
	next := speeds[0]
	for i, s := range speeds {
		if s == g.Clock.Multiplier() {
			next = speeds[(i+1)%len(speeds)]
			break
		}
	}
	g.SetGameSpeed(next)
	return next
}

// Reset restores the starting economy, level 1 and a fresh path.
// It is the only way lives go up.
func (g *Game) Reset() {
	g.resetRun()
	g.publishStats()
}

func (g *Game) resetRun() {
	g.Deselect()
	g.ECS.ClearEnemies()
	g.ECS.ClearProjectiles()
	g.ECS.ClearTowers()
	*g.ECS.Wave = component.Wave{}
	*g.ECS.Stats = component.Stats{
		Gold:      g.settings.StartingGold,
		Lives:     g.settings.StartingLives,
		Level:     1,
		GameSpeed: 1,
	}
	g.ECS.GameState = component.Running
	g.ECS.GameTime = 0
	g.Clock.Reset()
	g.placementType = ""
	g.RegeneratePath(1)
	slog.Debug("run reset", "gold", g.settings.StartingGold, "lives", g.settings.StartingLives)
}

// publishStats pushes a copy of the stats if anything changed since the last push.
func (g *Game) publishStats() {
	current := *g.ECS.Stats
	if g.published && current == g.lastStats {
		return
	}
	g.lastStats = current
	g.published = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatsUpdated, Data: current})
}

// --- GameContext ---

func (g *Game) CurrentPath() *route.Path {
	return g.path
}

func (g *Game) RegeneratePath(level int) {
	g.path = route.Generate(level, g.Field, g.Rng)
}

// --- Public Accessors ---

// Stats returns a snapshot; the live struct never leaves the core.
func (g *Game) Stats() component.Stats {
	return *g.ECS.Stats
}

func (g *Game) State() component.GameState {
	return g.ECS.GameState
}

// SimTime returns simulated milliseconds since the run started.
func (g *Game) SimTime() float64 {
	return g.Clock.Now()
}

func (g *Game) SelectedTower() types.EntityID {
	return g.selectedTower
}

func (g *Game) PlacementType() string {
	return g.placementType
}
