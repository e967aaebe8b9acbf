// internal/system/wave.go
package system

import (
	"log/slog"
	"math"

	"neon-defense/internal/component"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/interfaces"
	"neon-defense/internal/types"
)

// Roller supplies uniform rolls in [0,1).
type Roller interface {
	Float64() float64
}

type WaveSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	rng             Roller
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, game interfaces.GameContext, rng Roller, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		game:            game,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// IsBossLevel reports whether the level spawns only bosses.
func IsBossLevel(level int) bool {
	return level > 0 && level%config.BossInterval == 0
}

// WaveSize returns how many enemies the level spawns.
func WaveSize(level int) int {
	if IsBossLevel(level) {
		return max(1, level/5)
	}
	return 20 + level*8
}

// SpawnInterval returns the pause between spawns in simulated ms.
func SpawnInterval(level int) float64 {
	return config.BaseSpawnInterval / (1 + float64(level)*config.SpawnLevelFactor)
}

// RollArchetype maps a uniform roll to an archetype for a non-boss level.
func RollArchetype(level int, r float64) defs.Archetype {
	switch {
	case level >= 4 && r < 0.25:
		return defs.Goliath
	case level >= 2 && r < 0.45:
		return defs.Scout
	default:
		return defs.Sentinel
	}
}

// EnemyStats returns max hp and path speed for an archetype at a level.
func EnemyStats(level int, archetype defs.Archetype) (hp, speed float64) {
	lv := float64(level)
	baseHP := 15 + math.Pow(lv, 1.6)*8 + lv*15
	baseSpeed := 3.2 + lv*0.45
	return baseHP * archetype.HealthMultiplier(level), baseSpeed * archetype.Lookup().SpeedMult
}

// StartWave arms the wave for the current level. No-op while a wave is running
// or after the run has ended.
func (s *WaveSystem) StartWave() bool {
	if s.ecs.Wave.InProgress || s.ecs.GameState != component.Running {
		return false
	}
	level := s.ecs.Stats.Level
	*s.ecs.Wave = component.Wave{
		Level:            level,
		InProgress:       true,
		EnemiesRemaining: WaveSize(level),
		NextSpawnTime:    s.ecs.GameTime, // первый враг появится на следующем тике
		Boss:             IsBossLevel(level),
	}
	s.ecs.Stats.WaveActive = true

	slog.Debug("wave started", "level", level, "enemies", s.ecs.Wave.EnemiesRemaining, "boss", s.ecs.Wave.Boss)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: level})
	return true
}

// Update spawns at most one enemy per tick once the spawn timer has elapsed.
func (s *WaveSystem) Update(simTime float64) {
	wave := s.ecs.Wave
	if !wave.InProgress || wave.EnemiesRemaining <= 0 {
		return
	}
	if simTime > wave.NextSpawnTime {
		s.spawnEnemy(wave)
		wave.EnemiesRemaining--
		wave.NextSpawnTime = simTime + SpawnInterval(wave.Level)
	}
}

// CheckCompletion dispatches WaveEnded once every enemy has been spawned and
// none is left on the field. Must run after all other systems in the tick.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if !wave.InProgress || s.ecs.GameState != component.Running {
		return false
	}
	if wave.EnemiesRemaining > 0 || s.ecs.LiveEnemyCount() > 0 {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Level})
	return true
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) types.EntityID {
	archetype := defs.Boss
	if !wave.Boss {
		archetype = RollArchetype(wave.Level, s.rng.Float64())
	}
	hp, speed := EnemyStats(wave.Level, archetype)

	id := s.ecs.NewEntity()
	start := s.game.CurrentPath().PointAt(0)
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Enemies[id] = &component.Enemy{
		Archetype: archetype,
		Progress:  0,
		Level:     wave.Level,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}
