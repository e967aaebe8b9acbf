// internal/system/progression.go
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
)

// ProgressionSystem ведёт экономику (золото, очки), жизни и переходы уровней.
type ProgressionSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	ps := &ProgressionSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ps)
	return ps
}

// KillReward returns gold and score for killing an archetype at a level.
func KillReward(level int, archetype defs.Archetype) (gold, score int) {
	def := archetype.Lookup()
	gold = int(math.Floor((40 + float64(level)*8) * def.GoldMult))
	score = int(float64(800*level) * def.ScoreMult)
	return gold, score
}

// LevelBonus is the gold granted when entering level.
func LevelBonus(level int) int {
	return 350 + level*60
}

// UpgradeCost is floor(cost*0.8*level) for a tower at its current level.
func UpgradeCost(cost, level int) int {
	return int(math.Floor(float64(cost) * config.UpgradeCostFactor * float64(level)))
}

// UpgradeTowerStats bumps the level and compounds damage and fire rate with
// truncation at every step. No cap and no affordability check here.
func UpgradeTowerStats(tower *component.Tower) {
	tower.Level++
	tower.Config.Damage = math.Floor(tower.Config.Damage * config.UpgradeDamageMult)
	tower.Config.FireRate = math.Floor(tower.Config.FireRate * config.UpgradeRateMult)
}

func (p *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type == event.WaveEnded {
		p.CompleteLevel()
	}
}

// AwardKill credits the kill reward at the current level.
func (p *ProgressionSystem) AwardKill(archetype defs.Archetype) (gold, score int) {
	stats := p.ecs.Stats
	gold, score = KillReward(stats.Level, archetype)
	stats.Gold += gold
	stats.Score += score
	return gold, score
}

// CanAfford reports whether amount can be spent right now.
func (p *ProgressionSystem) CanAfford(amount int) bool {
	return amount >= 0 && p.ecs.Stats.Gold >= amount
}

// Spend deducts amount; it is rejected (not clamped) when gold is short.
func (p *ProgressionSystem) Spend(amount int) bool {
	if !p.CanAfford(amount) {
		return false
	}
	p.ecs.Stats.Gold -= amount
	return true
}

// LoseLife takes one life for a leaked enemy and returns the lives left.
// Reaching zero ends the run exactly once.
func (p *ProgressionSystem) LoseLife() int {
	stats := p.ecs.Stats
	if p.ecs.GameState != component.Running {
		return stats.Lives
	}
	if stats.Lives > 0 {
		stats.Lives--
	}
	if stats.Lives <= 0 {
		p.ecs.GameState = component.GameOver
		stats.WaveActive = false
		slog.Info("game over", "level", stats.Level, "score", stats.Score)
		p.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: *stats})
	}
	return stats.Lives
}

// CompleteLevel closes the wave, advances the level and pays the level bonus.
// Passing the last level wins the run; otherwise a new path is generated.
func (p *ProgressionSystem) CompleteLevel() {
	if p.ecs.GameState != component.Running {
		return
	}
	stats := p.ecs.Stats
	*p.ecs.Wave = component.Wave{}
	stats.WaveActive = false
	p.ecs.ClearProjectiles()

	stats.Level++
	bonus := LevelBonus(stats.Level)
	stats.Gold += bonus

	if stats.Level > config.MaxLevel {
		p.ecs.GameState = component.Won
		slog.Info("run won", "score", stats.Score, "gold", stats.Gold)
		p.eventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: *stats})
		return
	}

	p.gameContext.RegeneratePath(stats.Level)
	p.eventDispatcher.Dispatch(event.Event{
		Type: event.LevelCompleted,
		Data: event.LevelCompletedData{Level: stats.Level, Bonus: bonus, Path: p.gameContext.CurrentPath()},
	})
}
