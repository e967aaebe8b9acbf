// internal/system/movement.go
package system

import (
	"neon-defense/internal/config"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/interfaces"
)

// MovementSystem продвигает врагов по маршруту и снимает жизни за прорвавшихся.
type MovementSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext // Используем интерфейс вместо прямой зависимости
	progression     *ProgressionSystem
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, game interfaces.GameContext, progression *ProgressionSystem, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		game:            game,
		progression:     progression,
		eventDispatcher: eventDispatcher,
	}
}

func (s *MovementSystem) Update(simDelta float64) {
	path := s.game.CurrentPath()
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasVel || !hasPos {
			continue
		}

		enemy.Progress += vel.Speed * simDelta / config.ProgressScale
		p := path.PointAt(enemy.Progress)
		pos.X, pos.Y = p.X, p.Y

		if enemy.Progress >= 1 {
			livesLeft := s.progression.LoseLife()
			s.ecs.RemoveEnemy(id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyLeaked,
				Data: event.EnemyLeakedData{EnemyID: id, Archetype: enemy.Archetype, LivesLeft: livesLeft},
			})
		}
	}
}
