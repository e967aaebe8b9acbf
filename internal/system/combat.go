// internal/system/combat.go
package system

import (
	"math"

	"neon-defense/internal/component"
	"neon-defense/internal/config"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update fires every ready tower at its chosen target. A tower that finds
// nothing in range keeps its NextFireTime and retries next tick.
func (s *CombatSystem) Update(simTime float64) {
	candidates := s.ecs.EnemyIDs()
	if len(candidates) == 0 {
		return
	}
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		pos, ok := s.ecs.Positions[id]
		if !ok || simTime <= tower.NextFireTime {
			continue
		}

		targetID, found := SelectTarget(s.ecs, candidates, *pos, tower)
		if !found {
			continue
		}
		s.createProjectile(id, tower, pos, targetID)
		tower.NextFireTime = simTime + tower.Config.FireRate
	}
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, towerPos *component.Position, enemyID types.EntityID) types.EntityID {
	projID := s.ecs.NewEntity()
	enemyPos := s.ecs.Positions[enemyID]

	dx := enemyPos.X - towerPos.X
	dy := enemyPos.Y - towerPos.Y
	vel := &component.Velocity{Speed: config.ProjectileSpeed}
	if dist := math.Hypot(dx, dy); dist > 0 {
		vel.DX = dx / dist * config.ProjectileSpeed
		vel.DY = dy / dist * config.ProjectileSpeed
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Velocities[projID] = vel
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:      enemyID,
		SourceTowerID: towerID,
		SourceTypeID:  tower.Config.ID,
		Damage:        tower.Config.Damage,
		Speed:         config.ProjectileSpeed,
		Color:         tower.Config.Color,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: projID})
	return projID
}
