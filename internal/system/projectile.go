// internal/system/projectile.go
package system

import (
	"math"

	"neon-defense/internal/config"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	resolver        *DamageResolver
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, resolver *DamageResolver) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		resolver:        resolver,
	}
}

// Update homes every projectile on its target. Movement uses the scaled
// simulation delta, so projectiles speed up with the game speed like enemies do.
func (s *ProjectileSystem) Update(simDelta float64) {
	seconds := simDelta / 1000
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		proj.Age += simDelta
		if proj.Age > config.ProjectileLifetime {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Цель могла погибнуть от другого снаряда или дойти до ядра
		if !s.ecs.IsEnemyAlive(proj.TargetID) {
			s.ecs.RemoveProjectile(id)
			continue
		}
		targetPos := s.ecs.Positions[proj.TargetID]

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		step := proj.Speed * seconds

		if dist <= step || dist < config.ProjectileHitRadius {
			pos.X, pos.Y = targetPos.X, targetPos.Y
			s.resolver.ResolveHit(id)
			continue
		}

		vel := s.ecs.Velocities[id]
		if vel == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}
		vel.DX = dx / dist * proj.Speed
		vel.DY = dy / dist * proj.Speed
		pos.X += vel.DX * seconds
		pos.Y += vel.DY * seconds
	}
}
