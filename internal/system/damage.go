// internal/system/damage.go
package system

import (
	"neon-defense/internal/defs"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/types"
)

// HitResult describes what a resolved hit did.
type HitResult struct {
	Applied bool
	Damage  float64
	Kind    defs.HitKind
	Killed  bool
	Gold    int
	Score   int
}

// DamageResolver применяет попадания снарядов: сопротивления, смерть, награда.
type DamageResolver struct {
	ecs             *entity.ECS
	progression     *ProgressionSystem
	eventDispatcher *event.Dispatcher
}

func NewDamageResolver(ecs *entity.ECS, progression *ProgressionSystem, eventDispatcher *event.Dispatcher) *DamageResolver {
	return &DamageResolver{
		ecs:             ecs,
		progression:     progression,
		eventDispatcher: eventDispatcher,
	}
}

// ResolveHit applies a projectile to its target. It is a silent no-op when the
// projectile is gone or the target already died earlier in the same pass.
func (r *DamageResolver) ResolveHit(projectileID types.EntityID) HitResult {
	proj, ok := r.ecs.Projectiles[projectileID]
	if !ok {
		return HitResult{}
	}
	targetID := proj.TargetID
	if !r.ecs.IsEnemyAlive(targetID) {
		return HitResult{}
	}
	enemy := r.ecs.Enemies[targetID]
	health := r.ecs.Healths[targetID]

	finalDamage := proj.Damage * defs.ResistanceFactor(enemy.Archetype, proj.SourceTypeID)
	result := HitResult{
		Applied: true,
		Damage:  finalDamage,
		Kind:    defs.ClassifyHit(proj.Damage, finalDamage),
	}

	health.Value -= finalDamage
	r.ecs.RemoveProjectile(projectileID)

	pos := *r.ecs.Positions[targetID]
	if health.Value > 0 {
		r.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDamaged,
			Data: event.EnemyDamagedData{EnemyID: targetID, Position: pos, Damage: finalDamage, Kind: result.Kind},
		})
		return result
	}

	health.Value = 0
	result.Killed = true
	result.Gold, result.Score = r.progression.AwardKill(enemy.Archetype)
	r.ecs.RemoveEnemy(targetID)

	r.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{
			EnemyID:   targetID,
			Archetype: enemy.Archetype,
			Position:  pos,
			Gold:      result.Gold,
			Score:     result.Score,
		},
	})
	return result
}
