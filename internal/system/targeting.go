// internal/system/targeting.go
package system

import (
	"math"

	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/internal/entity"
	"neon-defense/internal/types"
)

// SelectTarget picks an in-range live enemy according to the tower's priority.
// candidates must be in a stable order; on equal scores the first one wins.
func SelectTarget(ecs *entity.ECS, candidates []types.EntityID, towerPos component.Position, tower *component.Tower) (types.EntityID, bool) {
	var (
		best      types.EntityID
		bestScore float64
		found     bool
	)
	for _, id := range candidates {
		if !ecs.IsEnemyAlive(id) {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		dist := math.Hypot(pos.X-towerPos.X, pos.Y-towerPos.Y)
		if dist > tower.Config.Range {
			continue
		}

		score := targetScore(ecs, id, tower.Priority, dist)
		if !found || score > bestScore {
			best, bestScore, found = id, score, true
		}
	}
	return best, found
}

// targetScore: чем больше, тем предпочтительнее цель.
func targetScore(ecs *entity.ECS, id types.EntityID, priority defs.TargetingPriority, dist float64) float64 {
	switch priority {
	case defs.TargetFirst:
		return ecs.Enemies[id].Progress
	case defs.TargetStrongest:
		return ecs.Healths[id].Value
	case defs.TargetWeakest:
		return -ecs.Healths[id].Value
	default:
		return -dist
	}
}
