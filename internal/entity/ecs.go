// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"neon-defense/internal/component"
	"neon-defense/internal/types"
)

// ECS владеет всеми живыми сущностями и состоянием прогресса.
// Системы обходят снимки ID (EnemyIDs и т.п.), поэтому удаление во время
// обхода не ломает итерацию.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Stats       *component.Stats
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		Stats:       &component.Stats{Level: 1, GameSpeed: 1},
		GameState:   component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs returns live enemy IDs in spawn order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

// TowerIDs returns tower IDs in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

// ProjectileIDs returns projectile IDs in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}

// IsEnemyAlive — проверка живости для несобственных ссылок (снаряд -> цель).
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}

// LiveEnemyCount counts enemies still on the field.
func (ecs *ECS) LiveEnemyCount() int {
	return len(ecs.Enemies)
}

// RemoveEnemy удаляет врага и все его компоненты. Повторный вызов безопасен.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

// RemoveProjectile удаляет снаряд. Повторный вызов безопасен.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Projectiles, id)
}

func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEnemy(id)
	}
}

func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveProjectile(id)
	}
}

func (ecs *ECS) ClearTowers() {
	for id := range ecs.Towers {
		delete(ecs.Positions, id)
		delete(ecs.Towers, id)
	}
}
