package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/internal/types"
)

func addEnemy(ecs *ECS, hp float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Speed: 1}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{Archetype: defs.Sentinel}
	return id
}

func TestNewEntity_Monotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.Equal(t, types.EntityID(1), a)
	assert.Equal(t, types.EntityID(2), b)
}

func TestEnemyIDs_SpawnOrder(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 20; i++ {
		want = append(want, addEnemy(ecs, 10))
	}
	assert.Equal(t, want, ecs.EnemyIDs())
}

func TestRemoveDuringSnapshotIteration(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		addEnemy(ecs, 10)
	}

	visited := 0
	for _, id := range ecs.EnemyIDs() {
		visited++
		// удаляем соседа, которого снимок все равно отдаст
		ecs.RemoveEnemy(id + 1)
	}
	assert.Equal(t, 5, visited)
	assert.Equal(t, 1, ecs.LiveEnemyCount())
}

func TestIsEnemyAlive(t *testing.T) {
	ecs := NewECS()
	id := addEnemy(ecs, 10)
	require.True(t, ecs.IsEnemyAlive(id))

	ecs.Healths[id].Value = 0
	assert.False(t, ecs.IsEnemyAlive(id), "zero hp is not alive")

	ecs.RemoveEnemy(id)
	assert.False(t, ecs.IsEnemyAlive(id))
	ecs.RemoveEnemy(id) // повторное удаление: no-op
	assert.Empty(t, ecs.Positions)
}

func TestClear(t *testing.T) {
	ecs := NewECS()
	addEnemy(ecs, 5)
	pid := ecs.NewEntity()
	ecs.Projectiles[pid] = &component.Projectile{}
	ecs.Positions[pid] = &component.Position{}
	tid := ecs.NewEntity()
	ecs.Towers[tid] = &component.Tower{}
	ecs.Positions[tid] = &component.Position{}

	ecs.ClearEnemies()
	ecs.ClearProjectiles()
	assert.Empty(t, ecs.Enemies)
	assert.Empty(t, ecs.Projectiles)
	assert.Len(t, ecs.Positions, 1)

	ecs.ClearTowers()
	assert.Empty(t, ecs.Positions)
}
