package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neon-defense/internal/defs"
	"neon-defense/internal/event"
)

func newProjectileSystem(w *testWorld) *ProjectileSystem {
	return NewProjectileSystem(w.ecs, w.dispatcher, w.resolver)
}

func TestProjectile_HitsOnArrival(t *testing.T) {
	w := newTestWorld(t)
	ps := newProjectileSystem(w)
	enemy := w.addEnemy(defs.Sentinel, 100, 0.5) // (600,400)
	proj := w.addProjectile(enemy, 25, defs.TowerBasic, 600, 390)

	ps.Update(16)

	assert.Equal(t, 75.0, w.ecs.Healths[enemy].Value)
	assert.NotContains(t, w.ecs.Projectiles, proj)
	assert.Len(t, w.events.ofType(event.EnemyDamaged), 1)
}

func TestProjectile_HomesTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	ps := newProjectileSystem(w)
	enemy := w.addEnemy(defs.Sentinel, 100, 0.5)
	proj := w.addProjectile(enemy, 25, defs.TowerBasic, 600, 0)

	ps.Update(100)

	require.Contains(t, w.ecs.Projectiles, proj)
	pos := w.ecs.Positions[proj]
	assert.InDelta(t, 600, pos.X, 1e-9)
	assert.InDelta(t, 85, pos.Y, 1e-9)
	assert.InDelta(t, 850, w.ecs.Velocities[proj].DY, 1e-9)
	assert.Equal(t, 100.0, w.ecs.Healths[enemy].Value)
}

func TestProjectile_DeadTargetIsDiscarded(t *testing.T) {
	w := newTestWorld(t)
	ps := newProjectileSystem(w)
	target := w.addEnemy(defs.Sentinel, 10, 0.5)
	bystander := w.addEnemy(defs.Sentinel, 10, 0.5)
	first := w.addProjectile(target, 25, defs.TowerBasic, 600, 395)
	second := w.addProjectile(target, 25, defs.TowerBasic, 600, 395)

	ps.Update(16)

	// первый снаряд убил цель, второй исчезает без урона
	assert.NotContains(t, w.ecs.Enemies, target)
	assert.NotContains(t, w.ecs.Projectiles, first)
	assert.NotContains(t, w.ecs.Projectiles, second)
	assert.Equal(t, 10.0, w.ecs.Healths[bystander].Value)
	assert.Len(t, w.events.ofType(event.EnemyKilled), 1)
	assert.Empty(t, w.events.ofType(event.EnemyDamaged))
}

func TestProjectile_ExpiresAfterLifetime(t *testing.T) {
	w := newTestWorld(t)
	ps := newProjectileSystem(w)
	enemy := w.addEnemy(defs.Sentinel, 100, 0.5)
	proj := w.addProjectile(enemy, 25, defs.TowerBasic, 600, -4600)

	ps.Update(1500)
	ps.Update(1500)
	require.Contains(t, w.ecs.Projectiles, proj, "still inside lifetime")

	ps.Update(1500)
	assert.NotContains(t, w.ecs.Projectiles, proj)
	assert.NotContains(t, w.ecs.Positions, proj)
	assert.Equal(t, 100.0, w.ecs.Healths[enemy].Value)
}
