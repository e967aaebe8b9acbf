package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neon-defense/internal/defs"
	"neon-defense/internal/event"
)

func TestResolveHit_ResistanceTable(t *testing.T) {
	tests := []struct {
		name     string
		tower    string
		wantDmg  float64
		wantKind defs.HitKind
	}{
		{name: "rapid is resisted", tower: defs.TowerRapid, wantDmg: 5, wantKind: defs.HitResisted},
		{name: "sniper is boosted", tower: defs.TowerSniper, wantDmg: 12.5, wantKind: defs.HitBoosted},
		{name: "basic is normal", tower: defs.TowerBasic, wantDmg: 10, wantKind: defs.HitNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			enemy := w.addEnemy(defs.Goliath, 100, 0.5)
			proj := w.addProjectile(enemy, 10, tt.tower, 600, 400)

			res := w.resolver.ResolveHit(proj)

			require.True(t, res.Applied)
			assert.Equal(t, tt.wantDmg, res.Damage)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.False(t, res.Killed)
			assert.Equal(t, 100-tt.wantDmg, w.ecs.Healths[enemy].Value)
			assert.NotContains(t, w.ecs.Projectiles, proj, "projectile is destroyed on hit")

			damaged := w.events.ofType(event.EnemyDamaged)
			require.Len(t, damaged, 1)
			assert.Equal(t, tt.wantKind, damaged[0].Data.(event.EnemyDamagedData).Kind)
		})
	}
}

func TestResolveHit_LightArchetypesTakeFullDamage(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.addEnemy(defs.Scout, 100, 0.5)
	res := w.resolver.ResolveHit(w.addProjectile(enemy, 10, defs.TowerRapid, 0, 0))
	assert.Equal(t, 10.0, res.Damage)
	assert.Equal(t, defs.HitNormal, res.Kind)
}

func TestResolveHit_KillGrantsReward(t *testing.T) {
	tests := []struct {
		archetype defs.Archetype
		level     int
		wantGold  int
		wantScore int
	}{
		{defs.Sentinel, 1, 48, 800},
		{defs.Scout, 3, 64, 2400},
		{defs.Goliath, 1, 120, 1600},
		{defs.Goliath, 3, 160, 4800},
		{defs.Boss, 3, 640, 24000},
		{defs.Boss, 10, 1200, 80000},
	}
	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			w := newTestWorld(t)
			w.ecs.Stats.Level = tt.level
			w.ecs.Stats.Gold = 0
			w.ecs.Stats.Score = 0
			enemy := w.addEnemy(tt.archetype, 5, 0.5)

			res := w.resolver.ResolveHit(w.addProjectile(enemy, 50, defs.TowerBasic, 0, 0))

			require.True(t, res.Killed)
			assert.Equal(t, tt.wantGold, res.Gold)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantGold, w.ecs.Stats.Gold)
			assert.Equal(t, tt.wantScore, w.ecs.Stats.Score)
			assert.NotContains(t, w.ecs.Enemies, enemy)

			kills := w.events.ofType(event.EnemyKilled)
			require.Len(t, kills, 1)
			assert.Equal(t, tt.wantGold, kills[0].Data.(event.EnemyKilledData).Gold)
		})
	}
}

func TestKillReward_Multipliers(t *testing.T) {
	for level := 1; level <= 30; level++ {
		baseGold, baseScore := KillReward(level, defs.Sentinel)
		bossGold, bossScore := KillReward(level, defs.Boss)
		assert.Equal(t, 10*baseGold, bossGold, "level %d", level)
		assert.Equal(t, 10*baseScore, bossScore, "level %d", level)

		golGold, golScore := KillReward(level, defs.Goliath)
		assert.Equal(t, int(float64(baseGold)*2.5), golGold, "level %d", level)
		assert.Equal(t, 2*baseScore, golScore, "level %d", level)
	}
}

func TestResolveHit_DoubleResolutionIsNoop(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.addEnemy(defs.Sentinel, 10, 0.5)
	first := w.addProjectile(enemy, 10, defs.TowerBasic, 0, 0)
	second := w.addProjectile(enemy, 10, defs.TowerBasic, 0, 0)
	goldBefore := w.ecs.Stats.Gold

	require.True(t, w.resolver.ResolveHit(first).Killed)
	goldAfterKill := w.ecs.Stats.Gold
	assert.Greater(t, goldAfterKill, goldBefore)

	res := w.resolver.ResolveHit(second)
	assert.False(t, res.Applied)
	assert.Equal(t, goldAfterKill, w.ecs.Stats.Gold, "no second reward")
	assert.Len(t, w.events.ofType(event.EnemyKilled), 1)

	// уже удалённый снаряд
	assert.False(t, w.resolver.ResolveHit(first).Applied)
}
