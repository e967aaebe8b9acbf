package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/internal/event"
)

func TestWaveSize(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 28},
		{2, 36},
		{9, 92},
		{10, 2},
		{20, 4},
		{30, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaveSize(tt.level), "level %d", tt.level)
	}
}

func TestRollArchetype(t *testing.T) {
	tests := []struct {
		level int
		roll  float64
		want  defs.Archetype
	}{
		{1, 0.0, defs.Sentinel},
		{1, 0.3, defs.Sentinel},
		{2, 0.1, defs.Scout},
		{2, 0.45, defs.Sentinel},
		{3, 0.2, defs.Scout},
		{4, 0.2, defs.Goliath},
		{4, 0.3, defs.Scout},
		{4, 0.5, defs.Sentinel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RollArchetype(tt.level, tt.roll), "level %d roll %v", tt.level, tt.roll)
	}
}

func TestEnemyStats(t *testing.T) {
	hp, speed := EnemyStats(1, defs.Sentinel)
	assert.InDelta(t, 38, hp, 1e-9)
	assert.InDelta(t, 3.65, speed, 1e-9)

	hp, speed = EnemyStats(1, defs.Scout)
	assert.InDelta(t, 19, hp, 1e-9)
	assert.InDelta(t, 3.65*1.7, speed, 1e-9)

	hp, speed = EnemyStats(6, defs.Goliath)
	base := 15 + math.Pow(6, 1.6)*8 + 90
	assert.InDelta(t, base*4, hp, 1e-9)
	assert.InDelta(t, (3.2+6*0.45)*0.6, speed, 1e-9)

	hp, _ = EnemyStats(10, defs.Boss)
	base = 15 + math.Pow(10, 1.6)*8 + 150
	assert.InDelta(t, base*20, hp, 1e-9)
}

func TestStartWave(t *testing.T) {
	w := newTestWorld(t)
	ws := NewWaveSystem(w.ecs, w.ctx, &sequenceRoller{}, w.dispatcher)

	require.True(t, ws.StartWave())
	assert.Equal(t, 28, w.ecs.Wave.EnemiesRemaining)
	assert.True(t, w.ecs.Stats.WaveActive)
	assert.False(t, ws.StartWave(), "second start is a no-op")
	assert.Equal(t, 28, w.ecs.Wave.EnemiesRemaining)
	assert.Len(t, w.events.ofType(event.WaveStarted), 1)
}

func TestStartWave_BossLevel(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Stats.Level = 10
	roller := &sequenceRoller{rolls: []float64{0.1}}
	ws := NewWaveSystem(w.ecs, w.ctx, roller, w.dispatcher)

	require.True(t, ws.StartWave())
	assert.Equal(t, 2, w.ecs.Wave.EnemiesRemaining)

	ws.Update(1)
	for _, enemy := range w.ecs.Enemies {
		assert.Equal(t, defs.Boss, enemy.Archetype)
	}
	assert.Equal(t, 0, roller.i, "boss levels do not roll")
}

func TestStartWave_RejectedAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.GameState = component.GameOver
	ws := NewWaveSystem(w.ecs, w.ctx, &sequenceRoller{}, w.dispatcher)
	assert.False(t, ws.StartWave())
}

func TestWaveUpdate_SpawnCadence(t *testing.T) {
	w := newTestWorld(t)
	ws := NewWaveSystem(w.ecs, w.ctx, &sequenceRoller{rolls: []float64{0.9}}, w.dispatcher)
	require.True(t, ws.StartWave())

	interval := SpawnInterval(1)
	assert.InDelta(t, 1200/1.4, interval, 1e-9)

	ws.Update(16)
	require.Len(t, w.ecs.Enemies, 1)
	assert.Equal(t, 27, w.ecs.Wave.EnemiesRemaining)
	for id, enemy := range w.ecs.Enemies {
		assert.Equal(t, defs.Sentinel, enemy.Archetype)
		assert.Equal(t, 0.0, enemy.Progress)
		assert.Equal(t, component.Position{X: 0, Y: 400}, *w.ecs.Positions[id])
		assert.Equal(t, w.ecs.Healths[id].Max, w.ecs.Healths[id].Value)
	}

	ws.Update(16 + interval) // not strictly greater yet
	assert.Len(t, w.ecs.Enemies, 1)
	ws.Update(17 + interval)
	assert.Len(t, w.ecs.Enemies, 2)
}

func TestCheckCompletion(t *testing.T) {
	w := newTestWorld(t)
	ws := NewWaveSystem(w.ecs, w.ctx, &sequenceRoller{}, w.dispatcher)

	assert.False(t, ws.CheckCompletion(), "no wave yet")

	require.True(t, ws.StartWave())
	w.ecs.Wave.EnemiesRemaining = 0
	enemy := w.addEnemy(defs.Sentinel, 10, 0.2)
	assert.False(t, ws.CheckCompletion(), "enemy still alive")

	w.ecs.RemoveEnemy(enemy)
	goldBefore := w.ecs.Stats.Gold
	assert.True(t, ws.CheckCompletion())

	// ProgressionSystem подписан на WaveEnded
	assert.Equal(t, 2, w.ecs.Stats.Level)
	assert.Equal(t, goldBefore+350+2*60, w.ecs.Stats.Gold)
	assert.False(t, w.ecs.Wave.InProgress)
	assert.False(t, w.ecs.Stats.WaveActive)
	assert.Equal(t, []int{2}, w.ctx.regenerated)
	assert.Len(t, w.events.ofType(event.LevelCompleted), 1)
}
