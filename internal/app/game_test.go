package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/internal/event"
	"neon-defense/internal/types"
	"neon-defense/pkg/route"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

// newTestGame — прямой маршрут по y=400, чтобы проверки размещения были детерминированы.
func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g := NewGame(nil, Settings{StartingGold: 650, StartingLives: 20, Seed: 42})
	g.path = route.New(route.Point{X: 0, Y: 400}, route.Point{X: 600, Y: 400}, route.Point{X: 1200, Y: 400})
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	return g, rec
}

func addEnemy(g *Game, archetype defs.Archetype, hp, speed, progress float64) types.EntityID {
	id := g.ECS.NewEntity()
	p := g.path.PointAt(progress)
	g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	g.ECS.Velocities[id] = &component.Velocity{Speed: speed}
	g.ECS.Healths[id] = &component.Health{Value: hp, Max: hp}
	g.ECS.Enemies[id] = &component.Enemy{Archetype: archetype, Progress: progress, Level: g.ECS.Stats.Level}
	return id
}

func rejectionReason(t *testing.T, rec *recorder, typ event.EventType) string {
	t.Helper()
	rejected := rec.ofType(typ)
	require.NotEmpty(t, rejected)
	return rejected[len(rejected)-1].Data.(event.RejectedData).Reason
}

func TestNewGame(t *testing.T) {
	g := NewGame(nil, DefaultSettings())
	stats := g.Stats()

	assert.Equal(t, 650, stats.Gold)
	assert.Equal(t, 20, stats.Lives)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, 1.0, stats.GameSpeed)
	assert.Equal(t, component.Running, g.State())
	require.NotNil(t, g.CurrentPath())
	assert.Len(t, g.CurrentPath().Waypoints, 4)
	assert.Equal(t, 3, g.Towers.Len())
}

func TestStats_IsSnapshot(t *testing.T) {
	g, _ := newTestGame(t)
	stats := g.Stats()
	stats.Gold = 1_000_000
	assert.Equal(t, 650, g.ECS.Stats.Gold)
}

func TestPlaceTower(t *testing.T) {
	g, rec := newTestGame(t)

	id, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)

	assert.Equal(t, 500, g.ECS.Stats.Gold)
	assert.Equal(t, 1, g.ECS.Stats.TowerCount)
	tower := g.ECS.Towers[id]
	require.NotNil(t, tower)
	assert.Equal(t, 1, tower.Level)
	assert.Equal(t, defs.TargetClosest, tower.Priority)
	assert.Equal(t, component.Position{X: 600, Y: 200}, *g.ECS.Positions[id])

	placed := rec.ofType(event.TowerPlaced)
	require.Len(t, placed, 1)
	assert.Equal(t, id, placed[0].Data.(*event.TowerInfo).ID)

	updates := rec.ofType(event.StatsUpdated)
	require.NotEmpty(t, updates)
	assert.Equal(t, 500, updates[len(updates)-1].Data.(component.Stats).Gold)
}

func TestPlaceTower_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		gold   int
		tower  string
		x, y   float64
		reason string
	}{
		{name: "not enough gold", gold: 100, tower: defs.TowerSniper, x: 600, y: 200, reason: event.ReasonInsufficientGold},
		{name: "on the path", gold: 650, tower: defs.TowerBasic, x: 600, y: 420, reason: event.ReasonOnPath},
		{name: "just inside clearance", gold: 650, tower: defs.TowerBasic, x: 300, y: 434, reason: event.ReasonOnPath},
		{name: "outside the field", gold: 650, tower: defs.TowerBasic, x: -5, y: 10, reason: event.ReasonOutOfBounds},
		{name: "unknown type", gold: 650, tower: "laser", x: 600, y: 200, reason: event.ReasonUnknownTower},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGame(t)
			g.ECS.Stats.Gold = tt.gold

			_, ok := g.PlaceTower(tt.tower, tt.x, tt.y)

			assert.False(t, ok)
			assert.Equal(t, tt.gold, g.ECS.Stats.Gold)
			assert.Equal(t, 0, g.ECS.Stats.TowerCount)
			assert.Empty(t, g.ECS.Towers)
			assert.Equal(t, tt.reason, rejectionReason(t, rec, event.PlacementRejected))
		})
	}
}

func TestPlacementCheck_HasNoSideEffects(t *testing.T) {
	g, rec := newTestGame(t)

	assert.Equal(t, "", g.PlacementCheck(defs.TowerBasic, 600, 200))
	assert.Equal(t, event.ReasonOnPath, g.PlacementCheck(defs.TowerBasic, 600, 410))
	assert.Equal(t, 650, g.ECS.Stats.Gold)
	assert.Empty(t, g.ECS.Towers)
	assert.Empty(t, rec.ofType(event.PlacementRejected))
}

func TestPlaceTower_ClearanceBoundary(t *testing.T) {
	g, _ := newTestGame(t)
	_, ok := g.PlaceTower(defs.TowerBasic, 300, 435)
	assert.True(t, ok, "exactly 35 away is allowed")
}

func TestPlaceTower_Occupied(t *testing.T) {
	g, rec := newTestGame(t)
	_, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)

	_, ok = g.PlaceTower(defs.TowerBasic, 610, 200)
	assert.False(t, ok)
	assert.Equal(t, event.ReasonOccupied, rejectionReason(t, rec, event.PlacementRejected))
	assert.Equal(t, 500, g.ECS.Stats.Gold)
	assert.Equal(t, 1, g.ECS.Stats.TowerCount)
}

func TestUpgradeTower_DoesNotCheckGold(t *testing.T) {
	g, rec := newTestGame(t)
	g.ECS.Stats.Gold = 150
	id, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)
	require.Equal(t, 0, g.ECS.Stats.Gold)

	// UpgradeTower сам не проверяет золото
	assert.True(t, g.UpgradeTower(id))
	assert.Equal(t, 2, g.ECS.Towers[id].Level)
	assert.Equal(t, 37.0, g.ECS.Towers[id].Config.Damage)
	assert.Equal(t, 0, g.ECS.Stats.Gold)

	// BuyUpgrade проверяет
	cost, _ := g.UpgradeCost(id)
	assert.Equal(t, 240, cost)
	assert.False(t, g.BuyUpgrade(id))
	assert.Equal(t, event.ReasonInsufficientGold, rejectionReason(t, rec, event.UpgradeRejected))
	assert.Equal(t, 2, g.ECS.Towers[id].Level)

	assert.False(t, g.UpgradeTower(9999))
}

func TestBuyUpgrade(t *testing.T) {
	g, rec := newTestGame(t)
	id, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)

	require.True(t, g.BuyUpgrade(id))
	assert.Equal(t, 650-150-120, g.ECS.Stats.Gold)
	assert.Equal(t, 2, g.ECS.Towers[id].Level)
	assert.Equal(t, 680.0, g.ECS.Towers[id].Config.FireRate)
	assert.Len(t, rec.ofType(event.TowerUpgraded), 1)

	assert.False(t, g.BuyUpgrade(12345))
	assert.Equal(t, event.ReasonUnknownTower, rejectionReason(t, rec, event.UpgradeRejected))
}

func TestGameSpeed(t *testing.T) {
	g, _ := newTestGame(t)

	assert.False(t, g.SetGameSpeed(3))
	assert.Equal(t, 1.0, g.Stats().GameSpeed)

	require.True(t, g.SetGameSpeed(4))
	assert.Equal(t, 4.0, g.Stats().GameSpeed)

	assert.Equal(t, 8.0, g.CycleSpeed())
	assert.Equal(t, 16.0, g.CycleSpeed())
	assert.Equal(t, 1.0, g.CycleSpeed())

	g.SetGameSpeed(16)
	g.Update(10)
	assert.Equal(t, 160.0, g.SimTime())
}

func TestSelection(t *testing.T) {
	g, rec := newTestGame(t)
	id, ok := g.PlaceTower(defs.TowerSniper, 600, 200)
	require.True(t, ok)

	assert.False(t, g.SelectAt(700, 200))
	require.True(t, g.SelectAt(605, 210))
	assert.Equal(t, id, g.SelectedTower())

	selected := rec.ofType(event.TowerSelected)
	require.Len(t, selected, 1)
	info := selected[0].Data.(*event.TowerInfo)
	assert.Equal(t, id, info.ID)
	assert.Equal(t, "Longshot", info.Config.Name)
	assert.Equal(t, 280, info.UpgradeCost)

	require.True(t, g.SetTargetingPriority(id, defs.TargetWeakest))
	selected = rec.ofType(event.TowerSelected)
	require.Len(t, selected, 2, "changing the priority refreshes the panel")
	assert.Equal(t, defs.TargetWeakest, selected[1].Data.(*event.TowerInfo).Priority)

	assert.False(t, g.SetTargetingPriority(id, defs.TargetingPriority("RANDOM")))

	g.Deselect()
	selected = rec.ofType(event.TowerSelected)
	require.Len(t, selected, 3)
	assert.Nil(t, selected[2].Data.(*event.TowerInfo))
	assert.Equal(t, types.EntityID(0), g.SelectedTower())
}

func TestCycleTargetingPriority(t *testing.T) {
	g, _ := newTestGame(t)
	id, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)

	p, ok := g.CycleTargetingPriority(id)
	require.True(t, ok)
	assert.Equal(t, defs.TargetFirst, p)
	assert.Equal(t, defs.TargetFirst, g.ECS.Towers[id].Priority)
}

func TestHandleFieldClick(t *testing.T) {
	g, _ := newTestGame(t)

	require.True(t, g.SetPlacementType(defs.TowerRapid))
	g.HandleFieldClick(600, 200)
	assert.Equal(t, 1, g.ECS.Stats.TowerCount)
	assert.Equal(t, "", g.PlacementType(), "successful placement disarms")

	g.HandleFieldClick(600, 200)
	assert.NotZero(t, g.SelectedTower())

	g.HandleFieldClick(100, 100)
	assert.Zero(t, g.SelectedTower())

	assert.False(t, g.SetPlacementType("laser"))
}

func TestReset_ClearsSelectionWithEvent(t *testing.T) {
	g, rec := newTestGame(t)
	id, ok := g.PlaceTower(defs.TowerBasic, 600, 200)
	require.True(t, ok)
	require.True(t, g.SelectTower(id))
	require.True(t, g.SetPlacementType(defs.TowerRapid))
	rec.reset()

	g.Reset()

	assert.Zero(t, g.SelectedTower())
	assert.Equal(t, "", g.PlacementType())
	selected := rec.ofType(event.TowerSelected)
	require.Len(t, selected, 1, "the panel is told the selection is gone")
	assert.Nil(t, selected[0].Data.(*event.TowerInfo))

	updates := rec.ofType(event.StatsUpdated)
	require.NotEmpty(t, updates)
	assert.Equal(t, 0, updates[len(updates)-1].Data.(component.Stats).TowerCount)
}

func TestReset_WithoutSelectionSendsNoDeselect(t *testing.T) {
	g, rec := newTestGame(t)
	g.Reset()
	assert.Empty(t, rec.ofType(event.TowerSelected))
}
