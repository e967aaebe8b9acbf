// internal/app/tower_management.go
package app

import (
	"log/slog"

	"neon-defense/internal/component"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/event"
	"neon-defense/internal/system"
	"neon-defense/internal/types"
	"neon-defense/pkg/route"
)

// SetPlacementType arms the tower type for the next field click; "" disarms.
func (g *Game) SetPlacementType(typeID string) bool {
	if typeID == "" {
		g.placementType = ""
		return true
	}
	if _, ok := g.Towers.Get(typeID); !ok || g.ECS.GameState != component.Running {
		return false
	}
	g.placementType = typeID
	g.Deselect()
	return true
}

// HandleFieldClick places the armed tower type or, when nothing is armed,
// selects the tower under the cursor.
func (g *Game) HandleFieldClick(x, y float64) {
	if g.placementType != "" {
		if _, ok := g.PlaceTower(g.placementType, x, y); ok {
			g.placementType = ""
		}
		return
	}
	if !g.SelectAt(x, y) {
		g.Deselect()
	}
}

// PlaceTower attempts to build a tower of typeID at (x, y). A rejected
// placement changes nothing and dispatches PlacementRejected with the reason.
func (g *Game) PlaceTower(typeID string, x, y float64) (types.EntityID, bool) {
	def, reason := g.checkPlacement(typeID, x, y)
	if reason != "" {
		slog.Debug("placement rejected", "tower", typeID, "x", x, "y", y, "reason", reason)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Data: event.RejectedData{Reason: reason, TowerTypeID: typeID, X: x, Y: y},
		})
		return 0, false
	}
	if !g.ProgressionSystem.Spend(def.Cost) {
		return 0, false
	}

	id := g.createTowerEntity(def, x, y)
	g.ECS.Stats.TowerCount++

	info, _ := g.TowerInfo(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: info})
	g.publishStats()
	return id, true
}

// PlacementCheck returns the reason a tower of typeID could not be placed at
// (x, y), or "" when the placement would succeed. Ничего не меняет.
func (g *Game) PlacementCheck(typeID string, x, y float64) string {
	_, reason := g.checkPlacement(typeID, x, y)
	return reason
}

func (g *Game) checkPlacement(typeID string, x, y float64) (defs.TowerDefinition, string) {
	if g.ECS.GameState != component.Running {
		return defs.TowerDefinition{}, event.ReasonGameOver
	}
	def, ok := g.Towers.Get(typeID)
	if !ok {
		return def, event.ReasonUnknownTower
	}
	if x < 0 || y < 0 || x > g.Field.Width || y > g.Field.Height {
		return def, event.ReasonOutOfBounds
	}
	if !g.ProgressionSystem.CanAfford(def.Cost) {
		return def, event.ReasonInsufficientGold
	}
	pt := route.Point{X: x, Y: y}
	if g.path.IsNear(pt, config.PathClearance) {
		return def, event.ReasonOnPath
	}
	if _, found := g.towerNear(pt, config.TowerFootprint); found {
		return def, event.ReasonOccupied
	}
	return def, ""
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		Config:   def,
		Level:    1,
		Priority: defs.DefaultPriority,
	}
	return id
}

// towerNear returns the closest tower strictly within radius of pt.
func (g *Game) towerNear(pt route.Point, radius float64) (types.EntityID, bool) {
	var (
		bestID   types.EntityID
		bestDist = radius
		found    bool
	)
	for _, id := range g.ECS.TowerIDs() {
		pos := g.ECS.Positions[id]
		d := route.Distance(pt, route.Point{X: pos.X, Y: pos.Y})
		if d < bestDist {
			bestID, bestDist, found = id, d, true
		}
	}
	return bestID, found
}

// UpgradeTower applies one upgrade level. It does not check or spend gold:
// the caller pays first (see BuyUpgrade). Unknown IDs are a no-op.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	system.UpgradeTowerStats(tower)
	slog.Debug("tower upgraded", "id", id, "level", tower.Level, "damage", tower.Config.Damage, "fire_rate", tower.Config.FireRate)

	info, _ := g.TowerInfo(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: info})
	g.refreshSelection(id)
	return true
}

// UpgradeCost returns floor(cost*0.8*level) for the tower's current level.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	return system.UpgradeCost(tower.Config.Cost, tower.Level), true
}

// BuyUpgrade charges the upgrade cost and then upgrades the tower.
func (g *Game) BuyUpgrade(id types.EntityID) bool {
	reason := ""
	cost, ok := g.UpgradeCost(id)
	switch {
	case g.ECS.GameState != component.Running:
		reason = event.ReasonGameOver
	case !ok:
		reason = event.ReasonUnknownTower
	case !g.ProgressionSystem.Spend(cost):
		reason = event.ReasonInsufficientGold
	}
	if reason != "" {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.UpgradeRejected,
			Data: event.RejectedData{Reason: reason, TowerID: id},
		})
		return false
	}

	g.UpgradeTower(id)
	g.publishStats()
	return true
}

// SetTargetingPriority changes how the tower picks among enemies in range.
func (g *Game) SetTargetingPriority(id types.EntityID, priority defs.TargetingPriority) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok || !priority.Valid() {
		return false
	}
	tower.Priority = priority
	g.refreshSelection(id)
	return true
}

// CycleTargetingPriority advances the tower to the next priority.
func (g *Game) CycleTargetingPriority(id types.EntityID) (defs.TargetingPriority, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return "", false
	}
	next := tower.Priority.Next()
	g.SetTargetingPriority(id, next)
	return next, true
}

// --- Selection ---

// TowerInfo returns a snapshot of the tower for the UI.
func (g *Game) TowerInfo(id types.EntityID) (*event.TowerInfo, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return nil, false
	}
	cost, _ := g.UpgradeCost(id)
	return &event.TowerInfo{
		ID:          id,
		Position:    *g.ECS.Positions[id],
		Config:      tower.Config,
		Priority:    tower.Priority,
		Level:       tower.Level,
		UpgradeCost: cost,
	}, true
}

// SelectTower marks the tower as selected and dispatches TowerSelected.
func (g *Game) SelectTower(id types.EntityID) bool {
	info, ok := g.TowerInfo(id)
	if !ok {
		return false
	}
	g.selectedTower = id
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected, Data: info})
	return true
}

// SelectAt selects the tower under (x, y), if any.
func (g *Game) SelectAt(x, y float64) bool {
	id, found := g.towerNear(route.Point{X: x, Y: y}, config.SelectRadius)
	if !found {
		return false
	}
	return g.SelectTower(id)
}

// Deselect clears the selection; TowerSelected carries nil.
func (g *Game) Deselect() {
	if g.selectedTower == 0 {
		return
	}
	g.selectedTower = 0
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected, Data: (*event.TowerInfo)(nil)})
}

func (g *Game) refreshSelection(id types.EntityID) {
	if g.selectedTower == id {
		g.SelectTower(id)
	}
}
