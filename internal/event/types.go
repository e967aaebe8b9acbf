// internal/event/types.go
package event

import (
	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/pkg/route"
	"neon-defense/internal/types"
)

const (
	WaveStarted       EventType = "WaveStarted"
	WaveEnded         EventType = "WaveEnded" // Волна закончилась
	EnemySpawned      EventType = "EnemySpawned"
	EnemyDamaged      EventType = "EnemyDamaged"
	EnemyKilled       EventType = "EnemyKilled" // Враг уничтожен башней
	EnemyLeaked       EventType = "EnemyLeaked" // Враг дошел до ядра
	ProjectileFired   EventType = "ProjectileFired"
	TowerPlaced       EventType = "TowerPlaced" // Башня построена
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSelected     EventType = "TowerSelected" // Data: *TowerInfo, nil при снятии выбора
	PlacementRejected EventType = "PlacementRejected"
	UpgradeRejected   EventType = "UpgradeRejected"
	LevelCompleted    EventType = "LevelCompleted"
	GameOver          EventType = "GameOver"
	GameWon           EventType = "GameWon"
	StatsUpdated      EventType = "StatsUpdated" // Data: component.Stats (копия)
)

// Rejection reasons.
const (
	ReasonInsufficientGold = "insufficient_gold"
	ReasonOnPath           = "on_path"
	ReasonOccupied         = "occupied"
	ReasonOutOfBounds      = "out_of_bounds"
	ReasonUnknownTower     = "unknown_tower"
	ReasonGameOver         = "game_over"
)

// EnemyKilledData описывает убийство и выданную награду.
type EnemyKilledData struct {
	EnemyID   types.EntityID
	Archetype defs.Archetype
	Position  component.Position
	Gold      int
	Score     int
}

// EnemyDamagedData — ветка урона нужна рендеру для всплывающих цифр.
type EnemyDamagedData struct {
	EnemyID  types.EntityID
	Position component.Position
	Damage   float64
	Kind     defs.HitKind
}

type EnemyLeakedData struct {
	EnemyID   types.EntityID
	Archetype defs.Archetype
	LivesLeft int
}

type LevelCompletedData struct {
	Level int // новый уровень
	Bonus int
	Path  *route.Path
}

type RejectedData struct {
	Reason      string
	TowerTypeID string
	TowerID     types.EntityID
	X, Y        float64
}

// TowerInfo — снимок башни для внешних наблюдателей.
type TowerInfo struct {
	ID          types.EntityID
	Position    component.Position
	Config      defs.TowerDefinition
	Priority    defs.TargetingPriority
	Level       int
	UpgradeCost int
}
