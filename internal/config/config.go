// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // секунды, ограничение реального шага кадра

	// Игровое поле занимает верхнюю часть окна, под ним панель HUD.
	FieldWidth  = 1200.0
	FieldHeight = 800.0
	PathMargin  = 100.0 // отступ полосы генерации пути от верхнего и нижнего края

	PathBaseSegments   = 3
	PathSegmentDivisor = 2.5
	PathMaxSegments    = 15
	PathSampleStep     = 0.005
	PathClearance      = 35.0 // минимальное расстояние от башни до маршрута
	TowerFootprint     = 30.0 // минимальное расстояние между башнями
	SelectRadius       = 20.0 // радиус клика для выбора башни

	StartingGold  = 650
	StartingLives = 20
	MaxLevel      = 30
	BossInterval  = 10

	// Прогресс врага: t += speed*simDelta/ProgressScale.
	ProgressScale = 100000.0

	BaseSpawnInterval = 1200.0 // ms
	SpawnLevelFactor  = 0.4

	ProjectileSpeed     = 850.0  // units per second
	ProjectileHitRadius = 15.0
	ProjectileLifetime  = 3000.0 // ms симуляции
	ProjectileRadius    = 4.0

	EnemyRadius = 10.0
	BossRadius  = 18.0
	TowerRadius = 14.0

	UpgradeCostFactor = 0.8
	UpgradeDamageMult = 1.5
	UpgradeRateMult   = 0.85

	HUDHeight = ScreenHeight - FieldHeight
)

// GameSpeeds — допустимые множители скорости симуляции.
var GameSpeeds = []float64{1, 2, 4, 8, 16}

// IsValidSpeed reports whether m is one of GameSpeeds.
func IsValidSpeed(m float64) bool {
	for _, s := range GameSpeeds {
		if s == m {
			return true
		}
	}
	return false
}

var (
	BackgroundColor = color.RGBA{12, 14, 24, 255}
	PathColor       = color.RGBA{40, 60, 90, 255}
	PathEdgeColor   = color.RGBA{70, 110, 160, 255}
	CoreColor       = color.RGBA{0, 220, 255, 255}
	SpawnColor      = color.RGBA{255, 80, 120, 255}
	HUDColor        = color.RGBA{20, 22, 36, 240}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 170, 255}
	RejectColor     = color.RGBA{220, 60, 60, 255}
	SelectionColor  = color.RGBA{255, 255, 255, 200}
	RangeColor      = color.RGBA{255, 255, 255, 40}
	HealthBarBack   = color.RGBA{60, 0, 0, 255}
	HealthBarFront  = color.RGBA{0, 220, 90, 255}
	BossWaveColor   = color.RGBA{255, 60, 60, 255}

	EnemyColors = map[string]color.RGBA{
		"SCOUT":    {255, 210, 0, 255},
		"SENTINEL": {255, 90, 60, 255},
		"GOLIATH":  {170, 60, 230, 255},
		"BOSS":     {255, 20, 80, 255},
	}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{60, 180, 120, 220},  // x2
		{194, 178, 128, 255}, // x4
		{220, 120, 40, 230},  // x8
		{220, 60, 60, 230},   // x16
	}
)
