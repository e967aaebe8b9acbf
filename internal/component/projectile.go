// internal/component/projectile.go
package component

import (
	"image/color"

	"neon-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// TargetID — несобственная ссылка на врага; перед каждым использованием проверяется, жива ли цель.
type Projectile struct {
	TargetID      types.EntityID
	SourceTowerID types.EntityID
	SourceTypeID  string // ID типа башни, для таблицы сопротивлений
	Damage        float64
	Speed         float64
	Age           float64 // ms
	Color         color.RGBA
}
