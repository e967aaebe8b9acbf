package component

import "neon-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Archetype defs.Archetype
	Progress  float64 // t ∈ [0,1], 1 это ядро
	Level     int     // уровень, на котором враг появился
}
