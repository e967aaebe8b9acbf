// component/tower.go
package component

import "neon-defense/internal/defs"

type Tower struct {
	// Config — собственная копия определения; улучшения меняют Damage и FireRate.
	Config       defs.TowerDefinition
	Level        int
	Priority     defs.TargetingPriority
	NextFireTime float64 // время симуляции, ms
}
