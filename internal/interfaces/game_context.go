// internal/interfaces/game_context.go
package interfaces

import "neon-defense/pkg/route"

// GameContext — то, что системам нужно от Game. Разрывает циклическую
// зависимость system <-> app.
type GameContext interface {
	CurrentPath() *route.Path
	RegeneratePath(level int)
}
