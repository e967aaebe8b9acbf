// internal/component/wave.go
package component

// Wave — состояние текущей волны
type Wave struct {
	Level            int
	InProgress       bool
	EnemiesRemaining int     // сколько врагов осталось заспавнить
	NextSpawnTime    float64 // время симуляции, ms
	Boss             bool
}
