package component

// GameState — терминальное состояние симуляции
type GameState int

const (
	Running GameState = iota
	GameOver
	Won
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case Won:
		return "win"
	default:
		return "unknown"
	}
}
