package component

// Stats — экономика и прогресс. Наружу уходит только копия (GameStats snapshot).
type Stats struct {
	Gold       int
	Lives      int
	Level      int
	Score      int
	TowerCount int
	WaveActive bool
	GameSpeed  float64
}
