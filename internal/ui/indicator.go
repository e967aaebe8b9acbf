// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-defense/internal/config"
)

var (
	idleStateColor = color.RGBA{0, 200, 120, 255}
	waveStateColor = config.SpawnColor
)

// StateIndicator — кружок фазы: затишье между волнами, идёт волна, босс.
// Пульсирует при смене фазы.
type StateIndicator struct {
	X, Y           float32
	Radius         float32
	LastChangeTime time.Time
	waveActive     bool
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// SetWaveActive records the phase; a change restarts the pulse.
func (i *StateIndicator) SetWaveActive(active bool) {
	if i.waveActive != active {
		i.LastChangeTime = time.Now()
	}
	i.waveActive = active
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, bossLevel bool) {
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	stateColor := idleStateColor
	switch {
	case i.waveActive && bossLevel:
		stateColor = config.BossWaveColor
	case i.waveActive:
		stateColor = waveStateColor
	}

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}
