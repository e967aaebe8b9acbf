// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"neon-defense/internal/config"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает жизни ядра сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует индикатор: живые кружки цвета ядра, потерянные тёмные.
// Когда жизней остаётся четверть, живые кружки краснеют.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face font.Face) {
	if maxLives <= 0 {
		return
	}
	alive := config.CoreColor
	if lives*4 <= maxLives {
		alive = config.RejectColor
	}
	empty := color.RGBA{R: 30, G: 30, B: 40, A: 255}

	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius

		c := empty
		if j < lives {
			c = alive
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, config.TextDimColor, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	width := float32(LivesCols) * step
	DrawCentered(screen, label, face, int(i.X+width/2), int(i.Y)-10, config.TextLightColor)
}
