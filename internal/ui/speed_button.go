// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"neon-defense/internal/config"
)

// SpeedButton — кнопка перемотки. Каждый клик переключает множитель x1..x16.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, c)
		strokePath(screen, &path, 1, config.TextLightColor)
	}

	label := fmt.Sprintf("x%g", config.GameSpeeds[b.CurrentState%len(config.GameSpeeds)])
	DrawCentered(screen, label, face, int(b.X), int(b.Y+height/2+12), config.TextLightColor)
}

// IsClicked использует круг для определения попадания, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetSpeed syncs the button with the game's multiplier.
func (b *SpeedButton) SetSpeed(multiplier float64) {
	for i, s := range config.GameSpeeds {
		if s == multiplier {
			if i != b.CurrentState {
				b.LastClickTime = time.Now()
			}
			b.CurrentState = i
			return
		}
	}
}
