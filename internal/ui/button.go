// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"neon-defense/internal/config"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Color   color.RGBA
	Enabled bool
	Active  bool // подсветка, например выбранная в палитре башня
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, c color.RGBA) *Button {
	return &Button{
		Rect:    rect,
		Text:    label,
		Color:   c,
		Enabled: true,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.Color
	if !b.Enabled {
		bg = color.RGBA{R: bg.R / 3, G: bg.G / 3, B: bg.B / 3, A: bg.A}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)

	border := config.PathEdgeColor
	if b.Active {
		border = config.SelectionColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	textColor := config.TextLightColor
	if !b.Enabled {
		textColor = config.TextDimColor
	}
	center := b.Rect.Min.Add(b.Rect.Size().Div(2))
	DrawCentered(screen, b.Text, face, center.X, center.Y, textColor)
}
