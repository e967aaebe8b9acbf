// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-defense/internal/config"
	"neon-defense/internal/event"
)

const (
	panelHeight    = 130
	panelWidth     = 560
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 170
)

// PanelAction — результат клика по панели башни.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelPriority
	PanelClose
)

// InfoPanel показывает выбранную башню: характеристики, апгрейд и приоритет.
type InfoPanel struct {
	IsVisible      bool
	info           *event.TowerInfo
	fonts          *Fonts
	currentY       float64
	targetY        float64
	UpgradeButton  *Button
	PriorityButton *Button
}

// NewInfoPanel creates a hidden panel below the field edge.
func NewInfoPanel(fonts *Fonts) *InfoPanel {
	return &InfoPanel{
		fonts:          fonts,
		currentY:       config.FieldHeight,
		targetY:        config.FieldHeight,
		UpgradeButton:  NewButton(image.Rectangle{}, "", color.RGBA{R: 150, G: 110, B: 20, A: 255}),
		PriorityButton: NewButton(image.Rectangle{}, "", color.RGBA{R: 50, G: 80, B: 130, A: 255}),
	}
}

// OnEvent реализует интерфейс event.Listener (TowerSelected).
func (p *InfoPanel) OnEvent(e event.Event) {
	if e.Type != event.TowerSelected {
		return
	}
	info, _ := e.Data.(*event.TowerInfo)
	if info == nil {
		p.Hide()
		return
	}
	p.info = info
	p.IsVisible = true
	p.targetY = config.FieldHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.FieldHeight
}

// Update анимирует выезд панели.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.FieldHeight {
		p.IsVisible = false
		p.info = nil
	}
}

func (p *InfoPanel) rect() image.Rectangle {
	left := (config.ScreenWidth - panelWidth) / 2
	return image.Rect(left, int(p.currentY)+panelMargin, left+panelWidth, int(p.currentY)+panelHeight-panelMargin)
}

// Contains reports whether a click lands on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

// HandleClick maps a click inside the panel to an action.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.Contains(x, y) || p.info == nil {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Contains(x, y) && p.UpgradeButton.Enabled:
		return PanelUpgrade
	case p.PriorityButton.Contains(x, y):
		return PanelPriority
	}
	return PanelClose
}

func (p *InfoPanel) Draw(screen *ebiten.Image, gold int) {
	if !p.IsVisible || p.info == nil {
		return
	}
	panelRect := p.rect()

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, p.info.Config.Color, true)

	p.drawTowerInfo(screen, panelRect.Min.X+15, panelRect.Min.Y+15)

	btnWidth, btnHeight := 170, 36
	p.UpgradeButton.Rect = image.Rect(panelRect.Max.X-btnWidth-15, panelRect.Min.Y+15, panelRect.Max.X-15, panelRect.Min.Y+15+btnHeight)
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade  %dg", p.info.UpgradeCost)
	p.UpgradeButton.Enabled = gold >= p.info.UpgradeCost
	p.UpgradeButton.Draw(screen, p.fonts.Regular)

	p.PriorityButton.Rect = p.UpgradeButton.Rect.Add(image.Pt(0, btnHeight+10))
	p.PriorityButton.Text = "Target: " + string(p.info.Priority)
	p.PriorityButton.Draw(screen, p.fonts.Regular)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, startX, startY int) {
	cfg := p.info.Config
	y := startY + 18
	text.Draw(screen, fmt.Sprintf("%s  Lv %d", cfg.Name, p.info.Level), p.fonts.Title, startX, y, config.TextLightColor)
	y += lineHeight + 6

	text.Draw(screen, fmt.Sprintf("Damage: %.0f", cfg.Damage), p.fonts.Regular, startX, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Range: %.0f", cfg.Range), p.fonts.Regular, startX+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Reload: %.0f ms", cfg.FireRate), p.fonts.Regular, startX, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Type: %s", cfg.ID), p.fonts.Regular, startX+columnSpacing, y, config.TextDimColor)
}
