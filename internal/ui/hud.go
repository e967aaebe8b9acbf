// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-defense/internal/briefing"
	"neon-defense/internal/component"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/event"
	"neon-defense/pkg/render"
)

const (
	flashDuration    = 0.6 // секунды реального времени
	briefingDuration = 4.0
	paletteWidth     = 140
	paletteHeight    = 56
)

// HUDActionKind — что сделал клик по нижней панели.
type HUDActionKind int

const (
	HUDNone HUDActionKind = iota
	HUDPalette
	HUDStartWave
	HUDSpeed
	HUDPause
)

type HUDAction struct {
	Kind        HUDActionKind
	TowerTypeID string
}

var reasonText = map[string]string{
	event.ReasonInsufficientGold: "Not enough gold",
	event.ReasonOnPath:           "Too close to the path",
	event.ReasonOccupied:         "Spot already taken",
	event.ReasonOutOfBounds:      "Outside the field",
	event.ReasonUnknownTower:     "Unknown tower",
	event.ReasonGameOver:         "The run is over",
}

type paletteEntry struct {
	def    defs.TowerDefinition
	button *Button
}

// HUD — нижняя панель: статистика, палитра башен, старт волны, скорость, пауза.
// Получает снимки статистики через события и никогда не читает живое состояние.
type HUD struct {
	fonts       *Fonts
	palette     []paletteEntry
	startWave   *Button
	indicator   *StateIndicator
	Speed       *SpeedButton
	Pause       *PauseButton
	wave        *WaveIndicator
	lives       *LivesIndicator
	maxLives    int
	stats       component.Stats
	flashTime   float64
	flashText   string
	brief       briefing.Briefing
	briefTime   float64
	elapsedTime float64
}

func NewHUD(fonts *Fonts, towers []defs.TowerDefinition, maxLives int) *HUD {
	top := int(config.FieldHeight + (config.HUDHeight-paletteHeight)/2)
	h := &HUD{
		fonts:     fonts,
		Speed:     NewSpeedButton(config.ScreenWidth-125, config.FieldHeight+42, 14, config.SpeedButtonColors),
		Pause:     NewPauseButton(config.ScreenWidth-45, config.FieldHeight+42, 12, config.PathEdgeColor, config.CoreColor),
		wave:      NewWaveIndicator(config.ScreenWidth/2, 50),
		indicator: NewStateIndicator(825, config.FieldHeight+config.HUDHeight/2, 12),
		lives:     NewLivesIndicator(860, config.FieldHeight+34),
		maxLives:  maxLives,
	}
	x := 190
	for _, def := range towers {
		rect := image.Rect(x, top, x+paletteWidth, top+paletteHeight)
		h.palette = append(h.palette, paletteEntry{
			def:    def,
			button: NewButton(rect, fmt.Sprintf("%s  %dg", def.Name, def.Cost), render.DarkenColor(def.Color)),
		})
		x += paletteWidth + 10
	}
	h.startWave = NewButton(image.Rect(x+10, top, x+10+paletteWidth, top+paletteHeight), "START WAVE", color.RGBA{R: 30, G: 110, B: 70, A: 255})
	return h
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatsUpdated:
		if stats, ok := e.Data.(component.Stats); ok {
			h.stats = stats
			h.Speed.SetSpeed(stats.GameSpeed)
			h.indicator.SetWaveActive(stats.WaveActive)
		}
	case event.PlacementRejected, event.UpgradeRejected:
		if data, ok := e.Data.(event.RejectedData); ok {
			h.flashText = reasonText[data.Reason]
			h.flashTime = flashDuration
		}
	}
}

// ShowBriefing shows the level title and text over the field for a few seconds.
func (h *HUD) ShowBriefing(b briefing.Briefing) {
	h.brief = b
	h.briefTime = briefingDuration
}

// Update ведёт косметические таймеры в реальном времени.
func (h *HUD) Update(deltaTime float64) {
	h.elapsedTime += deltaTime
	h.flashTime = max(0, h.flashTime-deltaTime)
	h.briefTime = max(0, h.briefTime-deltaTime)
}

// HandleClick maps a click to a HUD action. Disabled buttons do nothing.
func (h *HUD) HandleClick(x, y int) HUDAction {
	for _, entry := range h.palette {
		if entry.button.Contains(x, y) {
			return HUDAction{Kind: HUDPalette, TowerTypeID: entry.def.ID}
		}
	}
	switch {
	case (h.startWave.Contains(x, y) || h.indicator.IsClicked(x, y)) && h.startWave.Enabled:
		return HUDAction{Kind: HUDStartWave}
	case h.Speed.IsClicked(x, y):
		return HUDAction{Kind: HUDSpeed}
	case h.Pause.IsClicked(x, y):
		return HUDAction{Kind: HUDPause}
	}
	return HUDAction{Kind: HUDNone}
}

// Contains reports whether the point is on the HUD band.
func (h *HUD) Contains(_, y int) bool {
	return y >= config.FieldHeight
}

func (h *HUD) Draw(screen *ebiten.Image, placementType string) {
	shake := float32(0)
	if h.flashTime > 0 {
		shake = float32(math.Sin(h.elapsedTime*60) * 4 * h.flashTime / flashDuration)
	}

	vector.DrawFilledRect(screen, 0, config.FieldHeight, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	vector.StrokeLine(screen, 0, config.FieldHeight, config.ScreenWidth, config.FieldHeight, 2, config.PathEdgeColor, true)

	goldColor := config.TextLightColor
	if h.flashTime > 0 {
		goldColor = config.RejectColor
	}
	text.Draw(screen, fmt.Sprintf("Gold  %d", h.stats.Gold), h.fonts.Title, 20+int(shake), config.FieldHeight+38, goldColor)
	text.Draw(screen, fmt.Sprintf("Score %d", h.stats.Score), h.fonts.Regular, 20, config.FieldHeight+64, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Towers %d", h.stats.TowerCount), h.fonts.Regular, 20, config.FieldHeight+84, config.TextDimColor)

	for _, entry := range h.palette {
		entry.button.Enabled = h.stats.Gold >= entry.def.Cost
		entry.button.Active = entry.def.ID == placementType
		entry.button.Draw(screen, h.fonts.Regular)
	}
	h.startWave.Enabled = !h.stats.WaveActive
	if h.stats.WaveActive {
		h.startWave.Text = "WAVE ACTIVE"
	} else {
		h.startWave.Text = "START WAVE"
	}
	h.startWave.Draw(screen, h.fonts.Regular)

	h.indicator.Draw(screen, h.stats.Level%config.BossInterval == 0)
	h.lives.Draw(screen, h.stats.Lives, h.maxLives, h.fonts.Regular)
	h.Speed.Draw(screen, h.fonts.Regular)
	h.Pause.Draw(screen)

	h.wave.Draw(screen, h.stats.Level, h.fonts.Large)

	if h.flashTime > 0 && h.flashText != "" {
		DrawCentered(screen, h.flashText, h.fonts.Title, config.ScreenWidth/2+int(shake), config.FieldHeight-24, config.RejectColor)
	}
	if h.briefTime > 0 {
		alpha := min(1, h.briefTime)
		titleColor := fade(config.TextLightColor, alpha)
		bodyColor := fade(color.RGBA{R: 170, G: 190, B: 220, A: 255}, alpha)
		DrawCentered(screen, h.brief.Title, h.fonts.Title, config.ScreenWidth/2, 95, titleColor)
		DrawCentered(screen, h.brief.Text, h.fonts.Regular, config.ScreenWidth/2, 120, bodyColor)
	}
}
