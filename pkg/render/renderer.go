// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"neon-defense/internal/app"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/utils"
	"neon-defense/pkg/route"
)

// Renderer рисует поле: предрендеренный маршрут, башни, врагов, снаряды и всплывающие цифры.
type Renderer struct {
	colors       FieldColors
	face         font.Face
	fillImg      *ebiten.Image
	fieldImage   *ebiten.Image // предрендеренный маршрут
	renderedPath *route.Path
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	Popups       *Popups
}

func NewRenderer(face font.Face) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &Renderer{
		colors:     DefaultFieldColors(),
		face:       face,
		fillImg:    fillImg,
		fieldImage: ebiten.NewImage(int(config.FieldWidth), int(config.FieldHeight)),
		strokeVs:   make([]ebiten.Vertex, 0, 256),
		strokeIs:   make([]uint16, 0, 256),
		Popups:     NewPopups(),
	}
}

// RenderFieldImage перерисовывает задник под новый маршрут.
func (r *Renderer) RenderFieldImage(path *route.Path) {
	r.renderedPath = path
	r.fieldImage.Fill(r.colors.BackgroundColor)
	if path == nil || len(path.Waypoints) < 2 {
		return
	}

	var p vector.Path
	for i, wp := range path.Waypoints {
		if i == 0 {
			p.MoveTo(float32(wp.X), float32(wp.Y))
		} else {
			p.LineTo(float32(wp.X), float32(wp.Y))
		}
	}
	r.stroke(r.fieldImage, &p, r.colors.PathWidth+2*r.colors.StrokeWidth, r.colors.PathEdgeColor)
	r.stroke(r.fieldImage, &p, r.colors.PathWidth, r.colors.PathColor)
	r.stroke(r.fieldImage, &p, 1, DarkenColor(r.colors.PathEdgeColor))

	start, end := path.Start(), path.End()
	vector.DrawFilledCircle(r.fieldImage, float32(start.X), float32(start.Y), 14, r.colors.SpawnColor, true)
	vector.DrawFilledCircle(r.fieldImage, float32(end.X), float32(end.Y), 18, r.colors.CoreColor, true)
	vector.StrokeCircle(r.fieldImage, float32(end.X), float32(end.Y), 24, 2, LightenColor(r.colors.CoreColor, 40), true)
}

func (r *Renderer) stroke(target *ebiten.Image, p *vector.Path, width float32, c color.RGBA) {
	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Update ведёт анимации, не связанные с симуляцией.
func (r *Renderer) Update(deltaTime float64) {
	r.Popups.Update(deltaTime)
}

// Draw рисует текущий снимок игры. cursorX/cursorY нужны для призрака размещения.
func (r *Renderer) Draw(screen *ebiten.Image, g *app.Game, cursorX, cursorY int) {
	if path := g.CurrentPath(); path != r.renderedPath {
		r.RenderFieldImage(path)
	}
	screen.DrawImage(r.fieldImage, nil)

	r.drawTowers(screen, g)
	r.drawEnemies(screen, g)
	r.drawProjectiles(screen, g)
	r.drawGhost(screen, g, cursorX, cursorY)
	r.drawPopups(screen)
}

func (r *Renderer) drawTowers(screen *ebiten.Image, g *app.Game) {
	selected := g.SelectedTower()
	for _, id := range g.ECS.TowerIDs() {
		tower := g.ECS.Towers[id]
		pos := g.ECS.Positions[id]
		x, y := float32(pos.X), float32(pos.Y)

		if id == selected {
			vector.DrawFilledCircle(screen, x, y, float32(tower.Config.Range), config.RangeColor, true)
			vector.StrokeCircle(screen, x, y, float32(tower.Config.Range), 1, config.SelectionColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, DarkenColor(tower.Config.Color), true)
		vector.StrokeCircle(screen, x, y, config.TowerRadius, 2, tower.Config.Color, true)

		// Уровень: точки под башней
		pips := min(tower.Level, 8)
		startX := x - float32(pips-1)*3
		for i := 0; i < pips; i++ {
			vector.DrawFilledCircle(screen, startX+float32(i)*6, y+config.TowerRadius+6, 2, LightenColor(tower.Config.Color, 60), true)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, g *app.Game) {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		radius := float32(config.EnemyRadius)
		if enemy.Archetype == defs.Boss {
			radius = config.BossRadius
		}
		c := EnemyColor(enemy.Archetype)
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
		vector.StrokeCircle(screen, x, y, radius+2, 1, WithAlpha(c, 0.5), true)

		if health.Max <= 0 || health.Value >= health.Max {
			continue
		}
		const barWidth, barHeight = 24, 4
		barY := y - radius - 8
		vector.DrawFilledRect(screen, x-barWidth/2, barY, barWidth, barHeight, config.HealthBarBack, false)
		frac := float32(utils.Clamp(health.Value/health.Max, 0, 1))
		vector.DrawFilledRect(screen, x-barWidth/2, barY, barWidth*frac, barHeight, config.HealthBarFront, false)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, g *app.Game) {
	for _, id := range g.ECS.ProjectileIDs() {
		proj := g.ECS.Projectiles[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, proj.Color, true)
	}
}

func (r *Renderer) drawGhost(screen *ebiten.Image, g *app.Game, cursorX, cursorY int) {
	typeID := g.PlacementType()
	if typeID == "" || float64(cursorY) >= config.FieldHeight {
		return
	}
	def, ok := g.Towers.Get(typeID)
	if !ok {
		return
	}
	x, y := float32(cursorX), float32(cursorY)
	c := def.Color
	if g.PlacementCheck(typeID, float64(cursorX), float64(cursorY)) != "" {
		c = config.RejectColor
	}
	vector.DrawFilledCircle(screen, x, y, float32(def.Range), WithAlpha(c, 0.12), true)
	vector.StrokeCircle(screen, x, y, float32(def.Range), 1, WithAlpha(c, 0.6), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, WithAlpha(c, 0.5), true)
}

func (r *Renderer) drawPopups(screen *ebiten.Image) {
	for _, p := range r.Popups.Items() {
		bounds := text.BoundString(r.face, p.Text)
		x := int(p.X) - bounds.Dx()/2
		y := int(p.Y - p.Offset())
		text.Draw(screen, p.Text, r.face, x, y, WithAlpha(p.Color, p.Alpha()))
	}
}
