// pkg/render/popups.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"neon-defense/internal/event"
)

const (
	popupLifetime = 0.8 // секунды реального времени
	popupRise     = 30.0
	maxPopups     = 64
)

// Popup — всплывающая цифра над полем.
type Popup struct {
	Text  string
	X, Y  float64
	Color color.RGBA
	Age   float64
}

// Alpha fades the popup out over its lifetime.
func (p Popup) Alpha() float64 {
	return max(0, 1-p.Age/popupLifetime)
}

// Offset — насколько цифра уже поднялась.
func (p Popup) Offset() float64 {
	return popupRise * math.Min(1, p.Age/popupLifetime)
}

// Popups collects damage numbers and kill rewards from simulation events.
type Popups struct {
	items []Popup
}

func NewPopups() *Popups {
	return &Popups{}
}

// OnEvent реализует интерфейс event.Listener.
func (p *Popups) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDamaged:
		data, ok := e.Data.(event.EnemyDamagedData)
		if !ok {
			return
		}
		p.push(Popup{
			Text:  fmt.Sprintf("%.0f", data.Damage),
			X:     data.Position.X,
			Y:     data.Position.Y - 12,
			Color: HitColor(data.Kind),
		})
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		p.push(Popup{
			Text:  fmt.Sprintf("+%d", data.Gold),
			X:     data.Position.X,
			Y:     data.Position.Y - 20,
			Color: color.RGBA{R: 255, G: 215, B: 0, A: 255},
		})
	case event.LevelCompleted, event.GameOver, event.GameWon:
		p.items = p.items[:0]
	}
}

func (p *Popups) push(item Popup) {
	if len(p.items) >= maxPopups {
		p.items = p.items[1:]
	}
	p.items = append(p.items, item)
}

// Update ages popups and drops expired ones.
func (p *Popups) Update(deltaTime float64) {
	alive := p.items[:0]
	for _, item := range p.items {
		item.Age += deltaTime
		if item.Age < popupLifetime {
			alive = append(alive, item)
		}
	}
	p.items = alive
}

func (p *Popups) Items() []Popup {
	return p.items
}
