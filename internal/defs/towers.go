// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// Идентификаторы стандартных типов башен. Сопротивления врагов завязаны на них.
const (
	TowerBasic  = "basic"
	TowerSniper = "sniper"
	TowerRapid  = "rapid"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Cost     int        `json:"cost"`
	Damage   float64    `json:"damage"`
	Range    float64    `json:"range"`
	FireRate float64    `json:"fire_rate_ms"` // пауза между выстрелами, ms
	Color    color.RGBA `json:"color"`
}

// Validate checks that the definition can be placed and fired.
func (d TowerDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("tower definition without id")
	case d.Cost < 0:
		return fmt.Errorf("tower %s: negative cost %d", d.ID, d.Cost)
	case d.Damage <= 0:
		return fmt.Errorf("tower %s: damage must be positive", d.ID)
	case d.Range <= 0:
		return fmt.Errorf("tower %s: range must be positive", d.ID)
	case d.FireRate <= 0:
		return fmt.Errorf("tower %s: fire_rate_ms must be positive", d.ID)
	}
	return nil
}

// DefaultTowers returns the three stock archetypes: Striker, Longshot and Swarm.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			ID:       TowerBasic,
			Name:     "Striker",
			Cost:     150,
			Damage:   25,
			Range:    160,
			FireRate: 800,
			Color:    color.RGBA{0, 200, 255, 255},
		},
		{
			ID:       TowerSniper,
			Name:     "Longshot",
			Cost:     350,
			Damage:   120,
			Range:    340,
			FireRate: 2200,
			Color:    color.RGBA{255, 0, 200, 255},
		},
		{
			ID:       TowerRapid,
			Name:     "Swarm",
			Cost:     250,
			Damage:   8,
			Range:    140,
			FireRate: 150,
			Color:    color.RGBA{120, 255, 80, 255},
		},
	}
}

// TowerLibrary is an ordered, read-only set of tower definitions keyed by ID.
type TowerLibrary struct {
	defs  map[string]TowerDefinition
	order []string
}

// NewTowerLibrary validates definitions and rejects duplicate IDs.
func NewTowerLibrary(towerDefs []TowerDefinition) (*TowerLibrary, error) {
	if len(towerDefs) == 0 {
		return nil, fmt.Errorf("empty tower library")
	}
	lib := &TowerLibrary{defs: make(map[string]TowerDefinition, len(towerDefs))}
	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.defs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		lib.defs[def.ID] = def
		lib.order = append(lib.order, def.ID)
	}
	return lib, nil
}

// MustDefaultLibrary builds the stock library; it panics only if DefaultTowers is broken.
func MustDefaultLibrary() *TowerLibrary {
	lib, err := NewTowerLibrary(DefaultTowers())
	if err != nil {
		panic(err)
	}
	return lib
}

// Get returns a copy of the definition with the given ID.
func (l *TowerLibrary) Get(id string) (TowerDefinition, bool) {
	def, ok := l.defs[id]
	return def, ok
}

// All returns definitions in load order.
func (l *TowerLibrary) All() []TowerDefinition {
	out := make([]TowerDefinition, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.defs[id])
	}
	return out
}

func (l *TowerLibrary) Len() int { return len(l.order) }
