// internal/defs/enemies.go
package defs

// Archetype — категория врага. Влияет только на множители и таблицу сопротивлений.
type Archetype string

const (
	Scout    Archetype = "SCOUT"
	Sentinel Archetype = "SENTINEL"
	Goliath  Archetype = "GOLIATH"
	Boss     Archetype = "BOSS"
)

// ArchetypeDefinition holds the per-archetype multipliers applied on top of level stats.
type ArchetypeDefinition struct {
	HealthMult float64
	SpeedMult  float64
	GoldMult   float64
	ScoreMult  float64
	// Heavy archetypes shrug off rapid fire and are exposed to sniper rounds.
	Heavy bool
}

// Archetypes is the stat table for every enemy archetype.
// Множитель здоровья босса зависит от уровня, см. HealthMultiplier.
var Archetypes = map[Archetype]ArchetypeDefinition{
	Scout:    {HealthMult: 0.5, SpeedMult: 1.7, GoldMult: 1, ScoreMult: 1},
	Sentinel: {HealthMult: 1, SpeedMult: 1, GoldMult: 1, ScoreMult: 1},
	Goliath:  {HealthMult: 4, SpeedMult: 0.6, GoldMult: 2.5, ScoreMult: 2, Heavy: true},
	Boss:     {SpeedMult: 0.5, GoldMult: 10, ScoreMult: 10, Heavy: true},
}

// Lookup returns the archetype definition, falling back to Sentinel for unknown values.
func (a Archetype) Lookup() ArchetypeDefinition {
	if def, ok := Archetypes[a]; ok {
		return def
	}
	return Archetypes[Sentinel]
}

// HealthMultiplier returns the hp multiplier for the archetype at the given level.
func (a Archetype) HealthMultiplier(level int) float64 {
	if a == Boss {
		return 15 + float64(level)/2
	}
	return a.Lookup().HealthMult
}
