// internal/defs/damage.go
package defs

// HitKind classifies a hit for cosmetic feedback.
type HitKind int

const (
	HitNormal HitKind = iota
	HitResisted
	HitBoosted
)

func (k HitKind) String() string {
	switch k {
	case HitResisted:
		return "resisted"
	case HitBoosted:
		return "boosted"
	default:
		return "normal"
	}
}

const (
	heavyRapidFactor  = 0.5
	heavySniperFactor = 1.25
)

// ResistanceFactor returns the damage multiplier for a tower type hitting an archetype.
// Тяжелые враги (GOLIATH, BOSS) гасят скорострельные башни и уязвимы к снайперским.
func ResistanceFactor(a Archetype, towerTypeID string) float64 {
	if !a.Lookup().Heavy {
		return 1
	}
	switch towerTypeID {
	case TowerRapid:
		return heavyRapidFactor
	case TowerSniper:
		return heavySniperFactor
	default:
		return 1
	}
}

// ClassifyHit compares the final damage against the base damage.
func ClassifyHit(base, final float64) HitKind {
	switch {
	case final < base:
		return HitResisted
	case final > base:
		return HitBoosted
	default:
		return HitNormal
	}
}
