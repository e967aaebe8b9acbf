// pkg/render/color.go
package render

import (
	"image/color"

	"neon-defense/internal/config"
	"neon-defense/internal/defs"
)

// FieldColors holds all the color definitions needed to render the static field background.
type FieldColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	PathEdgeColor   color.RGBA
	SpawnColor      color.RGBA
	CoreColor       color.RGBA
	PathWidth       float32
	StrokeWidth     float32
}

// DefaultFieldColors — неоновая палитра из config.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		SpawnColor:      config.SpawnColor,
		CoreColor:       config.CoreColor,
		PathWidth:       config.PathClearance,
		StrokeWidth:     2,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor brightens a color by amount, clamped at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// WithAlpha scales a premultiplied color to the given alpha in [0,1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// EnemyColor returns the archetype color; unknown archetypes are white.
func EnemyColor(a defs.Archetype) color.RGBA {
	if c, ok := config.EnemyColors[string(a)]; ok {
		return c
	}
	return config.TextLightColor
}

// HitColor — цвет всплывающей цифры урона.
func HitColor(kind defs.HitKind) color.RGBA {
	switch kind {
	case defs.HitResisted:
		return config.TextDimColor
	case defs.HitBoosted:
		return color.RGBA{R: 255, G: 150, B: 30, A: 255}
	default:
		return config.TextLightColor
	}
}
