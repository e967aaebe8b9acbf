package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"neon-defense/internal/config"
	"neon-defense/internal/defs"
)

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 50, G: 100, B: 0, A: 255}, DarkenColor(color.RGBA{R: 100, G: 200, B: 1, A: 255}))
}

func TestLightenColor_Clamps(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 140, B: 40, A: 7}, LightenColor(color.RGBA{R: 250, G: 100, B: 0, A: 7}, 40))
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, WithAlpha(c, 0.5))
	assert.Equal(t, c, WithAlpha(c, 3))
	assert.Equal(t, color.RGBA{}, WithAlpha(c, -1))
}

func TestEnemyColor(t *testing.T) {
	assert.Equal(t, config.EnemyColors["BOSS"], EnemyColor(defs.Boss))
	assert.Equal(t, config.TextLightColor, EnemyColor(defs.Archetype("GHOST")))
}

func TestHitColor(t *testing.T) {
	assert.Equal(t, config.TextDimColor, HitColor(defs.HitResisted))
	assert.Equal(t, config.TextLightColor, HitColor(defs.HitNormal))
	assert.NotEqual(t, HitColor(defs.HitNormal), HitColor(defs.HitBoosted))
}
