// internal/system/clock.go
package system

import "neon-defense/internal/config"

// Clock переводит реальное время кадра во время симуляции с учётом множителя скорости.
type Clock struct {
	simTime    float64
	multiplier float64
}

func NewClock() *Clock {
	return &Clock{multiplier: 1}
}

// Advance scales the real frame delta and returns the simulated delta in ms.
func (c *Clock) Advance(realDeltaMs float64) float64 {
	if realDeltaMs <= 0 {
		return 0
	}
	simDelta := realDeltaMs * c.multiplier
	c.simTime += simDelta
	return simDelta
}

// Now returns accumulated simulated time in ms.
func (c *Clock) Now() float64 { return c.simTime }

func (c *Clock) Multiplier() float64 { return c.multiplier }

// SetMultiplier applies one of config.GameSpeeds; other values are ignored.
// The change affects the next Advance call.
func (c *Clock) SetMultiplier(m float64) bool {
	if !config.IsValidSpeed(m) {
		return false
	}
	c.multiplier = m
	return true
}

// Reset zeroes simulated time and restores x1 speed.
func (c *Clock) Reset() {
	c.simTime = 0
	c.multiplier = 1
}
