package runner

import (
	"math"

	"github.com/vovakirdan/tap-runner/internal/config"
)

// StepPhysics integrates the player's vertical motion over dt seconds and
// snaps it to the ground when it lands. A player moving up is never snapped,
// so a jump launched from rest survives a zero step.
func StepPhysics(p *Player, dt float64, phys config.RunnerPhysics, restY float64) {
	p.VY += phys.Gravity * dt
	p.Y += p.VY * dt

	if p.Y >= restY && p.VY >= 0 {
		p.Y = restY
		p.VY = 0
		p.Grounded = true
		return
	}
	p.Grounded = false
}

// SanitizeDelta turns a raw frame delta into a usable step: negative and NaN
// deltas become 0 and long stalls are clamped to maxDelta.
func SanitizeDelta(dt, maxDelta float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if math.IsInf(dt, 1) || dt > maxDelta {
		return maxDelta
	}
	return dt
}
