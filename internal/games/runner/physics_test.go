package runner

import (
	"math"
	"testing"
)

func TestStepPhysicsStaysAboveGround(t *testing.T) {
	cfg := testConfig()
	restY := cfg.RestY()

	deltas := []float64{0.001, 1.0 / 120, 1.0 / 60, 1.0 / 30, cfg.Physics.MaxDelta}
	for _, dt := range deltas {
		p := Player{X: cfg.Player.X, Y: restY, VY: cfg.Physics.JumpVelocity}
		landed := false
		for i := 0; i < 2000 && !landed; i++ {
			StepPhysics(&p, dt, cfg.Physics, restY)
			if p.Y > restY {
				t.Fatalf("dt=%v: player sank below rest: y=%v rest=%v", dt, p.Y, restY)
			}
			if p.Grounded != (p.Y == restY) {
				t.Fatalf("dt=%v: grounded=%v at y=%v rest=%v", dt, p.Grounded, p.Y, restY)
			}
			landed = p.Grounded
		}
		if !landed {
			t.Errorf("dt=%v: player never landed", dt)
		}
		if p.VY != 0 {
			t.Errorf("dt=%v: landed with velocity %v", dt, p.VY)
		}
	}
}

func TestStepPhysicsGroundedStaysPut(t *testing.T) {
	cfg := testConfig()
	restY := cfg.RestY()
	p := Player{X: cfg.Player.X, Y: restY, Grounded: true}

	for i := 0; i < 100; i++ {
		StepPhysics(&p, 1.0/60, cfg.Physics, restY)
	}
	if p.Y != restY || p.VY != 0 || !p.Grounded {
		t.Errorf("grounded player drifted: %+v", p)
	}
}

func TestStepPhysicsZeroStepKeepsLaunch(t *testing.T) {
	cfg := testConfig()
	restY := cfg.RestY()
	p := Player{X: cfg.Player.X, Y: restY, VY: cfg.Physics.JumpVelocity}

	StepPhysics(&p, 0, cfg.Physics, restY)
	if p.Grounded || p.VY != cfg.Physics.JumpVelocity {
		t.Fatalf("zero step snapped a launching player: %+v", p)
	}
	StepPhysics(&p, 1.0/60, cfg.Physics, restY)
	if p.Y >= restY {
		t.Errorf("player did not leave the ground: y=%v rest=%v", p.Y, restY)
	}
}

func TestJumpApexMatchesIntegration(t *testing.T) {
	cfg := testConfig()
	restY := cfg.RestY()
	p := Player{Y: restY, VY: cfg.Physics.JumpVelocity}

	highest := restY
	for i := 0; i < 1000 && !p.Grounded; i++ {
		StepPhysics(&p, 1.0/240, cfg.Physics, restY)
		highest = math.Min(highest, p.Y)
	}

	apex := JumpApex(cfg.Physics)
	if got := restY - highest; math.Abs(got-apex) > apex*0.02 {
		t.Errorf("apex = %v, expected about %v", got, apex)
	}
}

func TestSanitizeDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal", 0.016, 0.016},
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"nan", math.NaN(), 0},
		{"spike", 3.0, 0.035},
		{"inf", math.Inf(1), 0.035},
		{"at bound", 0.035, 0.035},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeDelta(tt.dt, 0.035); got != tt.want {
				t.Errorf("SanitizeDelta(%v) = %v, expected %v", tt.dt, got, tt.want)
			}
		})
	}
}
