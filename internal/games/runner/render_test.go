package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tap-runner/internal/core"
)

func TestRenderScreenDrawsWorld(t *testing.T) {
	cfg := testConfig()
	l := newTestLoop(Options{Config: cfg})
	l.state.Obstacles = []Obstacle{{X: 250, Width: 40, Height: 80}}
	snap := l.Snapshot()

	dst := core.NewScreen(72, 32)
	RenderScreen(dst, snap, &cfg, NewStarField(1, 20, cfg.World.Width, cfg.World.GroundY, 18), 0)

	groundRow := int(cfg.World.GroundY * 32 / cfg.World.Height)
	if !strings.Contains(dst.Row(groundRow), string(GroundChar)) {
		t.Errorf("ground row %d missing ground glyphs: %q", groundRow, dst.Row(groundRow))
	}
	if c := dst.GetCell(0, 0); c.Bg != core.ColorSkyHigh {
		t.Errorf("top-left background = %v, expected sky", c.Bg)
	}
	if c := dst.GetCell(0, groundRow+1); c.Bg != core.ColorGround {
		t.Errorf("below ground background = %v, expected ground", c.Bg)
	}

	obsX := int(260 * 72 / cfg.World.Width)
	if c := dst.GetCell(obsX, groundRow-1); c.Rune != ObstacleChar || c.Color != core.ColorObstacle {
		t.Errorf("expected obstacle at (%d, %d), got %+v", obsX, groundRow-1, c)
	}

	playerX := int(cfg.Player.X * 72 / cfg.World.Width)
	if c := dst.GetCell(playerX, groundRow-1); c.Color != core.ColorPlayer {
		t.Errorf("expected resting player at (%d, %d), got %+v", playerX, groundRow-1, c)
	}
}

func TestRenderScreenDoesNotMutate(t *testing.T) {
	cfg := testConfig()
	l := newTestLoop(Options{Config: cfg})
	l.Press()
	l.state.Obstacles = []Obstacle{{X: 200, Width: 40, Height: 60}}
	before := l.Snapshot()

	RenderScreen(core.NewScreen(40, 20), l.Snapshot(), &cfg, nil, 3)

	after := l.Snapshot()
	if after.Player != before.Player || after.Obstacles[0] != before.Obstacles[0] {
		t.Error("rendering changed the simulation")
	}
}

func TestRenderScreenDegenerateTargets(t *testing.T) {
	cfg := testConfig()
	snap := newTestLoop(Options{Config: cfg}).Snapshot()

	// Must not panic.
	RenderScreen(nil, snap, &cfg, nil, 0)
	RenderScreen(core.NewScreen(0, 0), snap, &cfg, nil, 0)
	RenderScreen(core.NewScreen(3, 2), snap, &cfg, nil, 0)
}

func TestTiltIsClamped(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		vy   float64
		want float64
	}{
		{0, 0},
		{100, 100 * cfg.Render.TiltPerVelocity},
		{1e6, cfg.Render.MaxTilt},
		{-1e6, -cfg.Render.MaxTilt},
	}
	for _, tt := range tests {
		if got := Tilt(Player{VY: tt.vy}, cfg.Render); got != tt.want {
			t.Errorf("Tilt(vy=%v) = %v, expected %v", tt.vy, got, tt.want)
		}
	}
}

func TestShadowShrinksWithAltitude(t *testing.T) {
	cfg := testConfig()
	ground := ShadowScale(Player{Y: cfg.RestY()}, &cfg)
	air := ShadowScale(Player{Y: cfg.RestY() - 80}, &cfg)
	apex := ShadowScale(Player{Y: cfg.RestY() - 1000}, &cfg)

	if ground != 1 {
		t.Errorf("grounded shadow scale = %v, expected 1", ground)
	}
	if !(air < ground && apex < air) {
		t.Errorf("shadow should shrink with altitude: %v, %v, %v", ground, air, apex)
	}
	if apex < 0.4-1e-9 {
		t.Errorf("shadow scale %v below floor", apex)
	}
}

func TestStarFieldWraps(t *testing.T) {
	f := NewStarField(3, 30, 360, 560, 18)
	if f.Len() != 30 {
		t.Fatalf("Len() = %d", f.Len())
	}
	for _, tm := range []float64{0, 1, 60, 3600} {
		for _, s := range f.At(tm) {
			if s.X < 0 || s.X >= 360 {
				t.Fatalf("star at t=%v escaped: x=%v", tm, s.X)
			}
			if s.Brightness < 0.1-1e-9 || s.Brightness > 1+1e-9 {
				t.Fatalf("brightness out of range: %v", s.Brightness)
			}
		}
	}
	a, b := f.At(0), f.At(1)
	if a[0].X == b[0].X {
		t.Error("stars should drift over time")
	}
}
