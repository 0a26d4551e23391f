package desktop

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name          string
		sw, sh        float64
		scale, ox, oy float64
	}{
		{"exact", 360, 640, 1, 0, 0},
		{"hidpi", 720, 1280, 2, 0, 0},
		{"wide window", 1280, 640, 1, 460, 0},
		{"tall window", 360, 1000, 1, 0, 180},
		{"small", 180, 640, 0.5, 0, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FitViewport(tt.sw, tt.sh, 360, 640)
			if math.Abs(v.Scale-tt.scale) > 1e-9 || math.Abs(v.OffsetX-tt.ox) > 1e-9 || math.Abs(v.OffsetY-tt.oy) > 1e-9 {
				t.Errorf("FitViewport(%v, %v) = %+v, expected scale %v offset (%v, %v)",
					tt.sw, tt.sh, v, tt.scale, tt.ox, tt.oy)
			}
		})
	}
}

func TestFitViewportDegenerate(t *testing.T) {
	if v := FitViewport(0, 0, 360, 640); v.Scale != 1 {
		t.Errorf("zero screen should fall back to scale 1, got %+v", v)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := FitViewport(1280, 720, 360, 640)
	x, y := v.Point(74, 504)
	wx, wy := v.ToWorld(float64(x), float64(y))
	if math.Abs(wx-74) > 1e-3 || math.Abs(wy-504) > 1e-3 {
		t.Errorf("round trip = (%v, %v), expected (74, 504)", wx, wy)
	}
	if got := v.Len(56); math.Abs(float64(got)-56*v.Scale) > 1e-3 {
		t.Errorf("Len(56) = %v", got)
	}
}

func TestPointerGoesToOverlayUnlessRunning(t *testing.T) {
	tests := []struct {
		status runner.Status
		want   bool
	}{
		{runner.StatusReady, true},
		{runner.StatusRunning, false},
		{runner.StatusOver, true},
	}
	for _, tt := range tests {
		if got := overlayOwnsPointer(tt.status); got != tt.want {
			t.Errorf("overlayOwnsPointer(%v) = %v, expected %v", tt.status, got, tt.want)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := range palette {
		if palette[c].A == 0 {
			t.Errorf("color %d is transparent", c)
		}
	}
	if len(palette) < 10 {
		t.Errorf("palette has %d entries", len(palette))
	}
}

func TestFitWindow(t *testing.T) {
	tests := []struct {
		name     string
		monitorH float64
		w, h     int
	}{
		{"large monitor", 1440, 360, 640},
		{"small monitor", 600, 286, 510},
		{"unknown monitor", 0, 360, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitWindow(360, 640, tt.monitorH)
			if w != tt.w || h != tt.h {
				t.Errorf("fitWindow = %dx%d, expected %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestOverlayLabel(t *testing.T) {
	if overlayLabel(runner.StatusReady) != "Start Run" || overlayLabel(runner.StatusOver) != "Play Again" {
		t.Error("unexpected overlay labels")
	}
	if overlayLabel(runner.StatusRunning) != "" {
		t.Error("no overlay while running")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.Gravity = 0

	g, err := New(Options{Config: cfg})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("New() error = %v, expected ErrInvalidConfig", err)
	}
	if g != nil {
		t.Error("New() should not return a game on error")
	}
}
