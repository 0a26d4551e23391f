package desktop

import "math"

// Viewport maps world units onto a letterboxed region of the screen. The
// world keeps its aspect ratio; the spare space is split evenly.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitViewport fits a worldW x worldH world into a screenW x screenH surface.
func FitViewport(screenW, screenH, worldW, worldH float64) Viewport {
	if worldW <= 0 || worldH <= 0 || screenW <= 0 || screenH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(screenW/worldW, screenH/worldH)
	return Viewport{
		Scale:   scale,
		OffsetX: (screenW - worldW*scale) / 2,
		OffsetY: (screenH - worldH*scale) / 2,
	}
}

// Point converts a world position to screen pixels.
func (v Viewport) Point(x, y float64) (float32, float32) {
	return float32(v.OffsetX + x*v.Scale), float32(v.OffsetY + y*v.Scale)
}

// Len converts a world length to screen pixels.
func (v Viewport) Len(l float64) float32 {
	return float32(l * v.Scale)
}

// ToWorld converts a screen position back to world units.
func (v Viewport) ToWorld(sx, sy float64) (float64, float64) {
	if v.Scale == 0 {
		return 0, 0
	}
	return (sx - v.OffsetX) / v.Scale, (sy - v.OffsetY) / v.Scale
}

// fitWindow sizes a window for the world: 85% of the monitor height, never
// above the world's own size.
func fitWindow(worldW, worldH, monitorH float64) (int, int) {
	k := 1.0
	if monitorH > 0 {
		k = math.Min(1, monitorH*0.85/worldH)
	}
	return int(worldW * k), int(worldH * k)
}
