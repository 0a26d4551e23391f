package runner

import (
	"math"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
)

// Terminal glyphs
const (
	PlayerChar   = '█'
	PlayerEye    = '▪'
	ObstacleChar = '█'
	ObstacleTop  = '▄'
	GroundChar   = '▔'
	ShadowChar   = '▀'
)

// Tilt returns the player's lean in radians for its vertical velocity.
func Tilt(p Player, render config.RunnerRender) float64 {
	return core.ClampF(p.VY*render.TiltPerVelocity, -render.MaxTilt, render.MaxTilt)
}

// ShadowScale returns the shadow width factor, 1 on the ground shrinking
// toward 0.4 at the top of a jump.
func ShadowScale(p Player, cfg *config.RunnerConfig) float64 {
	apex := JumpApex(cfg.Physics)
	if apex <= 0 {
		return 1
	}
	altitude := core.ClampF(cfg.RestY()-p.Y, 0, apex)
	return 1 - 0.6*altitude/apex
}

// JumpApex returns the height of a full jump.
func JumpApex(phys config.RunnerPhysics) float64 {
	if phys.Gravity <= 0 {
		return 0
	}
	return phys.JumpVelocity * phys.JumpVelocity / (2 * phys.Gravity)
}

// projection maps world units onto terminal cells.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, world config.RunnerWorld) projection {
	return projection{
		sx: float64(dst.Width()) / world.Width,
		sy: float64(dst.Height()) / world.Height,
	}
}

func (p projection) x(wx float64) int { return int(math.Floor(wx * p.sx)) }
func (p projection) y(wy float64) int { return int(math.Floor(wy * p.sy)) }

// span converts a world length starting at w0 into a cell count of at least 1.
func (p projection) spanX(w0, length float64) int {
	return max(p.x(w0+length)-p.x(w0), 1)
}

func (p projection) spanY(w0, length float64) int {
	return max(p.y(w0+length)-p.y(w0), 1)
}

// RenderScreen projects a snapshot onto the terminal cell grid. stars may be
// nil. t is the cosmetic clock in seconds used for star drift.
func RenderScreen(dst *core.Screen, snap Snapshot, cfg *config.RunnerConfig, stars *StarField, t float64) {
	if dst == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	dst.Clear()

	proj := newProjection(dst, cfg.World)
	groundRow := min(proj.y(cfg.World.GroundY), dst.Height()-1)

	drawSky(dst, groundRow)
	if stars != nil {
		drawStars(dst, proj, stars.At(t), groundRow)
	}
	drawGround(dst, groundRow)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, proj, o, cfg, groundRow)
	}
	drawShadow(dst, proj, snap.Player, cfg, groundRow)
	drawPlayer(dst, proj, snap.Player, cfg, groundRow)
}

func drawSky(dst *core.Screen, groundRow int) {
	bands := []core.Color{core.ColorSkyHigh, core.ColorSkyMid, core.ColorSkyLow}
	for row := 0; row < groundRow; row++ {
		band := bands[min(row*len(bands)/max(groundRow, 1), len(bands)-1)]
		dst.FillBg(core.NewRect(0, row, dst.Width(), 1), band)
	}
}

func drawStars(dst *core.Screen, proj projection, stars []Star, groundRow int) {
	for _, s := range stars {
		row := proj.y(s.Y)
		if row >= groundRow {
			continue
		}
		glyph := '·'
		switch {
		case s.Brightness > 0.85:
			glyph = '✦'
		case s.Brightness > 0.55:
			glyph = '*'
		}
		dst.SetColored(proj.x(s.X), row, glyph, core.ColorStar)
	}
}

func drawGround(dst *core.Screen, groundRow int) {
	dst.FillBg(core.NewRect(0, groundRow, dst.Width(), dst.Height()-groundRow), core.ColorGround)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGroundEdge)
}

func drawObstacle(dst *core.Screen, proj projection, o Obstacle, cfg *config.RunnerConfig, groundRow int) {
	top := cfg.World.GroundY - o.Height
	x := proj.x(o.X)
	w := proj.spanX(o.X, o.Width)
	h := proj.spanY(top, o.Height)
	y := groundRow - h

	dst.DrawRect(core.NewRect(x, y, w, h), ObstacleChar, core.ColorObstacle)
	if w > 2 && h > 1 {
		// Rounded top corners
		dst.SetColored(x, y, ObstacleTop, core.ColorObstacle)
		dst.SetColored(x+w-1, y, ObstacleTop, core.ColorObstacle)
	}
}

func drawPlayer(dst *core.Screen, proj projection, p Player, cfg *config.RunnerConfig, groundRow int) {
	size := cfg.Player.Size
	left := p.X - size/2
	x := proj.x(left)
	w := proj.spanX(left, size)
	h := proj.spanY(p.Y, size)
	// Rows above the ground line, so a resting player sits on groundRow-1.
	lift := proj.y(cfg.World.GroundY) - proj.y(p.Y+size)
	bottom := groundRow - 1 - lift
	y := bottom - h + 1

	// Lean: shear rows by the tilt, measured in cells.
	lean := math.Tan(Tilt(p, cfg.Render))
	for row := 0; row < h; row++ {
		rise := float64(h-1-row) / proj.sy
		shift := int(math.Round(lean * rise * proj.sx))
		for col := 0; col < w; col++ {
			dst.SetColored(x+col+shift, y+row, PlayerChar, core.ColorPlayer)
		}
		if row == 0 && w > 1 {
			dst.SetColored(x+w-2+shift, y, PlayerEye, core.ColorPlayerEye)
		}
	}
}

func drawShadow(dst *core.Screen, proj projection, p Player, cfg *config.RunnerConfig, groundRow int) {
	size := cfg.Player.Size * ShadowScale(p, cfg)
	left := p.X - size/2
	row := min(groundRow+1, dst.Height()-1)
	dst.DrawHLine(proj.x(left), row, proj.spanX(left, size), ShadowChar, core.ColorShadow)
}
