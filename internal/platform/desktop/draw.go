package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
)

const (
	skyBands       = 48
	cornerRadius   = 8.0 // World units
	shadowTexture  = 64
	shadowHeight   = 10.0
	shadowOpacity  = 0.55
	hudFontScale   = 2.0
	hudMargin      = 12.0
	letterboxColor = core.ColorShadow
)

// renderer draws snapshots onto an ebiten image. It keeps scratch images
// between frames and never touches the simulation.
type renderer struct {
	stars  *runner.StarField
	face   ebtext.Face
	player *ebiten.Image // Scratch surface for the rotated player
	shadow *ebiten.Image // Unit disc stretched into an ellipse
}

func newRenderer(stars *runner.StarField, face ebtext.Face) *renderer {
	shadow := ebiten.NewImage(shadowTexture, shadowTexture)
	r := float32(shadowTexture) / 2
	vector.FillCircle(shadow, r, r, r, rgba(core.ColorShadow), true)
	return &renderer{stars: stars, face: face, shadow: shadow}
}

// draw renders one frame. t is the cosmetic clock in seconds.
func (r *renderer) draw(screen *ebiten.Image, snap runner.Snapshot, cfg *config.RunnerConfig, t float64) {
	if screen == nil {
		return
	}
	b := screen.Bounds()
	vp := FitViewport(float64(b.Dx()), float64(b.Dy()), cfg.World.Width, cfg.World.Height)

	screen.Fill(rgba(letterboxColor))
	r.drawSky(screen, vp, cfg)
	r.drawStars(screen, vp, t)
	r.drawGround(screen, vp, cfg)
	for _, o := range snap.Obstacles {
		box := runner.ObstacleBox(o, cfg.World.GroundY)
		fillRoundRect(screen, vp, box, cornerRadius, rgba(core.ColorObstacle))
	}
	r.drawShadow(screen, vp, snap.Player, cfg)
	r.drawPlayer(screen, vp, snap.Player, cfg)
	r.drawHUD(screen, vp, snap)
}

// drawSky paints a vertical gradient from SkyHigh through SkyMid to SkyLow.
func (r *renderer) drawSky(screen *ebiten.Image, vp Viewport, cfg *config.RunnerConfig) {
	top, mid, low := rgba(core.ColorSkyHigh), rgba(core.ColorSkyMid), rgba(core.ColorSkyLow)
	bandH := cfg.World.GroundY / skyBands
	for i := range skyBands {
		f := float64(i) / float64(skyBands-1)
		c := lerpColor(top, mid, f*2)
		if f > 0.5 {
			c = lerpColor(mid, low, (f-0.5)*2)
		}
		x, y := vp.Point(0, float64(i)*bandH)
		// One extra pixel hides seams between bands at fractional scales.
		vector.FillRect(screen, x, y, vp.Len(cfg.World.Width), vp.Len(bandH)+1, c, false)
	}
}

func (r *renderer) drawStars(screen *ebiten.Image, vp Viewport, t float64) {
	if r.stars == nil {
		return
	}
	base := rgba(core.ColorStar)
	for _, s := range r.stars.At(t) {
		x, y := vp.Point(s.X, s.Y)
		vector.FillCircle(screen, x, y, vp.Len(s.Size/2), withAlpha(base, s.Brightness), true)
	}
}

func (r *renderer) drawGround(screen *ebiten.Image, vp Viewport, cfg *config.RunnerConfig) {
	x, y := vp.Point(0, cfg.World.GroundY)
	w := vp.Len(cfg.World.Width)
	vector.FillRect(screen, x, y, w, vp.Len(cfg.World.Height-cfg.World.GroundY), rgba(core.ColorGround), false)
	vector.StrokeLine(screen, x, y, x+w, y, max(vp.Len(2), 1), rgba(core.ColorGroundEdge), true)
}

// drawShadow stretches the shadow disc under the player. It narrows as the
// player climbs.
func (r *renderer) drawShadow(screen *ebiten.Image, vp Viewport, p runner.Player, cfg *config.RunnerConfig) {
	w := cfg.Player.Size * runner.ShadowScale(p, cfg)
	h := shadowHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(vp.Len(w))/shadowTexture, float64(vp.Len(h))/shadowTexture)
	x, y := vp.Point(p.X-w/2, cfg.World.GroundY-h/2)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(shadowOpacity)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.shadow, op)
}

// drawPlayer draws the player into a scratch image and rotates it about its
// center by the velocity tilt.
func (r *renderer) drawPlayer(screen *ebiten.Image, vp Viewport, p runner.Player, cfg *config.RunnerConfig) {
	side := max(int(math.Ceil(float64(vp.Len(cfg.Player.Size)))), 1)
	if r.player == nil || r.player.Bounds().Dx() != side {
		if r.player != nil {
			r.player.Deallocate()
		}
		r.player = ebiten.NewImage(side, side)
	}
	r.player.Clear()

	local := Viewport{Scale: vp.Scale}
	body := core.RectF{W: cfg.Player.Size, H: cfg.Player.Size}
	fillRoundRect(r.player, local, body, cornerRadius*1.5, rgba(core.ColorPlayer))
	ex, ey := local.Point(cfg.Player.Size*0.68, cfg.Player.Size*0.32)
	vector.FillCircle(r.player, ex, ey, local.Len(cfg.Player.Size*0.09), rgba(core.ColorPlayerEye), true)

	half := float64(side) / 2
	cx, cy := vp.Point(p.X, p.Y+cfg.Player.Size/2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(runner.Tilt(p, cfg.Render))
	op.GeoM.Translate(float64(cx), float64(cy))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.player, op)
}

func (r *renderer) drawHUD(screen *ebiten.Image, vp Viewport, snap runner.Snapshot) {
	if r.face == nil {
		return
	}
	x, y := vp.Point(hudMargin, hudMargin)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(vp.Scale*hudFontScale, vp.Scale*hudFontScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(core.ColorText))
	ebtext.Draw(screen, fmt.Sprintf("Score %d   Best %d", snap.Score, snap.Best), r.face, op)
}

// fillRoundRect fills a world rectangle with rounded corners. The radius is
// capped at half the shorter side.
func fillRoundRect(dst *ebiten.Image, vp Viewport, box core.RectF, radius float64, c color.RGBA) {
	radius = math.Min(radius, math.Min(box.W, box.H)/2)
	x, y := vp.Point(box.X, box.Y)
	w, h, rad := vp.Len(box.W), vp.Len(box.H), vp.Len(radius)

	vector.FillRect(dst, x+rad, y, w-2*rad, h, c, false)
	vector.FillRect(dst, x, y+rad, w, h-2*rad, c, false)
	for _, corner := range [][2]float32{
		{x + rad, y + rad},
		{x + w - rad, y + rad},
		{x + rad, y + h - rad},
		{x + w - rad, y + h - rad},
	} {
		vector.FillCircle(dst, corner[0], corner[1], rad, c, true)
	}
}
