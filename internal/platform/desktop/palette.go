package desktop

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tap-runner/internal/core"
)

// palette maps core.Color to the desktop colors. Entries are opaque so
// overlapping shapes never double-blend.
var palette = map[core.Color]color.RGBA{
	core.ColorSkyHigh:    {0x0b, 0x10, 0x26, 0xff},
	core.ColorSkyMid:     {0x2a, 0x1f, 0x5c, 0xff},
	core.ColorSkyLow:     {0x8a, 0x5a, 0x9e, 0xff},
	core.ColorStar:       colornames.Lightyellow,
	core.ColorGround:     {0x24, 0x21, 0x2e, 0xff},
	core.ColorGroundEdge: colornames.Darkseagreen,
	core.ColorObstacle:   colornames.Tomato,
	core.ColorPlayer:     colornames.Deepskyblue,
	core.ColorPlayerEye:  colornames.Black,
	core.ColorShadow:     {0x12, 0x10, 0x18, 0xff},
	core.ColorText:       colornames.White,
	core.ColorAccent:     colornames.Orange,
	core.ColorMuted:      colornames.Lightgrey,
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.Black
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(core.Lerp(float64(x), float64(y), core.ClampF(t, 0, 1)))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// withAlpha returns c at opacity a in [0,1], premultiplied as ebiten expects.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
