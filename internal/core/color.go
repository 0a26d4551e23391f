package core

// Color is a palette entry for a screen cell, used for foregrounds and
// backgrounds. Frontends map it to ANSI 256-color codes or RGBA.
type Color uint8

// Palette used by the runner projection.
const (
	ColorDefault Color = iota
	ColorSkyHigh
	ColorSkyMid
	ColorSkyLow
	ColorStar
	ColorGround
	ColorGroundEdge
	ColorObstacle
	ColorPlayer
	ColorPlayerEye
	ColorShadow
	ColorText
	ColorAccent
	ColorMuted
)
