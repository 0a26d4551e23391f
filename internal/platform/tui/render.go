package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
)

// palette maps core.Color to ANSI 256 codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorSkyHigh:    lipgloss.Color("17"),
	core.ColorSkyMid:     lipgloss.Color("54"),
	core.ColorSkyLow:     lipgloss.Color("97"),
	core.ColorStar:       lipgloss.Color("230"),
	core.ColorGround:     lipgloss.Color("236"),
	core.ColorGroundEdge: lipgloss.Color("107"),
	core.ColorObstacle:   lipgloss.Color("203"),
	core.ColorPlayer:     lipgloss.Color("81"),
	core.ColorPlayerEye:  lipgloss.Color("16"),
	core.ColorShadow:     lipgloss.Color("234"),
	core.ColorText:       lipgloss.Color("255"),
	core.ColorAccent:     lipgloss.Color("214"),
	core.ColorMuted:      lipgloss.Color("245"),
}

type cellStyle struct {
	fg, bg core.Color
}

// cellStyles is built once at init; SSH sessions render concurrently.
var cellStyles = map[cellStyle]lipgloss.Style{}

func init() {
	colors := append([]core.Color{core.ColorDefault}, paletteKeys()...)
	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := palette[fg]; ok {
				style = style.Foreground(c)
			}
			if c, ok := palette[bg]; ok {
				style = style.Background(c)
			}
			cellStyles[cellStyle{fg, bg}] = style
		}
	}
}

func paletteKeys() []core.Color {
	keys := make([]core.Color, 0, len(palette))
	for c := range palette {
		keys = append(keys, c)
	}
	return keys
}

var (
	hudStyle       = lipgloss.NewStyle().Foreground(palette[core.ColorText]).Bold(true)
	hudMutedStyle  = lipgloss.NewStyle().Foreground(palette[core.ColorMuted])
	hudAccentStyle = lipgloss.NewStyle().Foreground(palette[core.ColorAccent]).Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{cell.Color, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.Color, cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[key]
			if !ok {
				style = cellStyles[cellStyle{}]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// OverlayLabel returns the overlay button label for a status, or "" when
// no overlay is shown.
func OverlayLabel(status runner.Status) string {
	switch status {
	case runner.StatusReady:
		return "Start Run"
	case runner.StatusOver:
		return "Play Again"
	default:
		return ""
	}
}

// drawOverlay draws the status overlay with its single action button.
func drawOverlay(dst *core.Screen, snap runner.Snapshot, last *runner.RunResult) {
	if snap.Running() {
		return
	}
	label := OverlayLabel(snap.Status)

	title := "TAP RUNNER"
	subtitle := "space / click to jump"
	if snap.Status == runner.StatusOver {
		title = "GAME OVER"
		subtitle = fmt.Sprintf("Score %d  ·  Best %d", snap.Score, snap.Best)
		if last != nil && last.NewBest {
			subtitle = fmt.Sprintf("New best: %d!", snap.Best)
		}
	}
	button := "[ " + label + " ]"

	boxW := max(len([]rune(title)), len([]rune(subtitle)), len(button)) + 6
	boxH := 7
	if dst.Width() < boxW || dst.Height() < boxH {
		// Too small for a box: the button alone.
		dst.DrawTextCentered(dst.Height()/2, button, core.ColorAccent)
		return
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorText)
	dst.FillBg(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)

	center := func(y int, text string, c core.Color) {
		dst.DrawText(boxX+(boxW-len([]rune(text)))/2, y, text, c)
	}
	center(boxY+1, title, core.ColorText)
	center(boxY+3, subtitle, core.ColorMuted)
	center(boxY+5, button, core.ColorAccent)
}

// renderHUD renders the status line: score and best, plus a transient note.
func renderHUD(snap runner.Snapshot, width int, note string) string {
	left := hudStyle.Render(fmt.Sprintf(" Score %d", snap.Score)) +
		hudMutedStyle.Render("  ·  ") +
		hudStyle.Render(fmt.Sprintf("Best %d", snap.Best))

	right := ""
	if note != "" {
		right = hudAccentStyle.Render(note + " ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
