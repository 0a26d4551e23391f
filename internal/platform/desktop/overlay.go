package desktop

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
)

// overlayLabel returns the button label for a status, or "" while running.
func overlayLabel(status runner.Status) string {
	switch status {
	case runner.StatusReady:
		return "Start Run"
	case runner.StatusOver:
		return "Play Again"
	default:
		return ""
	}
}

// overlayOwnsPointer reports whether clicks belong to the overlay button.
// While it is shown the button is the only pointer route, so one click never
// reaches the loop twice.
func overlayOwnsPointer(status runner.Status) bool {
	return overlayLabel(status) != ""
}

func nrgba(c core.Color, a uint8) color.NRGBA {
	v := rgba(c)
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: a}
}

// newOverlay builds the centered panel with a single action button. press
// runs when the button is clicked.
func newOverlay(face ebtext.Face, title, subtitle, label string, press func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x08, G: 0x08, B: 0x14, A: 210})
	btnIdle := imageui.NewNineSliceColor(nrgba(core.ColorAccent, 0xff))
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xc0, B: 0x4d, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0x7a, B: 0x00, A: 0xff})

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, nrgba(core.ColorText, 0xff)),
		widget.TextOpts.WidgetOpts(center),
	)
	subtitleText := widget.NewText(
		widget.TextOpts.Text(subtitle, &face, nrgba(core.ColorMuted, 0xff)),
		widget.TextOpts.WidgetOpts(center),
	)

	button := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: nrgba(core.ColorPlayerEye, 0xff)}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(160, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			press()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(subtitleText)
	panel.AddChild(button)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
