package main

import (
	"image/color"

	"github.com/milk9111/combobreaker/common"
	"github.com/milk9111/combobreaker/flow"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelFill = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnFill   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	btnHover  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// menu is a centered panel with a heading and a column of buttons.
type menu struct {
	ui      *ebitenui.UI
	heading *widget.Text
}

type menuButton struct {
	label   string
	onClick func()
}

func newMenu(heading string, buttons ...menuButton) *menu {
	panelImg := imageui.NewNineSliceColor(panelFill)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(btnFill),
		Hover:   imageui.NewNineSliceColor(btnHover),
		Pressed: imageui.NewNineSliceColor(btnHover),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(heading, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &menu{ui: &ebitenui.UI{Container: root}, heading: title}
}

// NewTitleUI offers the two game modes.
func NewTitleUI(g *Game) *menu {
	return newMenu("COMBO BREAKER",
		menuButton{label: "Single Player", onClick: func() { g.startMatch(flow.ModeSinglePlayer) }},
		menuButton{label: "Two Player", onClick: func() { g.startMatch(flow.ModeTwoPlayer) }},
	)
}

// NewRoundOverUI shows the winner and leads back to the title.
func NewRoundOverUI(g *Game) *menu {
	return newMenu("ROUND OVER",
		menuButton{label: "Back to Title", onClick: g.returnToTitle},
	)
}

func (m *menu) setHeading(s string) {
	if m == nil || m.heading == nil {
		return
	}
	m.heading.Label = s
}
