package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/padcmd/common"
	"github.com/milk9111/padcmd/input"
	"github.com/milk9111/padcmd/input/ebitenpoll"
	"golang.org/x/image/font/basicfont"
)

var (
	settingsTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	settingsStatusColor = color.NRGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
)

// SettingsScreen renders a settingsModel as a centered ebitenui panel, one
// text line per row.
type SettingsScreen struct {
	model  *settingsModel
	joys   *ebitenpoll.Joysticks
	ui     *ebitenui.UI
	pads   *widget.Text
	rows   []*widget.Text
	status *widget.Text
}

func NewSettingsScreen(model *settingsModel, joys *ebitenpoll.Joysticks) *SettingsScreen {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	lineOpts := widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart}))

	title := widget.NewText(
		widget.TextOpts.Text("Controls", &face, settingsTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	s := &SettingsScreen{model: model, joys: joys}
	s.pads = widget.NewText(widget.TextOpts.Text("", &face, settingsTextColor), lineOpts)
	panel.AddChild(s.pads)
	for range model.rows {
		row := widget.NewText(widget.TextOpts.Text("", &face, settingsTextColor), lineOpts)
		s.rows = append(s.rows, row)
		panel.AddChild(row)
	}
	s.status = widget.NewText(widget.TextOpts.Text("", &face, settingsStatusColor), lineOpts)
	panel.AddChild(s.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
	s.Refresh()
	return s
}

func (s *SettingsScreen) padLabel(slot input.Joystick) string {
	name := s.joys.Name(slot)
	if name == "" {
		name = "(not connected)"
	}
	return fmt.Sprintf("Joystick %d: %s", int(slot)+1, name)
}

// Refresh copies the model state into the text widgets.
func (s *SettingsScreen) Refresh() {
	s.pads.Label = s.padLabel(input.Joystick1) + "    " + s.padLabel(input.Joystick2)
	for i, label := range s.model.labels() {
		s.rows[i].Label = label
	}
	s.status.Label = s.model.status
}

func (s *SettingsScreen) Update(r *input.Reader) {
	if s.model.capturing {
		if k, ok := ebitenpoll.FirstPressedKey(); ok {
			s.model.capture(k)
		}
	} else {
		s.model.apply(r.MenuCmd())
	}
	s.Refresh()
	s.ui.Update()
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
