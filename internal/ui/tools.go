package ui

import (
	"image/color"

	"SignatureBoard/internal/config"
	"SignatureBoard/internal/export"
	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

// swatchChecker is drawn under the swatch color so a transparent color shows
// as a checkerboard instead of an empty box.
func swatchChecker(x, y, _, _ int) color.Color {
	if (x/8+y/8)%2 == 0 {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{Y: 0xcc}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	checker := canvas.NewRasterWithPixels(swatchChecker)
	return widget.NewSimpleRenderer(container.NewStack(checker, s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Toolbar holds the style controls and commands. Every control mirrors the
// board style, so a reset shows up in the controls too.
type Toolbar struct {
	board  *BoardWidget
	win    fyne.Window
	status *widget.Label

	lineSwatch  *colorSwatch
	bgSwatch    *colorSwatch
	slider      *widget.Slider
	presets     *widget.Select
	transparent *widget.Check

	// syncing is set while controls are updated from the board so their
	// change callbacks do not write back.
	syncing bool

	Content fyne.CanvasObject
}

func NewToolbar(board *BoardWidget, win fyne.Window, status *widget.Label) *Toolbar {
	t := &Toolbar{board: board, win: win, status: status}
	t.syncing = true

	st := board.Style()
	t.lineSwatch = newColorSwatch(st.StrokeColor, func() {
		t.pickColor("Line Color", t.board.Style().StrokeColor, t.setLineColor)
	})
	t.bgSwatch = newColorSwatch(st.Background, func() {
		t.pickColor("Background Color", t.board.Style().Background, t.setBackground)
	})

	t.slider = widget.NewSlider(float64(state.MinStrokeWidth), float64(state.MaxStrokeWidth))
	t.slider.Step = 1
	t.slider.OnChanged = func(v float64) { t.setWidth(float32(v)) }

	labels := make([]string, 0, len(state.Presets))
	for _, p := range state.Presets {
		labels = append(labels, p.Label)
	}
	t.presets = widget.NewSelect(labels, func(label string) {
		for _, p := range state.Presets {
			if p.Label == label {
				t.setWidth(p.Width)
			}
		}
	})
	t.presets.PlaceHolder = "Custom"

	t.transparent = widget.NewCheck("Transparent Background", func(on bool) {
		if t.syncing {
			return
		}
		t.board.SetTransparent(on)
	})

	t.syncing = false
	t.sync()

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.slider)
	t.Content = container.NewHBox(
		widget.NewLabel("Line Color:"),
		t.lineSwatch,
		widget.NewLabel("Background:"),
		t.bgSwatch,
		widget.NewSeparator(),
		widget.NewLabel("Line Thickness:"),
		sliderContainer,
		t.presets,
		widget.NewSeparator(),
		t.transparent,
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Reset", theme.ContentClearIcon(), t.reset),
		widget.NewButtonWithIcon("Download", theme.DownloadIcon(), func() {
			t.save(export.FileName, export.PNG)
		}),
		widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
			t.save(export.PDFFileName, export.PDF)
		}),
	)
	return t
}

func (t *Toolbar) pickColor(title string, current color.Color, apply func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		apply(c)
	}, t.win)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

func (t *Toolbar) setLineColor(c color.Color) {
	t.board.SetColor(c)
	t.sync()
}

func (t *Toolbar) setBackground(c color.Color) {
	t.board.SetBackground(c)
	t.sync()
}

func (t *Toolbar) setWidth(w float32) {
	if t.syncing {
		return
	}
	if err := t.board.SetStroke(w); err != nil {
		logging.Logger().Warn("[ui] stroke width rejected", "err", err)
	}
	t.sync()
}

func (t *Toolbar) reset() {
	t.board.ClearPaths()
	t.sync()
	t.setStatus("Board cleared")
}

// sync copies the board style into the controls.
func (t *Toolbar) sync() {
	t.syncing = true
	defer func() { t.syncing = false }()

	st := t.board.Style()
	t.lineSwatch.SetColor(st.StrokeColor)
	t.bgSwatch.SetColor(st.Background)
	t.slider.SetValue(float64(st.StrokeWidth))
	if label := state.PresetLabel(st.StrokeWidth); label != "" {
		t.presets.SetSelected(label)
	} else {
		t.presets.ClearSelected()
	}
	t.transparent.SetChecked(st.Transparent)

	logging.Logger().Debug("[ui] controls synced",
		"stroke", config.FormatColor(st.StrokeColor),
		"width", st.StrokeWidth,
		"background", config.FormatColor(st.Background),
		"transparent", st.Transparent)
}

func (t *Toolbar) setStatus(text string) {
	if t.status != nil {
		t.status.SetText(text)
	}
}
