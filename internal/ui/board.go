package ui

import (
	"image/color"

	"SignatureBoard/internal/config"
	"SignatureBoard/internal/state"
	"SignatureBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows a drawing surface and feeds it pointer input. Primary
// button down starts a stroke, dragging extends it, release ends it.
type BoardWidget struct {
	widget.BaseWidget
	surface *surface.Surface
	last    state.Point
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *surface.Surface) *BoardWidget {
	b := &BoardWidget{surface: s}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Surface() *surface.Surface { return b.surface }

func (b *BoardWidget) Style() state.Style { return b.surface.Style() }

// SetColor and SetBackground take picker colors; alpha is discarded.
func (b *BoardWidget) SetColor(c color.Color) {
	b.surface.SetStrokeColor(config.Opaque(c))
}

func (b *BoardWidget) SetStroke(s float32) error {
	return b.surface.SetStrokeWidth(s)
}

func (b *BoardWidget) SetBackground(c color.Color) {
	b.surface.SetBackground(config.Opaque(c))
	b.Refresh()
}

func (b *BoardWidget) SetTransparent(on bool) {
	b.surface.SetTransparent(on)
	b.Refresh()
}

// ClearPaths wipes the board and restores the default style.
func (b *BoardWidget) ClearPaths() {
	b.surface.Reset()
	b.Refresh()
}

// toSurface maps a widget position to buffer pixels. The widget may be shown
// larger or smaller than the buffer.
func (b *BoardWidget) toSurface(pos fyne.Position) state.Point {
	size := b.Size()
	bounds := b.surface.Bounds()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Point{X: pos.X, Y: pos.Y}
	}
	return state.Point{
		X: pos.X * float32(bounds.Dx()) / size.Width,
		Y: pos.Y * float32(bounds.Dy()) / size.Height,
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.last = b.toSurface(e.Position)
		b.surface.PointerDown(b.last)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.surface.PointerUp(b.toSurface(e.Position))
		b.Refresh()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.surface.Phase() != state.Active {
		return
	}
	b.last = b.toSurface(e.Position)
	b.surface.PointerMove(b.last)
	b.Refresh()
}

// DragEnd closes a stroke whose release was not reported through MouseUp.
func (b *BoardWidget) DragEnd() {
	if b.surface.Phase() == state.Active {
		b.surface.PointerUp(b.last)
		b.Refresh()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.surface.Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &boardWidgetRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		image:      img,
	}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	bounds := r.board.surface.Bounds()
	return fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
}

func (r *boardWidgetRenderer) Destroy() {}
