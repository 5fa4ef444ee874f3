package ui

import (
	"errors"
	"image/color"
	"testing"

	"SignatureBoard/internal/export"
	"SignatureBoard/internal/state"
	"SignatureBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newBoard(t *testing.T) (*BoardWidget, fyne.Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	b := NewBoardWidget(surface.New(surface.WithSize(200, 100)))
	w := test.NewWindow(b)
	t.Cleanup(w.Close)
	b.Resize(fyne.NewSize(200, 100))
	return b, w
}

func TestBoardStroke(t *testing.T) {
	b, _ := newBoard(t)
	require.NoError(t, b.SetStroke(6))

	b.MouseDown(mouse(20, 50))
	b.Dragged(drag(100, 50))
	b.Dragged(drag(180, 50))
	b.MouseUp(mouse(180, 50))

	s := b.Surface()
	assert.False(t, s.Empty())
	assert.Equal(t, state.Idle, s.Phase())
	assert.Equal(t, uint8(0xff), s.Image().RGBAAt(60, 50).A)
	assert.Equal(t, uint8(0xff), s.Image().RGBAAt(140, 50).A)
	assert.Zero(t, s.Image().RGBAAt(100, 10).A)
}

func TestBoardIgnoresSecondaryButtonAndStrayDrags(t *testing.T) {
	b, _ := newBoard(t)

	b.Dragged(drag(10, 10))
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 30)},
		Button:     desktop.MouseButtonSecondary,
	})
	b.Dragged(drag(60, 60))
	b.MouseUp(mouse(60, 60))

	assert.True(t, b.Surface().Empty())
}

func TestBoardScalesPositions(t *testing.T) {
	b, _ := newBoard(t)
	b.Resize(fyne.NewSize(100, 50))
	require.NoError(t, b.SetStroke(4))

	b.MouseDown(mouse(25, 25))
	b.MouseUp(mouse(25, 25))

	img := b.Surface().Image()
	assert.Equal(t, uint8(0xff), img.RGBAAt(50, 50).A)
	assert.Zero(t, img.RGBAAt(25, 25).A)
}

func newToolbar(t *testing.T) (*Toolbar, *BoardWidget, fyne.Window) {
	t.Helper()
	b, w := newBoard(t)
	tb := NewToolbar(b, w, widget.NewLabel(""))
	return tb, b, w
}

func TestToolbarReflectsDefaults(t *testing.T) {
	tb, _, _ := newToolbar(t)
	assert.Equal(t, 2.0, tb.slider.Value)
	assert.Equal(t, "Thin", tb.presets.Selected)
	assert.False(t, tb.transparent.Checked)
}

func TestToolbarWidthControlsStayInStep(t *testing.T) {
	tb, b, _ := newToolbar(t)

	tb.presets.SetSelected("Thick")
	assert.Equal(t, state.WidthThick, b.Style().StrokeWidth)
	assert.Equal(t, 10.0, tb.slider.Value)

	tb.slider.SetValue(7)
	assert.Equal(t, float32(7), b.Style().StrokeWidth)
	assert.Equal(t, "", tb.presets.Selected)

	tb.slider.SetValue(5)
	assert.Equal(t, "Medium", tb.presets.Selected)
}

func TestToolbarTransparentAndBackground(t *testing.T) {
	tb, b, _ := newToolbar(t)

	tb.transparent.SetChecked(true)
	assert.True(t, b.Style().Transparent)

	tb.setBackground(color.White)
	assert.Zero(t, b.Surface().Image().RGBAAt(0, 0).A)

	tb.transparent.SetChecked(false)
	assert.Equal(t, uint8(0xff), b.Surface().Image().RGBAAt(0, 0).A)
}

func TestToolbarReset(t *testing.T) {
	tb, b, _ := newToolbar(t)
	tb.setLineColor(color.NRGBA{R: 0xff, A: 0xff})
	tb.presets.SetSelected("Medium")
	b.MouseDown(mouse(10, 10))
	b.MouseUp(mouse(10, 10))
	require.False(t, b.Surface().Empty())

	tb.reset()

	assert.True(t, b.Surface().Empty())
	assert.Equal(t, state.DefaultStyle(), b.Style())
	assert.Equal(t, "Thin", tb.presets.Selected)
	assert.Equal(t, 2.0, tb.slider.Value)
	assert.Equal(t, "Board cleared", tb.status.Text)
}

func TestRenderEmptyShowsNotice(t *testing.T) {
	tb, _, w := newToolbar(t)

	data, ok := tb.render(export.PNG)
	assert.False(t, ok)
	assert.Nil(t, data)
	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top)
	assert.Contains(t, texts(top), "Canvas is empty")
}

// texts collects every piece of text shown in the object tree under o.
func texts(o fyne.CanvasObject) []string {
	var out []string
	switch v := o.(type) {
	case *widget.Label:
		return append(out, v.Text)
	case *widget.RichText:
		return append(out, v.String())
	case *canvas.Text:
		return append(out, v.Text)
	case *fyne.Container:
		for _, child := range v.Objects {
			out = append(out, texts(child)...)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(v).Objects() {
			out = append(out, texts(child)...)
		}
	}
	return out
}

func TestRenderDrawing(t *testing.T) {
	tb, b, _ := newToolbar(t)
	b.MouseDown(mouse(10, 10))
	b.MouseUp(mouse(10, 10))

	data, ok := tb.render(export.PNG)
	require.True(t, ok)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

type fakeWriter struct {
	written  []byte
	writeErr error
	closed   bool
}

func (f *fakeWriter) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestWriteAndClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, writeAndClose(w, []byte("png")))
	assert.Equal(t, []byte("png"), w.written)
	assert.True(t, w.closed)

	boom := errors.New("disk full")
	w = &fakeWriter{writeErr: boom}
	assert.ErrorIs(t, writeAndClose(w, []byte("png")), boom)
	assert.True(t, w.closed)
}

func TestDragEndClosesStroke(t *testing.T) {
	b, _ := newBoard(t)
	b.MouseDown(mouse(20, 20))
	b.Dragged(drag(60, 20))
	b.DragEnd()

	assert.Equal(t, state.Idle, b.Surface().Phase())
	b.Dragged(drag(60, 90))
	assert.Zero(t, b.Surface().Image().RGBAAt(60, 80).A)
}

func TestPickedColorsAreOpaque(t *testing.T) {
	tb, b, _ := newToolbar(t)

	tb.setBackground(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, b.Style().Background)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, b.Surface().Image().RGBAAt(0, 0))

	tb.setLineColor(color.NRGBA{R: 0xff, A: 0x80})
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, b.Style().StrokeColor)

	// Joints of a multi-segment stroke keep the exact stroke color.
	require.NoError(t, b.SetStroke(6))
	b.MouseDown(mouse(20, 50))
	b.Dragged(drag(100, 50))
	b.Dragged(drag(180, 50))
	b.MouseUp(mouse(180, 50))
	img := b.Surface().Image()
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(60, 50))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(100, 50))
}

func TestSwatchShowsTransparency(t *testing.T) {
	s := newColorSwatch(color.NRGBA{}, nil)
	objs := test.WidgetRenderer(s).Objects()
	require.Len(t, objs, 1)
	stack := objs[0].(*fyne.Container)
	require.Len(t, stack.Objects, 3)
	assert.IsType(t, &canvas.Raster{}, stack.Objects[0])

	assert.NotEqual(t, swatchChecker(0, 0, 32, 32), swatchChecker(8, 0, 32, 32))
	assert.Equal(t, swatchChecker(0, 0, 32, 32), swatchChecker(8, 8, 32, 32))

	s.SetColor(color.NRGBA{B: 0xff, A: 0xff})
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, s.rect.FillColor)
}
