// Package surface implements the drawing surface: a fixed-size raster buffer
// painted directly by pointer gestures. The buffer is the only record of what
// has been drawn; strokes cannot be edited or removed individually.
//
// A Surface is not safe for concurrent use. It expects every call to arrive on
// the goroutine that delivers input events.
package surface

import (
	"image"
	"image/color"
	"image/draw"

	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"

	"github.com/srwiley/rasterx"
)

// Reference canvas size.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

type Surface struct {
	buf   *image.RGBA
	style state.Style
	sess  state.Session
	empty bool
	clock *state.Clock

	resetTransparent bool

	stroker *rasterx.Stroker
	filler  *rasterx.Filler
}

type Option func(*Surface)

// WithSize sets the buffer dimensions. Non-positive values keep the default.
func WithSize(w, h int) Option {
	return func(s *Surface) {
		if w > 0 && h > 0 {
			s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
		}
	}
}

// WithStyle sets the starting style. Reset still returns to the defaults.
func WithStyle(st state.Style) Option {
	return func(s *Surface) { s.style = st }
}

// WithResetTransparent makes Reset also turn the transparent background off.
// By default Reset leaves the toggle as the user last set it.
func WithResetTransparent(on bool) Option {
	return func(s *Surface) { s.resetTransparent = on }
}

func New(opts ...Option) *Surface {
	s := &Surface{
		buf:   image.NewRGBA(image.Rect(0, 0, DefaultWidth, DefaultHeight)),
		style: state.DefaultStyle(),
		empty: true,
		clock: state.NewClock(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.style.StrokeWidth == 0 {
		s.style.StrokeWidth = state.WidthThin
	}

	w, h := s.buf.Bounds().Dx(), s.buf.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, s.buf, s.buf.Bounds())
	s.stroker = rasterx.NewStroker(w, h, scanner)
	s.filler = rasterx.NewFiller(w, h, scanner)

	s.applyBackground()
	logging.Logger().Info("[surface] created", "surface", s.clock.ID(), "width", w, "height", h)
	return s
}

func (s *Surface) ID() string { return s.clock.ID() }

func (s *Surface) Bounds() image.Rectangle { return s.buf.Bounds() }

func (s *Surface) Style() state.Style { return s.style }

// Empty reports whether nothing has been drawn since creation or the last
// reset. A background fill does not count as drawing.
func (s *Surface) Empty() bool { return s.empty }

// Phase reports whether a gesture is in progress.
func (s *Surface) Phase() state.Phase { return s.sess.Phase }

// Strokes is the number of gestures painted since the last reset.
func (s *Surface) Strokes() uint64 { return s.clock.Count() }

// Image returns the live buffer. Callers must not modify it.
func (s *Surface) Image() *image.RGBA { return s.buf }

// Snapshot returns a private copy of the buffer.
func (s *Surface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.buf.Bounds())
	copy(cp.Pix, s.buf.Pix)
	return cp
}

func (s *Surface) SetStrokeColor(c color.NRGBA) {
	s.style.StrokeColor = c
}

func (s *Surface) SetStrokeWidth(w float32) error {
	if err := state.ValidateWidth(w); err != nil {
		return err
	}
	s.style.StrokeWidth = w
	return nil
}

// SetBackground changes the background color and repaints the buffer with it
// unless the background is transparent. An opaque color wipes existing strokes.
func (s *Surface) SetBackground(c color.NRGBA) {
	s.style.Background = c
	s.applyBackground()
}

func (s *Surface) SetTransparent(on bool) {
	s.style.Transparent = on
	s.applyBackground()
}

// Reset clears the buffer to fully transparent and restores the default
// style. The transparent toggle survives unless WithResetTransparent was set.
func (s *Surface) Reset() {
	draw.Draw(s.buf, s.buf.Bounds(), image.Transparent, image.Point{}, draw.Src)

	transparent := s.style.Transparent
	s.style = state.DefaultStyle()
	if !s.resetTransparent {
		s.style.Transparent = transparent
	}
	s.applyBackground()

	s.sess.End()
	s.empty = true
	s.clock.Reset()
	logging.Logger().Info("[surface] reset", "surface", s.clock.ID(), "transparent", s.style.Transparent)
}

// applyBackground composites the background color over the whole buffer, the
// way a canvas fillRect does. A fully transparent color leaves it unchanged.
func (s *Surface) applyBackground() {
	if s.style.Transparent {
		return
	}
	draw.Draw(s.buf, s.buf.Bounds(), image.NewUniform(s.style.Background), image.Point{}, draw.Over)
}
