package surface

import (
	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const miterLimit = fixed.Int26_6(4 << 6)

// PointerDown starts a stroke at p with the current stroke color and width.
// A down while a stroke is already active restarts it at p.
func (s *Surface) PointerDown(p state.Point) {
	s.sess.Begin(p, s.style.Pen())
}

// PointerMove paints the segment from the previous pointer position to p.
// Moves outside an active stroke are ignored.
func (s *Surface) PointerMove(p state.Point) {
	if s.sess.Phase != state.Active {
		return
	}
	if !s.sess.Moved {
		logging.Logger().Debug("[surface] stroke", "surface", s.clock.ID(), "seq", s.clock.Next())
	}
	if p == s.sess.Last {
		s.dot(p, s.sess.Pen)
	} else {
		s.segment(s.sess.Last, p, s.sess.Pen)
	}
	s.sess.Last = p
	s.sess.Moved = true
	s.empty = false
}

// PointerUp ends the stroke. If the pointer never moved a dot of diameter
// equal to the stroke width is painted at p.
func (s *Surface) PointerUp(p state.Point) {
	if s.sess.Phase != state.Active {
		return
	}
	if !s.sess.Moved {
		logging.Logger().Debug("[surface] dot", "surface", s.clock.ID(), "seq", s.clock.Next())
		s.dot(p, s.sess.Pen)
		s.empty = false
	}
	s.sess.End()
}

func (s *Surface) segment(a, b state.Point, pen state.Pen) {
	r := s.stroker
	r.SetStroke(fixed.Int26_6(pen.Width*64), miterLimit,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	r.Start(toFixed(a))
	r.Line(toFixed(b))
	r.Stop(false)
	r.SetColor(pen.Color)
	r.Draw()
	r.Clear()
}

func (s *Surface) dot(p state.Point, pen state.Pen) {
	r := s.filler
	rasterx.AddCircle(float64(p.X), float64(p.Y), float64(pen.Width)/2, r)
	r.SetColor(pen.Color)
	r.Draw()
	r.Clear()
}

func toFixed(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}
