package state

import (
	"errors"
	"fmt"
	"image/color"
)

// Stroke width limits and presets offered by the thickness control.
const (
	MinStrokeWidth float32 = 1
	MaxStrokeWidth float32 = 10

	WidthThin   float32 = 2
	WidthMedium float32 = 5
	WidthThick  float32 = 10
)

var ErrStrokeWidth = errors.New("stroke width out of range")

// Presets maps the thickness selector labels to widths, in display order.
var Presets = []struct {
	Label string
	Width float32
}{
	{"Thin", WidthThin},
	{"Medium", WidthMedium},
	{"Thick", WidthThick},
}

type Point struct{ X, Y float32 }

// Style is what the user controls bind to. Changing it never touches strokes
// that are already painted.
type Style struct {
	StrokeColor color.NRGBA
	StrokeWidth float32
	Background  color.NRGBA
	Transparent bool
}

// DefaultStyle is the style a fresh or reset board starts with.
func DefaultStyle() Style {
	return Style{
		StrokeColor: color.NRGBA{A: 0xff},
		StrokeWidth: WidthThin,
		Background:  color.NRGBA{},
	}
}

// ValidateWidth reports whether w is a width the thickness control accepts.
func ValidateWidth(w float32) error {
	if w < MinStrokeWidth || w > MaxStrokeWidth {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrStrokeWidth, w, MinStrokeWidth, MaxStrokeWidth)
	}
	return nil
}

// PresetLabel returns the selector label for w, or "" if w is not a preset.
func PresetLabel(w float32) string {
	for _, p := range Presets {
		if p.Width == w {
			return p.Label
		}
	}
	return ""
}

// Pen is the stroke style captured when a gesture starts.
type Pen struct {
	Color color.NRGBA
	Width float32
}

func (s Style) Pen() Pen {
	return Pen{Color: s.StrokeColor, Width: s.StrokeWidth}
}

type Phase int

const (
	Idle Phase = iota
	Active
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Active:
		return "active"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Session is the transient state of one pointer-down to pointer-up gesture.
type Session struct {
	Phase Phase
	Moved bool
	Last  Point
	Pen   Pen
}

// Begin starts a new gesture at p, discarding whatever the previous one left.
func (s *Session) Begin(p Point, pen Pen) {
	*s = Session{Phase: Active, Last: p, Pen: pen}
}

// End returns the session to Idle.
func (s *Session) End() {
	*s = Session{}
}
