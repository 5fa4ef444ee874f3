// Package script replays recorded gestures and control changes onto a
// surface. The render command and the compatibility tests use it to produce
// exports without a window.
//
// A script is a JSON array of events:
//
//	[
//	  {"type": "background", "color": "#ffffff"},
//	  {"type": "width", "width": 5},
//	  {"type": "down", "x": 10, "y": 20},
//	  {"type": "move", "x": 30, "y": 20},
//	  {"type": "up", "x": 30, "y": 20}
//	]
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"SignatureBoard/internal/config"
	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"
	"SignatureBoard/internal/surface"
)

type Type string

const (
	Down        Type = "down"
	Move        Type = "move"
	Up          Type = "up"
	Color       Type = "color"
	Width       Type = "width"
	Background  Type = "background"
	Transparent Type = "transparent"
	Reset       Type = "reset"
)

var ErrUnknownEvent = errors.New("unknown event type")

type Event struct {
	Type  Type    `json:"type"`
	X     float32 `json:"x,omitempty"`
	Y     float32 `json:"y,omitempty"`
	Color string  `json:"color,omitempty"`
	Width float32 `json:"width,omitempty"`
	On    bool    `json:"on,omitempty"`
}

func (e Event) point() state.Point { return state.Point{X: e.X, Y: e.Y} }

// Decode reads a script and checks every event type.
func Decode(r io.Reader) ([]Event, error) {
	var events []Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, e := range events {
		switch e.Type {
		case Down, Move, Up, Color, Width, Background, Transparent, Reset:
		default:
			return nil, fmt.Errorf("event %d: %w %q", i, ErrUnknownEvent, e.Type)
		}
	}
	return events, nil
}

// Play applies events to s in order and stops at the first one that fails.
func Play(s *surface.Surface, events []Event) error {
	for i, e := range events {
		if err := apply(s, e); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Type, err)
		}
	}
	logging.Logger().Debug("[script] played", "events", len(events), "strokes", s.Strokes())
	return nil
}

func apply(s *surface.Surface, e Event) error {
	switch e.Type {
	case Down:
		s.PointerDown(e.point())
	case Move:
		s.PointerMove(e.point())
	case Up:
		s.PointerUp(e.point())
	case Color:
		c, err := config.ParseColor(e.Color)
		if err != nil {
			return err
		}
		s.SetStrokeColor(c)
	case Width:
		return s.SetStrokeWidth(e.Width)
	case Background:
		c, err := config.ParseColor(e.Color)
		if err != nil {
			return err
		}
		s.SetBackground(c)
	case Transparent:
		s.SetTransparent(e.On)
	case Reset:
		s.Reset()
	default:
		return fmt.Errorf("%w %q", ErrUnknownEvent, e.Type)
	}
	return nil
}
