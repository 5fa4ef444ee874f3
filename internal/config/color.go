package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrColor = errors.New("invalid color")

// ParseColor accepts "#rgb", "#rrggbb", an SVG color name such as "navy", or
// "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
}

// FormatColor renders c the way ParseColor reads it back. Alpha other than
// fully opaque or fully transparent is dropped.
func FormatColor(c color.NRGBA) string {
	if c.A == 0 {
		return "transparent"
	}
	c.A = 0xff
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}

// Opaque converts a picked color and drops its alpha, so every user-chosen
// stroke or background color is fully opaque like "#rrggbb".
func Opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
