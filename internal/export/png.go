// Package export turns the drawing surface into a standalone image file.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"
)

// FileName is the name offered for a downloaded PNG.
const FileName = "signature.png"

// ErrCanvasEmpty is returned when nothing has been drawn. Its text is shown
// to the user as is.
var ErrCanvasEmpty = errors.New("Canvas is empty")

// Source is what an export reads from.
type Source interface {
	Empty() bool
	Snapshot() *image.RGBA
	Style() state.Style
}

// Render produces the image an export writes. With a transparent background
// every pixel that is not fully opaque becomes transparent black. Otherwise
// the drawing is composited over the background color.
func Render(src Source) (*image.NRGBA, error) {
	if src.Empty() {
		return nil, ErrCanvasEmpty
	}
	snap := src.Snapshot()
	st := src.Style()
	b := snap.Bounds()
	out := image.NewNRGBA(b)

	if st.Transparent {
		draw.Draw(out, b, snap, b.Min, draw.Src)
		dropTranslucent(out)
		return out, nil
	}
	draw.Draw(out, b, image.NewUniform(st.Background), image.Point{}, draw.Src)
	draw.Draw(out, b, snap, b.Min, draw.Over)
	return out, nil
}

// dropTranslucent zeroes every pixel whose alpha is below 255. The cutoff is
// binary, so anti-aliased stroke edges are lost too.
func dropTranslucent(img *image.NRGBA) {
	p := img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		if p[i+3] < 0xff {
			p[i], p[i+1], p[i+2], p[i+3] = 0, 0, 0, 0
		}
	}
}

// PNG renders src and writes it as a PNG. Nothing is written when the canvas
// is empty.
func PNG(w io.Writer, src Source) error {
	img, err := Render(src)
	if err != nil {
		return err
	}
	if err := encodePNG(w, img); err != nil {
		return err
	}
	logging.Logger().Info("[export] png written", "transparent", src.Style().Transparent,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
