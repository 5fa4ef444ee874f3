package export

import (
	"bytes"
	"fmt"
	"io"

	"SignatureBoard/internal/logging"

	"github.com/jung-kurt/gofpdf"
)

// PDFFileName is the name offered for a downloaded PDF.
const PDFFileName = "signature.pdf"

// Page layout in millimetres, landscape A4.
const (
	pdfMargin   = 20.0
	pdfMaxWidth = 297.0 - 2*pdfMargin
)

// PDF places the exported PNG on a landscape A4 page. Transparency is kept,
// so a transparent export shows the paper through it.
func PDF(w io.Writer, src Source) error {
	img, err := Render(src)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := encodePNG(&buf, img); err != nil {
		return err
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("Signature", true)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := p.RegisterImageOptionsReader("signature", opts, &buf)
	if p.Err() {
		return fmt.Errorf("embed png: %w", p.Error())
	}
	width := pdfMaxWidth
	if px := float64(img.Bounds().Dx()) * 25.4 / 96; px < width {
		width = px
	}
	height := width * info.Height() / info.Width()
	p.ImageOptions("signature", pdfMargin, pdfMargin, width, height, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	logging.Logger().Info("[export] pdf written", "width_mm", width, "height_mm", height)
	return nil
}
