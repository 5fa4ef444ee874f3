package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"SignatureBoard/internal/export"
	"SignatureBoard/internal/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

type renderFunc func(io.Writer, export.Source) error

// render runs an export into memory. An empty canvas shows a notice and
// returns false without producing anything.
func (t *Toolbar) render(fn renderFunc) ([]byte, bool) {
	var buf bytes.Buffer
	if err := fn(&buf, t.board.Surface()); err != nil {
		if errors.Is(err, export.ErrCanvasEmpty) {
			dialog.ShowInformation("Download", err.Error(), t.win)
			return nil, false
		}
		logging.Logger().Error("[ui] export failed", "err", err)
		dialog.ShowError(err, t.win)
		return nil, false
	}
	return buf.Bytes(), true
}

// save renders first and only then asks where to put the file.
func (t *Toolbar) save(name string, fn renderFunc) {
	data, ok := t.render(fn)
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.win)
			return
		}
		if w == nil {
			return
		}
		if err := writeAndClose(w, data); err != nil {
			logging.Logger().Error("[ui] save failed", "file", name, "err", err)
			t.setStatus("Error writing file")
			dialog.ShowError(err, t.win)
			return
		}
		logging.Logger().Info("[ui] saved", "uri", w.URI().String(), "bytes", len(data))
		t.setStatus(fmt.Sprintf("Saved %s", w.URI().Name()))
	}, t.win)
	d.SetFileName(name)
	d.Show()
}

func writeAndClose(w io.WriteCloser, data []byte) error {
	_, err := w.Write(data)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
