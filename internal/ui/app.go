package ui

import (
	"SignatureBoard/internal/config"
	"SignatureBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Signature Board")

	board := NewBoardWidget(surface.New(cfg.SurfaceOptions()...))
	status := widget.NewLabel("Ready")
	toolbar := NewToolbar(board, myWindow, status)

	content := container.NewBorder(toolbar.Content, status, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+160))
	myWindow.ShowAndRun()
}
