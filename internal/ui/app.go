package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"LocalPaint/internal/config"
	"LocalPaint/internal/net"
)

// Options are the command line settings passed to RunApp.
type Options struct {
	Debug bool
	Open  string // image file loaded at start-up
}

func RunApp(cfg *config.Resolved, opts Options) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Paint")
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+120))

	// Create the interactive paint widget and the services its tools use
	board := NewPaintWidget(cfg)
	board.SetDebug(opts.Debug)
	overlays := newOverlayLayer()
	board.SetServices(
		tickScheduler{after: board.refreshSurface},
		overlays,
		dialogPrompter{window: myWindow, after: board.refreshSurface},
	)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow, cfg.BrushSizes, net.NewFetcher())

	// Set up the main layout, previews float above everything
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, container.NewScroll(board))
	myWindow.SetContent(container.NewStack(content, overlays.layer))

	// A gesture cannot survive the window losing focus
	myApp.Lifecycle().SetOnExitedForeground(board.CancelGesture)

	if opts.Open != "" {
		if err := board.LoadFile(opts.Open); err != nil {
			log.Printf("[LOAD] %v", err)
			dialog.ShowError(err, myWindow)
		}
	}

	myWindow.ShowAndRun()
}
