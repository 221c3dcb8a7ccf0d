package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/export"
	"LocalPaint/internal/net"
	"LocalPaint/internal/tools"
)

// fetchTimeout bounds a URL load started from the toolbar.
const fetchTimeout = time.Minute

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// --- Custom Widget for the current colour ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)

	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// sizeLabel is how a brush size appears in the size selector.
func sizeLabel(size float64) string {
	return fmt.Sprintf("%g pixels", size)
}

func parseSizeLabel(label string) (float64, bool) {
	var size float64
	if _, err := fmt.Sscanf(label, "%g pixels", &size); err != nil || size <= 0 {
		return 0, false
	}
	return size, true
}

// --- The Main Toolbar ---
func NewToolbar(board *PaintWidget, win fyne.Window, sizes []float64, fetcher *net.Fetcher) fyne.CanvasObject {
	// --- Tool selector ---
	toolSelect := widget.NewSelect(tools.DisplayNames(), func(s string) {
		if n, ok := tools.ParseName(s); ok {
			board.SetTool(n)
		}
	})
	toolSelect.SetSelected(board.Tool().String())

	// --- Colour ---
	swatch := newColorSwatch(board.Surface().State.FillColor, nil)
	swatch.OnTapped = func(current color.Color) {
		picker := dialog.NewColorPicker("Color", "Pick a drawing colour", func(c color.Color) {
			board.SetColor(c)
			swatch.SetColor(c)
		}, win)
		picker.Advanced = true
		picker.SetColor(current)
		picker.Show()
	}

	// --- Brush size ---
	labels := make([]string, len(sizes))
	for i, s := range sizes {
		labels[i] = sizeLabel(s)
	}
	sizeSelect := widget.NewSelect(labels, func(s string) {
		if size, ok := parseSizeLabel(s); ok {
			board.SetStroke(size)
		}
	})
	sizeSelect.SetSelected(sizeLabel(board.Surface().State.LineWidth))

	// --- File actions, with built-in tooltips ---
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { showOpenDialog(board, win) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { showSaveDialog(board, win) }),
		widget.NewToolbarAction(theme.ContentCopyIcon(), func() { copyDataURL(board, win) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
	)

	// --- Load from URL ---
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("http://...")
	load := func() { openURL(board, win, fetcher, urlEntry.Text) }
	urlEntry.OnSubmitted = func(string) { load() }
	urlBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(220, 35)), urlEntry)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatch,
		widget.NewSeparator(),
		widget.NewLabel("Brush size:"),
		sizeSelect,
		widget.NewSeparator(),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Open URL:"),
		urlBox,
		widget.NewButton("load", load),
		layout.NewSpacer(),
	)
}

func showOpenDialog(board *PaintWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		if err := board.LoadReader(r, r.URI().Name()); err != nil {
			log.Printf("[LOAD] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func showSaveDialog(board *PaintWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		uri := w.URI()
		err = board.SaveTo(w, uri.Name())
		w.Close()
		if err == nil {
			board.SetStatus("Saved " + uri.Name())
			return
		}
		if rmErr := storage.Delete(uri); rmErr != nil {
			log.Printf("[SAVE] unable to remove %s: %v", uri, rmErr)
		}
		reportSaveError(err, win)
	}, win)
	d.SetFileName("painting.png")
	d.Show()
}

func copyDataURL(board *PaintWidget, win fyne.Window) {
	url, err := export.DataURL(board.Surface())
	if err != nil {
		reportSaveError(err, win)
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(url)
	board.SetStatus("Copied data URL to the clipboard")
}

// reportSaveError shows a refused export as information and anything else
// as an error.
func reportSaveError(err error, win fyne.Window) {
	if msg, forbidden := explainSaveError(err); forbidden {
		log.Printf("[SAVE] %v", err)
		dialog.ShowInformation("Save", msg, win)
		return
	}
	log.Printf("[SAVE] ERROR: %v", err)
	dialog.ShowError(err, win)
}

func openURL(board *PaintWidget, win fyne.Window, fetcher *net.Fetcher, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	board.SetStatus("Loading " + raw)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		img, err := fetcher.Fetch(ctx, raw)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[LOAD] %v", err)
				board.SetStatus("Load failed")
				dialog.ShowError(err, win)
				return
			}
			board.LoadImage(img.Image, img.Origin)
		})
	}()
}
