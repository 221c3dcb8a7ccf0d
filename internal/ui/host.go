package ui

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/tools"
)

// tickScheduler runs repeating callbacks on the UI goroutine.
type tickScheduler struct {
	after func() // runs after every tick, used to repaint
}

func (s tickScheduler) Every(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	exited := make(chan struct{})
	var stopped atomic.Bool

	go func() {
		defer close(exited)
		for {
			select {
			case <-ticker.C:
				fyne.Do(func() {
					if stopped.Load() {
						return
					}
					fn()
					if s.after != nil {
						s.after()
					}
				})
			case <-done:
				return
			}
		}
	}()

	// Ticks already queued on the UI goroutine see stopped; waiting for
	// exited covers a driver that runs them in place.
	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			ticker.Stop()
			close(done)
			<-exited
		})
	}
}

// overlayLayer floats rectangles above the window content. Positions are
// window coordinates.
type overlayLayer struct {
	layer *fyne.Container
}

func newOverlayLayer() *overlayLayer {
	return &overlayLayer{layer: container.NewWithoutLayout()}
}

func (l *overlayLayer) NewOverlay(fill color.Color) tools.Overlay {
	r := canvas.NewRectangle(fill)
	r.Hide()
	l.layer.Add(r)
	return &rectOverlay{owner: l, rect: r}
}

// offset is the window position of the layer itself.
func (l *overlayLayer) offset() fyne.Position {
	app := fyne.CurrentApp()
	if app == nil {
		return fyne.Position{}
	}
	return app.Driver().AbsolutePositionForObject(l.layer)
}

type rectOverlay struct {
	owner *overlayLayer
	rect  *canvas.Rectangle
}

func (o *rectOverlay) Place(r image.Rectangle) {
	off := o.owner.offset()
	o.rect.Move(fyne.NewPos(float32(r.Min.X)-off.X, float32(r.Min.Y)-off.Y))
	o.rect.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	o.rect.Show()
	o.rect.Refresh()
}

func (o *rectOverlay) Remove() {
	o.owner.layer.Remove(o.rect)
	o.owner.layer.Refresh()
}

// dialogPrompter asks for text with a modal form.
type dialogPrompter struct {
	window fyne.Window
	after  func() // runs after an answer was handled
}

func (d dialogPrompter) Prompt(label, initial string, fn func(string)) {
	entry := widget.NewEntry()
	entry.SetText(initial)
	items := []*widget.FormItem{widget.NewFormItem(label, entry)}
	form := dialog.NewForm("Text", "OK", "Cancel", items, func(ok bool) {
		answer := ""
		if ok {
			answer = entry.Text
		}
		fn(answer)
		if d.after != nil {
			d.after()
		}
	}, d.window)
	form.Show()
	d.window.Canvas().Focus(entry)
}
