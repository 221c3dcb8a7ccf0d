package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/tools"
)

// PaintWidget shows the drawing surface and turns mouse input into tool
// gestures.
type PaintWidget struct {
	widget.BaseWidget

	surface  *paint.Canvas
	tracker  *gesture.Tracker
	registry *tools.Registry
	cx       *tools.Context
	tool     tools.Name
	trusted  func(origin string) bool

	image     *canvas.Image
	statusBar *widget.Label
	last      gesture.Event // last pointer sample, for DragEnd and Cancel
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)

// NewPaintWidget creates the surface described by cfg. Host services the
// tools need (timers, overlays, prompts) are attached with SetServices.
func NewPaintWidget(cfg *config.Resolved) *PaintWidget {
	surface := paint.New(cfg.Width, cfg.Height)
	surface.State.SetColor(cfg.Color)
	if len(cfg.BrushSizes) > 0 {
		surface.State.LineWidth = cfg.BrushSizes[0]
	}

	p := &PaintWidget{
		surface:   surface,
		tracker:   gesture.NewTracker(),
		registry:  tools.Default(),
		tool:      cfg.Tool,
		trusted:   cfg.Trusted,
		statusBar: widget.NewLabel("Ready"),
	}
	p.image = canvas.NewImageFromImage(surface.Image())
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScalePixels
	p.fitImage()

	p.cx = &tools.Context{
		Canvas:        surface,
		Tracker:       p.tracker,
		Origin:        p.origin,
		SprayInterval: cfg.SprayInterval,
	}
	p.ExtendBaseWidget(p)
	return p
}

// SetServices attaches the host services used by the tools.
func (p *PaintWidget) SetServices(s tools.Scheduler, o tools.Overlays, pr tools.Prompter) {
	p.cx.Scheduler = s
	p.cx.Overlays = o
	p.cx.Prompter = pr
}

// SetDebug turns per-gesture logging on or off.
func (p *PaintWidget) SetDebug(on bool) {
	p.tracker.Debug = on
}

// Surface returns the drawing surface.
func (p *PaintWidget) Surface() *paint.Canvas {
	return p.surface
}

// Tool returns the selected tool.
func (p *PaintWidget) Tool() tools.Name {
	return p.tool
}

// SetTool selects the tool used by the next press.
func (p *PaintWidget) SetTool(n tools.Name) {
	p.tool = n
}

// SetColor sets the fill and stroke colour.
func (p *PaintWidget) SetColor(c color.Color) {
	p.surface.State.SetColor(c)
}

// SetStroke sets the line width.
func (p *PaintWidget) SetStroke(w float64) {
	p.surface.State.LineWidth = w
}

// SetStatus shows text in the status bar. Call from the UI goroutine.
func (p *PaintWidget) SetStatus(text string) {
	p.statusBar.SetText(text)
}

// StatusBar is the label SetStatus writes to.
func (p *PaintWidget) StatusBar() *widget.Label {
	return p.statusBar
}

// origin is the window position of the surface's top-left pixel.
func (p *PaintWidget) origin() image.Point {
	app := fyne.CurrentApp()
	if app == nil {
		return image.Point{}
	}
	pos := app.Driver().AbsolutePositionForObject(p.image)
	return image.Pt(int(pos.X), int(pos.Y))
}

func toEvent(pos fyne.Position, b desktop.MouseButton) gesture.Event {
	ev := gesture.Event{X: float64(pos.X), Y: float64(pos.Y)}
	switch b {
	case desktop.MouseButtonPrimary:
		ev.Button = gesture.ButtonPrimary
	case desktop.MouseButtonSecondary:
		ev.Button = gesture.ButtonSecondary
	case desktop.MouseButtonTertiary:
		ev.Button = gesture.ButtonTertiary
	}
	return ev
}

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	ev := toEvent(e.AbsolutePosition, e.Button)
	p.last = ev
	if p.tracker.Active() {
		return
	}
	if p.registry.Dispatch(p.tool, ev, p.cx) {
		p.refreshSurface()
	}
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	p.release(toEvent(e.AbsolutePosition, e.Button))
}

func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	ev := gesture.Event{X: float64(e.AbsolutePosition.X), Y: float64(e.AbsolutePosition.Y)}
	p.last = ev
	if !p.tracker.Active() {
		return
	}
	p.tracker.Move(ev)
	p.refreshSurface()
}

func (p *PaintWidget) DragEnd() {
	p.release(p.last)
}

// CancelGesture ends the gesture in flight at the last known position.
func (p *PaintWidget) CancelGesture() {
	if p.tracker.Active() {
		p.tracker.Cancel(p.last)
		p.refreshSurface()
	}
}

func (p *PaintWidget) release(ev gesture.Event) {
	p.last = ev
	if !p.tracker.Active() {
		return
	}
	p.tracker.Release(ev)
	p.refreshSurface()
}

// refreshSurface pushes the raster to the screen.
func (p *PaintWidget) refreshSurface() {
	if p.image.Image != p.surface.Image() {
		p.image.Image = p.surface.Image()
		p.fitImage()
		p.Refresh()
	}
	p.image.Refresh()
}

func (p *PaintWidget) fitImage() {
	w, h := p.surface.Size()
	size := fyne.NewSize(float32(w), float32(h))
	p.image.SetMinSize(size)
	p.image.Resize(size)
}

// Clear wipes the surface.
func (p *PaintWidget) Clear() {
	p.surface.Clear()
	p.refreshSurface()
	p.SetStatus("Cleared")
}

// LoadImage replaces the surface with img, sized to it. Colour and brush
// size survive the resize. Content from an origin that is not trusted
// taints the surface so it can no longer be saved.
func (p *PaintWidget) LoadImage(img image.Image, origin string) {
	fill, stroke, width := p.surface.State.FillColor, p.surface.State.StrokeColor, p.surface.State.LineWidth

	b := img.Bounds()
	p.surface.Resize(b.Dx(), b.Dy())
	p.surface.State.GlobalAlpha, p.surface.State.Composite = 1, paint.SourceOver
	p.surface.DrawImage(img, 0, 0)

	p.surface.State.FillColor = fill
	p.surface.State.StrokeColor = stroke
	p.surface.State.LineWidth = width

	if origin != "" && (p.trusted == nil || !p.trusted(origin)) {
		p.surface.Taint(origin)
		log.Printf("[LOAD] content from %s taints the surface", origin)
	}
	p.refreshSurface()
	p.SetStatus(fmt.Sprintf("Loaded %dx%d image", b.Dx(), b.Dy()))
}

// LoadFile loads a local image file. Local files never taint the surface.
func (p *PaintWidget) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()
	return p.LoadReader(f, path)
}

// LoadReader decodes an image from r and loads it; name is only used in
// messages.
func (p *PaintWidget) LoadReader(r io.Reader, name string) error {
	img, err := export.Decode(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("[LOAD] %s: %dx%d", name, img.Bounds().Dx(), img.Bounds().Dy())
	p.LoadImage(img, "")
	return nil
}

// SaveTo writes the surface to w in the format named by name.
func (p *PaintWidget) SaveTo(w io.Writer, name string) error {
	if err := export.Save(w, p.surface, name); err != nil {
		return err
	}
	log.Printf("[SAVE] wrote %s", name)
	return nil
}

// explainSaveError splits save failures into the one that is expected,
// a refused export, and everything else.
func explainSaveError(err error) (message string, forbidden bool) {
	var secErr *paint.SecurityError
	if errors.As(err, &secErr) {
		return "Can't save: " + secErr.Error(), true
	}
	return "", false
}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintWidgetRenderer{widget: p}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type paintWidgetRenderer struct {
	widget     *PaintWidget
	background *canvas.Rectangle
}

func (r *paintWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.widget.image}
}

func (r *paintWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(r.widget.image.MinSize())
	r.background.Move(fyne.NewPos(0, 0))
	r.widget.image.Move(fyne.NewPos(0, 0))
	r.widget.image.Resize(r.widget.image.MinSize())
}

func (r *paintWidgetRenderer) MinSize() fyne.Size {
	return r.widget.image.MinSize()
}

func (r *paintWidgetRenderer) Refresh() {
	r.Layout(r.widget.Size())
	r.background.Refresh()
	r.widget.image.Refresh()
}

func (r *paintWidgetRenderer) Destroy() {}
