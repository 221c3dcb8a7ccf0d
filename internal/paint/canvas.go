// Package paint implements the drawing surface: an RGBA raster with a
// persistent paint state and an immediate-mode path, fill, stroke and
// text API on top of rasterx.
package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas is the drawing surface. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Canvas struct {
	State State

	img    *image.NRGBA
	layer  *image.RGBA // scratch coverage for the operation in flight
	origin string      // non-empty once untrusted content was drawn
}

// New returns a transparent canvas of w x h pixels with the default state.
func New(w, h int) *Canvas {
	c := &Canvas{State: DefaultState()}
	c.Resize(w, h)
	return c
}

// Resize replaces the raster with a cleared one of the new size. The
// paint state is kept and the surface becomes exportable again.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r := image.Rect(0, 0, w, h)
	c.img = image.NewNRGBA(r)
	c.layer = image.NewRGBA(r)
	c.origin = ""
}

// Size returns the raster dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the live raster. Callers must not keep it across a Resize.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), transparent, image.Point{}, draw.Src)
}

// Stroke outlines the path with the stroke colour, line width and cap.
func (c *Canvas) Stroke(p *Path) {
	if p == nil || p.Empty() {
		return
	}
	width := c.State.LineWidth
	if width <= 0 {
		return
	}
	minX, minY, maxX, maxY, ok := p.bounds()
	if !ok {
		return
	}
	pad := width + 2
	dirty := c.dirty(minX-pad, minY-pad, maxX+pad, maxY+pad)
	if dirty.Empty() {
		return
	}
	col := c.State.withAlpha(c.State.StrokeColor)

	w, h := c.Size()
	scanner := rasterx.NewScannerGV(w, h, c.layer, c.layer.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	capFn := capFunc(c.State.LineCap)
	dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64), capFn, capFn,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	scanner.SetColor(col)
	p.addTo(dasher, false)
	dasher.Draw()

	if dots := p.dots(width, c.State.LineCap); !dots.Empty() {
		scanner.Clear()
		filler := rasterx.NewFiller(w, h, scanner)
		dots.addTo(filler, true)
		filler.Draw()
	}
	c.commit(dirty)
}

// Fill paints the interior of the path with the fill colour. Open
// sub-paths are closed implicitly.
func (c *Canvas) Fill(p *Path) {
	if p == nil || p.Empty() {
		return
	}
	minX, minY, maxX, maxY, ok := p.bounds()
	if !ok {
		return
	}
	dirty := c.dirty(minX-1, minY-1, maxX+1, maxY+1)
	if dirty.Empty() {
		return
	}
	w, h := c.Size()
	scanner := rasterx.NewScannerGV(w, h, c.layer, c.layer.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	scanner.SetColor(c.State.withAlpha(c.State.FillColor))
	p.addTo(filler, true)
	filler.Draw()
	c.commit(dirty)
}

// FillRect fills an axis-aligned rectangle. Negative sizes extend left or
// up from (x, y); an empty rectangle draws nothing.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w == 0 || h == 0 {
		return
	}
	col := c.State.withAlpha(c.State.FillColor)
	if integral(x, y, w, h) {
		r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(c.img.Bounds())
		if r.Empty() {
			return
		}
		draw.Draw(c.layer, r, image.NewUniform(col), image.Point{}, draw.Src)
		c.commit(r)
		return
	}
	var p Path
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	c.Fill(&p)
}

// DrawImage paints img with its top-left corner at (x, y), honouring the
// global alpha and composite operator.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy()).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(c.State.alpha() * 255))})
	sp := b.Min.Add(r.Min.Sub(image.Pt(x, y)))
	draw.DrawMask(c.layer, r, img, sp, mask, image.Point{}, draw.Src)
	c.commit(r)
}

// Taint marks the surface as holding content from origin; Snapshot fails
// from then on until the next Resize.
func (c *Canvas) Taint(origin string) {
	if origin == "" {
		origin = "unknown"
	}
	c.origin = origin
}

// Tainted reports whether export is currently forbidden.
func (c *Canvas) Tainted() bool {
	return c.origin != ""
}

// Snapshot returns a copy of the raster for export. It fails with a
// *SecurityError when untrusted content was drawn onto the surface.
func (c *Canvas) Snapshot() (*image.NRGBA, error) {
	if c.Tainted() {
		return nil, &SecurityError{Op: "paint.Snapshot", Origin: c.origin}
	}
	out := image.NewNRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out, nil
}

// commit composites the scratch layer onto the raster inside r and
// clears the layer again.
func (c *Canvas) commit(r image.Rectangle) {
	composite(c.img, c.layer, r, c.State.Composite)
	draw.Draw(c.layer, r, transparent, image.Point{}, draw.Src)
}

func (c *Canvas) dirty(minX, minY, maxX, maxY float64) image.Rectangle {
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(c.img.Bounds())
}

func capFunc(c Cap) rasterx.CapFunc {
	switch c {
	case RoundCap:
		return rasterx.RoundCap
	case SquareCap:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func integral(vs ...float64) bool {
	for _, v := range vs {
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}
