package tools

import (
	"image/color"
	"math"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// bubbles draws white circles with a two pixel outline at every sample,
// their radius random up to the line width.
func bubbles(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	setFill := st.FillColor
	setSize := st.LineWidth

	cx.Tracker.Track(func(ev gesture.Event) {
		pos := cx.Pos(ev)
		radius := cx.random()*(setSize+1) + 1

		var p paint.Path
		p.Arc(float64(pos.X), float64(pos.Y), radius)
		st.LineWidth = 2
		cx.Canvas.Stroke(&p)
		st.FillColor = white
		cx.Canvas.Fill(&p)
	}, restoring(func() {
		st.LineWidth = setSize
		st.FillColor = setFill
	}, onEnd))
}

// blobs stamps a small cluster of translucent filled circles at every
// sample.
func blobs(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	setSize := st.LineWidth
	setAlpha := st.GlobalAlpha

	cx.Tracker.Track(func(ev gesture.Event) {
		pos := cx.Pos(ev)
		x, y := float64(pos.X), float64(pos.Y)
		radius := cx.random()*(setSize+1) + 1

		blob := func(cx0, cy0, r, alpha float64) {
			var p paint.Path
			p.Arc(cx0, cy0, r)
			st.GlobalAlpha = alpha
			cx.Canvas.Fill(&p)
		}
		blob(x, y, radius/3, cx.random()/2)
		for _, sign := range [][2]float64{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}} {
			dx := sign[0] * cx.random() * 10
			dy := sign[1] * cx.random() * 10
			blob(x+dx, y+dy, radius/2, cx.random()/4)
		}
	}, restoring(func() {
		st.LineWidth = setSize
		st.GlobalAlpha = setAlpha
	}, onEnd))
}

// radiate draws five thin, randomly faded rays of the line width's length
// out of every sample.
func radiate(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	st.LineCap = paint.RoundCap
	setWidth := st.LineWidth
	setAlpha := st.GlobalAlpha

	cx.Tracker.Track(func(ev gesture.Event) {
		st.LineWidth = 1
		for i := 0; i < 5; i++ {
			pos := cx.Pos(ev)
			x, y := float64(pos.X), float64(pos.Y)

			var p paint.Path
			p.MoveTo(x, y)
			p.LineTo(x+math.Cos(cx.random()*math.Pi*2)*setWidth,
				y+math.Sin(cx.random()*math.Pi*2)*setWidth)
			st.GlobalAlpha = cx.random() / 2
			cx.Canvas.Stroke(&p)
		}
	}, restoring(func() {
		st.LineWidth = setWidth
		st.GlobalAlpha = setAlpha
	}, onEnd))
}

// icicles fills a thin translucent triangle hanging below every segment.
func icicles(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	st.LineCap = paint.RoundCap
	setWidth := st.LineWidth
	setAlpha := st.GlobalAlpha

	pos := cx.Pos(ev)
	st.LineWidth = 1
	st.GlobalAlpha = 0.4
	cx.Tracker.Track(func(ev gesture.Event) {
		var p paint.Path
		p.MoveTo(float64(pos.X), float64(pos.Y))
		pos = cx.Pos(ev)
		x, y := float64(pos.X), float64(pos.Y)
		p.LineTo(x, y+setWidth*cx.random()*5)
		p.LineTo(x, y)
		cx.Canvas.Fill(&p)
	}, restoring(func() {
		st.LineWidth = setWidth
		st.GlobalAlpha = setAlpha
	}, onEnd))
}

// jagged follows the pointer with a one pixel zigzag whose excursions
// scale with the line width.
func jagged(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	st.LineCap = paint.RoundCap
	setWidth := st.LineWidth
	setAlpha := st.GlobalAlpha

	pos := cx.Pos(ev)
	st.LineWidth = 1
	cx.Tracker.Track(func(ev gesture.Event) {
		offset := func() float64 { return cx.random()*setWidth*2 - setWidth }

		var p paint.Path
		p.MoveTo(float64(pos.X), float64(pos.Y))
		pos = cx.Pos(ev)
		x, y := float64(pos.X), float64(pos.Y)
		p.LineTo(x+offset(), y)
		cx.Canvas.Stroke(&p)
		p.LineTo(x+offset(), y+offset())
		cx.Canvas.Stroke(&p)
		p.LineTo(x, y+offset())
		cx.Canvas.Stroke(&p)
		p.LineTo(x, y)
		cx.Canvas.Stroke(&p)
	}, restoring(func() {
		st.LineWidth = setWidth
		st.GlobalAlpha = setAlpha
	}, onEnd))
}
