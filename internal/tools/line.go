package tools

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
)

// line strokes a round-capped segment from the previous pointer sample
// to the current one on every move.
func line(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	cx.Canvas.State.LineCap = paint.RoundCap

	pos := cx.Pos(ev)
	cx.Tracker.Track(func(ev gesture.Event) {
		var p paint.Path
		p.MoveTo(float64(pos.X), float64(pos.Y))
		pos = cx.Pos(ev)
		p.LineTo(float64(pos.X), float64(pos.Y))
		cx.Canvas.Stroke(&p)
	}, onEnd)
}

// erase is the line tool drawn with destination-out, which clears the
// pixels it covers. The previous composite operator comes back when the
// gesture ends.
func erase(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	prev := cx.Canvas.State.Composite
	cx.Canvas.State.Composite = paint.DestinationOut
	WithEnd(line, func(gesture.Event) {
		cx.Canvas.State.Composite = prev
	})(ev, cx, onEnd)
}

// brokenLine is a butt-capped line whose segment ends are jittered by up
// to four pixels.
func brokenLine(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	cx.Canvas.State.LineCap = paint.ButtCap

	jitter := func() float64 { return cx.random()*9 - 4 }
	pos := cx.Pos(ev)
	cx.Tracker.Track(func(ev gesture.Event) {
		var p paint.Path
		p.MoveTo(float64(pos.X)+jitter(), float64(pos.Y)+jitter())
		pos = cx.Pos(ev)
		p.LineTo(float64(pos.X)+jitter(), float64(pos.Y)+jitter())
		cx.Canvas.Stroke(&p)
	}, onEnd)
}

// rainbowLine is a half-transparent line whose hue advances five degrees
// per segment.
func rainbowLine(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	st := &cx.Canvas.State
	st.LineCap = paint.RoundCap
	setColor := st.StrokeColor

	hue := 0.0
	pos := cx.Pos(ev)
	cx.Tracker.Track(func(ev gesture.Event) {
		var p paint.Path
		p.MoveTo(float64(pos.X), float64(pos.Y))
		pos = cx.Pos(ev)
		p.LineTo(float64(pos.X), float64(pos.Y))
		st.StrokeColor = hsla(hue, 0.5, 0.5, 0.5)
		cx.Canvas.Stroke(&p)
		hue += 5
	}, restoring(func() {
		st.StrokeColor = setColor
	}, onEnd))
}

func hsla(h, s, l, a float64) color.NRGBA {
	r, g, b := colorful.Hsl(math.Mod(h, 360), s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}
