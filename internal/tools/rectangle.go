package tools

import (
	"LocalPaint/internal/gesture"
)

// rectangle previews the dragged rectangle with an overlay in viewport
// coordinates and fills it onto the surface on release.
func rectangle(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	relativeStart := cx.Pos(ev)
	pageStart := ev.Point()

	tracking := cx.overlay(cx.Canvas.State.FillColor)
	cx.Tracker.Track(func(ev gesture.Event) {
		tracking.Place(RectangleFrom(pageStart, ev.Point()).Image())
	}, func(ev gesture.Event) {
		r := RectangleFrom(relativeStart, cx.Pos(ev))
		cx.Canvas.FillRect(float64(r.Left), float64(r.Top), float64(r.Width), float64(r.Height))
		tracking.Remove()
		if onEnd != nil {
			onEnd(ev)
		}
	})
}
