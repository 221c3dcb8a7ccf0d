package tools

import (
	"math"

	"LocalPaint/internal/gesture"
)

// spray scatters one-pixel dots uniformly over a disk of the line width
// around the last known pointer position, on a timer, for as long as the
// button is held. Moves only update the position.
func spray(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
	radius := cx.Canvas.State.LineWidth / 2
	area := radius * radius * math.Pi
	dotsPerTick := int(math.Ceil(area / 30))

	current := cx.Pos(ev)
	stop := cx.every(cx.sprayInterval(), func() {
		for i := 0; i < dotsPerTick; i++ {
			x, y := RandomPointInRadius(randFunc(cx.random), radius)
			cx.Canvas.FillRect(math.Floor(float64(current.X)+x), math.Floor(float64(current.Y)+y), 1, 1)
		}
	})
	cx.Tracker.Track(func(ev gesture.Event) {
		current = cx.Pos(ev)
	}, restoring(stop, onEnd))
}

type randFunc func() float64

func (f randFunc) Float64() float64 { return f() }
