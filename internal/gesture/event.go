package gesture

import (
	"image"
	"math"
)

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonTertiary
)

// Event is a raw pointer sample in viewport coordinates.
type Event struct {
	X, Y   float64
	Button Button
}

// Point returns the viewport position of the event, floored.
func (ev Event) Point() image.Point {
	return image.Pt(int(math.Floor(ev.X)), int(math.Floor(ev.Y)))
}

// Relative converts the event to integer coordinates relative to origin,
// the viewport position of the drawing surface's top-left corner.
func Relative(ev Event, origin image.Point) image.Point {
	return image.Pt(
		int(math.Floor(ev.X-float64(origin.X))),
		int(math.Floor(ev.Y-float64(origin.Y))),
	)
}

// MoveFunc receives every pointer move of a tracked gesture.
type MoveFunc func(Event)

// EndFunc receives the release event that ends a tracked gesture.
type EndFunc func(Event)
