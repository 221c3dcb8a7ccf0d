package paint

import (
	"image/color"
	"math"
)

// Cap is the shape drawn at the open ends of a stroked path.
type Cap int

const (
	ButtCap Cap = iota
	RoundCap
	SquareCap
)

func (c Cap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "butt"
	}
}

// State holds the drawing parameters consulted by every paint operation.
// Tools may override fields for the span of a gesture and put them back
// when the gesture ends.
type State struct {
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	LineWidth   float64
	GlobalAlpha float64
	Composite   Op
	LineCap     Cap
}

// DefaultState mirrors a fresh 2D context: opaque black, one pixel wide,
// fully opaque, source-over, butt caps.
func DefaultState() State {
	black := color.NRGBA{A: 255}
	return State{
		FillColor:   black,
		StrokeColor: black,
		LineWidth:   1,
		GlobalAlpha: 1,
		Composite:   SourceOver,
		LineCap:     ButtCap,
	}
}

// SetColor sets both the fill and the stroke colour, the way the colour
// control of the toolbar does.
func (s *State) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.FillColor = n
	s.StrokeColor = n
}

// FontSize is the pixel size used for text: the line width, but never
// smaller than 7.
func (s *State) FontSize() float64 {
	return math.Max(7, s.LineWidth)
}

func (s *State) alpha() float64 {
	if s.GlobalAlpha < 0 {
		return 0
	}
	if s.GlobalAlpha > 1 {
		return 1
	}
	return s.GlobalAlpha
}

// withAlpha scales the colour's alpha by the global alpha.
func (s *State) withAlpha(c color.NRGBA) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * s.alpha()))
	return c
}
