package tools

import "image"

// Rect is an axis-aligned rectangle given by its top-left corner and
// non-negative size.
type Rect struct {
	Left, Top, Width, Height int
}

// RectangleFrom returns the rectangle spanned by two corner points,
// whichever corners they are.
func RectangleFrom(a, b image.Point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Width:  abs(a.X - b.X),
		Height: abs(a.Y - b.Y),
	}
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RandomPointInRadius returns a uniformly distributed offset inside the
// disk of the given radius. Candidates are drawn from the enclosing
// square and rejected until one falls inside the unit disk.
func RandomPointInRadius(rng Rand, radius float64) (x, y float64) {
	for {
		x = rng.Float64()*2 - 1
		y = rng.Float64()*2 - 1
		if x*x+y*y <= 1 {
			return x * radius, y * radius
		}
	}
}
