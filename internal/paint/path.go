package paint

import (
	"math"

	"github.com/srwiley/rasterx"
)

type point struct{ x, y float64 }

type subpath struct {
	pts    []point
	closed bool
}

type circle struct{ x, y, r float64 }

// Path is a set of sub-paths built with MoveTo/LineTo/Arc, in surface
// coordinates. A zero Path is empty and ready to use.
type Path struct {
	subs    []subpath
	circles []circle
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, subpath{pts: []point{{x, y}}})
}

// LineTo extends the current sub-path. Without a current sub-path it
// behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := &p.subs[len(p.subs)-1]
	last.pts = append(last.pts, point{x, y})
}

// Close marks the current sub-path as closed.
func (p *Path) Close() {
	if len(p.subs) > 0 {
		p.subs[len(p.subs)-1].closed = true
	}
}

// Arc adds a full circle of radius r centred on (x, y).
func (p *Path) Arc(x, y, r float64) {
	if r <= 0 {
		return
	}
	p.circles = append(p.circles, circle{x, y, r})
}

// Empty reports whether the path has nothing to draw.
func (p *Path) Empty() bool {
	return len(p.subs) == 0 && len(p.circles) == 0
}

// bounds returns the bounding box of every point and circle in the path.
func (p *Path) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
		ok = true
	}
	for _, s := range p.subs {
		for _, pt := range s.pts {
			grow(pt.x, pt.y, pt.x, pt.y)
		}
	}
	for _, c := range p.circles {
		grow(c.x-c.r, c.y-c.r, c.x+c.r, c.y+c.r)
	}
	return minX, minY, maxX, maxY, ok
}

// degenerate reports whether every point of the sub-path coincides.
func (s subpath) degenerate() bool {
	for _, pt := range s.pts[1:] {
		if pt != s.pts[0] {
			return false
		}
	}
	return true
}

// addTo replays the path into a rasterx adder. Degenerate sub-paths are
// skipped; close forces every sub-path closed, as filling does.
func (p *Path) addTo(a rasterx.Adder, close bool) {
	for _, s := range p.subs {
		if len(s.pts) < 2 || s.degenerate() {
			continue
		}
		a.Start(rasterx.ToFixedP(s.pts[0].x, s.pts[0].y))
		for _, pt := range s.pts[1:] {
			a.Line(rasterx.ToFixedP(pt.x, pt.y))
		}
		a.Stop(close || s.closed)
	}
	for _, c := range p.circles {
		rasterx.AddCircle(c.x, c.y, c.r, a)
	}
}

// dots returns a path holding the cap shape of every zero-length sub-path,
// so a stroke that never moved still marks the surface.
func (p *Path) dots(width float64, c Cap) *Path {
	var out Path
	half := width / 2
	for _, s := range p.subs {
		if len(s.pts) == 0 || !s.degenerate() {
			continue
		}
		pt := s.pts[0]
		switch c {
		case RoundCap:
			out.Arc(pt.x, pt.y, half)
		case SquareCap:
			out.MoveTo(pt.x-half, pt.y-half)
			out.LineTo(pt.x+half, pt.y-half)
			out.LineTo(pt.x+half, pt.y+half)
			out.LineTo(pt.x-half, pt.y+half)
			out.Close()
		}
	}
	return &out
}
