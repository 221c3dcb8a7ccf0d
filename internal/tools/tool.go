// Package tools holds the drawing tools of the paint program and the
// registry that dispatches a surface press to the selected one.
//
// A tool runs once, synchronously, on the press that starts a gesture.
// Tools that follow the pointer register move and end callbacks with the
// gesture.Tracker; any per-gesture state lives in the closure created at
// press time.
package tools

import (
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
)

// DefaultSprayInterval is how often the spray tool paints while held.
const DefaultSprayInterval = 25 * time.Millisecond

// Tool handles the press event of a gesture. onEnd, when not nil, is run
// once the gesture ends, after the tool's own end handling.
type Tool func(ev gesture.Event, cx *Context, onEnd gesture.EndFunc)

// Scheduler runs fn every d until the returned stop func is called. No
// call of fn may start after stop returns.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// Overlay is a live preview shape drawn above the surface, positioned in
// viewport coordinates.
type Overlay interface {
	Place(r image.Rectangle)
	Remove()
}

// Overlays creates preview overlays.
type Overlays interface {
	NewOverlay(fill color.Color) Overlay
}

// Prompter asks the user for a line of text and hands the answer to fn.
// A cancelled prompt answers "".
type Prompter interface {
	Prompt(label, initial string, fn func(string))
}

// Rand is the source of uniform values in [0, 1) used by the tools.
type Rand interface {
	Float64() float64
}

// Context is everything a tool may touch: the surface with its paint
// state, the drag tracker and the host services.
type Context struct {
	Canvas  *paint.Canvas
	Tracker *gesture.Tracker
	// Origin returns the viewport position of the surface's top-left
	// corner. Nil means the surface sits at the viewport origin.
	Origin    func() image.Point
	Scheduler Scheduler
	Overlays  Overlays
	Prompter  Prompter
	Rand      Rand
	// SprayInterval overrides DefaultSprayInterval when positive.
	SprayInterval time.Duration
}

// Pos returns the surface-relative position of ev.
func (cx *Context) Pos(ev gesture.Event) image.Point {
	var origin image.Point
	if cx.Origin != nil {
		origin = cx.Origin()
	}
	return gesture.Relative(ev, origin)
}

func (cx *Context) random() float64 {
	if cx.Rand == nil {
		return rand.Float64()
	}
	return cx.Rand.Float64()
}

func (cx *Context) sprayInterval() time.Duration {
	if cx.SprayInterval > 0 {
		return cx.SprayInterval
	}
	return DefaultSprayInterval
}

// every schedules fn on the host's timer. Without a scheduler nothing
// repeats and stop does nothing.
func (cx *Context) every(d time.Duration, fn func()) (stop func()) {
	if cx.Scheduler == nil {
		return func() {}
	}
	return cx.Scheduler.Every(d, fn)
}

func (cx *Context) overlay(fill color.Color) Overlay {
	if cx.Overlays == nil {
		return noOverlay{}
	}
	return cx.Overlays.NewOverlay(fill)
}

type noOverlay struct{}

func (noOverlay) Place(image.Rectangle) {}
func (noOverlay) Remove()               {}

// WithEnd derives a tool from base whose gestures end with end, followed
// by whatever end handler the caller of the derived tool passes.
func WithEnd(base Tool, end gesture.EndFunc) Tool {
	return func(ev gesture.Event, cx *Context, onEnd gesture.EndFunc) {
		base(ev, cx, func(ev gesture.Event) {
			if end != nil {
				end(ev)
			}
			if onEnd != nil {
				onEnd(ev)
			}
		})
	}
}

// restoring returns an end handler that runs restore and then onEnd.
func restoring(restore func(), onEnd gesture.EndFunc) gesture.EndFunc {
	return func(ev gesture.Event) {
		restore()
		if onEnd != nil {
			onEnd(ev)
		}
	}
}

// Registry maps tool names to tools.
type Registry struct {
	tools map[Name]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[Name]Tool)}
}

// Default returns a registry holding every built-in tool.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Line, line)
	r.Register(Erase, erase)
	r.Register(Text, text)
	r.Register(Spray, spray)
	r.Register(Rectangle, rectangle)
	r.Register(Bubbles, bubbles)
	r.Register(Blobs, blobs)
	r.Register(BrokenLine, brokenLine)
	r.Register(Radiate, radiate)
	r.Register(RainbowLine, rainbowLine)
	r.Register(Icicles, icicles)
	r.Register(Jagged, jagged)
	return r
}

// Register adds or replaces the tool for n.
func (r *Registry) Register(n Name, t Tool) {
	r.tools[n] = t
}

// Lookup returns the tool registered for n.
func (r *Registry) Lookup(n Name) (Tool, bool) {
	t, ok := r.tools[n]
	return t, ok
}

// Dispatch runs the tool named n for a press on the surface. Only the
// primary button starts a gesture. It reports whether the press was
// consumed; a consumed press must not reach any other handler.
func (r *Registry) Dispatch(n Name, ev gesture.Event, cx *Context) bool {
	if ev.Button != gesture.ButtonPrimary {
		return false
	}
	t, ok := r.Lookup(n)
	if !ok {
		log.Printf("[TOOLS] no tool registered for %q", n)
		return false
	}
	t(ev, cx, nil)
	return true
}
