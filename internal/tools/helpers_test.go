package tools

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
)

var origin = image.Pt(100, 50)

type task struct {
	every   time.Duration
	fn      func()
	stopped bool
}

type fakeScheduler struct {
	tasks []*task
}

func (s *fakeScheduler) Every(d time.Duration, fn func()) func() {
	t := &task{every: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.stopped = true }
}

func (s *fakeScheduler) tick() {
	for _, t := range s.tasks {
		if !t.stopped {
			t.fn()
		}
	}
}

func (s *fakeScheduler) running() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeOverlay struct {
	fill    color.Color
	placed  []image.Rectangle
	removed bool
}

func (o *fakeOverlay) Place(r image.Rectangle) { o.placed = append(o.placed, r) }
func (o *fakeOverlay) Remove()                 { o.removed = true }

type fakeOverlays struct {
	created []*fakeOverlay
}

func (f *fakeOverlays) NewOverlay(fill color.Color) Overlay {
	o := &fakeOverlay{fill: fill}
	f.created = append(f.created, o)
	return o
}

type fakePrompter struct {
	answer string
	labels []string
}

func (p *fakePrompter) Prompt(label, _ string, fn func(string)) {
	p.labels = append(p.labels, label)
	fn(p.answer)
}

type harness struct {
	t        *testing.T
	cx       *Context
	registry *Registry
	sched    *fakeScheduler
	overlays *fakeOverlays
	prompts  *fakePrompter
}

func newHarness(t *testing.T, w, h int) *harness {
	sched := &fakeScheduler{}
	overlays := &fakeOverlays{}
	prompts := &fakePrompter{}
	return &harness{
		t: t,
		cx: &Context{
			Canvas:    paint.New(w, h),
			Tracker:   gesture.NewTracker(),
			Origin:    func() image.Point { return origin },
			Scheduler: sched,
			Overlays:  overlays,
			Prompter:  prompts,
			Rand:      rand.New(rand.NewPCG(1, 2)),
		},
		registry: Default(),
		sched:    sched,
		overlays: overlays,
		prompts:  prompts,
	}
}

// at converts surface coordinates to a primary-button viewport event.
func at(x, y float64) gesture.Event {
	return gesture.Event{X: x + float64(origin.X), Y: y + float64(origin.Y), Button: gesture.ButtonPrimary}
}

func (h *harness) press(n Name, x, y float64) {
	require.True(h.t, h.registry.Dispatch(n, at(x, y), h.cx))
}

func (h *harness) move(x, y float64) {
	h.cx.Tracker.Move(at(x, y))
}

func (h *harness) release(x, y float64) {
	h.cx.Tracker.Release(at(x, y))
}

func (h *harness) alpha(x, y int) uint8 {
	return h.cx.Canvas.Image().NRGBAAt(x, y).A
}

func (h *harness) painted() []image.Point {
	var out []image.Point
	img := h.cx.Canvas.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}
