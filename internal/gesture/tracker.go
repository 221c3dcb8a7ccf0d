// Package gesture forwards viewport-wide pointer moves and releases to the
// callbacks of the gesture currently being dragged.
package gesture

import (
	"log"

	"github.com/google/uuid"
)

type listener struct {
	id int
	fn func(Event)
}

// signal is a list of subscribers to one kind of pointer event.
type signal struct {
	next      int
	listeners []listener
}

func (s *signal) add(fn func(Event)) int {
	s.next++
	s.listeners = append(s.listeners, listener{id: s.next, fn: fn})
	return s.next
}

func (s *signal) remove(id int) {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *signal) has(id int) bool {
	for _, l := range s.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// emit calls every listener subscribed when emit started and still
// subscribed when its turn comes.
func (s *signal) emit(ev Event) {
	snapshot := append([]listener(nil), s.listeners...)
	for _, l := range snapshot {
		if s.has(l.id) {
			l.fn(ev)
		}
	}
}

// Tracker owns the viewport-scoped move and release signals. The host
// feeds it every pointer move and release it sees, anywhere in the
// window; Track subscribes a gesture's callbacks to them until release.
//
// A Tracker is used from the UI goroutine only.
type Tracker struct {
	// Debug enables a log line at the start and end of every gesture. Each
	// gesture then gets a random id so the two lines can be matched.
	Debug bool

	moves    signal
	releases signal
	active   int
}

// NewTracker returns a tracker with no subscribers.
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnMove subscribes fn to every pointer move. The returned func removes it.
func (t *Tracker) OnMove(fn func(Event)) (cancel func()) {
	id := t.moves.add(fn)
	return func() { t.moves.remove(id) }
}

// OnRelease subscribes fn to every pointer release. The returned func
// removes it.
func (t *Tracker) OnRelease(fn func(Event)) (cancel func()) {
	id := t.releases.add(fn)
	return func() { t.releases.remove(id) }
}

// Move delivers a pointer move to the current subscribers.
func (t *Tracker) Move(ev Event) {
	t.moves.emit(ev)
}

// Release delivers a pointer release to the current subscribers.
func (t *Tracker) Release(ev Event) {
	t.releases.emit(ev)
}

// Cancel ends the gesture in flight as if the pointer had been released
// at ev, for terminations the host detects itself (focus loss, window
// close).
func (t *Tracker) Cancel(ev Event) {
	t.Release(ev)
}

// Active reports whether a gesture is being tracked.
func (t *Tracker) Active() bool {
	return t.active > 0
}

// Track subscribes onMove to pointer moves and an end handler to pointer
// releases. On the first release both subscriptions are removed before
// onEnd (which may be nil) runs, so onEnd runs once and no move reaches
// onMove afterwards. A panic inside onMove ends the gesture the same way
// before it propagates, so tools still get to restore the paint state.
func (t *Tracker) Track(onMove MoveFunc, onEnd EndFunc) {
	name := "gesture"
	if t.Debug {
		name += " " + uuid.NewString()
	}
	var moveID, endID int
	done := false

	end := func(ev Event) {
		if done {
			return
		}
		done = true
		t.moves.remove(moveID)
		t.releases.remove(endID)
		t.active--
		if t.Debug {
			log.Printf("[GESTURE] %s ended at (%.0f, %.0f)", name, ev.X, ev.Y)
		}
		if onEnd != nil {
			onEnd(ev)
		}
	}

	moveID = t.moves.add(func(ev Event) {
		if onMove == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[GESTURE] %s aborted: %v", name, r)
				end(ev)
				panic(r)
			}
		}()
		onMove(ev)
	})
	endID = t.releases.add(end)
	t.active++

	if t.Debug {
		log.Printf("[GESTURE] %s started", name)
	}
}
