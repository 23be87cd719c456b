package wheel

import (
	"github.com/renzk/shadingwheel/pkg/geometry"
)

// EventType classifies host input events
type EventType int

const (
	// EventPointer is any event that only carries a pointer position
	// (mouse move, drag, repaint)
	EventPointer EventType = iota
	EventKeyDown
	EventKeyUp
)

// Event is one host input event
type Event struct {
	Type     EventType
	Key      Key
	Position geometry.Vector2
	Control  bool
	Command  bool
}

// Handler processes an event and reports whether the viewport needs a repaint
type Handler func(Event) bool

// Dispatcher fans host events out to subscribed handlers in subscription order
type Dispatcher struct {
	nextID   int
	ids      []int
	handlers map[int]Handler
}

// NewDispatcher creates a dispatcher with no subscribers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]Handler)}
}

// Subscribe registers a handler and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (d *Dispatcher) Subscribe(h Handler) (unsubscribe func()) {
	id := d.nextID
	d.nextID++
	d.ids = append(d.ids, id)
	d.handlers[id] = h

	return func() {
		if _, ok := d.handlers[id]; !ok {
			return
		}
		delete(d.handlers, id)
		for i, v := range d.ids {
			if v == id {
				d.ids = append(d.ids[:i], d.ids[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to every handler and reports whether any of
// them asked for a repaint
func (d *Dispatcher) Dispatch(ev Event) bool {
	repaint := false
	for _, id := range append([]int(nil), d.ids...) {
		if h, ok := d.handlers[id]; ok && h(ev) {
			repaint = true
		}
	}
	return repaint
}

// Len returns the number of subscribed handlers
func (d *Dispatcher) Len() int {
	return len(d.ids)
}
