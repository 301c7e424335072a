package game

import "time"

//go:generate go run golang.org/x/tools/cmd/stringer -type=EventType -trimprefix=Event

// EventType identifies what happened during a frame.
type EventType int

const (
	EventSpawned EventType = iota
	EventPlaced
	EventRowsCleared
	EventWarningArmed
	EventWarningCleared
	EventEnded
)

// Event is a notification produced by a system while a frame runs.
type Event struct {
	Type EventType
	// At is the session elapsed time when the event was emitted.
	At time.Duration

	Piece     *Piece
	Placement Placement
	Rows      int
	Cause     EndCause
	Deadline  time.Time
}

// Events buffers notifications raised during a frame. They are delivered to
// subscribers only after every system has executed, so listeners always see
// the state at the end of the frame.
type Events struct {
	queued []Event
}

func newEvents() *Events {
	return &Events{}
}

// Emit queues an event for delivery at the end of the frame.
func (e *Events) Emit(ev Event) {
	e.queued = append(e.queued, ev)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.queued)
}

// Flush delivers queued events to every listener in emission order and resets the buffer.
func (e *Events) Flush(listeners []func(Event)) {
	for _, ev := range e.queued {
		for _, listener := range listeners {
			listener(ev)
		}
	}
	e.queued = e.queued[:0]
}
