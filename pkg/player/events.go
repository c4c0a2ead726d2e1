// ABOUTME: Playback event notifications
// ABOUTME: Fire-and-forget channel delivery to interested listeners
package player

import "log"

// EventType identifies a playback notification.
type EventType int

const (
	// EventReadingHeader fires when header parsing begins.
	EventReadingHeader EventType = iota
	// EventReadyToPlay fires when the stream is decoded far enough to play.
	EventReadyToPlay
	// EventPlayUpdate fires as playback progresses, at most once per
	// written buffer, carrying elapsed whole seconds.
	EventPlayUpdate
	// EventError fires when a steady-state I/O failure was absorbed. The
	// session still winds down through the normal stop path.
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventReadingHeader:
		return "reading-header"
	case EventReadyToPlay:
		return "ready-to-play"
	case EventPlayUpdate:
		return "play-update"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a discrete playback notification.
type Event struct {
	Type    EventType
	Session string // session ID the event belongs to
	Seconds int    // elapsed whole seconds, for EventPlayUpdate
	Err     error  // absorbed failure, for EventError
}

// Events delivers playback notifications to a listener. Delivery is
// fire-and-forget: if the listener falls behind, events are dropped rather
// than blocking the decode thread.
type Events struct {
	ch chan Event
}

// NewEvents creates an event sink with the given buffer depth.
func NewEvents(buffer int) *Events {
	if buffer <= 0 {
		buffer = 16
	}
	return &Events{ch: make(chan Event, buffer)}
}

// Send delivers an event without blocking.
func (e *Events) Send(ev Event) {
	select {
	case e.ch <- ev:
	default:
		log.Printf("Dropped %s event: listener not keeping up", ev.Type)
	}
}

// C returns the channel events are delivered on.
func (e *Events) C() <-chan Event {
	return e.ch
}
