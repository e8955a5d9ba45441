package workout

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventBreakStarted  EventType = "break_started"
	EventBreakFinished EventType = "break_finished"
	EventBreakEnded    EventType = "break_ended"
)

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	State   State
	BreakID string
	At      time.Time
}
