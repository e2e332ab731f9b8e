package motion

// EventType classifies traversal notifications
type EventType uint8

const (
	// EventTableBuilt fires whenever the arc-length table is (re)built
	EventTableBuilt EventType = iota + 1
	// EventSegmentAdvanced fires when the runner moves onto the next segment
	EventSegmentAdvanced
	// EventPlaybackFinished fires after the last segment completes
	EventPlaybackFinished
)

func (e EventType) String() string {
	switch e {
	case EventTableBuilt:
		return "table-built"
	case EventSegmentAdvanced:
		return "segment-advanced"
	case EventPlaybackFinished:
		return "playback-finished"
	}
	return "unknown"
}

// Event carries the active segment after the transition and the one just completed
// Length is the arc length of the built segment for EventTableBuilt, else of the completed one
type Event struct {
	Type      EventType
	Segment   int
	Completed int
	Length    float64
}

// Listener receives traversal events synchronously on the tick goroutine
type Listener interface {
	OnTraversalEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnTraversalEvent(ev Event) { f(ev) }
