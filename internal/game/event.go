package game

// EventKind identifies a player intent coming from the presentation layer.
type EventKind int

const (
	EventSmashBox EventKind = iota // smash the box at Event.Index
	EventUndo
	EventReset
	EventAddBox
	EventRemoveBox
	EventSpeedUp
	EventSpeedDown
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSmashBox:
		return "SmashBox"
	case EventUndo:
		return "Undo"
	case EventReset:
		return "Reset"
	case EventAddBox:
		return "AddBox"
	case EventRemoveBox:
		return "RemoveBox"
	case EventSpeedUp:
		return "SpeedUp"
	case EventSpeedDown:
		return "SpeedDown"
	default:
		return "Unknown"
	}
}

// Event is one player intent. Index is only meaningful for EventSmashBox.
type Event struct {
	Kind  EventKind
	Index int
}

// SmashBox builds a smash event for the given box.
func SmashBox(index int) Event {
	return Event{Kind: EventSmashBox, Index: index}
}

// Apply dispatches an event to the matching transition and returns the new
// state. Unknown kinds leave the state unchanged.
func Apply(s State, ev Event) State {
	switch ev.Kind {
	case EventSmashBox:
		return s.Smash(ev.Index)
	case EventUndo:
		return s.Undo()
	case EventReset:
		return s.Reset()
	case EventAddBox:
		return s.ChangeBoxCount(1)
	case EventRemoveBox:
		return s.ChangeBoxCount(-1)
	case EventSpeedUp:
		return s.ChangeSpeed(1)
	case EventSpeedDown:
		return s.ChangeSpeed(-1)
	default:
		return s
	}
}
