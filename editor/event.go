package editor

// EventKind identifies an editing event.
type EventKind int

const (
	EventNone EventKind = iota
	EventInsert
	EventEnter
	EventBackspace
	EventDelete
	EventMove
	EventReload
	EventSave
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventInsert:
		return "insert"
	case EventEnter:
		return "enter"
	case EventBackspace:
		return "backspace"
	case EventDelete:
		return "delete"
	case EventMove:
		return "move"
	case EventReload:
		return "reload"
	case EventSave:
		return "save"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is one input already decoded from the terminal.
type Event struct {
	Kind EventKind

	// Char is the byte to insert for EventInsert.
	Char byte
	// Intent is the navigation request for EventMove.
	Intent Intent
}

func Insert(c byte) Event  { return Event{Kind: EventInsert, Char: c} }
func Move(in Intent) Event { return Event{Kind: EventMove, Intent: in} }

// IsPrintable reports whether c is inserted by EventInsert. Columns are byte
// offsets, so only printable ASCII is accepted.
func IsPrintable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
