package navigator

import "unicode"

// State is a step of the exploration state machine.
type State int

const (
	// StateExploring means the player stands in a room with at least one exit.
	StateExploring State = iota
	// StateAtLeaf means the player reached a room with no exits.
	StateAtLeaf
	// StateQuit means the player asked to stop.
	StateQuit
	// StateDone is terminal.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateExploring:
		return "exploring"
	case StateAtLeaf:
		return "at_leaf"
	case StateQuit:
		return "quit"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome records how a finished session ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeLeaf    Outcome = "leaf"
	OutcomeQuit    Outcome = "quit"
	OutcomeAborted Outcome = "aborted"
)

// Direction is one of the two ways out of a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Choice is a normalized player input.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceLeft
	ChoiceRight
	ChoiceQuit
)

// Choice keys: e(squerda), d(ireita), s(air).
const (
	KeyLeft  = 'e'
	KeyRight = 'd'
	KeyQuit  = 's'
)

// ParseChoice maps an input rune to a Choice, ignoring case.
func ParseChoice(r rune) Choice {
	switch unicode.ToLower(r) {
	case KeyLeft:
		return ChoiceLeft
	case KeyRight:
		return ChoiceRight
	case KeyQuit:
		return ChoiceQuit
	default:
		return ChoiceInvalid
	}
}

// EventKind classifies what the session reports to the player.
type EventKind int

const (
	EventRoom EventKind = iota
	EventLeaf
	EventPrompt
	EventBlocked
	EventInvalid
	EventQuit
	EventUnexpectedEnd
)

func (k EventKind) String() string {
	switch k {
	case EventRoom:
		return "room"
	case EventLeaf:
		return "leaf"
	case EventPrompt:
		return "prompt"
	case EventBlocked:
		return "blocked"
	case EventInvalid:
		return "invalid"
	case EventQuit:
		return "quit"
	case EventUnexpectedEnd:
		return "unexpected_end"
	default:
		return "unknown"
	}
}

// Event is one thing the player should be told.
type Event struct {
	Kind EventKind
	// Room is the name of the current room, empty for EventUnexpectedEnd.
	Room string
	// Direction is set for EventBlocked.
	Direction Direction
	// Retry marks a prompt repeated in the same room after a rejected choice.
	Retry bool
}
