package navigator

import "github.com/oakwood-commons/blackwood/internal/mansion"

// Session is the exploration state machine. It holds no I/O: callers feed it
// choices and render the events it returns. The tree is never modified.
//
// A Session is not safe for concurrent use.
type Session struct {
	current *mansion.Room
	state   State
	outcome Outcome
	started bool
	path    []string
	inputs  int
}

// NewSession returns a session positioned at root. Call Start before Choose.
func NewSession(root *mansion.Room) *Session {
	return &Session{current: root, state: StateExploring}
}

// Start enters the root room. Calling it more than once is a no-op.
func (s *Session) Start() []Event {
	if s.started {
		return nil
	}
	s.started = true
	return s.enter()
}

// Choose applies one player input. Rejected choices (blocked or invalid)
// leave the current room unchanged and re-prompt. It returns nil once the
// session is done.
func (s *Session) Choose(r rune) []Event {
	var events []Event
	if !s.started {
		events = s.Start()
	}
	if s.Done() {
		return events
	}
	s.inputs++

	switch ParseChoice(r) {
	case ChoiceLeft:
		return append(events, s.move(Left, s.current.Left)...)
	case ChoiceRight:
		return append(events, s.move(Right, s.current.Right)...)
	case ChoiceQuit:
		return append(events, s.quit()...)
	default:
		return append(events,
			Event{Kind: EventInvalid, Room: s.current.Name},
			Event{Kind: EventPrompt, Room: s.current.Name, Retry: true},
		)
	}
}

// Quit ends the session as if the player had chosen to quit, without
// counting an input. Used when the input source is exhausted.
func (s *Session) Quit() []Event {
	if !s.started {
		s.started = true
	}
	if s.Done() {
		return nil
	}
	if s.current == nil {
		return s.abort()
	}
	return s.quit()
}

func (s *Session) enter() []Event {
	if s.current == nil {
		return s.abort()
	}
	s.path = append(s.path, s.current.Name)
	events := []Event{{Kind: EventRoom, Room: s.current.Name}}
	if s.current.IsLeaf() {
		s.state = StateAtLeaf
		events = append(events, Event{Kind: EventLeaf, Room: s.current.Name})
		s.finish(OutcomeLeaf)
		return events
	}
	return append(events, Event{Kind: EventPrompt, Room: s.current.Name})
}

func (s *Session) move(dir Direction, next *mansion.Room) []Event {
	if next == nil {
		return []Event{
			{Kind: EventBlocked, Room: s.current.Name, Direction: dir},
			{Kind: EventPrompt, Room: s.current.Name, Retry: true},
		}
	}
	s.current = next
	return s.enter()
}

func (s *Session) quit() []Event {
	s.state = StateQuit
	ev := Event{Kind: EventQuit, Room: s.current.Name}
	s.finish(OutcomeQuit)
	return []Event{ev}
}

func (s *Session) abort() []Event {
	s.finish(OutcomeAborted)
	return []Event{{Kind: EventUnexpectedEnd}}
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.state = StateDone
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Current returns the room the player is in. It is nil only for a nil root.
func (s *Session) Current() *mansion.Room { return s.current }

// Done reports whether the session reached its terminal state.
func (s *Session) Done() bool { return s.state == StateDone }

// Outcome reports how the session ended, or OutcomeNone while it runs.
func (s *Session) Outcome() Outcome { return s.outcome }

// Inputs returns the number of choices consumed.
func (s *Session) Inputs() int { return s.inputs }

// Path returns the names of the rooms entered, root first.
func (s *Session) Path() []string {
	return append([]string(nil), s.path...)
}
