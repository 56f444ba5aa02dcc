// Package navigator drives a player through the mansion map: from the root
// it prompts for a direction, moves to the chosen child, retries in place on
// blocked or invalid choices, and stops at a leaf or on quit.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oakwood-commons/blackwood/internal/mansion"
	"github.com/oakwood-commons/blackwood/pkg/logger"
)

// ChoiceReader supplies one player choice per call, blocking until one is
// available. io.EOF means no more input will arrive.
type ChoiceReader interface {
	ReadChoice(ctx context.Context) (rune, error)
}

// Display shows one piece of text to the player.
type Display interface {
	Display(text string)
}

// EventDisplay is implemented by displays that style text by event. It
// receives all lines rendered for one event at once. Navigator prefers it
// over Display when available.
type EventDisplay interface {
	Display
	DisplayEvent(ev Event, lines []string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

// Display calls f(text).
func (f DisplayFunc) Display(text string) { f(text) }

// Result summarises a finished run.
type Result struct {
	Outcome Outcome
	Path    []string
	Inputs  int
}

// Navigator runs the blocking explore loop over a ChoiceReader and a Display.
type Navigator struct {
	reader   ChoiceReader
	display  Display
	messages Messages
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMessages overrides the text catalog. Empty entries fall back to
// DefaultMessages.
func WithMessages(m Messages) Option {
	return func(n *Navigator) {
		n.messages = m.WithFallback(DefaultMessages())
	}
}

// New creates a Navigator.
func New(reader ChoiceReader, display Display, opts ...Option) *Navigator {
	n := &Navigator{
		reader:   reader,
		display:  display,
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run explores the tree from root until a leaf is reached or the player
// quits, and returns only then. Blocked and invalid choices are reported and
// retried in place; they never surface as errors. A nil root ends the run
// immediately with an unexpected-end message.
//
// The only error returned is a read failure other than io.EOF. An exhausted
// reader is treated as a quit.
func (n *Navigator) Run(ctx context.Context, root *mansion.Room) (Result, error) {
	lgr := logger.FromContext(ctx)
	s := NewSession(root)
	n.emit(ctx, s.Start())

	for !s.Done() {
		c, err := n.reader.ReadChoice(ctx)
		if errors.Is(err, io.EOF) {
			lgr.V(1).Info("input exhausted, quitting", "room", s.Current().String())
			n.emit(ctx, s.Quit())
			break
		}
		if err != nil {
			lgr.Error(err, "reading choice failed", "room", s.Current().String())
			return resultOf(s), fmt.Errorf("read choice: %w", err)
		}
		lgr.V(1).Info("choice read", "choice", string(c), "room", s.Current().String())
		n.emit(ctx, s.Choose(c))
	}

	res := resultOf(s)
	lgr.V(1).Info("exploration finished", "outcome", string(res.Outcome), "inputs", res.Inputs, "depth", len(res.Path))
	return res, nil
}

func resultOf(s *Session) Result {
	return Result{Outcome: s.Outcome(), Path: s.Path(), Inputs: s.Inputs()}
}

func (n *Navigator) emit(ctx context.Context, events []Event) {
	lgr := logger.FromContext(ctx)
	ed, styled := n.display.(EventDisplay)
	for _, ev := range events {
		if ev.Kind != EventPrompt {
			lgr.V(1).Info("exploration event", "event", ev.Kind.String(), "room", ev.Room)
		}
		lines := n.messages.Render(ev)
		if styled {
			ed.DisplayEvent(ev, lines)
			continue
		}
		for _, line := range lines {
			n.display.Display(line)
		}
	}
}
