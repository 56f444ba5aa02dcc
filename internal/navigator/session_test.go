package navigator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   rune
		want Choice
	}{
		{'e', ChoiceLeft},
		{'E', ChoiceLeft},
		{'d', ChoiceRight},
		{'D', ChoiceRight},
		{'s', ChoiceQuit},
		{'S', ChoiceQuit},
		{'x', ChoiceInvalid},
		{' ', ChoiceInvalid},
		{'\n', ChoiceInvalid},
		{'1', ChoiceInvalid},
		{'é', ChoiceInvalid},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChoice(tt.in))
		})
	}
}

func TestSessionLeafRootNeverPrompts(t *testing.T) {
	s := NewSession(mansion.NewRoom("solo"))
	events := s.Start()

	assert.Equal(t, []EventKind{EventRoom, EventLeaf}, kinds(events))
	assert.True(t, s.Done())
	assert.Equal(t, OutcomeLeaf, s.Outcome())
	assert.Equal(t, 0, s.Inputs())
	assert.Nil(t, s.Choose('e'), "a finished session ignores further input")
	assert.Equal(t, 0, s.Inputs())
}

func TestSessionStartIsIdempotent(t *testing.T) {
	s := NewSession(mansion.Blackwood())
	require.NotEmpty(t, s.Start())
	assert.Nil(t, s.Start())
	assert.Equal(t, []string{mansion.Hall}, s.Path())
}

func TestSessionChooseWithoutStartEntersRoot(t *testing.T) {
	s := NewSession(mansion.Blackwood())
	events := s.Choose('e')
	assert.Equal(t, []EventKind{EventRoom, EventPrompt, EventRoom, EventPrompt}, kinds(events))
	assert.Equal(t, mansion.LivingRoom, s.Current().Name)
}

func TestSessionMovesDown(t *testing.T) {
	s := NewSession(mansion.Blackwood())
	s.Start()

	events := s.Choose('d')
	assert.Equal(t, []EventKind{EventRoom, EventPrompt}, kinds(events))
	assert.Equal(t, mansion.Kitchen, s.Current().Name)
	assert.False(t, events[1].Retry)

	s.Choose('D')
	assert.Equal(t, mansion.MasterBedroom, s.Current().Name)

	events = s.Choose('E')
	assert.Equal(t, []EventKind{EventRoom, EventLeaf}, kinds(events))
	assert.Equal(t, mansion.LuxuryBathroom, events[1].Room)
	assert.True(t, s.Done())
	assert.Equal(t, OutcomeLeaf, s.Outcome())
	assert.Equal(t, []string{mansion.Hall, mansion.Kitchen, mansion.MasterBedroom, mansion.LuxuryBathroom}, s.Path())
	assert.Equal(t, 3, s.Inputs())
}

func TestSessionBlockedAndInvalidRetryInPlace(t *testing.T) {
	s := NewSession(mansion.Blackwood())
	s.Start()
	s.Choose('e') // Sala de Estar
	s.Choose('e') // Biblioteca: only a left exit
	require.Equal(t, mansion.Library, s.Current().Name)

	for i := 0; i < 25; i++ {
		events := s.Choose('d')
		require.Equal(t, []EventKind{EventBlocked, EventPrompt}, kinds(events))
		assert.Equal(t, Right, events[0].Direction)
		assert.True(t, events[1].Retry)
		assert.Equal(t, mansion.Library, s.Current().Name)

		events = s.Choose('?')
		require.Equal(t, []EventKind{EventInvalid, EventPrompt}, kinds(events))
		assert.Equal(t, mansion.Library, events[0].Room)
		assert.Equal(t, StateExploring, s.State())
	}

	s.Choose('e')
	assert.Equal(t, mansion.SecretStudy, s.Current().Name)
	assert.Equal(t, OutcomeLeaf, s.Outcome())
	assert.Equal(t, []string{mansion.Hall, mansion.LivingRoom, mansion.Library, mansion.SecretStudy}, s.Path())
	assert.Equal(t, 53, s.Inputs())
}

func TestSessionQuitAfterInvalidAttempts(t *testing.T) {
	for _, key := range []rune{'s', 'S'} {
		t.Run(string(key), func(t *testing.T) {
			s := NewSession(mansion.Blackwood())
			s.Start()
			s.Choose('z')
			s.Choose('q')
			events := s.Choose(key)
			assert.Equal(t, []EventKind{EventQuit}, kinds(events))
			assert.Equal(t, mansion.Hall, events[0].Room)
			assert.True(t, s.Done())
			assert.Equal(t, OutcomeQuit, s.Outcome())
			assert.Equal(t, 3, s.Inputs())
		})
	}
}

func TestSessionQuitDoesNotCountInput(t *testing.T) {
	s := NewSession(mansion.Blackwood())
	s.Start()
	events := s.Quit()
	assert.Equal(t, []EventKind{EventQuit}, kinds(events))
	assert.Equal(t, 0, s.Inputs())
	assert.Nil(t, s.Quit())
}

func TestSessionNilRootAborts(t *testing.T) {
	s := NewSession(nil)
	events := s.Start()
	assert.Equal(t, []EventKind{EventUnexpectedEnd}, kinds(events))
	assert.True(t, s.Done())
	assert.Equal(t, OutcomeAborted, s.Outcome())
	assert.Empty(t, s.Path())
	assert.Nil(t, s.Choose('e'))

	q := NewSession(nil)
	assert.Equal(t, []EventKind{EventUnexpectedEnd}, kinds(q.Quit()))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "exploring", StateExploring.String())
	assert.Equal(t, "at_leaf", StateAtLeaf.String())
	assert.Equal(t, "quit", StateQuit.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "blocked", EventBlocked.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}

// randomTree builds a tree of up to size rooms named n0, n1, ... and
// returns it with a name index.
func randomTree(rng *rand.Rand, size int) (*mansion.Room, map[string]*mansion.Room) {
	index := make(map[string]*mansion.Room)
	next := 0
	var build func(budget int) *mansion.Room
	build = func(budget int) *mansion.Room {
		r := mansion.NewRoom(fmt.Sprintf("n%d", next))
		index[r.Name] = r
		next++
		budget--
		if budget <= 0 {
			return r
		}
		leftBudget := rng.Intn(budget + 1)
		if leftBudget > 0 && rng.Intn(4) > 0 {
			r.Left = build(leftBudget)
		}
		if rest := budget - leftBudget; rest > 0 && rng.Intn(4) > 0 {
			r.Right = build(rest)
		}
		return r
	}
	return build(size), index
}

func TestSessionPathIsSingleDownwardPath(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune{'e', 'E', 'd', 'D', 'x', ' ', 's'}

	for trial := 0; trial < 200; trial++ {
		root, index := randomTree(rng, 1+rng.Intn(30))
		require.NoError(t, mansion.Validate(root))
		s := NewSession(root)
		s.Start()

		for steps := 0; !s.Done(); steps++ {
			require.Less(t, steps, 10_000, "session did not terminate")
			c := alphabet[rng.Intn(len(alphabet))]
			if steps > 100 {
				c = 's'
			}
			before := s.Current()
			events := s.Choose(c)
			switch ParseChoice(c) {
			case ChoiceInvalid:
				assert.Same(t, before, s.Current())
			case ChoiceLeft:
				if before.Left == nil {
					assert.Same(t, before, s.Current())
				} else {
					assert.Same(t, before.Left, s.Current())
				}
			case ChoiceRight:
				if before.Right == nil {
					assert.Same(t, before, s.Current())
				} else {
					assert.Same(t, before.Right, s.Current())
				}
			case ChoiceQuit:
				assert.Equal(t, []EventKind{EventQuit}, kinds(events))
			}
		}

		path := s.Path()
		require.NotEmpty(t, path)
		assert.Equal(t, root.Name, path[0])
		for i := 1; i < len(path); i++ {
			parent := index[path[i-1]]
			child := index[path[i]]
			assert.True(t, parent.Left == child || parent.Right == child,
				"%s is not a child of %s", path[i], path[i-1])
		}
		if s.Outcome() == OutcomeLeaf {
			assert.True(t, index[path[len(path)-1]].IsLeaf())
		}
	}
}
