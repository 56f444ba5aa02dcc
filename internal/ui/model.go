// Package ui is the full-screen Bubble Tea front end of the game. It drives
// the same navigator.Session as the line-mode loop, one key press per choice.
package ui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/blackwood/internal/mansion"
	"github.com/oakwood-commons/blackwood/internal/navigator"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// entry is one rendered event in the log.
type entry struct {
	kind  navigator.EventKind
	retry bool
	lines []string
}

// Model is the Bubble Tea model of the explore screen.
type Model struct {
	Title   string
	Intro   string
	NoColor bool

	session  *navigator.Session
	messages navigator.Messages
	keys     KeyMap
	help     help.Model
	theme    Theme
	styles   styles
	log      logr.Logger

	entries []entry
	width   int
	height  int
}

// Option configures a Model.
type Option func(*Model)

// WithMessages sets the text catalog. Empty entries fall back to
// navigator.DefaultMessages.
func WithMessages(m navigator.Messages) Option {
	return func(mod *Model) {
		mod.messages = m.WithFallback(navigator.DefaultMessages())
	}
}

// WithNoColor disables colors.
func WithNoColor(noColor bool) Option {
	return func(mod *Model) { mod.NoColor = noColor }
}

// WithTheme overrides the default palette.
func WithTheme(t Theme) Option {
	return func(mod *Model) { mod.theme = t }
}

// WithLogger sets the logger used for exploration events.
func WithLogger(l logr.Logger) Option {
	return func(mod *Model) { mod.log = l }
}

// NewModel creates the explore screen for root. The session starts right
// away so the first room is visible before any key is pressed.
func NewModel(root *mansion.Room, opts ...Option) *Model {
	m := &Model{
		session:  navigator.NewSession(root),
		messages: navigator.DefaultMessages(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		log:      logr.Discard(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.Title == "" {
		m.Title = m.messages.Title
	}
	if m.Intro == "" {
		m.Intro = m.messages.Intro
	}
	m.styles = newStyles(m.theme, m.NoColor)
	if m.NoColor {
		m.help.Styles = help.Styles{}
	}
	m.record(m.session.Start())
	return m
}

// Session exposes the underlying session, e.g. to read the outcome after
// the program exits.
func (m *Model) Session() *navigator.Session {
	return m.session
}

// Result summarises the session.
func (m *Model) Result() navigator.Result {
	return navigator.Result{
		Outcome: m.session.Outcome(),
		Path:    m.session.Path(),
		Inputs:  m.session.Inputs(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Once the story is over any key closes the screen.
	if m.session.Done() {
		return m, tea.Quit
	}
	if msg.String() == "ctrl+c" {
		m.record(m.session.Quit())
		return m, tea.Quit
	}
	c := m.keys.choiceFor(msg)
	m.log.V(1).Info("choice read", "key", msg.String(), "room", m.session.Current().String())
	m.record(m.session.Choose(c))
	return m, nil
}

// record renders events into the log.
func (m *Model) record(events []navigator.Event) {
	for _, ev := range events {
		if ev.Kind != navigator.EventPrompt {
			m.log.V(1).Info("exploration event", "event", ev.Kind.String(), "room", ev.Room)
		}
		lines := m.messages.Render(ev)
		if len(lines) == 0 {
			continue
		}
		m.entries = append(m.entries, entry{kind: ev.Kind, retry: ev.Retry, lines: lines})
	}
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the screen as a string.
func (m *Model) Render() string {
	inner := max(m.width-2, 10)

	header := m.styles.title.Render(truncate(m.Title, inner))
	intro := truncate(m.Intro, inner)
	footer := m.footer(inner)

	// header, intro, footer and the two frame borders
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-3, 1)
	body := m.styles.frame.Render(strings.Join(m.visibleLines(inner-2, bodyHeight), "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, intro, body, footer)
}

func (m *Model) footer(width int) string {
	if m.session.Done() {
		return truncate("press any key to leave", width)
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// visibleLines renders the log and keeps the newest lines that fit.
func (m *Model) visibleLines(width, height int) []string {
	var out []string
	for i, e := range m.entries {
		if i > 0 && startsBeat(e) {
			out = append(out, "")
		}
		style := m.styles.forKind(e.kind)
		if e.kind == navigator.EventLeaf {
			banner := make([]string, len(e.lines))
			for j, line := range e.lines {
				banner[j] = truncate(line, width-4)
			}
			out = append(out, strings.Split(style.Render(strings.Join(banner, "\n")), "\n")...)
			continue
		}
		for _, line := range e.lines {
			out = append(out, style.Render(truncate(line, width)))
		}
	}
	if len(out) > height {
		out = out[len(out)-height:]
	}
	return out
}

func startsBeat(e entry) bool {
	switch e.kind {
	case navigator.EventPrompt:
		return e.retry
	case navigator.EventLeaf:
		return false
	default:
		return true
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
