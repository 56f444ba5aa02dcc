package console

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/blackwood/internal/navigator"
)

// minRuleWidth matches the width of the leaf banner rule in plain output.
const minRuleWidth = 53

// Styles holds the lipgloss styles used per event kind.
type Styles struct {
	Title   lipgloss.Style
	Room    lipgloss.Style
	Prompt  lipgloss.Style
	Warning lipgloss.Style
	Banner  lipgloss.Style
	Quit    lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Room:    lipgloss.NewStyle().Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("76")).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderTop(true).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("76")),
		Quit: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Printer writes game text to a terminal. It implements navigator.Display
// and navigator.EventDisplay.
type Printer struct {
	out     io.Writer
	noColor bool
	styles  Styles
}

// NewPrinter writes to out. With noColor set, text is written without ANSI
// styling and the leaf banner is framed with plain '=' rules.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	return &Printer{out: out, noColor: noColor, styles: DefaultStyles()}
}

// Display writes text as one line.
func (p *Printer) Display(text string) {
	fmt.Fprintln(p.out, text)
}

// Title writes the game title and intro.
func (p *Printer) Title(title, intro string) {
	if p.noColor {
		fmt.Fprintln(p.out, title)
	} else {
		fmt.Fprintln(p.out, p.styles.Title.Render(title))
	}
	fmt.Fprintln(p.out, intro)
}

// DisplayEvent writes the lines of one event with the style for its kind.
// Events that start a new beat of the story are separated by a blank line.
func (p *Printer) DisplayEvent(ev navigator.Event, lines []string) {
	if len(lines) == 0 {
		return
	}
	switch ev.Kind {
	case navigator.EventRoom, navigator.EventBlocked, navigator.EventInvalid,
		navigator.EventQuit, navigator.EventUnexpectedEnd:
		fmt.Fprintln(p.out)
	case navigator.EventPrompt:
		if ev.Retry {
			fmt.Fprintln(p.out)
		}
	}

	if ev.Kind == navigator.EventLeaf {
		p.banner(lines)
		return
	}

	style, styled := p.styleFor(ev.Kind)
	for _, line := range lines {
		if styled && !p.noColor {
			line = style.Render(line)
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *Printer) styleFor(kind navigator.EventKind) (lipgloss.Style, bool) {
	switch kind {
	case navigator.EventRoom:
		return p.styles.Room, true
	case navigator.EventPrompt:
		return p.styles.Prompt, true
	case navigator.EventBlocked, navigator.EventInvalid, navigator.EventUnexpectedEnd:
		return p.styles.Warning, true
	case navigator.EventQuit:
		return p.styles.Quit, true
	default:
		return lipgloss.Style{}, false
	}
}

func (p *Printer) banner(lines []string) {
	fmt.Fprintln(p.out)
	if !p.noColor {
		fmt.Fprintln(p.out, p.styles.Banner.Render(strings.Join(lines, "\n")))
		return
	}
	rule := strings.Repeat("=", ruleWidth(lines))
	fmt.Fprintln(p.out, rule)
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
	fmt.Fprintln(p.out, rule)
}

// ruleWidth is the display width of the widest line, at least minRuleWidth.
func ruleWidth(lines []string) int {
	w := minRuleWidth
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
