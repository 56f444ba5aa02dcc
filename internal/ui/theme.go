package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/blackwood/internal/navigator"
)

// Theme defines the colors of the explore screen.
type Theme struct {
	TitleFG   color.Color // Title bar text
	TitleBG   color.Color // Title bar background
	RoomFG    color.Color // "You are in" lines
	PromptFG  color.Color // Direction prompt
	WarningFG color.Color // Blocked, invalid and unexpected-end messages
	LeafFG    color.Color // Leaf banner text and border
	QuitFG    color.Color // Quit message
	BorderFG  color.Color // Frame around the log
}

// DefaultTheme returns the default palette (ANSI 256 codes).
func DefaultTheme() Theme {
	return Theme{
		TitleFG:   lipgloss.Color("230"),
		TitleBG:   lipgloss.Color("53"),
		RoomFG:    lipgloss.Color("81"),
		PromptFG:  lipgloss.Color("246"),
		WarningFG: lipgloss.Color("214"),
		LeafFG:    lipgloss.Color("76"),
		QuitFG:    lipgloss.Color("203"),
		BorderFG:  lipgloss.Color("240"),
	}
}

type styles struct {
	title   lipgloss.Style
	room    lipgloss.Style
	prompt  lipgloss.Style
	warning lipgloss.Style
	leaf    lipgloss.Style
	quit    lipgloss.Style
	frame   lipgloss.Style
	plain   lipgloss.Style
}

func newStyles(t Theme, noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain,
			room:    plain,
			prompt:  plain,
			warning: plain,
			leaf:    plain.Border(lipgloss.NormalBorder(), true, false),
			quit:    plain,
			frame:   plain.Border(lipgloss.NormalBorder()),
			plain:   plain,
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.TitleFG).Background(t.TitleBG).Padding(0, 1),
		room:    lipgloss.NewStyle().Bold(true).Foreground(t.RoomFG),
		prompt:  lipgloss.NewStyle().Foreground(t.PromptFG),
		warning: lipgloss.NewStyle().Foreground(t.WarningFG),
		leaf: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.LeafFG).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.LeafFG).
			Padding(0, 1),
		quit:  lipgloss.NewStyle().Foreground(t.QuitFG),
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFG),
		plain: lipgloss.NewStyle(),
	}
}

func (s styles) forKind(kind navigator.EventKind) lipgloss.Style {
	switch kind {
	case navigator.EventRoom:
		return s.room
	case navigator.EventPrompt:
		return s.prompt
	case navigator.EventBlocked, navigator.EventInvalid, navigator.EventUnexpectedEnd:
		return s.warning
	case navigator.EventLeaf:
		return s.leaf
	case navigator.EventQuit:
		return s.quit
	default:
		return s.plain
	}
}
