package navigator

import "strings"

// Messages is the text catalog used to render events. "{room}" in any
// message is replaced by the current room name.
type Messages struct {
	Title         string `yaml:"title" toml:"title"`
	Intro         string `yaml:"intro" toml:"intro"`
	Room          string `yaml:"room" toml:"room"`
	Prompt        string `yaml:"prompt" toml:"prompt"`
	RetryMenu     string `yaml:"retry_menu" toml:"retry_menu"`
	BlockedLeft   string `yaml:"blocked_left" toml:"blocked_left"`
	BlockedRight  string `yaml:"blocked_right" toml:"blocked_right"`
	Invalid       string `yaml:"invalid" toml:"invalid"`
	Leaf          string `yaml:"leaf" toml:"leaf"`
	LeafDetail    string `yaml:"leaf_detail" toml:"leaf_detail"`
	Quit          string `yaml:"quit" toml:"quit"`
	UnexpectedEnd string `yaml:"unexpected_end" toml:"unexpected_end"`
}

// DefaultMessages returns the English catalog.
func DefaultMessages() Messages {
	return Messages{
		Title:         "--- The Mystery of Blackwood Manor ---",
		Intro:         "Welcome, detective. Explore the mansion and find the culprit.",
		Room:          "You are in: {room}",
		Prompt:        "Where to? (e) left | (d) right | (s) quit",
		RetryMenu:     "--- choice menu at {room} ---",
		BlockedLeft:   "There is no path to the left from here.",
		BlockedRight:  "There is no path to the right from here.",
		Invalid:       "Invalid option. Try again.",
		Leaf:          "YOU REACHED A FINAL ROOM (leaf): {room}",
		LeafDetail:    "Exploration ends on this path.",
		Quit:          "You stopped the investigation. Leaving Blackwood Manor.",
		UnexpectedEnd: "--- Unexpected end of exploration. ---",
	}
}

// WithFallback fills every empty message from fb.
func (m Messages) WithFallback(fb Messages) Messages {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return Messages{
		Title:         pick(m.Title, fb.Title),
		Intro:         pick(m.Intro, fb.Intro),
		Room:          pick(m.Room, fb.Room),
		Prompt:        pick(m.Prompt, fb.Prompt),
		RetryMenu:     pick(m.RetryMenu, fb.RetryMenu),
		BlockedLeft:   pick(m.BlockedLeft, fb.BlockedLeft),
		BlockedRight:  pick(m.BlockedRight, fb.BlockedRight),
		Invalid:       pick(m.Invalid, fb.Invalid),
		Leaf:          pick(m.Leaf, fb.Leaf),
		LeafDetail:    pick(m.LeafDetail, fb.LeafDetail),
		Quit:          pick(m.Quit, fb.Quit),
		UnexpectedEnd: pick(m.UnexpectedEnd, fb.UnexpectedEnd),
	}
}

// Render returns the lines shown for ev, in order.
func (m Messages) Render(ev Event) []string {
	fill := func(s string) string {
		return strings.ReplaceAll(s, "{room}", ev.Room)
	}
	switch ev.Kind {
	case EventRoom:
		return []string{fill(m.Room)}
	case EventLeaf:
		return []string{fill(m.Leaf), fill(m.LeafDetail)}
	case EventPrompt:
		if ev.Retry {
			return []string{fill(m.RetryMenu), fill(m.Prompt)}
		}
		return []string{fill(m.Prompt)}
	case EventBlocked:
		if ev.Direction == Right {
			return []string{fill(m.BlockedRight)}
		}
		return []string{fill(m.BlockedLeft)}
	case EventInvalid:
		return []string{fill(m.Invalid)}
	case EventQuit:
		return []string{fill(m.Quit)}
	case EventUnexpectedEnd:
		return []string{fill(m.UnexpectedEnd)}
	default:
		return nil
	}
}
