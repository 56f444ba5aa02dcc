// Package config holds the blackwood configuration schema, the embedded
// defaults, and the merge rules applied to user config files.
package config

import (
	"github.com/oakwood-commons/blackwood/internal/navigator"
)

// Config is the full configuration. Pointer fields distinguish "unset" from
// the zero value when a user file is merged over the defaults.
type Config struct {
	About   About             `yaml:"about" toml:"about"`
	Game    Game              `yaml:"game" toml:"game"`
	Display Display           `yaml:"display" toml:"display"`
	Log     Log               `yaml:"log" toml:"log"`
	Locales map[string]Locale `yaml:"locales" toml:"locales"`
}

// About is shown by the version command and the CLI help.
type About struct {
	Name        string `yaml:"name,omitempty" toml:"name,omitempty"`
	Version     string `yaml:"version,omitempty" toml:"version,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
}

// Game selects the message catalog and how choices are read.
type Game struct {
	Locale string `yaml:"locale,omitempty" toml:"locale,omitempty"`
	// Input is "line" or "key".
	Input string `yaml:"input,omitempty" toml:"input,omitempty"`
}

// Display controls terminal rendering.
type Display struct {
	NoColor *bool `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
	TUI     *bool `yaml:"tui,omitempty" toml:"tui,omitempty"`
}

// Log controls diagnostic logging on stderr.
type Log struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level,omitempty" toml:"level,omitempty"`
}

// Locale is one message catalog.
type Locale struct {
	Messages navigator.Messages `yaml:"messages" toml:"messages"`
}
