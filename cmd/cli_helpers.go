package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/blackwood/internal/config"
	"github.com/oakwood-commons/blackwood/pkg/settings"
)

func addRootFlags(fs *pflag.FlagSet, o *rootOptions) {
	fs.StringVar(&o.configFile, "config-file", "", "path to a YAML or TOML config file")
	fs.BoolVar(&o.debug, "debug", false, "log debug events to stderr")
	fs.BoolVar(&o.noColor, "no-color", false, "disable color output")
	fs.StringVar(&o.input, "input", string(settings.InputLine), "how choices are read: line|key")
	fs.BoolVar(&o.tui, "tui", false, "play in the full-screen terminal UI")
	fs.StringVar(&o.locale, "locale", "", "message catalog, e.g. en or pt-BR (default from config)")
}

// runSettings resolves the per-run settings: defaults, then config, then any
// flag the user set explicitly.
func runSettings(cfg config.Config, fs *pflag.FlagSet, o *rootOptions) (*settings.Run, error) {
	run := settings.NewCliParams()
	run.MinLogLevel = cfg.LogLevel()
	run.NoColor = cfg.NoColor()
	run.TUI = cfg.TUI()
	if cfg.Game.Locale != "" {
		run.Locale = cfg.Game.Locale
	}
	if cfg.Game.Input != "" {
		run.Input = settings.InputMode(cfg.Game.Input)
	}

	if changed(fs, "debug") && o.debug {
		run.MinLogLevel = -1
	}
	if changed(fs, "no-color") {
		run.NoColor = o.noColor
	}
	if changed(fs, "tui") {
		run.TUI = o.tui
	}
	if changed(fs, "locale") {
		run.Locale = strings.TrimSpace(o.locale)
	}
	if changed(fs, "input") {
		run.Input = settings.InputMode(strings.ToLower(strings.TrimSpace(o.input)))
	}

	if !run.Input.Valid() {
		return nil, fmt.Errorf("invalid input mode %q: valid values are %s, %s", run.Input, settings.InputLine, settings.InputKey)
	}
	return run, nil
}

// changed reports whether the flag was set on the command line.
func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// resolveConfigPath returns the explicit configFile if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/blackwood/config.yaml) or ~/.config/blackwood/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// longHelp builds the long help text from the default config.
func longHelp() string {
	cfg, _ := config.Default()
	name := cfg.About.Name
	if name == "" {
		name = settings.CliBinaryName
	}

	var long strings.Builder
	fmt.Fprintf(&long, "%s: %s\n\n", name, cfg.About.Description)
	long.WriteString("Start in the entrance hall and pick a direction in every room:\n")
	long.WriteString("  e  go left\n  d  go right\n  s  stop the investigation\n\n")
	long.WriteString("The game ends when you reach a room with no exits or quit.\n")
	fmt.Fprintf(&long, "Config is read from --config-file or $XDG_CONFIG_HOME/%s/config.yaml.\n", settings.CliBinaryName)
	return long.String()
}
