package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/blackwood/internal/navigator"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     Config
	embeddedConfigErr  error
)

// ErrUnknownLocale is returned when a locale has no catalog.
var ErrUnknownLocale = errors.New("unknown locale")

// DefaultConfigYAML returns a copy of the embedded default config.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded default configuration. Every locale is
// completed from the built-in English catalog.
func Default() (Config, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		var cfg Config
		if err := yaml.Unmarshal(embeddedDefaultConfig, &cfg); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
			return
		}
		embeddedConfig = complete(cfg)
	})
	return clone(embeddedConfig), embeddedConfigErr
}

// Decode parses a config file body. Names ending in .toml are read as TOML,
// everything else as YAML.
func Decode(name string, data []byte) (Config, error) {
	var cfg Config
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode TOML config %s: %w", name, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode YAML config %s: %w", name, err)
	}
	return cfg, nil
}

// Load returns the defaults merged with the file at path. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	user, err := Decode(path, data)
	if err != nil {
		return cfg, err
	}
	return complete(Merge(cfg, user)), nil
}

// Merge lays overlay on top of base. Set fields in overlay win; locale
// catalogs are merged message by message.
func Merge(base, overlay Config) Config {
	out := clone(base)
	if overlay.About.Name != "" {
		out.About.Name = overlay.About.Name
	}
	if overlay.About.Version != "" {
		out.About.Version = overlay.About.Version
	}
	if overlay.About.Description != "" {
		out.About.Description = overlay.About.Description
	}
	if overlay.Game.Locale != "" {
		out.Game.Locale = overlay.Game.Locale
	}
	if overlay.Game.Input != "" {
		out.Game.Input = overlay.Game.Input
	}
	if overlay.Display.NoColor != nil {
		v := *overlay.Display.NoColor
		out.Display.NoColor = &v
	}
	if overlay.Display.TUI != nil {
		v := *overlay.Display.TUI
		out.Display.TUI = &v
	}
	if overlay.Log.Level != "" {
		out.Log.Level = overlay.Log.Level
	}
	for name, loc := range overlay.Locales {
		if out.Locales == nil {
			out.Locales = map[string]Locale{}
		}
		prev := out.Locales[name]
		out.Locales[name] = Locale{Messages: loc.Messages.WithFallback(prev.Messages)}
	}
	return out
}

// complete fills every locale's missing messages from the English catalog.
func complete(cfg Config) Config {
	if cfg.Locales == nil {
		cfg.Locales = map[string]Locale{}
	}
	if _, ok := cfg.Locales["en"]; !ok {
		cfg.Locales["en"] = Locale{}
	}
	for name, loc := range cfg.Locales {
		cfg.Locales[name] = Locale{Messages: loc.Messages.WithFallback(navigator.DefaultMessages())}
	}
	return cfg
}

func clone(cfg Config) Config {
	out := cfg
	if cfg.Display.NoColor != nil {
		v := *cfg.Display.NoColor
		out.Display.NoColor = &v
	}
	if cfg.Display.TUI != nil {
		v := *cfg.Display.TUI
		out.Display.TUI = &v
	}
	if cfg.Locales != nil {
		out.Locales = make(map[string]Locale, len(cfg.Locales))
		for k, v := range cfg.Locales {
			out.Locales[k] = v
		}
	}
	return out
}

// Messages returns the catalog for locale, resolved with ResolveLocale.
func (c Config) Messages(locale string) (navigator.Messages, error) {
	name, err := c.ResolveLocale(locale)
	if err != nil {
		return navigator.Messages{}, err
	}
	return c.Locales[name].Messages.WithFallback(navigator.DefaultMessages()), nil
}

// ResolveLocale returns the catalog name serving locale. An exact catalog
// name wins; otherwise locale is parsed as a BCP 47 tag and matched against
// the catalogs whose names are tags, so "pt" and "PT-br" pick "pt-BR" and
// "en-US" picks "en".
func (c Config) ResolveLocale(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if _, ok := c.Locales[locale]; ok {
		return locale, nil
	}
	unknown := fmt.Errorf("%w %q (available: %s)", ErrUnknownLocale, locale, strings.Join(c.LocaleNames(), ", "))

	want, err := language.Parse(locale)
	if err != nil {
		return "", unknown
	}
	var (
		names []string
		tags  []language.Tag
	)
	for _, name := range c.LocaleNames() {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		names = append(names, name)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", unknown
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return "", unknown
	}
	return names[idx], nil
}

// LocaleNames returns the configured locales, sorted.
func (c Config) LocaleNames() []string {
	names := make([]string, 0, len(c.Locales))
	for name := range c.Locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NoColor reports the configured no-color setting, false when unset.
func (c Config) NoColor() bool {
	return c.Display.NoColor != nil && *c.Display.NoColor
}

// TUI reports whether the terminal UI is enabled, false when unset.
func (c Config) TUI() bool {
	return c.Display.TUI != nil && *c.Display.TUI
}

// LogLevel maps the configured level name to a zap level: -1 debug, 0 info,
// 1 warn, 2 error. Unknown names map to info.
func (c Config) LogLevel() int8 {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return -1
	case "warn", "warning":
		return 1
	case "error":
		return 2
	default:
		return 0
	}
}
