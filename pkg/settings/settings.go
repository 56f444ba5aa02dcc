// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the blackwood CLI packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "blackwood"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// InputMode selects how player choices are read from the terminal.
type InputMode string

const (
	// InputLine reads whitespace-separated characters from buffered lines.
	InputLine InputMode = "line"
	// InputKey reads single key presses in raw terminal mode.
	InputKey InputMode = "key"
)

// Valid reports whether m is a known input mode.
func (m InputMode) Valid() bool {
	return m == InputLine || m == InputKey
}

// Run holds the settings of a single execution.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	Input       InputMode
	TUI         bool
	Locale      string
}

// NewCliParams returns the defaults used before config and flags are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
		Input:       InputLine,
		TUI:         false,
		Locale:      "en",
	}
}
