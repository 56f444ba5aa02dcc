// Package formatter renders the mansion map as text: an ASCII tree for the
// terminal, a Mermaid flowchart, or a Markdown/HTML outline for docs.
package formatter

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

// Output formats supported by Format.
const (
	OutputTree     = "tree"
	OutputMermaid  = "mermaid"
	OutputMarkdown = "markdown"
	OutputHTML     = "html"
)

// ValidOutputs contains all valid output format values.
var ValidOutputs = []string{OutputTree, OutputMermaid, OutputMarkdown, OutputHTML}

// Options controls map rendering for every output format.
type Options struct {
	// Output selects the format: "tree" (default), "mermaid", "markdown" or "html".
	Output string
	// MaxDepth limits how many levels below the root are drawn (0 = unlimited).
	MaxDepth int
	// MaxNameWidth truncates room names to this display width (0 = no limit).
	MaxNameWidth int
	// ShowBlocked draws the missing side of a room that has one exit.
	ShowBlocked bool
	// Direction is the Mermaid diagram direction.
	Direction string
	// Title heads Markdown and HTML output.
	Title string
}

// ValidateOutput returns an error if the output format is unknown.
func ValidateOutput(output string) error {
	if output == "" {
		return nil
	}
	for _, valid := range ValidOutputs {
		if output == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output %q: valid values are %s", output, strings.Join(ValidOutputs, ", "))
}

// Format renders root in the requested output format. The map must be a
// strict tree; shared rooms and cycles are rejected.
func Format(root *mansion.Room, opts Options) (string, error) {
	if err := ValidateOutput(opts.Output); err != nil {
		return "", err
	}
	if err := mansion.Validate(root); err != nil {
		return "", err
	}
	switch opts.Output {
	case OutputMermaid:
		if err := ValidateDirection(opts.Direction); err != nil {
			return "", err
		}
		return FormatAsMermaid(root, MermaidOptions{
			Direction:    opts.Direction,
			MaxDepth:     opts.MaxDepth,
			MaxNameWidth: opts.MaxNameWidth,
			ShowBlocked:  opts.ShowBlocked,
		}), nil
	case OutputMarkdown, OutputHTML:
		mdOpts := MarkdownOptions{
			Title:        opts.Title,
			MaxDepth:     opts.MaxDepth,
			MaxNameWidth: opts.MaxNameWidth,
			ShowBlocked:  opts.ShowBlocked,
		}
		if opts.Output == OutputHTML {
			return FormatAsHTML(root, mdOpts), nil
		}
		return FormatAsMarkdown(root, mdOpts), nil
	default:
		return FormatAsTree(root, TreeOptions{
			MaxDepth:     opts.MaxDepth,
			MaxNameWidth: opts.MaxNameWidth,
			ShowBlocked:  opts.ShowBlocked,
		}), nil
	}
}

// side is one labelled exit of a room.
type side struct {
	key   string
	label string
	room  *mansion.Room
}

// exits returns the labelled exits of r in left, right order. Missing exits
// are included only when withBlocked is set and r is not a leaf.
func exits(r *mansion.Room, withBlocked bool) []side {
	all := []side{
		{key: "e", label: "left", room: r.Left},
		{key: "d", label: "right", room: r.Right},
	}
	out := all[:0]
	for _, s := range all {
		if s.room != nil || (withBlocked && !r.IsLeaf()) {
			out = append(out, s)
		}
	}
	return out
}

// truncateName shortens name to width display cells, marking the cut.
func truncateName(name string, width int) string {
	if width <= 0 || runewidth.StringWidth(name) <= width {
		return name
	}
	if width <= 1 {
		return runewidth.Truncate(name, width, "")
	}
	return runewidth.Truncate(name, width, "…")
}
