package formatter

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

// MarkdownOptions controls Markdown and HTML output formatting.
type MarkdownOptions struct {
	// Title is written as a level-one heading when set.
	Title string
	// MaxDepth limits list depth (0 = unlimited).
	MaxDepth int
	// MaxNameWidth truncates room names to this display width (0 = no limit).
	MaxNameWidth int
	// ShowBlocked lists the missing side of a room with one exit.
	ShowBlocked bool
}

// FormatAsMarkdown renders the map as a nested Markdown list. Leaf rooms are
// set in bold so the endings stand out in a case file.
func FormatAsMarkdown(root *mansion.Room, opts MarkdownOptions) string {
	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(opts.Title))
	}
	if root == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "- %s\n", markdownRoom(root, opts.MaxNameWidth))
	buildMarkdown(&b, root, opts, 1)
	return b.String()
}

func buildMarkdown(b *strings.Builder, r *mansion.Room, opts MarkdownOptions, depth int) {
	if r.IsLeaf() {
		return
	}
	indent := strings.Repeat("    ", depth)
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		fmt.Fprintf(b, "%s- ...\n", indent)
		return
	}
	for _, s := range exits(r, opts.ShowBlocked) {
		if s.room == nil {
			fmt.Fprintf(b, "%s- (%s) _%s_\n", indent, s.key, blockedLabel)
			continue
		}
		fmt.Fprintf(b, "%s- (%s) %s\n", indent, s.key, markdownRoom(s.room, opts.MaxNameWidth))
		buildMarkdown(b, s.room, opts, depth+1)
	}
}

func markdownRoom(r *mansion.Room, width int) string {
	name := escapeMarkdown(truncateName(r.Name, width))
	if r.IsLeaf() {
		return "**" + name + "**"
	}
	return name
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// FormatAsHTML renders the Markdown map as an HTML fragment.
func FormatAsHTML(root *mansion.Room, opts MarkdownOptions) string {
	md := FormatAsMarkdown(root, opts)

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.Render(doc, renderer))
}
