package formatter

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

// ValidDirections contains all valid Mermaid direction values.
var ValidDirections = []string{"TD", "LR", "BT", "RL"}

// ValidateDirection returns an error if the direction is invalid.
func ValidateDirection(direction string) error {
	if direction == "" {
		return nil // empty means TD
	}
	for _, valid := range ValidDirections {
		if direction == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid direction %q: valid values are TD, LR, BT, RL", direction)
}

// MermaidOptions controls Mermaid diagram output formatting.
type MermaidOptions struct {
	// Direction sets the diagram direction: TD (top-down), LR (left-right),
	// BT (bottom-top), RL (right-left). Default is TD.
	Direction string
	// MaxDepth limits tree depth (0 = unlimited).
	MaxDepth int
	// MaxNameWidth truncates room names to this display width (0 = no limit).
	MaxNameWidth int
	// ShowBlocked draws the missing side of a room with one exit.
	ShowBlocked bool
}

// mermaidBuilder tracks state during diagram generation.
type mermaidBuilder struct {
	lines  []string
	nodeID int
	opts   MermaidOptions
}

// FormatAsMermaid renders the map as a Mermaid flowchart. Rooms are nodes and
// each edge is labelled with the key that takes the player along it. Leaf
// rooms are drawn as rounded nodes. root must be a strict tree.
func FormatAsMermaid(root *mansion.Room, opts MermaidOptions) string {
	if opts.Direction == "" {
		opts.Direction = "TD"
	}

	b := &mermaidBuilder{
		lines: []string{fmt.Sprintf("graph %s", opts.Direction)},
		opts:  opts,
	}
	if root == nil {
		return strings.Join(b.lines, "\n") + "\n"
	}

	rootID := b.nextID()
	b.addRoom(rootID, root)
	b.build(rootID, root, 0)

	return strings.Join(b.lines, "\n") + "\n"
}

// nextID generates a unique node identifier.
func (b *mermaidBuilder) nextID() string {
	id := fmt.Sprintf("n%d", b.nodeID)
	b.nodeID++
	return id
}

func (b *mermaidBuilder) addRoom(id string, r *mansion.Room) {
	label := escapeLabel(truncateName(r.Name, b.opts.MaxNameWidth))
	if r.IsLeaf() {
		b.lines = append(b.lines, fmt.Sprintf("    %s([%q])", id, label))
		return
	}
	b.lines = append(b.lines, fmt.Sprintf("    %s[%q]", id, label))
}

func (b *mermaidBuilder) addPlain(id, label string) {
	b.lines = append(b.lines, fmt.Sprintf("    %s[%q]", id, label))
}

func (b *mermaidBuilder) addEdge(fromID, toID, key string) {
	if key == "" {
		b.lines = append(b.lines, fmt.Sprintf("    %s --> %s", fromID, toID))
		return
	}
	b.lines = append(b.lines, fmt.Sprintf("    %s -->|%s| %s", fromID, key, toID))
}

func (b *mermaidBuilder) addBlockedEdge(fromID, toID, key string) {
	b.lines = append(b.lines, fmt.Sprintf("    %s -.->|%s| %s", fromID, key, toID))
}

// build adds the exits of r as child nodes of parentID.
func (b *mermaidBuilder) build(parentID string, r *mansion.Room, depth int) {
	if r.IsLeaf() {
		return
	}
	if b.opts.MaxDepth > 0 && depth >= b.opts.MaxDepth {
		ellipsisID := b.nextID()
		b.addPlain(ellipsisID, "...")
		b.addEdge(parentID, ellipsisID, "")
		return
	}
	for _, s := range exits(r, b.opts.ShowBlocked) {
		childID := b.nextID()
		if s.room == nil {
			b.addPlain(childID, blockedLabel)
			b.addBlockedEdge(parentID, childID, s.key)
			continue
		}
		b.addRoom(childID, s.room)
		b.addEdge(parentID, childID, s.key)
		b.build(childID, s.room, depth+1)
	}
}

// escapeLabel creates a safe label for Mermaid nodes.
func escapeLabel(label string) string {
	// Mermaid uses quotes, so escape internal quotes
	label = strings.ReplaceAll(label, `"`, `'`)
	label = strings.ReplaceAll(label, "\n", " ")
	label = strings.ReplaceAll(label, "\r", "")
	return label
}
