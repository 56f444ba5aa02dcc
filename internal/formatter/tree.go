package formatter

import (
	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

// blockedLabel marks a missing exit when ShowBlocked is set.
const blockedLabel = "(blocked)"

// TreeOptions controls tree output formatting.
type TreeOptions struct {
	// MaxDepth limits tree depth (0 = unlimited).
	MaxDepth int
	// MaxNameWidth truncates room names to this display width (0 = no limit).
	MaxNameWidth int
	// ShowBlocked draws the missing side of a room with one exit.
	ShowBlocked bool
}

// FormatAsTree renders the map as an ASCII tree. The root room labels the
// tree and each child is prefixed with the key that leads to it, e.g.
// "(e) Sala de Estar". root must be a strict tree (see mansion.Validate).
func FormatAsTree(root *mansion.Room, opts TreeOptions) string {
	if root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tree := treeprint.NewWithRoot(truncateName(root.Name, opts.MaxNameWidth))
	buildTree(tree, root, opts, 0)
	return tree.String()
}

// buildTree adds the exits of r below branch.
func buildTree(branch treeprint.Tree, r *mansion.Room, opts TreeOptions, depth int) {
	if r.IsLeaf() {
		return
	}
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		branch.AddNode("...")
		return
	}
	for _, s := range exits(r, opts.ShowBlocked) {
		if s.room == nil {
			branch.AddNode("(" + s.key + ") " + blockedLabel)
			continue
		}
		label := "(" + s.key + ") " + truncateName(s.room.Name, opts.MaxNameWidth)
		if s.room.IsLeaf() {
			branch.AddNode(label)
			continue
		}
		buildTree(branch.AddBranch(label), s.room, opts, depth+1)
	}
}
