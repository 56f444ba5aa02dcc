// Package mansion models the mansion map: a strictly owned binary tree of
// named rooms, plus the fixed Blackwood blueprint the game ships with.
package mansion

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxNameLen is the longest room name kept, in runes. Longer names are truncated.
const MaxNameLen = 49

var (
	// ErrNilRoot is returned when a tree operation is handed an absent root.
	ErrNilRoot = errors.New("mansion: root room is nil")
	// ErrSharedRoom is returned when a room is reachable through more than one link,
	// which covers both shared children and cycles.
	ErrSharedRoom = errors.New("mansion: room is linked from more than one place")
)

// Room is a node of the mansion map. A room owns its children exclusively.
type Room struct {
	Name  string
	Left  *Room
	Right *Room
}

// NewRoom creates a childless room. Non-printable runes are dropped and the
// name is cut to MaxNameLen runes.
func NewRoom(name string) *Room {
	return &Room{Name: sanitizeName(name)}
}

func sanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == MaxNameLen {
			break
		}
		if !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Attach links left and right as the room's children and returns the room.
// Either child may be nil.
func (r *Room) Attach(left, right *Room) *Room {
	r.Left = left
	r.Right = right
	return r
}

// IsLeaf reports whether the room has no children.
func (r *Room) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}

// Children returns the left and right children, either of which may be nil.
func (r *Room) Children() (left, right *Room) {
	return r.Left, r.Right
}

func (r *Room) String() string {
	if r == nil {
		return "<nil>"
	}
	return r.Name
}

// Validate checks that root is present and that every room below it is
// reachable through exactly one link.
func Validate(root *Room) error {
	if root == nil {
		return ErrNilRoot
	}
	seen := make(map[*Room]struct{})
	stack := []*Room{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if _, dup := seen[cur]; dup {
			return fmt.Errorf("%w: %q", ErrSharedRoom, cur.Name)
		}
		seen[cur] = struct{}{}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
	}
	return nil
}

// Count returns the number of rooms in the tree rooted at root.
func Count(root *Room) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}

// Release tears the tree down in post-order: both subtrees first, then the
// room itself. Each room is passed to visit (if non-nil) exactly once and is
// unlinked from its children afterwards. It returns the number of rooms released.
func Release(root *Room, visit func(*Room)) int {
	if root == nil {
		return 0
	}
	released := Release(root.Left, visit)
	released += Release(root.Right, visit)
	if visit != nil {
		visit(root)
	}
	root.Left = nil
	root.Right = nil
	return released + 1
}
