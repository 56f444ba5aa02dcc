// Package cel evaluates CEL expressions against rooms of the mansion, so the
// map can be searched with queries such as `_.leaf && _.depth >= 3`.
package cel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

// Room fields visible to expressions through the `_` variable.
const (
	FieldName  = "name"
	FieldDepth = "depth"
	FieldLeaf  = "leaf"
	FieldSide  = "side"
	FieldPath  = "path"
	FieldExits = "exits"
)

var knownFields = map[string]bool{
	FieldName: true, FieldDepth: true, FieldLeaf: true,
	FieldSide: true, FieldPath: true, FieldExits: true,
}

// Fields returns the room fields an expression may use, sorted.
func Fields() []string {
	out := make([]string, 0, len(knownFields))
	for f := range knownFields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Query is a compiled room predicate.
type Query struct {
	expr string
	prg  cel.Program
}

// newRoomEnv creates a CEL environment with common extensions and the room
// bound to `_`.
func newRoomEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("_", cel.MapType(cel.StringType, cel.DynType)),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
}

// Compile parses and type-checks expr. The expression must evaluate to a
// bool and may only select the fields listed by Fields from `_`.
func Compile(expr string) (*Query, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty query")
	}
	env, err := newRoomEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(types.BoolType) && !out.IsExactType(types.DynType) {
		return nil, fmt.Errorf("query %q returns %s, want bool", expr, out)
	}

	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("inspect query: %w", err)
	}
	if unknown := unknownFields(parsed.GetExpr()); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown room field %s (available: %s)", strings.Join(unknown, ", "), strings.Join(Fields(), ", "))
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Query{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (q *Query) String() string {
	return q.expr
}

// Facts are the values a query sees for one room.
type Facts struct {
	Name  string
	Depth int
	Leaf  bool
	// Side is "left" or "right", empty for the root.
	Side string
	// Path lists room names from the root to this room, inclusive.
	Path []string
	// Exits counts the room's children.
	Exits int
}

func (f Facts) activation() map[string]any {
	path := make([]string, len(f.Path))
	copy(path, f.Path)
	return map[string]any{
		"_": map[string]any{
			FieldName:  f.Name,
			FieldDepth: int64(f.Depth),
			FieldLeaf:  f.Leaf,
			FieldSide:  f.Side,
			FieldPath:  path,
			FieldExits: int64(f.Exits),
		},
	}
}

// Match reports whether the room described by f satisfies q.
func (q *Query) Match(f Facts) (bool, error) {
	val, _, err := q.prg.Eval(f.activation())
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := val.Value().(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %v, want bool", q.expr, val.Value())
	}
	return b, nil
}

// Find walks the tree in pre-order, left before right, and returns the
// facts of every room q matches. root must be a strict tree.
func Find(root *mansion.Room, q *Query) ([]Facts, error) {
	if root == nil {
		return nil, nil
	}
	type frame struct {
		room *mansion.Room
		side string
		path []string
	}
	var matches []Facts
	stack := []frame{{room: root, path: []string{root.Name}}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		exits := 0
		if cur.room.Left != nil {
			exits++
		}
		if cur.room.Right != nil {
			exits++
		}
		f := Facts{
			Name:  cur.room.Name,
			Depth: len(cur.path) - 1,
			Leaf:  cur.room.IsLeaf(),
			Side:  cur.side,
			Path:  cur.path,
			Exits: exits,
		}
		ok, err := q.Match(f)
		if err != nil {
			return matches, fmt.Errorf("room %q: %w", cur.room.Name, err)
		}
		if ok {
			matches = append(matches, f)
		}

		// push right first so left is visited first
		if r := cur.room.Right; r != nil {
			stack = append(stack, frame{room: r, side: "right", path: appendPath(cur.path, r.Name)})
		}
		if l := cur.room.Left; l != nil {
			stack = append(stack, frame{room: l, side: "left", path: appendPath(cur.path, l.Name)})
		}
	}
	return matches, nil
}

func appendPath(path []string, name string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, name)
}

// unknownFields returns the fields selected from `_` that rooms do not have.
func unknownFields(expr *exprpb.Expr) []string {
	seen := map[string]bool{}
	var walk func(*exprpb.Expr)
	walk = func(e *exprpb.Expr) {
		if e == nil {
			return
		}
		switch e.ExprKind.(type) {
		case *exprpb.Expr_SelectExpr:
			sel := e.GetSelectExpr()
			if ident := sel.GetOperand().GetIdentExpr(); ident != nil && ident.GetName() == "_" && !knownFields[sel.GetField()] {
				seen[sel.GetField()] = true
			}
			walk(sel.GetOperand())
		case *exprpb.Expr_CallExpr:
			call := e.GetCallExpr()
			walk(call.GetTarget())
			for _, arg := range call.GetArgs() {
				walk(arg)
			}
		case *exprpb.Expr_ListExpr:
			for _, elem := range e.GetListExpr().GetElements() {
				walk(elem)
			}
		case *exprpb.Expr_StructExpr:
			for _, entry := range e.GetStructExpr().GetEntries() {
				walk(entry.GetMapKey())
				walk(entry.GetValue())
			}
		case *exprpb.Expr_ComprehensionExpr:
			comp := e.GetComprehensionExpr()
			walk(comp.GetIterRange())
			walk(comp.GetAccuInit())
			walk(comp.GetLoopCondition())
			walk(comp.GetLoopStep())
			walk(comp.GetResult())
		}
	}
	walk(expr)

	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
