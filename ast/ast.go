// Package ast defines the filter language's abstract syntax tree: a
// closed tagged sum (Value | Symbol | List | Not | Binary) instead of
// an open class hierarchy, dispatched by Go type switch.
package ast

import (
	"sort"
	"strings"

	"github.com/tsantos/sievelang/token"
)

// Node is any AST node. Every node carries the source position it was
// derived from, for diagnostics raised at evaluation time.
type Node interface {
	Position() token.Position
	String() string
	node()
}

// ScalarKind distinguishes the three literal forms a Value can hold.
type ScalarKind int

const (
	IntKind ScalarKind = iota
	StringKind
	RegexKind
)

func (k ScalarKind) String() string {
	switch k {
	case IntKind:
		return "Int"
	case StringKind:
		return "String"
	case RegexKind:
		return "Regex"
	}
	return "Unknown"
}

// Value is a literal Int, String, or Regex.
type Value struct {
	Kind ScalarKind
	Text string // String/Regex payload, or the Int's decimal spelling
	Int  int64  // valid when Kind == IntKind
	Pos  token.Position
}

func (v *Value) node()                     {}
func (v *Value) Position() token.Position  { return v.Pos }
func (v *Value) String() string {
	switch v.Kind {
	case IntKind:
		return v.Text
	case RegexKind:
		return "/" + v.Text + "/"
	default:
		return `"` + v.Text + `"`
	}
}

// Symbol is a dotted reference with at least one non-empty segment.
type Symbol struct {
	Path []string
	Pos  token.Position
}

func (s *Symbol) node()                    {}
func (s *Symbol) Position() token.Position { return s.Pos }
func (s *Symbol) String() string           { return strings.Join(s.Path, ".") }

// List is a homogeneous literal (all members Int, or all members
// String) used as the right operand of In/NotIn.
type List struct {
	Kind   ScalarKind
	Values []*Value
	Pos    token.Position
}

func (l *List) node()                    {}
func (l *List) Position() token.Position { return l.Pos }
func (l *List) String() string {
	var parts []string
	for _, v := range l.Values {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Not is logical negation of a single child.
type Not struct {
	Child Node
	Pos   token.Position
}

func (n *Not) node()                    {}
func (n *Not) Position() token.Position { return n.Pos }
func (n *Not) String() string           { return "not (" + n.Child.String() + ")" }

// Op identifies a binary operator.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpMatch
	OpAnd
	OpOr
	OpIn
	OpNotIn
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpMatch:
		return "=~"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	}
	return "?"
}

// Binary is a two-operand application of Op.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
	Pos   token.Position
}

func (b *Binary) node()                    {}
func (b *Binary) Position() token.Position { return b.Pos }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// FilterExpr is a compiled, immutable filter expression: one root AST
// node plus its source text (kept for diagnostics, not evaluated
// itself). For a sieve predicate the text is rebuilt from its tokens.
type FilterExpr struct {
	Root   Node
	Source string
}

func (f *FilterExpr) String() string { return f.Root.String() }

// Symbols returns the sorted, deduplicated set of dotted paths
// referenced anywhere in n. Sorting makes the result deterministic;
// spec.md leaves order unspecified (DESIGN.md records this choice).
func Symbols(n Node) []string {
	seen := map[string]struct{}{}
	var walk func(Node)
	walk = func(n Node) {
		switch t := n.(type) {
		case *Value:
		case *Symbol:
			seen[t.String()] = struct{}{}
		case *List:
		case *Not:
			walk(t.Child)
		case *Binary:
			walk(t.Left)
			walk(t.Right)
		}
	}
	walk(n)
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
