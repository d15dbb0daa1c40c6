package parser

import (
	"github.com/tsantos/sievelang/ast"
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

// resolved is one item of a group's flattened operand/operator list,
// built in a pre-pass before the stack walk below needs to look ahead
// at "the next item" without caring whether it came from a leaf token
// or a fully-built nested group.
type resolved struct {
	isOp  bool
	opTok token.Token
	node  ast.Node
}

// build turns one elem group into a single ast.Node: nested groups are
// built first (bottom-up), leaves are converted to terminal nodes or
// kept as operator markers, then a single left-to-right pass over the
// flattened list resolves every remaining And/Or/Not into Binary/Not
// nodes using an explicit operand stack — the same generic algorithm
// at every nesting level, since by the time build runs, precedence
// folding has already made every comparison and "not" its own group.
func build(g *elem) (ast.Node, error) {
	items := make([]resolved, 0, len(g.children))
	for _, c := range g.children {
		if c.isGroup {
			n, err := build(c)
			if err != nil {
				return nil, err
			}
			items = append(items, resolved{node: n})
			continue
		}
		if c.leaf.Kind == token.Semicolon {
			return nil, ferrors.NewUser(ferrors.SemicolonInExpression, c.leaf.Pos)
		}
		if c.isOperator() {
			items = append(items, resolved{isOp: true, opTok: c.leaf})
			continue
		}
		n, err := leafToNode(c.leaf)
		if err != nil {
			return nil, err
		}
		items = append(items, resolved{node: n})
	}

	var stack []ast.Node
	i := 0
	for i < len(items) {
		it := items[i]
		if !it.isOp {
			stack = append(stack, it.node)
			i++
			continue
		}

		op := it.opTok
		if op.Kind == token.Not {
			if i+1 >= len(items) {
				return nil, ferrors.NewOperand(ferrors.MissingOperand, op.Pos, ferrors.Right)
			}
			right := items[i+1]
			if right.isOp {
				return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, op.Pos, ferrors.Right)
			}
			stack = append(stack, &ast.Not{Child: right.node, Pos: op.Pos})
			i += 2
			continue
		}

		if len(stack) == 0 {
			return nil, ferrors.NewOperand(ferrors.MissingOperand, op.Pos, ferrors.Left)
		}
		left := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if i+1 >= len(items) {
			return nil, ferrors.NewOperand(ferrors.MissingOperand, op.Pos, ferrors.Right)
		}
		right := items[i+1]
		if right.isOp {
			return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, op.Pos, ferrors.Right)
		}

		node, err := buildBinary(op, left, right.node)
		if err != nil {
			return nil, err
		}
		stack = append(stack, node)
		i += 2
	}

	switch len(stack) {
	case 0:
		return nil, ferrors.NewUser(ferrors.NullExpression, g.pos)
	case 1:
		return stack[0], nil
	default:
		return nil, ferrors.NewUser(ferrors.ExcessiveOperands, stack[0].Position())
	}
}

// leafToNode converts a terminal token (never an operator or
// semicolon, both handled by the caller) into its AST node.
func leafToNode(tok token.Token) (ast.Node, error) {
	switch tok.Kind {
	case token.Int:
		return &ast.Value{Kind: ast.IntKind, Text: tok.Text, Int: tok.IntValue, Pos: tok.Pos}, nil
	case token.String:
		return &ast.Value{Kind: ast.StringKind, Text: tok.Text, Pos: tok.Pos}, nil
	case token.Regex:
		return &ast.Value{Kind: ast.RegexKind, Text: tok.Text, Pos: tok.Pos}, nil
	case token.Symbol:
		return symbolNode(tok)
	case token.List:
		return listNode(tok)
	default:
		return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, tok.Pos, ferrors.Left)
	}
}

func symbolNode(tok token.Token) (ast.Node, error) {
	var path []string
	start := 0
	for i, r := range tok.Text {
		if r == '.' {
			if start == i {
				return nil, ferrors.NewUserSnippet(ferrors.EmptySymbolSegment, tok.Pos, tok.Text)
			}
			path = append(path, tok.Text[start:i])
			start = i + 1
		}
	}
	if start == len(tok.Text) {
		return nil, ferrors.NewUserSnippet(ferrors.EmptySymbolSegment, tok.Pos, tok.Text)
	}
	path = append(path, tok.Text[start:])
	return &ast.Symbol{Path: path, Pos: tok.Pos}, nil
}

func listNode(tok token.Token) (ast.Node, error) {
	kind := ast.IntKind
	if tok.ListKind() == token.String {
		kind = ast.StringKind
	}
	values := make([]*ast.Value, len(tok.Members))
	for i, m := range tok.Members {
		v, err := leafToNode(m)
		if err != nil {
			return nil, err
		}
		values[i] = v.(*ast.Value)
	}
	return &ast.List{Kind: kind, Values: values, Pos: tok.Pos}, nil
}

// buildBinary maps an operator token plus its already-resolved
// operands into an ast.Binary, rejecting operand type combinations
// the language never permits. The original implementation asserted
// these shapes with bare Python TypeErrors (construction-time
// invariants, not user-facing diagnostics); here they are instead
// typed UserErrors, since a stray wrong-shaped operand is reachable
// from otherwise-valid source (e.g. "name =~ 1") and deserves a real
// diagnostic rather than a panic.
func buildBinary(op token.Token, left, right ast.Node) (ast.Node, error) {
	var aop ast.Op
	switch op.Kind {
	case token.Equal:
		aop = ast.OpEqual
	case token.NotEqual:
		aop = ast.OpNotEqual
	case token.Match:
		aop = ast.OpMatch
	case token.And:
		aop = ast.OpAnd
	case token.Or:
		aop = ast.OpOr
	case token.In:
		aop = ast.OpIn
	case token.NotIn:
		aop = ast.OpNotIn
	}

	switch aop {
	case ast.OpMatch:
		if v, ok := right.(*ast.Value); !ok || v.Kind != ast.RegexKind {
			return nil, ferrors.NewUserSnippet(ferrors.InvalidOperandType, op.Pos, "=~ requires a regex literal on the right")
		}
		if _, ok := left.(*ast.Symbol); !ok {
			if _, ok := left.(*ast.Value); !ok {
				return nil, ferrors.NewUserSnippet(ferrors.InvalidOperandType, op.Pos, "=~ requires a symbol or value on the left")
			}
		}
	case ast.OpIn, ast.OpNotIn:
		if _, ok := right.(*ast.List); !ok {
			return nil, ferrors.NewUserSnippet(ferrors.InvalidOperandType, op.Pos, "in/not in requires a list literal on the right")
		}
		if _, ok := left.(*ast.Symbol); !ok {
			if _, ok := left.(*ast.Value); !ok {
				return nil, ferrors.NewUserSnippet(ferrors.InvalidOperandType, op.Pos, "in/not in requires a symbol or value on the left")
			}
		}
	case ast.OpAnd, ast.OpOr:
		// Any node — including a List or another Binary/Not — is a
		// valid boolean operand; the evaluator, not the parser, is
		// responsible for rejecting non-boolean results at match time.
	}

	return &ast.Binary{Op: aop, Left: left, Right: right, Pos: op.Pos}, nil
}
