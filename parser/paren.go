package parser

import (
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

// elem is the grouping stages' shared representation: either a leaf
// token or a nested group. A group might be a real user-written paren
// group, or a synthetic one a precedence pass folded together — by
// the time build walks the tree the two are indistinguishable, which
// is exactly what lets one recursive function resolve both.
type elem struct {
	leaf     token.Token
	isGroup  bool
	children []*elem
	pos      token.Position
}

func leafElem(tok token.Token) *elem {
	return &elem{leaf: tok, pos: tok.Pos}
}

func groupElem(children []*elem, pos token.Position) *elem {
	return &elem{isGroup: true, children: children, pos: pos}
}

func (e *elem) isOperator() bool {
	if e.isGroup {
		return false
	}
	switch e.leaf.Kind {
	case token.Equal, token.NotEqual, token.Match, token.And, token.Or, token.Not, token.In, token.NotIn:
		return true
	}
	return false
}

func firstPos(tokens []token.Token) token.Position {
	if len(tokens) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return tokens[0].Pos
}

// parenthesize builds the nested elem tree for one expression's token
// stream, turning matched OpenParen/CloseParen runs into groups. An
// unmatched CloseParen is reported immediately; any OpenParen left
// unclosed at the end is reported at its own position.
func parenthesize(tokens []token.Token) (*elem, error) {
	root := groupElem(nil, firstPos(tokens))
	stack := []*elem{root}

	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.Kind {
		case token.OpenParen:
			g := groupElem(nil, tok.Pos)
			top.children = append(top.children, g)
			stack = append(stack, g)
		case token.CloseParen:
			if len(stack) == 1 {
				return nil, ferrors.NewUser(ferrors.ExcessCloseParen, tok.Pos)
			}
			stack = stack[:len(stack)-1]
		default:
			top.children = append(top.children, leafElem(tok))
		}
	}

	if len(stack) != 1 {
		unclosed := stack[len(stack)-1]
		return nil, ferrors.NewUser(ferrors.UnclosedParen, unclosed.pos)
	}
	return root, nil
}
