package parser

import (
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

// listify scans a flat token stream and folds every bracketed run of
// homogeneous Int or String tokens into a single List token. Commas
// between members are permitted and simply dropped; nothing else
// enforces alternation, matching how permissively the grouping stage
// built its list literals.
func listify(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != token.OpenBracket {
			out = append(out, tok)
			i++
			continue
		}
		openPos := tok.Pos
		i++
		var members []token.Token
		closed := false
		for i < len(tokens) {
			cur := tokens[i]
			if cur.Kind == token.CloseBracket {
				closed = true
				i++
				break
			}
			if cur.Kind == token.Comma {
				i++
				continue
			}
			if cur.Kind != token.Int && cur.Kind != token.String {
				return nil, ferrors.NewUserSnippet(ferrors.InvalidListMember, cur.Pos, cur.Text)
			}
			if len(members) > 0 && members[0].Kind != cur.Kind {
				return nil, ferrors.NewUser(ferrors.InconsistentListMemberType, cur.Pos)
			}
			members = append(members, cur)
			i++
		}
		if !closed {
			return nil, ferrors.NewUser(ferrors.UnclosedList, openPos)
		}
		if len(members) == 0 {
			return nil, ferrors.NewUserSnippet(ferrors.InvalidListMember, openPos, "[]")
		}
		out = append(out, token.NewList(members, openPos))
	}
	return out, nil
}

// divide splits a sieve's token stream on every Semicolon token into
// one token slice per filter expression, regardless of paren nesting
// (a semicolon inside a paren group still splits — divide never
// tracks depth). Consecutive semicolons collapse rather than
// producing empty expressions; CompileFilter never calls divide, so
// a stray semicolon there survives to raise SemicolonInExpression at
// build time instead.
func divide(tokens []token.Token) [][]token.Token {
	var groups [][]token.Token
	var cur []token.Token
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Semicolon:
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
		case token.EOF:
			// dropped: each group is re-terminated by the caller.
		default:
			cur = append(cur, tok)
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}
