package parser

import (
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

// foldComparisons is precedence pass 1: within each group, left to
// right, every comparison operator (==, !=, =~, in, not in) is folded
// together with its left and right neighbor into one synthetic
// 3-child group. Nested groups are folded first, bottom-up, so a
// comparison never reaches across a paren boundary.
//
// This replaces index-based splicing with a single left-to-right pass
// that consumes the input and emits onto an output slice used as a
// stack — pushing reduced operands, popping the left operand back off
// when an operator is found.
func foldComparisons(g *elem) (*elem, error) {
	prepped := make([]*elem, len(g.children))
	for i, c := range g.children {
		if c.isGroup {
			folded, err := foldComparisons(c)
			if err != nil {
				return nil, err
			}
			prepped[i] = folded
			continue
		}
		prepped[i] = c
	}

	var out []*elem
	i := 0
	for i < len(prepped) {
		cur := prepped[i]
		if cur.isGroup || !cur.leaf.Kind.IsComparisonOp() {
			out = append(out, cur)
			i++
			continue
		}

		op := cur.leaf
		if len(out) == 0 {
			return nil, ferrors.NewOperand(ferrors.MissingOperand, op.Pos, ferrors.Left)
		}
		left := out[len(out)-1]
		if left.isOperator() {
			return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, op.Pos, ferrors.Left)
		}
		out = out[:len(out)-1]

		i++
		if i >= len(prepped) {
			return nil, ferrors.NewOperand(ferrors.MissingOperand, op.Pos, ferrors.Right)
		}
		right := prepped[i]
		if right.isOperator() {
			return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, op.Pos, ferrors.Right)
		}
		i++

		out = append(out, groupElem([]*elem{left, cur, right}, op.Pos))
	}

	return groupElem(out, g.pos), nil
}

// foldNot is precedence pass 2: every remaining "not" token is folded
// together with the single operand to its right into a synthetic
// 2-child group. Runs after foldComparisons, so it recurses uniformly
// into any nested group — real paren groups and pass-1's synthetic
// comparison triples look identical at this point.
func foldNot(g *elem) (*elem, error) {
	prepped := make([]*elem, len(g.children))
	for i, c := range g.children {
		if c.isGroup {
			folded, err := foldNot(c)
			if err != nil {
				return nil, err
			}
			prepped[i] = folded
			continue
		}
		prepped[i] = c
	}

	var out []*elem
	i := 0
	for i < len(prepped) {
		cur := prepped[i]
		if cur.isGroup || cur.leaf.Kind != token.Not {
			out = append(out, cur)
			i++
			continue
		}

		notTok := cur.leaf
		i++
		if i >= len(prepped) {
			return nil, ferrors.NewOperand(ferrors.MissingOperand, notTok.Pos, ferrors.Right)
		}
		right := prepped[i]
		if right.isOperator() {
			return nil, ferrors.NewOperand(ferrors.OperatorInsteadOfOperand, notTok.Pos, ferrors.Right)
		}
		i++

		out = append(out, groupElem([]*elem{cur, right}, notTok.Pos))
	}

	return groupElem(out, g.pos), nil
}
