// Package parser compiles filter-language source text into an AST
// (CompileFilter) or a sieve of ASTs (CompileSieve), through the
// lexer and a fixed pipeline of token-grouping and precedence-folding
// passes.
package parser

import (
	"github.com/tsantos/sievelang/ast"
	"github.com/tsantos/sievelang/eval"
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/lexer"
	"github.com/tsantos/sievelang/token"
)

// CompileFilter compiles a single filter expression. It never splits
// on ';' — a stray semicolon survives token grouping and is reported
// as SemicolonInExpression once the AST builder reaches it.
func CompileFilter(src string) (*ast.FilterExpr, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	root, err := compileExpr(stripEOF(toks))
	if err != nil {
		return nil, err
	}
	return &ast.FilterExpr{Root: root, Source: src}, nil
}

// CompileSieve compiles src as an ordered, ';'-separated sequence of
// filter expressions into an eval.Sieve.
func CompileSieve(src string) (*eval.Sieve, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	groups := divide(stripEOF(toks))

	predicates := make([]*ast.FilterExpr, 0, len(groups))
	for _, g := range groups {
		root, err := compileExpr(g)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, &ast.FilterExpr{Root: root, Source: exprSource(g)})
	}
	return eval.NewSieve(predicates), nil
}

// compileExpr runs one expression's token list through listify,
// parenthesize, the two precedence-folding passes, and build.
func compileExpr(toks []token.Token) (ast.Node, error) {
	if len(toks) == 0 {
		return nil, ferrors.NewUser(ferrors.NullExpression, token.Position{Line: 1, Column: 1})
	}

	grouped, err := listify(toks)
	if err != nil {
		return nil, err
	}
	tree, err := parenthesize(grouped)
	if err != nil {
		return nil, err
	}
	tree, err = foldComparisons(tree)
	if err != nil {
		return nil, err
	}
	tree, err = foldNot(tree)
	if err != nil {
		return nil, err
	}
	return build(tree)
}

func stripEOF(toks []token.Token) []token.Token {
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		return toks[:n-1]
	}
	return toks
}

// exprSource reconstructs a readable source fragment for one sieve
// predicate, for diagnostics — it's never re-lexed.
func exprSource(toks []token.Token) string {
	if len(toks) == 0 {
		return ""
	}
	var b []byte
	for i, t := range toks {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, t.Text...)
	}
	return string(b)
}
