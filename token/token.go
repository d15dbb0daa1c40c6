// Package token defines the lexical tokens of the filter language and
// the source positions carried alongside every token and AST node.
package token

import "fmt"

// Position is an immutable, 1-based (line, column) location in source
// text. Column resets to 1 on '\n' and otherwise advances by the
// number of runes consumed.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Kind identifies what a Token represents.
type Kind int

const (
	Illegal Kind = iota
	EOF

	Int    // [0-9]+
	String // "...", '...'
	Regex  // /.../, test-compiled at tokenize time
	Symbol // dotted.identifier

	Equal    // ==
	NotEqual // !=
	Match    // =~

	And // and, &&
	Or  // or, ||
	Not // not, !

	In    // in
	NotIn // not in (single token)

	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Comma
	Semicolon

	// List is produced only by token grouping (never by the lexer
	// itself): it folds a bracketed run of homogeneous Int or String
	// tokens into one token carrying the member tokens as its payload.
	List
)

var kindNames = map[Kind]string{
	Illegal:     "Illegal",
	EOF:         "EOF",
	Int:         "Int",
	String:      "String",
	Regex:       "Regex",
	Symbol:      "Symbol",
	Equal:       "Equal",
	NotEqual:    "NotEqual",
	Match:       "Match",
	And:         "And",
	Or:          "Or",
	Not:         "Not",
	In:          "In",
	NotIn:       "NotIn",
	OpenParen:   "OpenParen",
	CloseParen:  "CloseParen",
	OpenBracket: "OpenBracket",
	CloseBracket: "CloseBracket",
	Comma:       "Comma",
	Semicolon:   "Semicolon",
	List:        "List",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// IsComparisonOp reports whether k is one of the binary comparison
// operators folded by precedence pass 1 (spec §4.E).
func (k Kind) IsComparisonOp() bool {
	switch k {
	case Equal, NotEqual, Match, In, NotIn:
		return true
	}
	return false
}

// IsBooleanOp reports whether k is And or Or (flat, equal precedence).
func (k Kind) IsBooleanOp() bool {
	return k == And || k == Or
}

// Token is a single lexical unit: a kind, its literal payload, and the
// position at which it begins.
//
// Payload meaning by Kind:
//   Int            -> IntValue
//   String, Regex  -> Text (quote-stripped / delimiter-stripped, escape-processed)
//   Symbol         -> Text (the dotted path, e.g. "location.country")
//   List           -> Members (each Int or String, all one Kind)
//   everything else -> Text holds the literal spelling ("==", "and", "(", ...)
type Token struct {
	Kind     Kind
	Text     string
	IntValue int64
	Members  []Token
	Pos      Position
}

// New builds a scalar (non-list) token.
func New(kind Kind, text string, pos Position) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}

// NewInt builds an Int token.
func NewInt(value int64, text string, pos Position) Token {
	return Token{Kind: Int, Text: text, IntValue: value, Pos: pos}
}

// NewList builds a List token from its (already validated) members.
func NewList(members []Token, pos Position) Token {
	return Token{Kind: List, Members: members, Pos: pos}
}

// ListKind returns the shared Kind of a List token's members (Int or
// String); it panics if called on a non-List token or an empty list,
// which callers must not do — list homogeneity/non-emptiness is
// validated by the grouping stage before a List token is ever built.
func (t Token) ListKind() Kind {
	return t.Members[0].Kind
}

// wordOperators maps the word-spelled operators to their Kind. Used by
// the lexer's rule 9 (word operators, boundary-checked against a
// following symbol-continuation character).
var wordOperators = map[string]Kind{
	"and": And,
	"or":  Or,
	"not": Not,
	"in":  In,
}

// LookupWord returns the Kind for a bare word operator, or (Illegal,
// false) if the word is not one of the four reserved operator words.
func LookupWord(word string) (Kind, bool) {
	k, ok := wordOperators[word]
	return k, ok
}
