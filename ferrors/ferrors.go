// Package ferrors defines the error taxonomy for the filter language:
// UserError at compile time, EvalError at match time. Both carry a Kind
// so callers can report diagnostics without string-sniffing error
// messages; a UserError also carries a source position, an EvalError
// the symbol path or expression text it concerns.
package ferrors

import (
	"fmt"

	"github.com/tsantos/sievelang/token"
)

// Kind enumerates every distinct diagnostic this package raises.
type Kind int

const (
	// UserError kinds (parse time, recoverable by fixing the source).
	NullExpression Kind = iota
	UnclosedQuote
	UnclosedRegex
	UnclosedParen
	ExcessCloseParen
	UncompileableRegex
	UnknownToken
	InvalidListMember
	InconsistentListMemberType
	MissingOperand
	OperatorInsteadOfOperand
	ExcessiveOperands
	SemicolonInExpression
	EmptySymbolSegment
	UnclosedList
	InvalidOperandType

	// EvalError kinds (match time).
	SymbolExpansion
	SymbolExpansionType
)

var kindNames = map[Kind]string{
	NullExpression:             "NullExpression",
	UnclosedQuote:              "UnclosedQuote",
	UnclosedRegex:              "UnclosedRegex",
	UnclosedParen:              "UnclosedParen",
	ExcessCloseParen:           "ExcessCloseParen",
	UncompileableRegex:         "UncompileableRegex",
	UnknownToken:               "UnknownToken",
	InvalidListMember:          "InvalidListMember",
	InconsistentListMemberType: "InconsistentListMemberType",
	MissingOperand:             "MissingOperand",
	OperatorInsteadOfOperand:   "OperatorInsteadOfOperand",
	ExcessiveOperands:          "ExcessiveOperands",
	SemicolonInExpression:      "SemicolonInExpression",
	EmptySymbolSegment:         "EmptySymbolSegment",
	UnclosedList:               "UnclosedList",
	InvalidOperandType:         "InvalidOperandType",
	SymbolExpansion:            "SymbolExpansion",
	SymbolExpansionType:        "SymbolExpansionType",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

// Side names which operand of a binary/unary operator is missing or
// was found to be an operator instead of an operand.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// UserError is a parse-time diagnostic. It always carries the position
// where the problem was detected and, for a handful of kinds, extra
// context (Side, the offending token text, or a wrapped cause).
type UserError struct {
	Kind     Kind
	Pos      token.Position
	Snippet  string // short prefix of the offending text, when available
	Side     Side   // meaningful for MissingOperand / OperatorInsteadOfOperand
	Cause    error  // wrapped underlying error, e.g. a regexp.Compile failure
}

func (e *UserError) Error() string {
	switch e.Kind {
	case NullExpression:
		return "null expression"
	case UncompileableRegex:
		return fmt.Sprintf("error compiling regex %q at %s: %s", e.Snippet, e.Pos, e.Cause)
	case MissingOperand:
		return fmt.Sprintf("operator at %s is missing %s operand", e.Pos, e.Side)
	case OperatorInsteadOfOperand:
		return fmt.Sprintf("expected an operand on %s side at %s, found an operator instead", e.Side, e.Pos)
	case UnknownToken:
		return fmt.Sprintf("unknown token at %s near %q", e.Pos, e.Snippet)
	case EmptySymbolSegment:
		return fmt.Sprintf("empty symbol segment at %s near %q", e.Pos, e.Snippet)
	case UnclosedList:
		return fmt.Sprintf("unclosed list starting at %s", e.Pos)
	case InvalidOperandType:
		return fmt.Sprintf("invalid operand type for operator at %s: %s", e.Pos, e.Snippet)
	default:
		if e.Snippet != "" {
			return fmt.Sprintf("%s at %s near %q", e.Kind, e.Pos, e.Snippet)
		}
		return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
	}
}

func (e *UserError) Unwrap() error { return e.Cause }

// EvalError is a match-time diagnostic. The evaluator raises it when a
// resolved record value violates the scalar-kind invariant, when an
// operand of not/and/or (or the whole expression) does not evaluate to
// a boolean, and when a regex fails to compile. SymbolExpansion (an
// intermediate container in a dotted path that is not a mapping) is
// never raised by the shipped resolver — see DESIGN.md.
type EvalError struct {
	Kind  Kind
	Path  string
	Extra string // e.g. the unsupported Go type name
}

func (e *EvalError) Error() string {
	if e.Extra != "" {
		return fmt.Sprintf("%s: symbol %q: %s", e.Kind, e.Path, e.Extra)
	}
	return fmt.Sprintf("%s: symbol %q", e.Kind, e.Path)
}

// NewUser builds a UserError at pos with no extra context.
func NewUser(kind Kind, pos token.Position) *UserError {
	return &UserError{Kind: kind, Pos: pos}
}

// NewUserSnippet builds a UserError carrying a short offending snippet.
func NewUserSnippet(kind Kind, pos token.Position, snippet string) *UserError {
	return &UserError{Kind: kind, Pos: pos, Snippet: snippet}
}

// NewOperand builds the MissingOperand/OperatorInsteadOfOperand
// family, which always needs a side.
func NewOperand(kind Kind, pos token.Position, side Side) *UserError {
	return &UserError{Kind: kind, Pos: pos, Side: side}
}

// NewRegexError wraps a regexp.Compile failure encountered at tokenize time.
func NewRegexError(pos token.Position, source string, cause error) *UserError {
	return &UserError{Kind: UncompileableRegex, Pos: pos, Snippet: source, Cause: cause}
}
