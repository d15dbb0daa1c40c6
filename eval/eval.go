// Package eval resolves a compiled filter expression against a record,
// and drives an ordered sieve of filter expressions to a first match.
//
// Regex literals are compiled with Go's regexp package (RE2 syntax), so
// backreferences and lookaround are not supported.
package eval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsantos/sievelang/ast"
	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/record"
)

// Evaluator holds the per-instance regex cache and logging
// collaborator used to evaluate filter expressions against records.
// Not safe for concurrent use; confine one instance to one goroutine
// at a time, or share a SharedRegexCache between several instances.
type Evaluator struct {
	regex  map[string]*regexp.Regexp
	shared *SharedRegexCache
	log    Logger
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithLogger routes debug tracing through l instead of discarding it.
func WithLogger(l Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// WithSharedRegexCache makes e use c instead of a private cache, so
// several Evaluators can amortize regex compilation across goroutines.
func WithSharedRegexCache(c *SharedRegexCache) Option {
	return func(e *Evaluator) { e.shared = c }
}

// NewEvaluator builds an Evaluator with a private regex cache and no
// logging, as modified by opts.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{regex: make(map[string]*regexp.Regexp), log: nopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) compileRegex(src string) (*regexp.Regexp, error) {
	if e.shared != nil {
		return e.shared.get(src)
	}
	if re, ok := e.regex[src]; ok {
		return re, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	e.regex[src] = re
	return re, nil
}

// Eval resolves every symbol f references against rec once, then
// walks f's AST to a boolean result.
func (e *Evaluator) Eval(f *ast.FilterExpr, rec record.Record) (bool, error) {
	paths := ast.Symbols(f.Root)
	resolved := make(map[string]any, len(paths))
	for _, p := range paths {
		v := record.Get(rec, strings.Split(p, "."))
		if !record.IsScalar(v) {
			return false, &ferrors.EvalError{Kind: ferrors.SymbolExpansionType, Path: p, Extra: record.TypeName(v)}
		}
		resolved[p] = normalizeInt(v)
	}
	e.log.Debugf("eval: resolved %d symbol(s) for %q", len(paths), f.Source)

	v, err := e.evalNode(f.Root, resolved)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &ferrors.EvalError{Kind: ferrors.SymbolExpansionType, Path: f.Root.String(), Extra: "expression did not evaluate to a boolean"}
	}
	return b, nil
}

// normalizeInt widens a bare int (as produced by decoding YAML into
// map[string]any) to int64, so the rest of the evaluator only ever
// has to reason about one integer representation.
func normalizeInt(v any) any {
	if n, ok := v.(int); ok {
		return int64(n)
	}
	return v
}

func (e *Evaluator) evalNode(n ast.Node, resolved map[string]any) (any, error) {
	switch t := n.(type) {
	case *ast.Value:
		return scalarOf(t), nil
	case *ast.Symbol:
		return resolved[t.String()], nil
	case *ast.List:
		return t, nil
	case *ast.Not:
		v, err := e.evalNode(t.Child, resolved)
		if err != nil {
			return nil, err
		}
		b, ok := v.(bool)
		if !ok {
			return nil, &ferrors.EvalError{Kind: ferrors.SymbolExpansionType, Path: t.Child.String(), Extra: "not requires a boolean operand"}
		}
		return !b, nil
	case *ast.Binary:
		return e.evalBinary(t, resolved)
	default:
		return nil, fmt.Errorf("eval: unrecognized node type %T", n)
	}
}

func (e *Evaluator) evalBinary(b *ast.Binary, resolved map[string]any) (any, error) {
	switch b.Op {
	case ast.OpAnd, ast.OpOr:
		return e.evalShortCircuit(b, resolved)
	case ast.OpEqual, ast.OpNotEqual:
		lv, err := e.evalNode(b.Left, resolved)
		if err != nil {
			return nil, err
		}
		rv, err := e.evalNode(b.Right, resolved)
		if err != nil {
			return nil, err
		}
		eq := scalarEqual(lv, rv)
		if b.Op == ast.OpNotEqual {
			return !eq, nil
		}
		return eq, nil
	case ast.OpMatch:
		return e.evalMatch(b, resolved)
	case ast.OpIn, ast.OpNotIn:
		return e.evalIn(b, resolved)
	default:
		return nil, fmt.Errorf("eval: unrecognized operator %v", b.Op)
	}
}

func (e *Evaluator) evalShortCircuit(b *ast.Binary, resolved map[string]any) (any, error) {
	lv, err := e.evalNode(b.Left, resolved)
	if err != nil {
		return nil, err
	}
	lb, ok := lv.(bool)
	if !ok {
		return nil, &ferrors.EvalError{Kind: ferrors.SymbolExpansionType, Path: b.Left.String(), Extra: "and/or requires a boolean operand"}
	}
	if b.Op == ast.OpAnd && !lb {
		return false, nil
	}
	if b.Op == ast.OpOr && lb {
		return true, nil
	}
	rv, err := e.evalNode(b.Right, resolved)
	if err != nil {
		return nil, err
	}
	rb, ok := rv.(bool)
	if !ok {
		return nil, &ferrors.EvalError{Kind: ferrors.SymbolExpansionType, Path: b.Right.String(), Extra: "and/or requires a boolean operand"}
	}
	return rb, nil
}

func (e *Evaluator) evalMatch(b *ast.Binary, resolved map[string]any) (any, error) {
	lv, err := e.evalNode(b.Left, resolved)
	if err != nil {
		return nil, err
	}
	if _, isMissing := lv.(record.Missing); isMissing {
		return false, nil
	}
	pattern := b.Right.(*ast.Value).Text
	re, err := e.compileRegex(pattern)
	if err != nil {
		return nil, &ferrors.EvalError{Kind: ferrors.UncompileableRegex, Path: pattern, Extra: err.Error()}
	}
	return re.MatchString(scalarString(lv)), nil
}

func (e *Evaluator) evalIn(b *ast.Binary, resolved map[string]any) (any, error) {
	lv, err := e.evalNode(b.Left, resolved)
	if err != nil {
		return nil, err
	}
	list := b.Right.(*ast.List)
	found := false
	if _, isMissing := lv.(record.Missing); !isMissing {
		for _, member := range list.Values {
			if scalarEqual(lv, scalarOf(member)) {
				found = true
				break
			}
		}
	}
	if b.Op == ast.OpNotIn {
		return !found, nil
	}
	return found, nil
}

// scalarOf converts an ast.Value's literal payload into the same Go
// representation Eval resolves record scalars to.
func scalarOf(v *ast.Value) any {
	switch v.Kind {
	case ast.IntKind:
		return v.Int
	default: // StringKind, RegexKind — the regex's own pattern text
		return v.Text
	}
}

// scalarString renders a resolved scalar as text for Match, per the
// textual-form coercion rule; Missing is handled by the caller before
// scalarString is ever reached.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// scalarEqual implements the Equal-rules scalar comparison: numeric
// types compare by value across int64/float64, strings by byte-exact
// identity, and Missing compares unequal to everything but itself.
func scalarEqual(a, b any) bool {
	_, aMissing := a.(record.Missing)
	_, bMissing := b.(record.Missing)
	if aMissing || bMissing {
		return aMissing && bMissing
	}
	switch av := a.(type) {
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv
		case float64:
			return float64(av) == bv
		}
		return false
	case float64:
		switch bv := b.(type) {
		case int64:
			return av == float64(bv)
		case float64:
			return av == bv
		}
		return false
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}
