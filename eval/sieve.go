package eval

import (
	"github.com/tsantos/sievelang/ast"
	"github.com/tsantos/sievelang/record"
)

// Sieve is an ordered vector of compiled filter expressions evaluated
// as a disjunction: the first predicate that matches wins, and later
// predicates are never evaluated. A Sieve owns its predicates
// exclusively — there are no back-references from predicate to sieve.
type Sieve struct {
	Predicates []*ast.FilterExpr
}

// NewSieve wraps an already-compiled, ordered predicate list.
func NewSieve(predicates []*ast.FilterExpr) *Sieve {
	return &Sieve{Predicates: predicates}
}

// Match reports whether rec matches any predicate in s, in order.
func (s *Sieve) Match(e *Evaluator, rec record.Record) (bool, error) {
	ok, _, err := s.MatchTrace(e, rec)
	return ok, err
}

// MatchTrace behaves like Match but also reports the 0-based index of
// the matching predicate, or -1 if none matched.
func (s *Sieve) MatchTrace(e *Evaluator, rec record.Record) (bool, int, error) {
	for i, p := range s.Predicates {
		ok, err := e.Eval(p, rec)
		if err != nil {
			return false, -1, err
		}
		if ok {
			return true, i, nil
		}
	}
	return false, -1, nil
}
