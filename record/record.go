// Package record defines the nested-map input the filter language
// evaluates against: a recursive mapping from string keys to scalars
// or further records.
package record

import "fmt"

// Record is a mapping whose keys are strings and whose values are
// recursively either a Record or one of int64, float64, string, bool,
// or nil (explicit null — distinct from an absent key, see Missing).
type Record map[string]any

// Missing is the sentinel yielded when a dotted symbol path does not
// resolve: an intermediate segment was absent, or the container at
// some step was not itself a Record. It is a distinct, comparable
// type — never confused with a field whose value is Go nil (which
// represents the record's own explicit null scalar).
type Missing struct{}

// Value is the sentinel instance; resolution never allocates a new one.
var Value = Missing{}

func (Missing) String() string { return "<missing>" }

// Get resolves a dotted path (already split into segments) against
// rec. It never errors on an absent key or a non-mapping intermediate
// — both yield Missing, per the language's evaluation semantics.
func Get(rec Record, path []string) any {
	var cur any = rec
	for _, seg := range path {
		m, ok := cur.(Record)
		if !ok {
			return Value
		}
		v, ok := m[seg]
		if !ok {
			return Value
		}
		cur = v
	}
	return cur
}

// IsScalar reports whether v is one of the allowed leaf kinds the
// evaluator is permitted to operate on: int, int64, float64, string,
// bool, nil, or Missing. Anything else (a Record reached with a
// too-short path, a slice, etc.) is a type violation the evaluator
// must reject with SymbolExpansionType.
//
// Plain int is accepted alongside int64 because a record decoded from
// YAML (gopkg.in/yaml.v3 into map[string]any) yields bare int for
// scalar integers, not int64; the evaluator normalizes both.
func IsScalar(v any) bool {
	switch v.(type) {
	case int, int64, float64, string, bool, nil, Missing:
		return true
	}
	return false
}

// TypeName renders the Go-level kind of v for diagnostics.
func TypeName(v any) string {
	switch v.(type) {
	case Record:
		return "object"
	case Missing:
		return "missing"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
