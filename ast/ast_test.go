package ast

import (
	"testing"

	"github.com/tsantos/sievelang/token"
)

func pos() token.Position { return token.Position{Line: 1, Column: 1} }

func TestValueString(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{&Value{Kind: IntKind, Text: "42", Int: 42}, "42"},
		{&Value{Kind: StringKind, Text: "hi"}, `"hi"`},
		{&Value{Kind: RegexKind, Text: "^a"}, "/^a/"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("Value.String() = %q, want %q", got, c.want)
		}
	}
}

func TestSymbolString(t *testing.T) {
	s := &Symbol{Path: []string{"location", "country"}}
	if got, want := s.String(), "location.country"; got != want {
		t.Errorf("Symbol.String() = %q, want %q", got, want)
	}
}

func TestListString(t *testing.T) {
	l := &List{Kind: IntKind, Values: []*Value{
		{Kind: IntKind, Text: "1", Int: 1},
		{Kind: IntKind, Text: "2", Int: 2},
	}}
	if got, want := l.String(), "[1, 2]"; got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}

func TestBinaryAndNotString(t *testing.T) {
	left := &Symbol{Path: []string{"name"}}
	right := &Value{Kind: StringKind, Text: "Bob"}
	bin := &Binary{Op: OpEqual, Left: left, Right: right}
	if got, want := bin.String(), `(name == "Bob")`; got != want {
		t.Errorf("Binary.String() = %q, want %q", got, want)
	}
	not := &Not{Child: bin}
	if got, want := not.String(), `not ((name == "Bob"))`; got != want {
		t.Errorf("Not.String() = %q, want %q", got, want)
	}
}

func TestSymbolsDedupesAndSorts(t *testing.T) {
	tree := &Binary{
		Op:   OpAnd,
		Left: &Binary{Op: OpEqual, Left: &Symbol{Path: []string{"b"}}, Right: &Value{Kind: IntKind, Int: 1}},
		Right: &Binary{Op: OpEqual, Left: &Symbol{Path: []string{"a"}}, Right: &Symbol{Path: []string{"b"}}},
	}
	got := Symbols(tree)
	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Symbols() = %v, want %v", got, want)
		}
	}
}

func TestSymbolsThroughNot(t *testing.T) {
	tree := &Not{Child: &Binary{Op: OpEqual, Left: &Symbol{Path: []string{"x"}}, Right: &Value{Kind: IntKind, Int: 1}}}
	got := Symbols(tree)
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("Symbols() = %v, want [x]", got)
	}
}

func TestFilterExprString(t *testing.T) {
	f := &FilterExpr{Root: &Value{Kind: IntKind, Text: "1", Int: 1}, Source: "1"}
	if got, want := f.String(), "1"; got != want {
		t.Errorf("FilterExpr.String() = %q, want %q", got, want)
	}
}
