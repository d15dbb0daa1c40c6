package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Int, "Int"},
		{NotIn, "NotIn"},
		{List, "List"},
		{Kind(999), "Unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestIsComparisonOp(t *testing.T) {
	for _, k := range []Kind{Equal, NotEqual, Match, In, NotIn} {
		if !k.IsComparisonOp() {
			t.Errorf("%s: want IsComparisonOp true", k)
		}
	}
	for _, k := range []Kind{And, Or, Not, Symbol, Int} {
		if k.IsComparisonOp() {
			t.Errorf("%s: want IsComparisonOp false", k)
		}
	}
}

func TestIsBooleanOp(t *testing.T) {
	if !And.IsBooleanOp() || !Or.IsBooleanOp() {
		t.Fatal("And/Or should be boolean ops")
	}
	if Not.IsBooleanOp() || Equal.IsBooleanOp() {
		t.Fatal("Not/Equal should not be boolean ops")
	}
}

func TestLookupWord(t *testing.T) {
	cases := []struct {
		word string
		kind Kind
		ok   bool
	}{
		{"and", And, true},
		{"or", Or, true},
		{"not", Not, true},
		{"in", In, true},
		{"banana", Illegal, false},
	}
	for _, c := range cases {
		kind, ok := LookupWord(c.word)
		if ok != c.ok {
			t.Errorf("LookupWord(%q) ok = %v, want %v", c.word, ok, c.ok)
			continue
		}
		if ok && kind != c.kind {
			t.Errorf("LookupWord(%q) = %s, want %s", c.word, kind, c.kind)
		}
	}
}

func TestNewListListKind(t *testing.T) {
	members := []Token{NewInt(1, "1", Position{}), NewInt(2, "2", Position{})}
	lst := NewList(members, Position{Line: 1, Column: 1})
	if lst.Kind != List {
		t.Fatalf("expected List kind, got %s", lst.Kind)
	}
	if lst.ListKind() != Int {
		t.Fatalf("ListKind() = %s, want Int", lst.ListKind())
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got, want := p.String(), "line 3, column 7"; got != want {
		t.Fatalf("Position.String() = %q, want %q", got, want)
	}
}
