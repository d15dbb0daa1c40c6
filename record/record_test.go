package record

import "testing"

func TestGetResolvesNestedPath(t *testing.T) {
	rec := Record{"location": Record{"country": "US"}}
	got := Get(rec, []string{"location", "country"})
	if got != "US" {
		t.Fatalf("Get() = %v, want US", got)
	}
}

func TestGetMissingOnAbsentKey(t *testing.T) {
	rec := Record{"name": "John"}
	got := Get(rec, []string{"nickname"})
	if _, ok := got.(Missing); !ok {
		t.Fatalf("Get() = %v (%T), want Missing", got, got)
	}
}

func TestGetMissingWhenIntermediateNotAMapping(t *testing.T) {
	rec := Record{"age": int64(10)}
	got := Get(rec, []string{"age", "years"})
	if _, ok := got.(Missing); !ok {
		t.Fatalf("Get() = %v (%T), want Missing", got, got)
	}
}

func TestGetEmptyPathReturnsRecordItself(t *testing.T) {
	rec := Record{"name": "John"}
	got := Get(rec, nil)
	if r, ok := got.(Record); !ok || r["name"] != "John" {
		t.Fatalf("Get(nil) = %v, want the record itself", got)
	}
}

func TestIsScalar(t *testing.T) {
	for _, v := range []any{int(1), int64(1), 1.5, "s", true, nil, Value} {
		if !IsScalar(v) {
			t.Errorf("IsScalar(%v %T) = false, want true", v, v)
		}
	}
	if IsScalar(Record{}) {
		t.Error("IsScalar(Record{}) = true, want false")
	}
	if IsScalar([]int{1}) {
		t.Error("IsScalar([]int) = true, want false")
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{Record{}, "object"},
		{Value, "missing"},
		{nil, "null"},
		{"s", "string"},
	}
	for _, c := range cases {
		if got := TypeName(c.v); got != c.want {
			t.Errorf("TypeName(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
