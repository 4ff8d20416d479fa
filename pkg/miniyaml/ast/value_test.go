package ast

import "testing"

func TestMapping_OrderAndReplace(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewInt(1))
	m.Set("b", NewInt(2))
	m.Set("c", NewInt(3))
	m.Set("b", NewString("two")) // replace keeps position

	keys := m.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("len(Keys()) = %d, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if got := m.Get("b").StringOr(""); got != "two" {
		t.Errorf("Get(b) = %q, want %q", got, "two")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestValue_GetIsNilSafe(t *testing.T) {
	var v *Value
	if v.Get("missing") != nil {
		t.Error("Get on nil value should return nil")
	}
	if NewInt(1).Get("x") != nil {
		t.Error("Get on scalar should return nil")
	}
	if NewMapping().Get("x").Get("y").StringOr("fallback") != "fallback" {
		t.Error("chained Get should fall through to default")
	}
}

func TestValue_NumericAccessors(t *testing.T) {
	if f, ok := NewInt(5).AsFloat(); !ok || f != 5 {
		t.Errorf("AsFloat(int 5) = %v, %v", f, ok)
	}
	if f, ok := NewFloat(2.5).AsFloat(); !ok || f != 2.5 {
		t.Errorf("AsFloat(float 2.5) = %v, %v", f, ok)
	}
	if _, ok := NewString("5").AsFloat(); ok {
		t.Error("AsFloat on string should report false")
	}
	if _, ok := NewBool(true).AsInt(); ok {
		t.Error("AsInt on bool should report false")
	}
}

func TestValue_Equal(t *testing.T) {
	a := NewMapping()
	a.Set("x", NewInt(1))
	a.Set("y", NewSequence())
	a.Get("y").Append(NewString("s"))

	b := NewMapping()
	b.Set("x", NewInt(1))
	b.Set("y", NewSequence())
	b.Get("y").Append(NewString("s"))

	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a, b)
	}

	// Order matters for equality.
	c := NewMapping()
	c.Set("y", a.Get("y"))
	c.Set("x", NewInt(1))
	if a.Equal(c) {
		t.Errorf("%s should not equal %s (different key order)", a, c)
	}

	if NewInt(1).Equal(NewFloat(1)) {
		t.Error("integer 1 should not equal float 1.0")
	}
}

func TestValue_String(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewInt(1))
	seq := NewSequence()
	seq.Append(NewBool(true))
	seq.Append(NewNull())
	m.Set("b", seq)

	want := `{a: 1, b: [true, null]}`
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
