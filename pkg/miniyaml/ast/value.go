package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindPending Kind = iota
	KindString
	KindBool
	KindNull
	KindInt
	KindFloat
	KindMapping
	KindSequence
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPending:
		return "pending"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	}
	return "unknown"
}

// Pair is one key/value entry of a mapping.
type Pair struct {
	Key   string
	Value *Value
}

// Value is a node in a parsed document tree. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Str   string   // KindString
	Bool  bool     // KindBool
	Int   int64    // KindInt
	Float float64  // KindFloat
	Pairs []Pair   // KindMapping, insertion-ordered
	Items []*Value // KindSequence
}

// NewPending returns the transient placeholder value.
func NewPending() *Value { return &Value{Kind: KindPending} }

// NewString returns a string scalar.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewBool returns a boolean scalar.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// NewNull returns a null scalar.
func NewNull() *Value { return &Value{Kind: KindNull} }

// NewInt returns an integer scalar.
func NewInt(i int64) *Value { return &Value{Kind: KindInt, Int: i} }

// NewFloat returns a float scalar.
func NewFloat(f float64) *Value { return &Value{Kind: KindFloat, Float: f} }

// NewMapping returns an empty mapping.
func NewMapping() *Value { return &Value{Kind: KindMapping} }

// NewSequence returns an empty sequence.
func NewSequence() *Value { return &Value{Kind: KindSequence} }

// IsPending reports whether the value is the unresolved placeholder.
func (v *Value) IsPending() bool { return v != nil && v.Kind == KindPending }

// IsNull reports whether the value is a null scalar.
func (v *Value) IsNull() bool { return v != nil && v.Kind == KindNull }

// IsScalar reports whether the value is a leaf scalar.
func (v *Value) IsScalar() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindString, KindBool, KindNull, KindInt, KindFloat:
		return true
	}
	return false
}

// Get returns the value stored under key, or nil when the receiver is nil,
// not a mapping, or the key is absent. Safe to chain.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != KindMapping {
		return nil
	}
	for i := range v.Pairs {
		if v.Pairs[i].Key == key {
			return v.Pairs[i].Value
		}
	}
	return nil
}

// Has reports whether the mapping contains key.
func (v *Value) Has(key string) bool { return v.Get(key) != nil }

// Set stores val under key. An existing key is replaced in place so the
// mapping keeps its original ordering; a new key is appended.
func (v *Value) Set(key string, val *Value) {
	for i := range v.Pairs {
		if v.Pairs[i].Key == key {
			v.Pairs[i].Value = val
			return
		}
	}
	v.Pairs = append(v.Pairs, Pair{Key: key, Value: val})
}

// Keys returns the mapping keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.Pairs))
	for i := range v.Pairs {
		keys[i] = v.Pairs[i].Key
	}
	return keys
}

// Append adds an item to the end of a sequence.
func (v *Value) Append(item *Value) {
	v.Items = append(v.Items, item)
}

// Len returns the number of entries of a mapping or items of a sequence,
// and 0 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case KindMapping:
		return len(v.Pairs)
	case KindSequence:
		return len(v.Items)
	}
	return 0
}

// AsString returns the string payload when the value is a string scalar.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// AsBool returns the boolean payload when the value is a boolean scalar.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// AsInt returns the integer payload when the value is an integer scalar.
func (v *Value) AsInt() (int64, bool) {
	if v == nil || v.Kind != KindInt {
		return 0, false
	}
	return v.Int, true
}

// AsFloat returns a numeric value as float64. Both integer and float
// scalars qualify; configuration numbers are used interchangeably.
func (v *Value) AsFloat() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

// StringOr returns the string payload, or def when the value is not a
// string scalar.
func (v *Value) StringOr(def string) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}

// BoolOr returns the boolean payload, or def when the value is not a
// boolean scalar.
func (v *Value) BoolOr(def bool) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return def
}

// FloatOr returns the numeric payload, or def when the value is not numeric.
func (v *Value) FloatOr(def float64) float64 {
	if f, ok := v.AsFloat(); ok {
		return f
	}
	return def
}

// Equal reports deep structural equality: same kind, same payload, same
// ordering of mapping entries and sequence items.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindNull, KindPending:
		return true
	case KindMapping:
		if len(v.Pairs) != len(o.Pairs) {
			return false
		}
		for i := range v.Pairs {
			if v.Pairs[i].Key != o.Pairs[i].Key || !v.Pairs[i].Value.Equal(o.Pairs[i].Value) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a compact single-line literal form of the tree, intended
// for debugging and test failure messages.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindPending:
		return "<pending>"
	case KindString:
		return strconv.Quote(v.Str)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindMapping:
		var sb strings.Builder
		sb.WriteString("{")
		for i := range v.Pairs {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %s", v.Pairs[i].Key, v.Pairs[i].Value)
		}
		sb.WriteString("}")
		return sb.String()
	case KindSequence:
		var sb strings.Builder
		sb.WriteString("[")
		for i := range v.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(v.Items[i].String())
		}
		sb.WriteString("]")
		return sb.String()
	}
	return "<unknown>"
}
