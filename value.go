package jsontree

import "math"

// Kind identifies the JSON variant held by a [Value].
type Kind uint8

// Value kinds. True and false are distinct kinds rather than a single
// boolean kind so that a Value needs no separate payload for booleans.
const (
	KindNull Kind = iota
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindStrings = [...]string{
	KindNull:   "null",
	KindFalse:  "false",
	KindTrue:   "true",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}

	return "unknown"
}

// Value is a node in a JSON document tree.
//
// Arrays and objects own their children exclusively: a child belongs to at
// most one parent at a time, and all edits go through the mutation methods
// on the parent. Object entries store their key on the child Value.
//
// The zero Value is null. Values are not safe for concurrent use.
type Value struct {
	children  []*Value
	str       string
	key       string
	num       float64
	cachedInt int
	kind      Kind
	reference bool
}

// clampInt truncates d toward zero and clamps it to the int range.
func clampInt(d float64) int {
	switch {
	case math.IsNaN(d):
		return 0
	case d >= float64(math.MaxInt):
		return math.MaxInt
	case d <= float64(math.MinInt):
		return math.MinInt
	}

	return int(d)
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// True creates a true value.
func True() *Value {
	return &Value{kind: KindTrue}
}

// False creates a false value.
func False() *Value {
	return &Value{kind: KindFalse}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	if b {
		return True()
	}

	return False()
}

// Number creates a number value. The integer reported by [Value.Int] is n
// truncated toward zero and clamped to the int range.
func Number(n float64) *Value {
	return &Value{kind: KindNumber, num: n, cachedInt: clampInt(n)}
}

// String creates a string value holding s. The payload is the decoded text;
// escaping happens only during rendering.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Array creates an array value holding the given items, in order. Nil items
// are skipped.
func Array(items ...*Value) *Value {
	v := &Value{kind: KindArray}
	for _, item := range items {
		v.Append(item)
	}

	return v
}

// Object creates an empty object value.
func Object() *Value {
	return &Value{kind: KindObject}
}

// IntArray creates an array of number values from ns.
func IntArray(ns []int) *Value {
	v := &Value{kind: KindArray, children: make([]*Value, 0, len(ns))}
	for _, n := range ns {
		v.children = append(v.children, Number(float64(n)))
	}

	return v
}

// FloatArray creates an array of number values from ns.
func FloatArray(ns []float64) *Value {
	v := &Value{kind: KindArray, children: make([]*Value, 0, len(ns))}
	for _, n := range ns {
		v.children = append(v.children, Number(n))
	}

	return v
}

// StringArray creates an array of string values from ss.
func StringArray(ss []string) *Value {
	v := &Value{kind: KindArray, children: make([]*Value, 0, len(ss))}
	for _, s := range ss {
		v.children = append(v.children, String(s))
	}

	return v
}

// Kind reports the kind of the value. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// Bool reports whether the value is true.
func (v *Value) Bool() bool {
	return v != nil && v.kind == KindTrue
}

// Float returns the number payload, or 0 for non-numbers.
func (v *Value) Float() float64 {
	if v == nil {
		return 0
	}

	return v.num
}

// Int returns the cached integer approximation of the number payload: the
// float64 truncated toward zero and clamped to the int range. For values
// parsed from the literal true it is 1.
func (v *Value) Int() int {
	if v == nil {
		return 0
	}

	return v.cachedInt
}

// Key returns the object entry key attached to the value, or "" when the
// value is not an object member.
func (v *Value) Key() string {
	if v == nil {
		return ""
	}

	return v.key
}

// IsReference reports whether the value is a borrowed alias created by
// [Value.AppendReference]. Aliases render identically to the values they
// borrow from.
func (v *Value) IsReference() bool {
	return v != nil && v.reference
}

// String returns the decoded payload for string values and the compact JSON
// rendering for every other kind.
func (v *Value) String() string {
	if v == nil {
		return "null"
	}

	if v.kind == KindString {
		return v.str
	}

	return string(v.PrintBuffered(0, false))
}

// Clone returns a copy of the value. The copy owns its payload: the
// reference mark, if any, is cleared. When recurse is false the copy has no
// children; when true all descendants are cloned as well. The entry key is
// carried over.
func (v *Value) Clone(recurse bool) *Value {
	if v == nil {
		return nil
	}

	c := &Value{
		str:       v.str,
		key:       v.key,
		num:       v.num,
		cachedInt: v.cachedInt,
		kind:      v.kind,
	}

	if !recurse {
		return c
	}

	if v.children != nil {
		c.children = make([]*Value, 0, len(v.children))
		for _, child := range v.children {
			c.children = append(c.children, child.Clone(true))
		}
	}

	return c
}
