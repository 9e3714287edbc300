package jsontree

import (
	"slices"
	"strings"
)

// Mutation methods. All of them absorb misuse silently: nil receivers, nil
// items, and out-of-range indexes are no-ops (or return nil), never panics.

// Size returns the number of children of an array or object.
func (v *Value) Size() int {
	if v == nil {
		return 0
	}

	return len(v.children)
}

// At returns the i-th child, or nil when i is out of range.
func (v *Value) At(i int) *Value {
	if v == nil || i < 0 || i >= len(v.children) {
		return nil
	}

	return v.children[i]
}

// Append adds item as the last child. Ownership of item transfers to v.
func (v *Value) Append(item *Value) {
	if v == nil || item == nil {
		return
	}

	v.children = append(v.children, item)
}

// Insert places item at index i, shifting later children up. An index past
// the end appends; a negative index inserts at the front.
func (v *Value) Insert(i int, item *Value) {
	if v == nil || item == nil {
		return
	}

	if i >= len(v.children) {
		v.children = append(v.children, item)
		return
	}

	if i < 0 {
		i = 0
	}

	v.children = slices.Insert(v.children, i, item)
}

// ReplaceAt discards the i-th child and splices item in its place. Out of
// range is a no-op. The replaced child's entry key, if any, does not carry
// over to item.
func (v *Value) ReplaceAt(i int, item *Value) {
	if v == nil || item == nil || i < 0 || i >= len(v.children) {
		return
	}

	v.children[i] = item
}

// DetachAt removes and returns the i-th child, or nil when i is out of
// range. The caller takes ownership of the returned value; its entry key is
// kept.
func (v *Value) DetachAt(i int) *Value {
	if v == nil || i < 0 || i >= len(v.children) {
		return nil
	}

	c := v.children[i]
	v.children = slices.Delete(v.children, i, i+1)

	return c
}

// DeleteAt removes the i-th child.
func (v *Value) DeleteAt(i int) {
	v.DetachAt(i)
}

// AppendReference appends a borrowed alias of item: a new child sharing
// item's payload and children. The alias renders identically to item, but
// item itself stays owned by the caller and is unaffected by the lifetime
// of v. Structural edits made to item after the splice are not reflected in
// the alias.
func (v *Value) AppendReference(item *Value) {
	if v == nil || item == nil {
		return
	}

	v.children = append(v.children, &Value{
		children:  slices.Clone(item.children),
		str:       item.str,
		num:       item.num,
		cachedInt: item.cachedInt,
		kind:      item.kind,
		reference: true,
	})
}

// Get returns the value of the first entry whose key matches key
// case-insensitively, or nil when the object has no such entry. The result
// is the live child: mutating it mutates the object.
func (v *Value) Get(key string) *Value {
	if v == nil {
		return nil
	}

	for _, c := range v.children {
		if strings.EqualFold(c.key, key) {
			return c
		}
	}

	return nil
}

// keyIndex returns the index of the first case-insensitive match, or -1.
func (v *Value) keyIndex(key string) int {
	for i, c := range v.children {
		if strings.EqualFold(c.key, key) {
			return i
		}
	}

	return -1
}

// Add appends item as a new entry under key and returns item. Existing
// entries with the same key are left alone; duplicates are permitted and
// [Value.Get] keeps returning the first.
func (v *Value) Add(key string, item *Value) *Value {
	if v == nil || item == nil {
		return nil
	}

	item.key = key
	v.children = append(v.children, item)

	return item
}

// AddNull creates a null value and adds it under key.
func (v *Value) AddNull(key string) *Value {
	return v.Add(key, Null())
}

// AddBool creates a boolean value and adds it under key.
func (v *Value) AddBool(key string, b bool) *Value {
	return v.Add(key, Bool(b))
}

// AddNumber creates a number value and adds it under key.
func (v *Value) AddNumber(key string, n float64) *Value {
	return v.Add(key, Number(n))
}

// AddString creates a string value and adds it under key.
func (v *Value) AddString(key, s string) *Value {
	return v.Add(key, String(s))
}

// Detach removes and returns the first entry matching key, or nil when
// there is none.
func (v *Value) Detach(key string) *Value {
	if v == nil {
		return nil
	}

	return v.DetachAt(v.keyIndex(key))
}

// Delete removes the first entry matching key.
func (v *Value) Delete(key string) {
	v.Detach(key)
}

// Replace discards the first entry matching key and splices item in its
// place under the same key. Missing keys are a no-op.
func (v *Value) Replace(key string, item *Value) {
	if v == nil || item == nil {
		return
	}

	i := v.keyIndex(key)
	if i < 0 {
		return
	}

	item.key = key
	v.children[i] = item
}
