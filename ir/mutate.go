package ir

import "slices"

// Add appends a copy of e to an array. It does nothing if v is not an
// array.
func (v *Value) Add(e *Value) *Value {
	if v.typ != ArrayType {
		return Invalid()
	}
	c := e.Clone()
	c.parent = v
	v.arr = append(v.arr, c)
	v.ClearCachedEncoding()
	return c
}

// Insert places a copy of e at index i of an array, shifting later
// elements up. Indices past the end append.
func (v *Value) Insert(e *Value, i int) *Value {
	if v.typ != ArrayType {
		return Invalid()
	}
	i = max(0, min(i, len(v.arr)))
	c := e.Clone()
	c.parent = v
	v.arr = slices.Insert(v.arr, i, c)
	v.ClearCachedEncoding()
	return c
}

// Set stores a copy of e under key in an object, replacing any existing
// entry.
func (v *Value) Set(key string, e *Value) *Value {
	if v.typ != ObjectType {
		return Invalid()
	}
	if old, ok := v.obj[key]; ok {
		old.parent = nil
		old.field = ""
	}
	c := e.Clone()
	c.parent = v
	c.field = key
	v.obj[key] = c
	v.ClearCachedEncoding()
	return c
}

func (v *Value) Remove(i int) {
	if v.typ != ArrayType {
		return
	}
	if i >= 0 && i < len(v.arr) {
		v.arr[i].parent = nil
		v.arr = slices.Delete(v.arr, i, i+1)
	}
	v.ClearCachedEncoding()
}

func (v *Value) RemoveField(key string) {
	if v.typ != ObjectType {
		return
	}
	if old, ok := v.obj[key]; ok {
		old.parent = nil
		old.field = ""
		delete(v.obj, key)
	}
	v.ClearCachedEncoding()
}

// CachedEncoding returns the encoding recorded for v, if any.
func (v *Value) CachedEncoding() (string, bool) {
	return v.enc, v.encoded
}

// SetCachedEncoding records s as the encoding of v. It does not touch
// ancestors: their caches, if present, already account for v.
func (v *Value) SetCachedEncoding(s string) {
	v.enc = s
	v.encoded = true
}

// ClearCachedEncoding drops the cached encoding of v and of every
// ancestor of v.
func (v *Value) ClearCachedEncoding() {
	for x := v; x != nil; x = x.parent {
		x.enc = ""
		x.encoded = false
	}
}

// Source returns the text an Invalid value was decoded from.
func (v *Value) Source() string {
	if v.typ != InvalidType {
		return ""
	}
	return v.enc
}
