package ir

import (
	"iter"
	"maps"
	"slices"
)

// Value is a JSON value. The zero Value is Invalid.
//
// Which payload field is meaningful is decided by the type alone; the
// others are kept at their zero values. Containers own their children
// exclusively, and every child knows its parent so that mutating any node
// clears the cached encoding of the node and all of its ancestors.
//
// Copying a Value struct directly shares the children of containers; use
// Clone for an independent copy.
type Value struct {
	typ    Type
	parent *Value
	field  string

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Value
	obj map[string]*Value

	enc     string
	encoded bool
}

// New returns an empty value of type t. String, Array and Object values
// get an empty payload that can be populated afterwards.
func New(t Type) *Value {
	v := &Value{typ: t}
	switch t {
	case ArrayType:
		v.arr = []*Value{}
	case ObjectType:
		v.obj = map[string]*Value{}
	}
	return v
}

func Invalid() *Value {
	return &Value{}
}

func Null() *Value {
	return &Value{typ: NullType}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, b: b}
}

func FromInt(i int64) *Value {
	return &Value{typ: IntegerType, i: i}
}

func FromFloat(f float64) *Value {
	return &Value{typ: FloatType, f: f}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, s: s}
}

// FromSlice returns an array holding copies of vs.
func FromSlice(vs []*Value) *Value {
	res := New(ArrayType)
	for _, v := range vs {
		res.Add(v)
	}
	return res
}

// FromMap returns an object holding copies of the values in m.
func FromMap(m map[string]*Value) *Value {
	res := New(ObjectType)
	for k, v := range m {
		res.Set(k, v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals returns an object built from kvs. Later duplicates replace
// earlier ones.
func FromKeyVals(kvs []KeyVal) *Value {
	res := New(ObjectType)
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// AdoptSlice returns an array whose elements are vs themselves rather than
// copies. The caller gives up ownership of vs and its elements, which must
// not already belong to another container.
func AdoptSlice(vs []*Value) *Value {
	res := &Value{typ: ArrayType, arr: make([]*Value, len(vs))}
	for i, v := range vs {
		v.parent = res
		v.field = ""
		res.arr[i] = v
	}
	return res
}

// AdoptMap is the object counterpart of AdoptSlice.
func AdoptMap(m map[string]*Value) *Value {
	res := &Value{typ: ObjectType, obj: make(map[string]*Value, len(m))}
	for k, v := range m {
		v.parent = res
		v.field = k
		res.obj[k] = v
	}
	return res
}

func (v *Value) Type() Type {
	return v.typ
}

// Size returns the number of elements of an array or entries of an
// object, and 0 for every other type.
func (v *Value) Size() int {
	switch v.typ {
	case ArrayType:
		return len(v.arr)
	case ObjectType:
		return len(v.obj)
	default:
		return 0
	}
}

func (v *Value) Has(key string) bool {
	if v.typ != ObjectType {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Keys returns the keys of an object in lexicographic order.
func (v *Value) Keys() []string {
	if v.typ != ObjectType {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Get returns the element at index i of an array. A new Invalid value is
// returned if v is not an array or i is out of range.
func (v *Value) Get(i int) *Value {
	if v.typ != ArrayType || i < 0 || i >= len(v.arr) {
		return Invalid()
	}
	return v.arr[i]
}

// Field returns the value at key of an object. A new Invalid value is
// returned if v is not an object or has no such key.
func (v *Value) Field(key string) *Value {
	if v.typ != ObjectType {
		return Invalid()
	}
	res, ok := v.obj[key]
	if !ok {
		return Invalid()
	}
	return res
}

// Values iterates over the elements of an array.
func (v *Value) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		if v.typ != ArrayType {
			return
		}
		for _, e := range v.arr {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries iterates over the entries of an object in key order.
func (v *Value) Entries() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range v.Keys() {
			if !yield(k, v.obj[k]) {
				return
			}
		}
	}
}

func (v *Value) AsBool() bool {
	if v.typ != BoolType {
		return false
	}
	return v.b
}

// AsInt returns the integer view of v. Floats are truncated toward zero.
func (v *Value) AsInt() int64 {
	switch v.typ {
	case IntegerType:
		return v.i
	case FloatType:
		return int64(v.f)
	default:
		return 0
	}
}

// AsFloat returns the float view of v. Integers are widened.
func (v *Value) AsFloat() float64 {
	switch v.typ {
	case IntegerType:
		return float64(v.i)
	case FloatType:
		return v.f
	default:
		return 0
	}
}

func (v *Value) AsString() string {
	if v.typ != StringType {
		return ""
	}
	return v.s
}

func (v *Value) Parent() *Value {
	return v.parent
}

func (v *Value) Root() *Value {
	res := v
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Clone returns a deep copy of v, including cached encodings. The copy has
// no parent.
func (v *Value) Clone() *Value {
	res := &Value{
		typ:     v.typ,
		b:       v.b,
		i:       v.i,
		f:       v.f,
		s:       v.s,
		enc:     v.enc,
		encoded: v.encoded,
	}
	switch v.typ {
	case ArrayType:
		res.arr = make([]*Value, len(v.arr))
		for i, e := range v.arr {
			c := e.Clone()
			c.parent = res
			res.arr[i] = c
		}
	case ObjectType:
		res.obj = make(map[string]*Value, len(v.obj))
		for k, e := range v.obj {
			c := e.Clone()
			c.parent = res
			c.field = k
			res.obj[k] = c
		}
	}
	return res
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.typ {
		case ArrayType:
			for _, e := range v.arr {
				if err := e.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			for _, e := range v.Entries() {
				if err := e.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
