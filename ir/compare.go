package ir

// Equal reports whether a and b hold the same value. Floats compare with
// exact IEEE equality, so NaN is never equal to itself. Integers and floats
// are never equal to each other.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case InvalidType, NullType:
		return true
	case BoolType:
		return a.b == b.b
	case StringType:
		return a.s == b.s
	case IntegerType:
		return a.i == b.i
	case FloatType:
		return a.f == b.f
	case ArrayType:
		return equalArrays(a, b)
	case ObjectType:
		return equalObjects(a, b)
	}
	return false
}

func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

func equalArrays(a, b *Value) bool {
	if len(a.arr) != len(b.arr) {
		return false
	}
	for i := range a.arr {
		if !Equal(a.arr[i], b.arr[i]) {
			return false
		}
	}
	return true
}

// key sets are compared before any value so that a difference in keys is
// found without descending into the values.
func equalObjects(a, b *Value) bool {
	if len(a.obj) != len(b.obj) {
		return false
	}
	for k := range a.obj {
		if _, ok := b.obj[k]; !ok {
			return false
		}
	}
	for k, av := range a.obj {
		if !Equal(av, b.obj[k]) {
			return false
		}
	}
	return true
}
